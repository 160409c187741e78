package config

import (
	_ "embed"
)

//go:embed defaults/wordturret.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in Word Turret configuration.
func DefaultConfig() Config {
	return Config{
		Playfield: PlayfieldConfig{
			Width:     800,
			Height:    600,
			SpawnMinY: 50,
			SpawnMaxY: 550,
		},
		Words: WordsConfig{
			Speed:            2,
			SpawnInterval:    100,
			MaxLength:        6,
			MaxSpawnAttempts: 32,
			MaxMissed:        3,
		},
		Projectile: ProjectileConfig{
			FlightTicks: 30,
			ArcOffsetX:  0,
			ArcOffsetY:  -80,
			Radius:      8,
		},
		Explosion: ExplosionConfig{
			Duration:      30,
			FragmentSpeed: 3,
			MinLifetime:   20,
			MaxLifetime:   40,
		},
		Turret: TurretConfig{
			X:                 50,
			Y:                 300,
			Size:              20,
			ExplosionDuration: 60,
			FragmentCount:     10,
			FragmentSpeed:     3,
		},
		Text: TextConfig{
			CharWidth:  12,
			LineHeight: 24,
		},
	}
}
