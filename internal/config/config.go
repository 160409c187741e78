// Package config provides YAML-based game configuration loading,
// validation and live reload for Word Turret.
package config

import (
	"errors"
	"fmt"
)

// Config contains all tuning for a Word Turret session.
// World coordinates are in logical pixels with the origin at the top-left.
type Config struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Words      WordsConfig      `yaml:"words"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Explosion  ExplosionConfig  `yaml:"explosion"`
	Turret     TurretConfig     `yaml:"turret"`
	Text       TextConfig       `yaml:"text"`
}

// PlayfieldConfig defines the world size and the vertical spawn band.
type PlayfieldConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	SpawnMinY int     `yaml:"spawn_min_y"`
	SpawnMaxY int     `yaml:"spawn_max_y"`
}

// WordsConfig defines word drift, spawning and the miss threshold.
type WordsConfig struct {
	Speed            float64 `yaml:"speed"`              // world units per tick
	SpawnInterval    int     `yaml:"spawn_interval"`     // ticks between spawns
	MaxLength        int     `yaml:"max_length"`         // longest word that may spawn
	MaxSpawnAttempts int     `yaml:"max_spawn_attempts"` // dictionary draws per spawn before skipping
	MaxMissed        int     `yaml:"max_missed"`         // misses that destroy the turret
}

// ProjectileConfig defines the projectile flight and arc shape.
type ProjectileConfig struct {
	FlightTicks int     `yaml:"flight_ticks"`
	ArcOffsetX  float64 `yaml:"arc_offset_x"`
	ArcOffsetY  float64 `yaml:"arc_offset_y"` // negative arcs upward
	Radius      float64 `yaml:"radius"`
}

// ExplosionConfig defines the word explosion and its letter fragments.
type ExplosionConfig struct {
	Duration      int     `yaml:"duration"`
	FragmentSpeed float64 `yaml:"fragment_speed"`
	MinLifetime   int     `yaml:"min_lifetime"`
	MaxLifetime   int     `yaml:"max_lifetime"`
}

// TurretConfig defines the turret placement and its destruction.
type TurretConfig struct {
	X                 float64 `yaml:"x"`
	Y                 float64 `yaml:"y"`
	Size              float64 `yaml:"size"`
	ExplosionDuration int     `yaml:"explosion_duration"`
	FragmentCount     int     `yaml:"fragment_count"`
	FragmentSpeed     float64 `yaml:"fragment_speed"`
}

// TextConfig approximates font metrics in world units.
type TextConfig struct {
	CharWidth  float64 `yaml:"char_width"`
	LineHeight float64 `yaml:"line_height"`
}

// Validate reports every setting that would break the simulation.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Playfield.Width > 0 && c.Playfield.Height > 0,
		"playfield: size must be positive, got %gx%g", c.Playfield.Width, c.Playfield.Height)
	check(c.Playfield.SpawnMinY <= c.Playfield.SpawnMaxY,
		"playfield: spawn_min_y %d exceeds spawn_max_y %d", c.Playfield.SpawnMinY, c.Playfield.SpawnMaxY)
	check(c.Words.Speed >= 0, "words: speed must not be negative, got %g", c.Words.Speed)
	check(c.Words.SpawnInterval > 0, "words: spawn_interval must be positive, got %d", c.Words.SpawnInterval)
	check(c.Words.MaxLength > 0, "words: max_length must be positive, got %d", c.Words.MaxLength)
	check(c.Words.MaxSpawnAttempts > 0, "words: max_spawn_attempts must be positive, got %d", c.Words.MaxSpawnAttempts)
	check(c.Words.MaxMissed > 0, "words: max_missed must be positive, got %d", c.Words.MaxMissed)
	check(c.Projectile.FlightTicks > 0, "projectile: flight_ticks must be positive, got %d", c.Projectile.FlightTicks)
	check(c.Explosion.Duration >= 0, "explosion: duration must not be negative, got %d", c.Explosion.Duration)
	check(c.Explosion.MinLifetime > 0 && c.Explosion.MinLifetime <= c.Explosion.MaxLifetime,
		"explosion: lifetime range [%d, %d] is invalid", c.Explosion.MinLifetime, c.Explosion.MaxLifetime)
	check(c.Turret.ExplosionDuration >= 0,
		"turret: explosion_duration must not be negative, got %d", c.Turret.ExplosionDuration)
	check(c.Turret.FragmentCount >= 0, "turret: fragment_count must not be negative, got %d", c.Turret.FragmentCount)
	check(c.Text.CharWidth > 0 && c.Text.LineHeight > 0,
		"text: metrics must be positive, got %gx%g", c.Text.CharWidth, c.Text.LineHeight)

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
