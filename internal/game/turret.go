package game

import (
	"math/rand"

	"github.com/vovakirdan/wordturret/internal/config"
	"github.com/vovakirdan/wordturret/internal/core"
)

// Turret is the defended square on the left of the playfield.
// Once exploded it stays destroyed for the rest of the session.
type Turret struct {
	pos       core.Vec2
	cfg       config.TurretConfig
	rng       *rand.Rand
	explosion Explosion
}

// NewTurret places a turret as configured. rng is used for fragment letters
// and directions when the turret explodes.
func NewTurret(cfg config.TurretConfig, rng *rand.Rand) *Turret {
	return &Turret{
		pos: core.V(cfg.X, cfg.Y),
		cfg: cfg,
		rng: rng,
	}
}

// Position returns the top-left corner of the turret.
func (t *Turret) Position() core.Vec2 {
	return t.pos
}

// Center returns the point projectiles are fired from.
func (t *Turret) Center() core.Vec2 {
	half := t.cfg.Size / 2
	return t.pos.Add(core.V(half, half))
}

// Exploded reports whether the turret has been destroyed.
func (t *Turret) Exploded() bool {
	return t.explosion.Active
}

// Timer returns the ticks left in the turret explosion.
func (t *Turret) Timer() int {
	return t.explosion.Timer
}

// Fragments returns a copy of the turret's explosion fragments.
func (t *Turret) Fragments() []Fragment {
	return append([]Fragment(nil), t.explosion.Fragments...)
}

// Explode destroys the turret. Calls after the first have no effect.
func (t *Turret) Explode() {
	if t.explosion.Active {
		return
	}

	letters := make([]rune, t.cfg.FragmentCount)
	for i := range letters {
		letters[i] = rune('A' + t.rng.Intn(26))
	}
	frags := scatter(t.rng, t.pos, letters, t.cfg.FragmentSpeed, func() int { return NoExpiry })
	t.explosion.Trigger(t.cfg.ExplosionDuration, frags)
}

// Update advances the explosion. It does nothing while the turret is intact.
func (t *Turret) Update() {
	t.explosion.Step()
}

// IsFinished reports whether the turret exploded and its explosion ran out.
func (t *Turret) IsFinished() bool {
	return t.explosion.Expired()
}

// Draw renders the turret, or its fragments once destroyed.
func (t *Turret) Draw(dst core.Renderer) {
	if !t.explosion.Active {
		dst.DrawRect(t.pos, t.cfg.Size, t.cfg.Size, core.ColorGreen)
		return
	}
	for _, f := range t.explosion.Fragments {
		dst.DrawText(f.Pos, string(f.Letter), core.ColorRed)
	}
}
