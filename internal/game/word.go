package game

import (
	"math/rand"

	"github.com/vovakirdan/wordturret/internal/config"
	"github.com/vovakirdan/wordturret/internal/core"
)

// Phase is the lifecycle stage of a word.
type Phase int

const (
	PhaseApproaching Phase = iota // drifting, nothing typed
	PhaseTyping                   // drifting, prefix typed
	PhaseLaunched                 // fully typed, projectile in flight
	PhaseExploding                // hit, fragments flying
	PhaseFinished                 // explosion over, ready for removal
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseApproaching:
		return "Approaching"
	case PhaseTyping:
		return "Typing"
	case PhaseLaunched:
		return "Launched"
	case PhaseExploding:
		return "Exploding"
	case PhaseFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Projectile is the shot fired at a fully typed word.
// Target is captured at launch and does not follow the word afterwards.
type Projectile struct {
	Launched    bool
	Start       core.Vec2
	Target      core.Vec2
	Pos         core.Vec2
	Progress    float64 // 0..1 along the arc
	FlightTicks int

	elapsed int
}

// InFlight reports whether the projectile was fired and has not arrived.
func (p Projectile) InFlight() bool {
	return p.Launched && p.Progress < 1
}

// Word is a target drifting toward the turret.
type Word struct {
	text   []rune
	pos    core.Vec2
	typed  int
	speed  float64
	size   core.Vec2
	turret *Turret
	rng    *rand.Rand

	arc        Arc
	radius     float64
	blast      config.ExplosionConfig
	projectile Projectile
	explosion  Explosion
}

// NewWord creates a word with its top-left corner at pos.
// The turret is only read, to aim the projectile at launch.
func NewWord(text string, pos core.Vec2, turret *Turret, rng *rand.Rand, cfg config.Config) *Word {
	runes := []rune(text)
	return &Word{
		text:   runes,
		pos:    pos,
		speed:  cfg.Words.Speed,
		size:   core.V(float64(len(runes))*cfg.Text.CharWidth, cfg.Text.LineHeight),
		turret: turret,
		rng:    rng,
		arc:    Arc{OffsetX: cfg.Projectile.ArcOffsetX, OffsetY: cfg.Projectile.ArcOffsetY},
		radius: cfg.Projectile.Radius,
		blast:  cfg.Explosion,
		projectile: Projectile{
			FlightTicks: cfg.Projectile.FlightTicks,
		},
	}
}

// Text returns the word.
func (w *Word) Text() string {
	return string(w.text)
}

// Len returns the number of letters in the word.
func (w *Word) Len() int {
	return len(w.text)
}

// Position returns the top-left corner of the word.
func (w *Word) Position() core.Vec2 {
	return w.pos
}

// Size returns the on-screen extent of the word.
func (w *Word) Size() core.Vec2 {
	return w.size
}

// Center returns the middle of the word's extent.
func (w *Word) Center() core.Vec2 {
	return w.pos.Add(w.size.Scale(0.5))
}

// TypedLen returns how many leading letters have been typed.
func (w *Word) TypedLen() int {
	return w.typed
}

// Exploded reports whether the word has been hit.
func (w *Word) Exploded() bool {
	return w.explosion.Active
}

// Projectile returns a copy of the projectile state.
func (w *Word) Projectile() Projectile {
	return w.projectile
}

// ExplosionTimer returns the ticks left in the word explosion.
func (w *Word) ExplosionTimer() int {
	return w.explosion.Timer
}

// Fragments returns a copy of the word's explosion fragments.
func (w *Word) Fragments() []Fragment {
	return append([]Fragment(nil), w.explosion.Fragments...)
}

// IsFullyTyped reports whether every letter has been typed.
func (w *Word) IsFullyTyped() bool {
	return w.typed == len(w.text)
}

// IsFinished reports whether the word exploded and its explosion is over.
func (w *Word) IsFinished() bool {
	return w.explosion.Settled()
}

// Phase returns the current lifecycle stage.
func (w *Word) Phase() Phase {
	switch {
	case w.IsFinished():
		return PhaseFinished
	case w.explosion.Active:
		return PhaseExploding
	case w.projectile.Launched:
		return PhaseLaunched
	case w.typed > 0:
		return PhaseTyping
	default:
		return PhaseApproaching
	}
}

// Update advances the word by one tick. typed is the character entered this
// tick when ok is true; it only counts if it is the next letter needed.
func (w *Word) Update(typed rune, ok bool) {
	if w.explosion.Active {
		w.explosion.Step()
		return
	}

	w.pos.X -= w.speed

	if ok && !w.IsFullyTyped() && w.text[w.typed] == typed {
		w.typed++
	}

	if !w.IsFullyTyped() {
		return
	}
	if !w.projectile.Launched {
		w.launch()
	}
	w.fly()
}

// launch fires from the turret at where the word is now.
func (w *Word) launch() {
	p := &w.projectile
	p.Launched = true
	p.Start = w.turret.Center()
	p.Target = w.Center()
	p.Pos = p.Start
	p.Progress = 0
	p.elapsed = 0
}

// fly moves the projectile one tick along its arc and explodes the word on arrival.
func (w *Word) fly() {
	p := &w.projectile
	if p.Progress >= 1 {
		return
	}

	p.elapsed++
	p.Progress = core.ClampF(float64(p.elapsed)/float64(p.FlightTicks), 0, 1)
	p.Pos = w.arc.Point(p.Start, p.Target, p.Progress)

	if p.Progress >= 1 {
		w.Explode()
	}
}

// Explode bursts the word into one fragment per letter at its centre.
// Calls after the first have no effect.
func (w *Word) Explode() {
	if w.explosion.Active {
		return
	}

	lifetime := func() int {
		return w.blast.MinLifetime + w.rng.Intn(w.blast.MaxLifetime-w.blast.MinLifetime+1)
	}
	frags := scatter(w.rng, w.Center(), w.text, w.blast.FragmentSpeed, lifetime)
	w.explosion.Trigger(w.blast.Duration, frags)
}

// Draw renders the word with its typed prefix highlighted and any projectile
// in flight, or its fragments once exploded.
func (w *Word) Draw(dst core.Renderer) {
	if w.explosion.Active {
		for _, f := range w.explosion.Fragments {
			dst.DrawText(f.Pos, string(f.Letter), core.ColorOrange)
		}
		return
	}

	dst.DrawText(w.pos, string(w.text), core.ColorWhite)
	if w.typed > 0 {
		dst.DrawText(w.pos, string(w.text[:w.typed]), core.ColorBrightGreen)
	}
	if w.projectile.InFlight() {
		dst.DrawCircle(w.projectile.Pos, w.radius, core.ColorRed)
	}
}
