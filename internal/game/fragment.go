package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/wordturret/internal/core"
)

// NoExpiry marks a fragment that lives until its explosion is discarded.
const NoExpiry = -1

// Fragment is a single letter flung out by an explosion.
type Fragment struct {
	Letter   rune
	Pos      core.Vec2
	Vel      core.Vec2
	Lifetime int // ticks left, or NoExpiry
}

// Explosion holds the burst shared by words and the turret.
type Explosion struct {
	Active    bool
	Timer     int
	Fragments []Fragment
}

// Trigger starts the explosion with the given duration and fragments.
// It returns false and changes nothing if the explosion already started.
func (e *Explosion) Trigger(duration int, frags []Fragment) bool {
	if e.Active {
		return false
	}
	e.Active = true
	e.Timer = duration
	e.Fragments = frags
	return true
}

// Step advances every fragment by its velocity, drops expired fragments
// and counts the timer down to zero.
func (e *Explosion) Step() {
	if !e.Active {
		return
	}

	live := e.Fragments[:0]
	for _, f := range e.Fragments {
		f.Pos = f.Pos.Add(f.Vel)
		if f.Lifetime != NoExpiry {
			f.Lifetime--
			if f.Lifetime <= 0 {
				continue
			}
		}
		live = append(live, f)
	}
	e.Fragments = live

	if e.Timer > 0 {
		e.Timer--
	}
}

// Expired reports whether the explosion started and its timer ran out.
func (e *Explosion) Expired() bool {
	return e.Active && e.Timer == 0
}

// Settled reports whether the explosion expired and every fragment is gone.
func (e *Explosion) Settled() bool {
	return e.Expired() && len(e.Fragments) == 0
}

// scatter creates one fragment per letter at origin, each heading in a
// uniformly random direction at the given speed.
func scatter(rng *rand.Rand, origin core.Vec2, letters []rune, speed float64, lifetime func() int) []Fragment {
	frags := make([]Fragment, 0, len(letters))
	for _, l := range letters {
		angle := rng.Float64() * 2 * math.Pi
		frags = append(frags, Fragment{
			Letter:   l,
			Pos:      origin,
			Vel:      core.FromAngle(angle, speed),
			Lifetime: lifetime(),
		})
	}
	return frags
}
