package game

import "github.com/vovakirdan/wordturret/internal/core"

// Arc shapes a projectile path as a quadratic Bezier curve. The control point
// is the midpoint of start and target shifted by the offsets; a negative
// OffsetY bows the path upward.
type Arc struct {
	OffsetX float64
	OffsetY float64
}

// DefaultArc is the upward arc used when no configuration is given.
var DefaultArc = Arc{OffsetX: 0, OffsetY: -80}

// Control returns the Bezier control point for a flight from start to target.
func (a Arc) Control(start, target core.Vec2) core.Vec2 {
	return core.Midpoint(start, target).Add(core.V(a.OffsetX, a.OffsetY))
}

// Point returns the position at progress t along the arc.
// The endpoints are returned unchanged for t <= 0 and t >= 1.
func (a Arc) Point(start, target core.Vec2, t float64) core.Vec2 {
	switch {
	case t <= 0:
		return start
	case t >= 1:
		return target
	}

	c := a.Control(start, target)
	u := 1 - t
	return start.Scale(u * u).
		Add(c.Scale(2 * u * t)).
		Add(target.Scale(t * t))
}

// Trajectory evaluates DefaultArc at progress t.
func Trajectory(start, target core.Vec2, t float64) core.Vec2 {
	return DefaultArc.Point(start, target, t)
}
