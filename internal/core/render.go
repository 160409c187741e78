package core

import "math"

// Renderer is the draw sink the simulation issues commands to.
// Implementations have no side effects on simulation state.
type Renderer interface {
	// DrawText draws text with its top-left corner at pos.
	DrawText(pos Vec2, text string, c Color)

	// DrawCircle draws a filled circle centred at pos.
	DrawCircle(pos Vec2, radius float64, c Color)

	// DrawRect draws a filled axis-aligned rectangle with its top-left corner at pos.
	DrawRect(pos Vec2, w, h float64, c Color)
}

// Glyphs used by Canvas for shapes that have no text.
const (
	CircleGlyph = '●'
	RectGlyph   = '█'
)

// Canvas adapts a Screen to the Renderer interface by scaling world
// coordinates onto the character grid. Text keeps one rune per cell.
type Canvas struct {
	screen *Screen
	world  Vec2
}

// NewCanvas creates a canvas that maps a world of the given size onto screen.
func NewCanvas(screen *Screen, world Vec2) *Canvas {
	return &Canvas{screen: screen, world: world}
}

// Screen returns the underlying screen buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

// ToCell converts a world position to the character cell containing it.
func (c *Canvas) ToCell(pos Vec2) (int, int) {
	if c.world.X <= 0 || c.world.Y <= 0 {
		return int(pos.X), int(pos.Y)
	}
	x := math.Floor(pos.X * float64(c.screen.Width()) / c.world.X)
	y := math.Floor(pos.Y * float64(c.screen.Height()) / c.world.Y)
	return int(x), int(y)
}

// DrawText implements Renderer.
func (c *Canvas) DrawText(pos Vec2, text string, col Color) {
	x, y := c.ToCell(pos)
	c.screen.DrawText(x, y, text, col)
}

// DrawCircle implements Renderer. Small circles collapse to a single glyph.
func (c *Canvas) DrawCircle(pos Vec2, radius float64, col Color) {
	x, y := c.ToCell(pos)
	c.screen.SetCell(x, y, CircleGlyph, col)
}

// DrawRect implements Renderer. Every rectangle covers at least one cell.
func (c *Canvas) DrawRect(pos Vec2, w, h float64, col Color) {
	x0, y0 := c.ToCell(pos)
	x1, y1 := c.ToCell(pos.Add(V(w, h)))
	r := NewRect(x0, y0, Max(x1-x0, 1), Max(y1-y0, 1))
	c.screen.DrawRect(r, RectGlyph, col)
}
