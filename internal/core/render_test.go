package core

import "testing"

func TestCanvasToCell(t *testing.T) {
	c := NewCanvas(NewScreen(80, 24), V(800, 600))

	tests := []struct {
		name   string
		pos    Vec2
		wx, wy int
	}{
		{"origin", V(0, 0), 0, 0},
		{"centre", V(400, 300), 40, 12},
		{"just inside cell", V(9.99, 24.99), 0, 0},
		{"right edge", V(800, 0), 80, 0},
		{"negative", V(-5, 10), -1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := c.ToCell(tc.pos)
			if x != tc.wx || y != tc.wy {
				t.Errorf("ToCell(%v) = (%d, %d), expected (%d, %d)", tc.pos, x, y, tc.wx, tc.wy)
			}
		})
	}
}

func TestCanvasDrawCommands(t *testing.T) {
	s := NewScreen(80, 24)
	c := NewCanvas(s, V(800, 600))

	c.DrawText(V(100, 50), "cat", ColorWhite)
	if got := s.Row(2)[10:13]; got != "cat" {
		t.Errorf("DrawText row = %q, expected \"cat\" at column 10", got)
	}

	c.DrawCircle(V(400, 300), 8, ColorRed)
	if cell := s.GetCell(40, 12); cell.Rune != CircleGlyph || cell.Color != ColorRed {
		t.Errorf("DrawCircle cell = %+v, expected red circle glyph", cell)
	}

	// A rectangle smaller than a cell still covers one cell
	c.DrawRect(V(50, 300), 5, 5, ColorGreen)
	if cell := s.GetCell(5, 12); cell.Rune != RectGlyph || cell.Color != ColorGreen {
		t.Errorf("DrawRect cell = %+v, expected green block", cell)
	}
}
