package core

// Color is a logical draw color. Each frontend maps it to its own palette:
// ANSI codes in the terminal, RGBA on the desktop.
type Color uint8

const (
	ColorDefault     Color = iota
	ColorWhite             // untyped word text, HUD
	ColorBrightGreen       // typed prefix
	ColorGreen             // intact turret
	ColorRed               // projectile, turret debris
	ColorOrange            // word fragments
	ColorYellow            // pause banner
	ColorGray              // secondary HUD text

	colorCount
)

var colorNames = [colorCount]string{
	ColorDefault:     "default",
	ColorWhite:       "white",
	ColorBrightGreen: "bright-green",
	ColorGreen:       "green",
	ColorRed:         "red",
	ColorOrange:      "orange",
	ColorYellow:      "yellow",
	ColorGray:        "gray",
}

// String returns the color name.
func (c Color) String() string {
	if c < colorCount {
		return colorNames[c]
	}
	return "unknown"
}

// Colors returns every defined color in order.
func Colors() []Color {
	out := make([]Color, colorCount)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}
