package gui

import (
	"image/color"

	"github.com/vovakirdan/wordturret/internal/core"
)

// palette maps core.Color to RGBA, close to the xterm colors the
// terminal frontend uses.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:     {R: 229, G: 229, B: 229, A: 255},
	core.ColorWhite:       {R: 255, G: 255, B: 255, A: 255},
	core.ColorBrightGreen: {R: 0, G: 255, B: 0, A: 255},
	core.ColorGreen:       {R: 0, G: 205, B: 0, A: 255},
	core.ColorRed:         {R: 255, G: 0, B: 0, A: 255},
	core.ColorOrange:      {R: 255, G: 165, B: 0, A: 255},
	core.ColorYellow:      {R: 255, G: 255, B: 85, A: 255},
	core.ColorGray:        {R: 138, G: 138, B: 138, A: 255},
}

// rgba returns the display color for c.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}
