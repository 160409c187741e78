// Package gui runs a game in a desktop window with Ebitengine.
// The simulation draws in world units, which map 1:1 to window pixels.
package gui

import (
	"image/color"
	"io"
	"time"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/wordturret/internal/config"
	"github.com/vovakirdan/wordturret/internal/core"
)

// maxPendingRunes bounds the typed characters buffered between ticks.
const maxPendingRunes = 16

// GlyphScale returns the factor that stretches the built-in 7x13 bitmap
// font to the configured character width.
func GlyphScale(t config.TextConfig) float64 {
	return t.CharWidth / float64(basicfont.Face7x13.Advance)
}

// controls are the non-typing keys pressed during one frame.
type controls struct {
	pause   bool
	restart bool
	leave   bool
}

// App adapts a core.Game to ebiten.Game.
type App struct {
	game    core.Game
	config  core.RuntimeConfig
	logger  *log.Logger
	frame   core.InputFrame
	pending []rune
	state   core.GameState
	chars   []rune

	face  *text.GoXFace
	scale float64
}

// NewApp creates a desktop frontend for game. glyphScale sizes text; see GlyphScale.
func NewApp(game core.Game, cfg core.RuntimeConfig, glyphScale float64, logger *log.Logger) *App {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	a := &App{
		game:   game,
		config: cfg,
		logger: logger,
		frame:  core.NewInputFrame(),
		face:   text.NewGoXFace(basicfont.Face7x13),
		scale:  glyphScale,
	}
	a.game.Reset(a.config)
	a.state = a.game.State()
	return a
}

// Update implements ebiten.Game. It runs one simulation tick.
func (a *App) Update() error {
	c := controls{
		pause:   inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		restart: inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		leave:   inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}
	a.chars = ebiten.AppendInputChars(a.chars[:0])
	return a.apply(c, a.chars)
}

// apply feeds one frame of input to the game and steps it.
// It returns ebiten.Termination when the player leaves.
func (a *App) apply(c controls, typed []rune) error {
	if a.state.GameOver {
		switch {
		case c.leave:
			return ebiten.Termination
		case c.restart:
			a.config.Seed = time.Now().UnixNano()
			a.game.Reset(a.config)
			a.state = a.game.State()
			a.pending = a.pending[:0]
			a.logger.Debug("game restarted", "seed", a.config.Seed)
			return nil
		}
		return nil
	}

	if c.pause {
		a.frame.Set(core.ActionPause)
	}
	if !a.state.Paused {
		for _, r := range typed {
			if len(a.pending) >= maxPendingRunes {
				break
			}
			if unicode.IsPrint(r) && !unicode.IsSpace(r) {
				a.pending = append(a.pending, unicode.ToLower(r))
			}
		}
	}

	// One typed character per tick
	if len(a.pending) > 0 {
		a.frame.SetTyped(a.pending[0])
		a.pending = a.pending[1:]
	}

	result := a.game.Step(a.frame)
	if result.State.GameOver && !a.state.GameOver {
		a.logger.Info("game over", "score", result.State.Score)
	}
	a.state = result.State
	a.frame.Clear()
	return nil
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	a.game.Render(&imageRenderer{dst: screen, face: a.face, scale: a.scale})
}

// Layout implements ebiten.Game. The logical screen is the game world.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := a.game.World()
	return int(w.X), int(w.Y)
}

// Run opens a window sized to the game world and blocks until it closes.
func Run(app *App) error {
	w := app.game.World()
	ebiten.SetWindowSize(int(w.X), int(w.Y))
	ebiten.SetWindowTitle(app.game.Title())
	ebiten.SetTPS(app.config.TickRate)
	return ebiten.RunGame(app)
}

// imageRenderer implements core.Renderer on an Ebitengine image.
type imageRenderer struct {
	dst   *ebiten.Image
	face  *text.GoXFace
	scale float64
}

func (r *imageRenderer) DrawText(pos core.Vec2, s string, c core.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(r.scale, r.scale)
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(rgba(c))
	text.Draw(r.dst, s, r.face, op)
}

func (r *imageRenderer) DrawCircle(pos core.Vec2, radius float64, c core.Color) {
	vector.DrawFilledCircle(r.dst, float32(pos.X), float32(pos.Y), float32(radius), rgba(c), true)
}

func (r *imageRenderer) DrawRect(pos core.Vec2, w, h float64, c core.Color) {
	vector.DrawFilledRect(r.dst, float32(pos.X), float32(pos.Y), float32(w), float32(h), rgba(c), false)
}
