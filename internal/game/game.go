// Package game implements the Word Turret simulation: words drift toward a
// turret, typing a word fires a projectile that blows it apart, and letting
// too many words through destroys the turret.
//
// All randomness flows from the seed passed to Reset, so a session replays
// identically given the same seed and input.
package game

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/wordturret/internal/config"
	"github.com/vovakirdan/wordturret/internal/core"
	"github.com/vovakirdan/wordturret/internal/dictionary"
)

// HUD placement in world units.
var (
	scorePos    = core.V(10, 10)
	gameOverPos = core.V(300, 250)
)

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for session events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// Game is a Word Turret session. It implements core.Game.
type Game struct {
	cfg     config.Config
	pending *config.Config
	corpus  *dictionary.List
	logger  *log.Logger

	runtime  core.RuntimeConfig
	rng      *rand.Rand
	turret   *Turret
	score    *Score
	manager  *WordManager
	tick     int
	gameOver bool
	paused   bool
}

// New creates a session drawing words from corpus. The session is ready to
// step immediately; Reset starts it over with a new seed.
func New(cfg config.Config, corpus *dictionary.List, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		corpus: corpus,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "wordturret"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Word Turret"
}

// SetConfig replaces the game configuration from the next Reset on.
func (g *Game) SetConfig(cfg config.Config) {
	g.pending = &cfg
}

// Config returns the configuration of the running session.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Reset initializes or restarts the session.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if g.pending != nil {
		g.cfg = *g.pending
		g.pending = nil
	}

	g.runtime = rc
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.turret = NewTurret(g.cfg.Turret, g.rng)
	g.score = &Score{}
	g.manager = NewWordManager(g.cfg, g.corpus.Source(g.rng), g.turret, g.score, g.rng)
	g.tick = 0
	g.gameOver = false
	g.paused = false

	g.logger.Debug("session reset", "seed", rc.Seed, "corpus", g.corpus.Len())
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	before := g.manager.Stats()
	wasExploded := g.turret.Exploded()

	typed, ok := in.Typed()
	g.manager.Update(typed, ok)
	g.turret.Update()
	g.tick++

	after := g.manager.Stats()
	if after.Skipped > before.Skipped {
		g.logger.Debug("spawn skipped", "tick", g.tick, "draws", after.Draws-before.Draws)
	}
	if !wasExploded && g.turret.Exploded() {
		g.logger.Debug("turret destroyed", "tick", g.tick, "missed", after.Missed)
	}

	if g.turret.IsFinished() {
		g.gameOver = true
		g.logger.Info("game over", "score", g.score.Total(), "ticks", g.tick, "destroyed", after.Destroyed)
	}

	return core.StepResult{State: g.State()}
}

// Render draws the current session.
func (g *Game) Render(dst core.Renderer) {
	if g.gameOver {
		dst.DrawText(gameOverPos, fmt.Sprintf("Game Over! Score: %d", g.score.Total()), core.ColorWhite)
		return
	}

	g.manager.Draw(dst)
	g.turret.Draw(dst)

	// Draw HUD
	dst.DrawText(scorePos, "Score: "+humanize.Comma(int64(g.score.Total())), core.ColorWhite)
	misses := fmt.Sprintf("Missed: %d/%d", g.manager.MissedWords(), g.cfg.Words.MaxMissed)
	dst.DrawText(scorePos.Add(core.V(0, g.cfg.Text.LineHeight)), misses, core.ColorGray)

	if g.paused {
		msg := "PAUSED"
		w := float64(len(msg)) * g.cfg.Text.CharWidth
		pos := core.V((g.cfg.Playfield.Width-w)/2, g.cfg.Playfield.Height/2)
		dst.DrawText(pos, msg, core.ColorYellow)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Total(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// World returns the playfield size.
func (g *Game) World() core.Vec2 {
	return core.V(g.cfg.Playfield.Width, g.cfg.Playfield.Height)
}

// Tick returns the number of simulated ticks since Reset.
func (g *Game) Tick() int {
	return g.tick
}

// Turret returns the session turret.
func (g *Game) Turret() *Turret {
	return g.turret
}

// Manager returns the session word manager.
func (g *Game) Manager() *WordManager {
	return g.manager
}
