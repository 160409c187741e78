package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordturret/internal/config"
	"github.com/vovakirdan/wordturret/internal/core"
)

// configurable is implemented by games that accept a new configuration,
// applied from their next Reset.
type configurable interface {
	SetConfig(cfg config.Config)
}

// configMsg carries a reloaded configuration into the update loop.
type configMsg config.Config

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger for model events.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithConfigUpdates feeds reloaded configurations to the game.
func WithConfigUpdates(ch <-chan config.Config) Option {
	return func(m *Model) {
		m.updates = ch
	}
}

// Model is the Bubble Tea model for running a game in the terminal.
type Model struct {
	game       core.Game
	screen     *core.Screen
	canvas     *core.Canvas
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	pending    []rune
	gameState  core.GameState
	keys       keyMap
	help       help.Model
	logger     *log.Logger
	updates    <-chan config.Config
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The bottom row of the terminal is kept for the key help line.
func NewModel(game core.Game, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	screen := core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH))
	m := Model{
		game:       game,
		screen:     screen,
		canvas:     core.NewCanvas(screen, game.World()),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       newKeyMap(),
		help:       help.New(),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func playHeight(h int) int {
	return max(h-1, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed)

	// Start the tick loop
	return tea.Batch(tickCmd(m.config.TickRate), waitForConfig(m.updates))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case configMsg:
		return m.handleConfig(config.Config(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Leave):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		m.inputFrame.Set(core.ActionPause)
		return m, nil
	case key.Matches(msg, m.keys.Restart):
		m.inputFrame.Set(core.ActionRestart)
		return m, nil
	}

	if m.gameState.GameOver || m.gameState.Paused {
		return m, nil
	}
	if r, ok := typedRune(msg); ok && len(m.pending) < maxPendingRunes {
		m.pending = append(m.pending, r)
	}
	return m, nil
}

// handleResize processes window resize events. The simulation runs in world
// units, so a resize only changes how it is drawn.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.canvas = core.NewCanvas(m.screen, m.game.World())
		m.gameState = m.game.State()
		m.keys.setGameOver(false)
		m.pending = m.pending[:0]
		m.inputFrame.Clear()
		m.logger.Debug("game restarted", "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	// One typed character per tick
	if len(m.pending) > 0 {
		m.inputFrame.SetTyped(m.pending[0])
		m.pending = m.pending[1:]
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	if result.State.GameOver && !m.gameState.GameOver {
		m.logger.Info("game over", "score", result.State.Score)
		m.pending = m.pending[:0]
	}
	m.gameState = result.State
	m.keys.setGameOver(m.gameState.GameOver)

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// handleConfig hands a reloaded configuration to the game.
func (m Model) handleConfig(cfg config.Config) (tea.Model, tea.Cmd) {
	if g, ok := m.game.(configurable); ok {
		g.SetConfig(cfg)
		m.logger.Info("config reloaded, applies on restart")
	}
	return m, waitForConfig(m.updates)
}

// waitForConfig blocks until the next configuration arrives.
func waitForConfig(ch <-chan config.Config) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return configMsg(cfg)
	}
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.screen.Clear()
	m.game.Render(m.canvas)

	// Convert screen to string
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given model.
func Run(game core.Game, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
