package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wordturret/internal/config"
	"github.com/vovakirdan/wordturret/internal/core"
)

// fakeGame records what the model feeds it.
type fakeGame struct {
	resets  int
	steps   int
	typed   []rune
	pauses  int
	over    bool
	cfg     *config.Config
	lastCfg core.RuntimeConfig
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.over = false
	g.lastCfg = cfg
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	if r, ok := in.Typed(); ok {
		g.typed = append(g.typed, r)
	}
	if in.Has(core.ActionPause) {
		g.pauses++
	}
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) Render(dst core.Renderer) {
	dst.DrawText(core.V(0, 0), "HELLO", core.ColorWhite)
}

func (g *fakeGame) State() core.GameState   { return core.GameState{GameOver: g.over} }
func (g *fakeGame) World() core.Vec2         { return core.V(80, 23) }
func (g *fakeGame) SetConfig(c config.Config) { g.cfg = &c }

func newTestModel(g *fakeGame) Model {
	return NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelFeedsOneRunePerTick(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)
	m.Init()

	m, _ = send(t, m, runes("C"))
	m, _ = send(t, m, runes("a"))
	m, _ = send(t, m, runes("t"))

	for i := 0; i < 5; i++ {
		m, _ = send(t, m, TickMsg{})
	}

	if string(g.typed) != "cat" {
		t.Errorf("typed = %q, expected \"cat\" lower-cased in order", string(g.typed))
	}
	if g.steps != 5 {
		t.Errorf("steps = %d, expected 5", g.steps)
	}
}

func TestModelPendingIsBounded(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	for i := 0; i < maxPendingRunes*2; i++ {
		m, _ = send(t, m, runes("x"))
	}
	if len(m.pending) != maxPendingRunes {
		t.Errorf("pending = %d, expected %d", len(m.pending), maxPendingRunes)
	}
}

func TestModelLettersAreTypingDuringPlay(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, cmd := send(t, m, runes("q"))
	if m.quitting || cmd != nil {
		t.Fatal("q should be typed while the game runs, not quit")
	}
	m, _ = send(t, m, runes("r"))
	m, _ = send(t, m, TickMsg{})
	m, _ = send(t, m, TickMsg{})
	if string(g.typed) != "qr" {
		t.Errorf("typed = %q, expected \"qr\"", string(g.typed))
	}
	if g.resets != 0 {
		t.Error("r should not restart a running game")
	}
}

func TestModelPauseKey(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	send(t, m, TickMsg{})
	if g.pauses != 1 {
		t.Errorf("pauses = %d, expected 1", g.pauses)
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)
	m.Init()

	g.over = true
	m, _ = send(t, m, TickMsg{})
	if !m.State().GameOver {
		t.Fatal("model should observe game over")
	}

	m, _ = send(t, m, runes("x"))
	if len(m.pending) != 0 {
		t.Error("letters should not queue after game over")
	}

	m, _ = send(t, m, runes("r"))
	m, _ = send(t, m, TickMsg{})
	if g.resets != 2 {
		t.Errorf("resets = %d, expected 2 (init + restart)", g.resets)
	}
	if m.State().GameOver {
		t.Error("state should be fresh after restart")
	}
	if g.lastCfg.Seed == 1 {
		t.Error("restart should pick a new seed")
	}
}

func TestModelQuit(t *testing.T) {
	tests := []struct {
		name     string
		gameOver bool
		msg      tea.KeyMsg
		quits    bool
	}{
		{"ctrl+c while playing", false, tea.KeyMsg{Type: tea.KeyCtrlC}, true},
		{"ctrl+c after game over", true, tea.KeyMsg{Type: tea.KeyCtrlC}, true},
		{"q after game over", true, runes("q"), true},
		{"q while playing", false, runes("q"), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := &fakeGame{over: tc.gameOver}
			m := newTestModel(g)
			m, _ = send(t, m, TickMsg{})

			m, _ = send(t, m, tc.msg)
			if m.quitting != tc.quits {
				t.Errorf("quitting = %v, expected %v", m.quitting, tc.quits)
			}
		})
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)
	m.Init()

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if g.resets != 1 {
		t.Errorf("resize reset the game (resets = %d)", g.resets)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 120x39", m.screen.Width(), m.screen.Height())
	}
}

func TestModelAppliesConfigUpdates(t *testing.T) {
	g := &fakeGame{}
	ch := make(chan config.Config, 1)
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, WithConfigUpdates(ch))

	cfg := config.DefaultConfig()
	cfg.Words.MaxLength = 9
	ch <- cfg

	msg := waitForConfig(ch)()
	_, cmd := send(t, m, msg)

	if g.cfg == nil || g.cfg.Words.MaxLength != 9 {
		t.Fatalf("SetConfig not called with reloaded config: %+v", g.cfg)
	}
	if cmd == nil {
		t.Error("model should keep waiting for further updates")
	}
}

func TestModelView(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	view := m.View()
	if !strings.Contains(view, "HELLO") {
		t.Error("view should contain the rendered game")
	}
	if !strings.Contains(view, "pause") {
		t.Error("view should contain the key help line")
	}
}

func TestPaletteCoversEveryColor(t *testing.T) {
	for _, c := range core.Colors() {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no terminal style for %s", c)
		}
	}
}
