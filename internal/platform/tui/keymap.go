package tui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// maxPendingRunes bounds the typed characters buffered between ticks.
const maxPendingRunes = 16

// keyMap holds the fixed control bindings. Letters are not bound while a
// game is running so that every letter key reaches the game as typing.
type keyMap struct {
	Quit    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Leave   key.Binding
}

func newKeyMap() keyMap {
	k := keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Pause: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "restart"),
		),
		Leave: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "leave"),
		),
	}
	k.setGameOver(false)
	return k
}

// setGameOver enables the bindings that only make sense once a game ended.
func (k *keyMap) setGameOver(over bool) {
	k.Pause.SetEnabled(!over)
	k.Restart.SetEnabled(over)
	k.Leave.SetEnabled(over)
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Restart, k.Leave, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// typedRune extracts a single typed character, lower-cased.
func typedRune(msg tea.KeyMsg) (rune, bool) {
	if msg.Type != tea.KeyRunes || msg.Alt || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if !unicode.IsPrint(r) || unicode.IsSpace(r) {
		return 0, false
	}
	return unicode.ToLower(r), true
}
