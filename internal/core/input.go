package core

// Action represents a semantic control action, abstracted from physical key presses.
// Typed characters are not actions; they travel separately on the InputFrame.
type Action int

const (
	ActionNone    Action = iota
	ActionRestart        // start a new session after game over
	ActionQuit           // exit the program
	ActionPause          // pause/unpause the simulation
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input for a single simulation tick: the control
// actions triggered during the frame and at most one typed character.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	typed    rune
	hasTyped bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetTyped records the character typed this frame, replacing any previous one.
func (f *InputFrame) SetTyped(r rune) {
	f.typed = r
	f.hasTyped = true
}

// Typed returns the character typed this frame, if any.
func (f InputFrame) Typed() (rune, bool) {
	return f.typed, f.hasTyped
}

// Clear resets all actions and the typed character for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.typed = 0
	f.hasTyped = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.typed = f.typed
	clone.hasTyped = f.hasTyped
	return clone
}
