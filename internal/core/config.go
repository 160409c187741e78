package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this for deterministic simulation; frontends use it for pacing.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal frontend only)
	ScreenH  int   // Screen height in characters (terminal frontend only)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// Game is the interface a frontend drives. The game owns all simulation state;
// the platform handles input mapping, timing, and presenting render commands.
type Game interface {
	// ID returns a stable identifier used for logging.
	ID() string

	// Title returns a human-readable name for window titles.
	Title() string

	// Reset initializes or restarts the game from the given runtime config.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render issues draw commands for the current state.
	Render(dst Renderer)

	// State returns the current game state.
	State() GameState

	// World returns the playfield size in world units.
	World() Vec2
}
