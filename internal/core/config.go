package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second (default 60)
	Variant  string // Registered game variant to play
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Variant:  "bricks",
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score  int // Current score
	Best   int // Highest score reached since the game was created
	Misses int // Number of times the ball passed the bottom edge
	Tick   int // Simulation ticks executed
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
