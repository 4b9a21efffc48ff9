package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	StageID   string // Stage on the board, empty if none loaded
	StageName string
	Moves     int    // Moves committed on the current stage
	Ticks     uint64 // Ticks spent on the current stage
	Solved    bool   // Current stage matches its goal
	Finished  bool   // No stages left to play
	Paused    bool   // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState

	// Cleared is set only on the tick a stage became solved.
	// The platform records the solve when it sees it.
	Cleared bool
}
