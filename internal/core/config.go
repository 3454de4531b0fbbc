package core

// RuntimeConfig contains settings the platform passes to a run at start.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic spawning
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

// GameState is the platform-facing summary of a run.
type GameState struct {
	Score    int  // Current score
	Wave     int  // Current wave (1-based)
	GameOver bool // Whether the run has ended (victory or defeat)
	Victory  bool // Whether the run ended with every wave cleared
	Paused   bool // Whether the run is paused
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
}
