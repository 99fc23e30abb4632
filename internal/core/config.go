package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
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

// StepMs returns the duration of one simulation tick in whole milliseconds,
// never less than 1. At the default 60 ticks per second this is 16 ms, a
// power of two, which the collision sweep resolves exactly.
func (c RuntimeConfig) StepMs() int {
	if c.TickRate <= 0 {
		return 1000 / DefaultConfig().TickRate
	}
	ms := 1000 / c.TickRate
	if ms < 1 {
		return 1
	}
	return ms
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives; games without lives leave this 0
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused

	// Versus games fill these so the platform can record the match;
	// solo games leave them 0.
	OpponentScore int
	Winner        int // 0=none, 1=player, 2=opponent
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState

	// Events lists what happened during the tick, in occurrence order.
	// The platform maps them to sounds and screen effects.
	Events []Event
}
