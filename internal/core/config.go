package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW     int   // Screen width in characters
	ScreenH     int   // Screen height in characters
	Seed        int64 // RNG seed for deterministic gameplay
	BoardSize   int   // Board dimension, fixed for the whole game
	SpawnOnNoop bool  // Spawn a tile even when a move changes nothing
	Best        int   // Best score carried over from earlier games
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		Seed:      0, // 0 means use current time in platform layer
		BoardSize: 4,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Best     int  // Best score in this process
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each input.
type StepResult struct {
	State GameState
	Moved bool // Whether the board changed this step
}
