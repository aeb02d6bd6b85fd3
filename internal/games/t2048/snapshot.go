package t2048

import "github.com/vovakirdan/tilemerge/internal/games/t2048/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing,
// replay output and history records.
type Snapshot struct {
	Size      int
	Moves     int
	Score     int
	Best      int
	Board     [][]int // Top row first, 0 = empty
	MaxTile   int
	State     GameStateType
	EndReason core.EndReason
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.engine.State() == core.StateGameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	score := g.engine.Score()
	return Snapshot{
		Size:      g.size,
		Moves:     g.engine.Moves(),
		Score:     score.Current,
		Best:      score.Best,
		Board:     g.engine.Board(),
		MaxTile:   g.engine.MaxTile(),
		State:     state,
		EndReason: g.engine.EndReason(),
	}
}
