package core

import "math/rand"

// State is the game lifecycle state.
type State string

const (
	StatePlaying  State = "playing"
	StateGameOver State = "game_over"
)

// EndReason records why a game entered StateGameOver.
type EndReason string

const (
	EndNone    EndReason = ""
	EndNoMoves EndReason = "no_moves" // Detected: full board, no equal neighbours
	EndManual  EndReason = "ended"    // External "end game" trigger
)

// Option configures an Engine.
type Option func(*Engine)

// WithSpawnOnNoop makes every valid direction spawn a tile, even when the
// board did not change. Off by default.
func WithSpawnOnNoop(enabled bool) Option {
	return func(e *Engine) {
		e.spawnOnNoop = enabled
	}
}

// WithBest carries a best score over from an earlier engine, e.g. when the
// player switches board size within one process.
func WithBest(best int) Option {
	return func(e *Engine) {
		e.score.Best = max(e.score.Best, best)
	}
}

// Engine is the game state machine. It owns the board, score and RNG and
// processes one move at a time. Not safe for concurrent use.
type Engine struct {
	grid    Grid
	tiles   *TileStore
	spawner *Spawner
	score   Score
	state   State
	reason  EndReason
	moves   int

	spawnOnNoop bool
}

// NewEngine creates a game on a size x size board and seeds the starting tiles.
func NewEngine(size int, rng *rand.Rand, opts ...Option) *Engine {
	grid := NewGrid(size)
	e := &Engine{
		grid:    grid,
		tiles:   NewTileStore(grid),
		spawner: NewSpawner(rng),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.Reset()
	return e
}

// Reset starts a new game: clears the board, zeroes the current score,
// seeds InitialTiles tiles and enters StatePlaying. Best is kept.
func (e *Engine) Reset() {
	e.tiles.Clear()
	e.score = e.score.Reset()
	e.state = StatePlaying
	e.reason = EndNone
	e.moves = 0

	for range InitialTiles {
		e.spawner.Spawn(e.tiles)
	}
}

// Load replaces the board with the given tiles and re-evaluates game over.
// Score and move count are left alone. Panics on overlapping or
// out-of-grid tiles.
func (e *Engine) Load(tiles []Tile) {
	e.tiles.replace(tiles)
	e.state = StatePlaying
	e.reason = EndNone
	if IsGameOver(e.tiles) {
		e.state = StateGameOver
		e.reason = EndNoMoves
	}
}

// ApplyMove plays one move. Invalid directions and moves after game over are
// ignored and return an empty outcome.
func (e *Engine) ApplyMove(dir Direction) MoveOutcome {
	if !dir.Valid() || e.state != StatePlaying {
		return MoveOutcome{}
	}

	out := Shift(e.tiles, dir)
	e.score = e.score.ApplyMerges(out.Merges)

	if out.Moved {
		e.moves++
	}

	if out.Moved || e.spawnOnNoop {
		if t, ok := e.spawner.Spawn(e.tiles); ok {
			out.Spawned = &t
		}
	}

	if IsGameOver(e.tiles) {
		e.state = StateGameOver
		e.reason = EndNoMoves
	}

	return out
}

// EndGame forces StateGameOver. No-op if the game is already over.
func (e *Engine) EndGame() {
	if e.state != StatePlaying {
		return
	}
	e.state = StateGameOver
	e.reason = EndManual
}

// Size returns the board dimension.
func (e *Engine) Size() int {
	return e.grid.Size()
}

// Tiles returns a copy of every tile in row-major order, bottom row first.
func (e *Engine) Tiles() []Tile {
	return e.tiles.All()
}

// Cell returns the value at (x, y), or 0 if the cell is empty.
func (e *Engine) Cell(x, y int) int {
	v, _ := e.tiles.Get(Pos{X: x, Y: y})
	return v
}

// Score returns the current and best score.
func (e *Engine) Score() Score {
	return e.score
}

// State returns the lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// EndReason returns why the game ended, or EndNone while playing.
func (e *Engine) EndReason() EndReason {
	return e.reason
}

// Moves returns the number of board-changing moves in the current game.
func (e *Engine) Moves() int {
	return e.moves
}

// MaxTile returns the highest tile value on the board.
func (e *Engine) MaxTile() int {
	return e.tiles.MaxValue()
}

// Board returns the board as a matrix indexed [row][x], top row first.
// Empty cells are 0.
func (e *Engine) Board() [][]int {
	size := e.grid.Size()
	rows := make([][]int, size)
	for r := range size {
		rows[r] = make([]int, size)
		y := size - 1 - r
		for x := range size {
			rows[r][x] = e.Cell(x, y)
		}
	}
	return rows
}
