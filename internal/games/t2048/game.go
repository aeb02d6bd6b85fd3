// Package t2048 hosts the tile merge puzzle on the terminal platform.
// All rules live in the core subpackage; this package maps platform input
// to moves and draws the board.
package t2048

import (
	"math/rand"

	platformcore "github.com/vovakirdan/tilemerge/internal/core"
	"github.com/vovakirdan/tilemerge/internal/games/t2048/core"
)

// DefaultSize is the classic board dimension.
const DefaultSize = 4

// Size limits accepted by the platform.
const (
	MinSize = 2
	MaxSize = 8
)

// Game adapts the rule engine to the platform's step/render contract.
type Game struct {
	size   int
	engine *core.Engine

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
	last     core.MoveOutcome
}

// New creates a game on a size x size board. Sizes outside
// [MinSize, MaxSize] fall back to DefaultSize.
func New(size int) *Game {
	if size < MinSize || size > MaxSize {
		size = DefaultSize
	}
	return &Game{size: size}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Size returns the board dimension.
func (g *Game) Size() int {
	return g.size
}

// Reset prepares the game for play. The first call builds the engine from
// cfg.Seed; later calls start a new game on the same engine so the best
// score survives.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.last = core.MoveOutcome{}

	if g.engine == nil {
		rng := rand.New(rand.NewSource(cfg.Seed))
		g.engine = core.NewEngine(g.size, rng,
			core.WithSpawnOnNoop(cfg.SpawnOnNoop),
			core.WithBest(cfg.Best),
		)
	} else {
		g.engine.Reset()
	}

	g.checkScreenSize()
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board and HUD.
func (g *Game) checkScreenSize() {
	l := g.layout()
	g.tooSmall = g.screenW < l.boardW+2 || g.screenH < l.boardH+hudHeight+2
}

// Step applies one frame of input. At most one move is processed per frame.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.last = core.MoveOutcome{}

	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) && g.engine.State() == core.StatePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionRestart) {
		g.engine.Reset()
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionEnd) {
		g.engine.EndGame()
		return platformcore.StepResult{State: g.State()}
	}

	if dir := directionFor(in); dir.Valid() {
		g.last = g.engine.ApplyMove(dir)
		// A new largest tile can widen the cells.
		g.checkScreenSize()
	}

	return platformcore.StepResult{State: g.State(), Moved: g.last.Moved}
}

// Load replaces the board with the given tiles. Used by replays and tests.
func (g *Game) Load(tiles []core.Tile) {
	g.engine.Load(tiles)
	g.checkScreenSize()
}

// directionFor picks the move requested by the frame, if any.
func directionFor(in platformcore.InputFrame) core.Direction {
	switch {
	case in.Has(platformcore.ActionUp):
		return core.DirUp
	case in.Has(platformcore.ActionDown):
		return core.DirDown
	case in.Has(platformcore.ActionLeft):
		return core.DirLeft
	case in.Has(platformcore.ActionRight):
		return core.DirRight
	}
	return core.DirNone
}

// LastOutcome returns the outcome of the most recent step.
func (g *Game) LastOutcome() core.MoveOutcome {
	return g.last
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	score := g.engine.Score()
	return platformcore.GameState{
		Score:    score.Current,
		Best:     score.Best,
		GameOver: g.engine.State() == core.StateGameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | R: New game | E: End | P: Pause | Q: Quit"
}
