package t2048

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	platformcore "github.com/vovakirdan/tilemerge/internal/core"
	"github.com/vovakirdan/tilemerge/internal/games/t2048/core"
)

func newTestGame(t *testing.T, size int, seed int64) *Game {
	t.Helper()
	g := New(size)
	cfg := platformcore.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)
	return g
}

func frame(actions ...platformcore.Action) platformcore.InputFrame {
	f := platformcore.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func countTiles(board [][]int) int {
	n := 0
	for _, row := range board {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

func TestNewSizeFallback(t *testing.T) {
	assert.Equal(t, DefaultSize, New(1).Size())
	assert.Equal(t, DefaultSize, New(9).Size())
	assert.Equal(t, 5, New(5).Size())
	assert.Equal(t, MinSize, New(MinSize).Size())
}

func TestResetStartsWithTwoTiles(t *testing.T) {
	g := newTestGame(t, 4, 42)

	snap := g.Snapshot()
	assert.Equal(t, 4, snap.Size)
	assert.Equal(t, StatePlaying, snap.State)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 0, snap.Moves)
	assert.Equal(t, 2, countTiles(snap.Board))
}

func TestStepMergesAndSpawns(t *testing.T) {
	g := newTestGame(t, 4, 1)
	g.Load([]core.Tile{{Pos: core.P(2, 0), Value: 2}, {Pos: core.P(3, 0), Value: 2}})

	res := g.Step(frame(platformcore.ActionLeft))

	require.True(t, res.Moved)
	assert.Equal(t, 4, res.State.Score)
	assert.Equal(t, []int{4}, g.LastOutcome().Merges)
	require.NotNil(t, g.LastOutcome().Spawned)

	snap := g.Snapshot()
	assert.Equal(t, 4, snap.Board[3][0])
	assert.Equal(t, 1, snap.Moves)
	assert.Equal(t, 2, countTiles(snap.Board))
}

func TestStepNoopDoesNotSpawn(t *testing.T) {
	g := newTestGame(t, 4, 1)
	g.Load([]core.Tile{{Pos: core.P(0, 0), Value: 2}})

	res := g.Step(frame(platformcore.ActionLeft))

	assert.False(t, res.Moved)
	assert.Nil(t, g.LastOutcome().Spawned)
	assert.Equal(t, 1, countTiles(g.Snapshot().Board))
	assert.Equal(t, 0, g.Snapshot().Moves)
}

func TestStepPause(t *testing.T) {
	g := newTestGame(t, 4, 1)
	g.Load([]core.Tile{{Pos: core.P(3, 0), Value: 2}})

	res := g.Step(frame(platformcore.ActionPause))
	assert.True(t, res.State.Paused)
	assert.Equal(t, StatePaused, g.Snapshot().State)

	res = g.Step(frame(platformcore.ActionLeft))
	assert.False(t, res.Moved)
	assert.Equal(t, 2, g.Snapshot().Board[3][3])

	res = g.Step(frame(platformcore.ActionPause))
	assert.False(t, res.State.Paused)

	res = g.Step(frame(platformcore.ActionLeft))
	assert.True(t, res.Moved)
}

func TestStepRestartKeepsBest(t *testing.T) {
	g := newTestGame(t, 4, 7)
	g.Load([]core.Tile{{Pos: core.P(0, 0), Value: 8}, {Pos: core.P(1, 0), Value: 8}})
	g.Step(frame(platformcore.ActionLeft))
	require.Equal(t, 16, g.State().Score)

	g.Step(frame(platformcore.ActionRestart))

	snap := g.Snapshot()
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 16, snap.Best)
	assert.Equal(t, 0, snap.Moves)
	assert.Equal(t, 2, countTiles(snap.Board))

	// Reset through the platform keeps the engine and its best score too.
	g.Reset(platformcore.DefaultConfig())
	assert.Equal(t, 16, g.Snapshot().Best)
}

func TestStepEndGame(t *testing.T) {
	g := newTestGame(t, 4, 3)

	res := g.Step(frame(platformcore.ActionEnd))

	assert.True(t, res.State.GameOver)
	snap := g.Snapshot()
	assert.Equal(t, StateGameOver, snap.State)
	assert.Equal(t, core.EndManual, snap.EndReason)

	// Moves are ignored after the game ends.
	before := snap.Board
	g.Step(frame(platformcore.ActionLeft))
	g.Step(frame(platformcore.ActionUp))
	assert.Equal(t, before, g.Snapshot().Board)
}

func TestLoadDetectsGameOver(t *testing.T) {
	g := newTestGame(t, 2, 3)
	g.Load([]core.Tile{
		{Pos: core.P(0, 0), Value: 2}, {Pos: core.P(1, 0), Value: 4},
		{Pos: core.P(0, 1), Value: 4}, {Pos: core.P(1, 1), Value: 2},
	})

	snap := g.Snapshot()
	assert.Equal(t, StateGameOver, snap.State)
	assert.Equal(t, core.EndNoMoves, snap.EndReason)
	assert.Equal(t, [][]int{{4, 2}, {2, 4}}, snap.Board)
}

func TestDeterministicPlay(t *testing.T) {
	moves := []platformcore.Action{
		platformcore.ActionLeft, platformcore.ActionUp, platformcore.ActionRight,
		platformcore.ActionDown, platformcore.ActionLeft, platformcore.ActionDown,
	}

	play := func() []Snapshot {
		g := newTestGame(t, 4, 12345)
		snaps := []Snapshot{g.Snapshot()}
		for range 20 {
			for _, m := range moves {
				g.Step(frame(m))
				snaps = append(snaps, g.Snapshot())
			}
		}
		return snaps
	}

	assert.Equal(t, play(), play())
}

func TestTooSmallScreen(t *testing.T) {
	g := New(4)
	cfg := platformcore.DefaultConfig()
	cfg.ScreenW = 10
	cfg.ScreenH = 5
	g.Reset(cfg)

	assert.Equal(t, StatePausedSmall, g.Snapshot().State)
	before := g.Snapshot().Board

	res := g.Step(frame(platformcore.ActionLeft))
	assert.False(t, res.Moved)
	assert.True(t, res.State.Paused)
	assert.Equal(t, before, g.Snapshot().Board)

	screen := platformcore.NewScreen(10, 5)
	g.Render(screen)
	assert.Contains(t, screen.String(), "too")

	g.Resize(80, 24)
	assert.Equal(t, StatePlaying, g.Snapshot().State)
}

func TestRenderBoard(t *testing.T) {
	g := newTestGame(t, 4, 1)
	g.Load([]core.Tile{
		{Pos: core.P(0, 3), Value: 2048},
		{Pos: core.P(3, 0), Value: 8},
	})

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	assert.Contains(t, screen.Row(0), "2048  4x4")
	assert.Contains(t, screen.Row(1), "Score: 0")
	assert.Contains(t, screen.Row(1), "Best: 0")
	assert.Contains(t, screen.Row(2), "Max: 2048")

	// Top logical row is drawn first, just below the board's top border.
	top := hudHeight + 2
	bottom := hudHeight + 1 + 3*cellHeight + 1
	assert.Contains(t, screen.Row(top), "2048")
	assert.Contains(t, screen.Row(bottom), "8")
	assert.NotContains(t, screen.Row(bottom), "2048")

	assert.Equal(t, tileColor(2048), cellColorOf(screen, top, '2'))
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := newTestGame(t, 4, 1)
	g.Step(frame(platformcore.ActionEnd))

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	assert.Contains(t, screen.String(), "GAME ENDED")
	assert.Contains(t, screen.String(), "Press R for a new game")
}

func TestCellsWidenForLargeTiles(t *testing.T) {
	g := newTestGame(t, 4, 1)
	narrow := g.layout().cellWidth

	g.Load([]core.Tile{{Pos: core.P(0, 0), Value: 131072}})
	wide := g.layout().cellWidth

	assert.Greater(t, wide, narrow)
	assert.True(t, strings.Contains(renderToString(g), "131072"))
}

func renderToString(g *Game) string {
	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	return screen.String()
}

// cellColorOf returns the color of the first occurrence of r on row y.
func cellColorOf(s *platformcore.Screen, y int, r rune) platformcore.Color {
	for x := range s.Width() {
		if c := s.GetCell(x, y); c.Rune == r {
			return c.Color
		}
	}
	return platformcore.ColorDefault
}

func TestRenderControlsFooter(t *testing.T) {
	g := newTestGame(t, 4, 1)

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	footer := hudHeight + 1 + g.layout().boardH + 1
	assert.Contains(t, screen.Row(footer), "R: New game")
	assert.Equal(t, platformcore.ColorGray, cellColorOf(screen, footer, 'R'))
}

func TestResetSeedsBestFromConfig(t *testing.T) {
	g := New(4)
	cfg := platformcore.DefaultConfig()
	cfg.Seed = 5
	cfg.Best = 512
	g.Reset(cfg)

	assert.Equal(t, 512, g.State().Best)
	assert.Equal(t, 0, g.State().Score)
}
