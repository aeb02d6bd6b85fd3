package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridIndexRoundTrip(t *testing.T) {
	g := NewGrid(4)
	require.Equal(t, 16, g.Cells())

	for i := range g.Cells() {
		p := g.PosAt(i)
		assert.True(t, g.Contains(p))
		assert.Equal(t, i, g.Index(p))
	}

	assert.Equal(t, P(0, 0), g.PosAt(0))
	assert.Equal(t, P(3, 0), g.PosAt(3))
	assert.Equal(t, P(0, 1), g.PosAt(4))
}

func TestGridContains(t *testing.T) {
	g := NewGrid(3)

	assert.True(t, g.Contains(P(0, 0)))
	assert.True(t, g.Contains(P(2, 2)))
	assert.False(t, g.Contains(P(-1, 0)))
	assert.False(t, g.Contains(P(0, 3)))
	assert.False(t, g.Contains(P(3, 1)))
}

func TestGridNeighbors(t *testing.T) {
	g := NewGrid(3)

	assert.ElementsMatch(t, []Pos{P(1, 0), P(0, 1)}, g.Neighbors(P(0, 0)))
	assert.ElementsMatch(t, []Pos{P(0, 1), P(2, 1), P(1, 0), P(1, 2)}, g.Neighbors(P(1, 1)))
	assert.Len(t, g.Neighbors(P(2, 1)), 3)
}

func TestGridInvalid(t *testing.T) {
	assert.Panics(t, func() { NewGrid(0) })
	assert.Panics(t, func() { NewGrid(2).Index(P(2, 0)) })
	assert.Panics(t, func() { NewGrid(2).PosAt(4) })
}

func TestTileStoreInsertRemove(t *testing.T) {
	s := NewTileStore(NewGrid(4))

	s.Insert(P(1, 2), 2)
	s.Insert(P(3, 3), 8)

	require.Equal(t, 2, s.Count())
	assert.True(t, s.IsOccupied(P(1, 2)))
	assert.False(t, s.IsOccupied(P(0, 0)))

	v, ok := s.Get(P(3, 3))
	require.True(t, ok)
	assert.Equal(t, 8, v)

	s.Remove(P(1, 2))
	assert.Equal(t, 1, s.Count())
	assert.False(t, s.IsOccupied(P(1, 2)))

	// Removing an empty cell is a no-op.
	s.Remove(P(0, 0))
	assert.Equal(t, 1, s.Count())
}

func TestTileStoreContractViolations(t *testing.T) {
	s := NewTileStore(NewGrid(2))
	s.Insert(P(0, 0), 2)

	assert.Panics(t, func() { s.Insert(P(0, 0), 4) }, "occupied cell")
	assert.Panics(t, func() { s.Insert(P(2, 0), 2) }, "outside grid")
	assert.Panics(t, func() { s.Insert(P(1, 1), 0) }, "non-positive value")
	assert.Equal(t, 1, s.Count())
}

func TestTileStoreOrderingAndAggregates(t *testing.T) {
	s := storeFromRows(t, [][]int{
		{0, 4, 0},
		{0, 0, 0},
		{2, 0, 16},
	})

	assert.Equal(t, []Tile{
		{Pos: P(0, 0), Value: 2},
		{Pos: P(2, 0), Value: 16},
		{Pos: P(1, 2), Value: 4},
	}, s.All())

	empty := s.EmptyCells()
	assert.Len(t, empty, 6)
	assert.Equal(t, P(1, 0), empty[0])

	assert.Equal(t, 22, s.Sum())
	assert.Equal(t, 16, s.MaxValue())
}

func TestTileStoreCloneIsIndependent(t *testing.T) {
	s := storeFromTiles(3, map[Pos]int{P(0, 0): 2})
	c := s.Clone()

	require.True(t, s.Equal(c))

	c.Insert(P(1, 1), 4)
	assert.False(t, s.Equal(c))
	assert.Equal(t, 1, s.Count())

	s.Clear()
	assert.Equal(t, 0, s.Count())
	assert.Equal(t, 2, c.Count())
}
