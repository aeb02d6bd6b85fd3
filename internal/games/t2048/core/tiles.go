package core

import "fmt"

// Tile is a numbered tile occupying one cell.
type Tile struct {
	Pos   Pos
	Value int
}

// TileStore is the authoritative set of tiles on a board.
// No two tiles share a position and every position lies within the grid.
type TileStore struct {
	grid  Grid
	tiles map[Pos]int
}

// NewTileStore creates an empty store for the given grid.
func NewTileStore(grid Grid) *TileStore {
	return &TileStore{
		grid:  grid,
		tiles: make(map[Pos]int, grid.Cells()),
	}
}

// Grid returns the grid this store is bound to.
func (s *TileStore) Grid() Grid {
	return s.grid
}

// Insert places a new tile. Inserting onto an occupied cell, outside the
// grid, or with a non-positive value is a contract violation and panics.
func (s *TileStore) Insert(p Pos, value int) {
	s.grid.mustContain(p)
	if value <= 0 {
		panic(fmt.Sprintf("t2048/core: invalid tile value %d at %v", value, p))
	}
	if _, ok := s.tiles[p]; ok {
		panic(fmt.Sprintf("t2048/core: cell %v already occupied", p))
	}
	s.tiles[p] = value
}

// Remove deletes the tile at p, if any.
func (s *TileStore) Remove(p Pos) {
	delete(s.tiles, p)
}

// Get returns the value of the tile at p.
func (s *TileStore) Get(p Pos) (int, bool) {
	v, ok := s.tiles[p]
	return v, ok
}

// IsOccupied reports whether a tile sits at p.
func (s *TileStore) IsOccupied(p Pos) bool {
	_, ok := s.tiles[p]
	return ok
}

// Count returns the number of tiles.
func (s *TileStore) Count() int {
	return len(s.tiles)
}

// Clear removes every tile.
func (s *TileStore) Clear() {
	clear(s.tiles)
}

// All returns every tile in row-major order, bottom row first.
func (s *TileStore) All() []Tile {
	out := make([]Tile, 0, len(s.tiles))
	for i := range s.grid.Cells() {
		p := s.grid.PosAt(i)
		if v, ok := s.tiles[p]; ok {
			out = append(out, Tile{Pos: p, Value: v})
		}
	}
	return out
}

// EmptyCells returns every unoccupied position in row-major order.
func (s *TileStore) EmptyCells() []Pos {
	out := make([]Pos, 0, s.grid.Cells()-len(s.tiles))
	for i := range s.grid.Cells() {
		p := s.grid.PosAt(i)
		if _, ok := s.tiles[p]; !ok {
			out = append(out, p)
		}
	}
	return out
}

// Sum returns the total of all tile values.
func (s *TileStore) Sum() int {
	total := 0
	for _, v := range s.tiles {
		total += v
	}
	return total
}

// MaxValue returns the highest tile value, or 0 for an empty board.
func (s *TileStore) MaxValue() int {
	maxVal := 0
	for _, v := range s.tiles {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// Clone returns an independent copy of the store.
func (s *TileStore) Clone() *TileStore {
	c := NewTileStore(s.grid)
	for p, v := range s.tiles {
		c.tiles[p] = v
	}
	return c
}

// Equal reports whether both stores hold the same tiles on the same grid.
func (s *TileStore) Equal(other *TileStore) bool {
	if s.grid != other.grid || len(s.tiles) != len(other.tiles) {
		return false
	}
	for p, v := range s.tiles {
		if ov, ok := other.tiles[p]; !ok || ov != v {
			return false
		}
	}
	return true
}

// replace swaps the contents for the given tiles, enforcing the invariant.
func (s *TileStore) replace(tiles []Tile) {
	s.Clear()
	for _, t := range tiles {
		s.Insert(t.Pos, t.Value)
	}
}
