package core

import "testing"

// storeFromRows builds a store from a matrix written top row first, the way
// boards read on screen. Zero means empty.
func storeFromRows(t *testing.T, rows [][]int) *TileStore {
	t.Helper()
	size := len(rows)
	s := NewTileStore(NewGrid(size))
	for r, row := range rows {
		if len(row) != size {
			t.Fatalf("row %d has %d cells, want %d", r, len(row), size)
		}
		for x, v := range row {
			if v != 0 {
				s.Insert(P(x, size-1-r), v)
			}
		}
	}
	return s
}

// rowsFromStore is the inverse of storeFromRows.
func rowsFromStore(s *TileStore) [][]int {
	size := s.Grid().Size()
	rows := make([][]int, size)
	for r := range size {
		rows[r] = make([]int, size)
		for x := range size {
			v, _ := s.Get(P(x, size-1-r))
			rows[r][x] = v
		}
	}
	return rows
}

// storeFromTiles builds a store of the given size from explicit tiles.
func storeFromTiles(size int, tiles map[Pos]int) *TileStore {
	s := NewTileStore(NewGrid(size))
	for p, v := range tiles {
		s.Insert(p, v)
	}
	return s
}

// tileMap flattens a store into a position -> value map for comparisons.
func tileMap(s *TileStore) map[Pos]int {
	out := make(map[Pos]int, s.Count())
	for _, t := range s.All() {
		out[t.Pos] = t.Value
	}
	return out
}
