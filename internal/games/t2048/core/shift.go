package core

import "slices"

// MoveOutcome describes the effect of one move.
type MoveOutcome struct {
	Moved  bool  // Whether any tile changed position or value
	Merges []int // Resulting value of each merge, in processing order

	// Spawned is the tile added after the move, nil if none.
	// Filled in by Engine; Shift never spawns.
	Spawned *Tile
}

// ScoreGained returns the sum of all merge results.
func (o MoveOutcome) ScoreGained() int {
	total := 0
	for _, v := range o.Merges {
		total += v
	}
	return total
}

// Shift slides every tile toward the wall named by dir, merging equal
// neighbours within each line. A tile takes part in at most one merge per
// move: three equal tiles in a line yield one doubled tile and one original.
// Invalid directions leave the store untouched.
func Shift(store *TileStore, dir Direction) MoveOutcome {
	if !dir.Valid() {
		return MoveOutcome{}
	}

	size := store.grid.Size()
	before := store.Clone()

	sorted := store.All()
	slices.SortStableFunc(sorted, func(a, b Tile) int {
		switch {
		case dir.less(a, b):
			return -1
		case dir.less(b, a):
			return 1
		}
		return 0
	})

	placed := make([]Tile, 0, len(sorted))
	var merges []int
	column := 0

	for i := 0; i < len(sorted); {
		cur := sorted[i]
		line := dir.line(cur.Pos)
		value := cur.Value
		next := i + 1

		if next < len(sorted) && dir.line(sorted[next].Pos) == line && sorted[next].Value == value {
			// Consume the peeked tile; it is never compared again this move.
			value += sorted[next].Value
			merges = append(merges, value)
			next++
		}

		placed = append(placed, Tile{Pos: dir.place(column, line, size), Value: value})

		if next < len(sorted) && dir.line(sorted[next].Pos) == line {
			column++
		} else {
			column = 0
		}
		i = next
	}

	store.replace(placed)

	return MoveOutcome{
		Moved:  !store.Equal(before),
		Merges: merges,
	}
}
