package core

// IsGameOver reports whether no further move can change the board.
// A board with any empty cell always has a move; a full board has one only
// if some pair of orthogonal neighbours holds equal values.
func IsGameOver(store *TileStore) bool {
	grid := store.Grid()
	if store.Count() < grid.Cells() {
		return false
	}

	for _, t := range store.All() {
		for _, n := range grid.Neighbors(t.Pos) {
			if v, ok := store.Get(n); ok && v == t.Value {
				return false
			}
		}
	}
	return true
}
