package core

import "math/rand"

// SpawnValue is the value of every newly spawned tile.
const SpawnValue = 2

// InitialTiles is the number of tiles seeded at the start of a game.
const InitialTiles = 2

// Spawner places new tiles on uniformly random empty cells.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner drawing from rng.
// The same seed and move sequence reproduce the same game.
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng}
}

// Spawn inserts a tile of SpawnValue on a random empty cell.
// Returns ok=false without touching the store if the board is full.
func (s *Spawner) Spawn(store *TileStore) (Tile, bool) {
	empty := store.EmptyCells()
	if len(empty) == 0 {
		return Tile{}, false
	}

	p := empty[s.rng.Intn(len(empty))]
	store.Insert(p, SpawnValue)
	return Tile{Pos: p, Value: SpawnValue}, true
}
