// Package core contains the pure rule engine for the tile merge puzzle:
// board geometry, the tile store, the shift/merge algorithm, spawning,
// scoring and game-over detection. It has no dependency on the terminal
// platform so the rules can be tested in isolation.
package core

import "fmt"

// Pos is a cell position on the board.
// X grows to the right, Y grows upward (row Size-1 is the top edge).
type Pos struct {
	X int
	Y int
}

// P is a convenience constructor for Pos.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid describes a square board. The size is fixed for the lifetime of a game.
type Grid struct {
	size int
}

// NewGrid creates a grid of the given size.
// Panics if size is not positive.
func NewGrid(size int) Grid {
	if size < 1 {
		panic(fmt.Sprintf("t2048/core: invalid grid size %d", size))
	}
	return Grid{size: size}
}

// Size returns the board dimension.
func (g Grid) Size() int {
	return g.size
}

// Cells returns the total number of cells.
func (g Grid) Cells() int {
	return g.size * g.size
}

// Contains reports whether p lies within the grid.
func (g Grid) Contains(p Pos) bool {
	return p.X >= 0 && p.X < g.size && p.Y >= 0 && p.Y < g.size
}

// Index maps a position to its linear address (row-major, bottom row first).
// Panics if p is outside the grid.
func (g Grid) Index(p Pos) int {
	g.mustContain(p)
	return p.Y*g.size + p.X
}

// PosAt is the inverse of Index.
func (g Grid) PosAt(index int) Pos {
	if index < 0 || index >= g.Cells() {
		panic(fmt.Sprintf("t2048/core: index %d outside %dx%d grid", index, g.size, g.size))
	}
	return Pos{X: index % g.size, Y: index / g.size}
}

// Neighbors returns the in-bounds orthogonal neighbours of p.
func (g Grid) Neighbors(p Pos) []Pos {
	candidates := [4]Pos{
		{X: p.X - 1, Y: p.Y},
		{X: p.X + 1, Y: p.Y},
		{X: p.X, Y: p.Y - 1},
		{X: p.X, Y: p.Y + 1},
	}
	out := make([]Pos, 0, len(candidates))
	for _, c := range candidates {
		if g.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

func (g Grid) mustContain(p Pos) {
	if !g.Contains(p) {
		panic(fmt.Sprintf("t2048/core: position %v outside %dx%d grid", p, g.size, g.size))
	}
}
