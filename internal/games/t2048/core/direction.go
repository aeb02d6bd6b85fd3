package core

import "strings"

// Direction represents a move direction.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

// Directions lists every valid move direction.
var Directions = []Direction{DirLeft, DirRight, DirUp, DirDown}

// Valid reports whether d is one of the four move directions.
func (d Direction) Valid() bool {
	return d >= DirLeft && d <= DirDown
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// ParseDirection maps a name, its first letter or an arrow glyph to a
// direction.
// Unrecognized input reports ok=false and should be ignored by callers.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l", "←":
		return DirLeft, true
	case "right", "r", "→":
		return DirRight, true
	case "up", "u", "↑":
		return DirUp, true
	case "down", "d", "↓":
		return DirDown, true
	}
	return DirNone, false
}

// less orders tiles so the tile nearest the target wall comes first within
// its line, with lines grouped together.
func (d Direction) less(a, b Tile) bool {
	switch d {
	case DirLeft:
		if a.Pos.Y != b.Pos.Y {
			return a.Pos.Y < b.Pos.Y
		}
		return a.Pos.X < b.Pos.X
	case DirRight:
		if a.Pos.Y != b.Pos.Y {
			return a.Pos.Y > b.Pos.Y
		}
		return a.Pos.X > b.Pos.X
	case DirUp:
		if a.Pos.X != b.Pos.X {
			return a.Pos.X > b.Pos.X
		}
		return a.Pos.Y > b.Pos.Y
	case DirDown:
		if a.Pos.X != b.Pos.X {
			return a.Pos.X < b.Pos.X
		}
		return a.Pos.Y < b.Pos.Y
	}
	return false
}

// line returns the coordinate shared by tiles that may merge with each other.
func (d Direction) line(p Pos) int {
	if d == DirLeft || d == DirRight {
		return p.Y
	}
	return p.X
}

// place maps compaction index i (0 = against the wall) within a line to a cell.
func (d Direction) place(i, line, size int) Pos {
	switch d {
	case DirLeft:
		return Pos{X: i, Y: line}
	case DirRight:
		return Pos{X: size - 1 - i, Y: line}
	case DirUp:
		return Pos{X: line, Y: size - 1 - i}
	default:
		return Pos{X: line, Y: i}
	}
}
