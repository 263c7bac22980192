package model

import (
	"fmt"
	"math"
)

const (
	// MinAxis is the lowest coordinate reserved as an out-of-range sentinel
	MinAxis int64 = math.MinInt64 + 1
	// MaxAxis is the highest coordinate reserved as an out-of-range sentinel
	MaxAxis int64 = math.MaxInt64 - 1
)

// Position is a point on the board
type Position struct {
	X int64
	Y int64
}

// Cell is a single alive unit on the board, identified by its position
type Cell = Position

// IsAxisOutOfRange reports whether a single coordinate has hit a sentinel.
// Values past the sentinels (the extreme int64s) count as out of range too.
func IsAxisOutOfRange(axis int64) bool {
	return axis <= MinAxis || axis >= MaxAxis
}

// IsOutOfRange reports whether either axis of p has hit a sentinel
func (p Position) IsOutOfRange() bool {
	return IsAxisOutOfRange(p.X) || IsAxisOutOfRange(p.Y)
}

// Neighbors returns the Moore neighborhood of p.
// Callers must check IsOutOfRange first, the arithmetic is unchecked.
func (p Position) Neighbors() [8]Position {
	return [8]Position{
		{p.X - 1, p.Y + 1}, {p.X, p.Y + 1}, {p.X + 1, p.Y + 1},
		{p.X - 1, p.Y}, {p.X + 1, p.Y},
		{p.X - 1, p.Y - 1}, {p.X, p.Y - 1}, {p.X + 1, p.Y - 1},
	}
}

// Add returns p translated by d
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
