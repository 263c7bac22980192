package model

import (
	"slices"
	"strings"
)

// Citizens is the set of alive cells. Every position not in the set is dead.
type Citizens map[Position]struct{}

// NewCitizens builds a set from the given cells, dropping duplicates
func NewCitizens(cells ...Cell) Citizens {
	c := make(Citizens, len(cells))
	for _, cell := range cells {
		c.Add(cell)
	}
	return c
}

// Contains reports whether the cell at p is alive
func (c Citizens) Contains(p Position) bool {
	_, ok := c[p]
	return ok
}

// Add marks p alive; adding an alive cell is a no-op
func (c Citizens) Add(p Position) {
	c[p] = struct{}{}
}

// Remove marks p dead
func (c Citizens) Remove(p Position) {
	delete(c, p)
}

// Len returns the number of alive cells
func (c Citizens) Len() int {
	return len(c)
}

// Equal reports whether both sets hold exactly the same cells
func (c Citizens) Equal(other Citizens) bool {
	if len(c) != len(other) {
		return false
	}
	for p := range c {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the set
func (c Citizens) Clone() Citizens {
	out := make(Citizens, len(c))
	for p := range c {
		out[p] = struct{}{}
	}
	return out
}

// Sorted returns the cells in row-major order (by y, then x)
func (c Citizens) Sorted() []Cell {
	cells := make([]Cell, 0, len(c))
	for p := range c {
		cells = append(cells, p)
	}
	slices.SortFunc(cells, func(a, b Cell) int {
		switch {
		case a.Y < b.Y:
			return -1
		case a.Y > b.Y:
			return 1
		case a.X < b.X:
			return -1
		case a.X > b.X:
			return 1
		}
		return 0
	})
	return cells
}

// Bounds returns the smallest viewport holding every alive cell.
// ok is false for an empty set.
func (c Citizens) Bounds() (vp Viewport, ok bool) {
	for p := range c {
		if !ok {
			vp = Viewport{Min: p, Max: Position{X: p.X + 1, Y: p.Y + 1}}
			ok = true
			continue
		}
		vp.Min.X = min(vp.Min.X, p.X)
		vp.Min.Y = min(vp.Min.Y, p.Y)
		vp.Max.X = max(vp.Max.X, p.X+1)
		vp.Max.Y = max(vp.Max.Y, p.Y+1)
	}
	return vp, ok
}

func (c Citizens) String() string {
	cells := c.Sorted()
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = cell.String()
	}
	return "{" + strings.Join(parts, " ") + "}"
}
