package model

import (
	"math/rand/v2"
	"sort"

	"github.com/pkg/errors"
)

// ErrUnknownPattern is returned by PatternByName for names it does not know
var ErrUnknownPattern = errors.New("unknown pattern")

// place translates offsets to origin
func place(origin Position, offsets ...Position) Citizens {
	c := make(Citizens, len(offsets))
	for _, o := range offsets {
		c.Add(origin.Add(o))
	}
	return c
}

// Glider returns a glider travelling towards +x,+y with its bounding box at origin
func Glider(origin Position) Citizens {
	return place(origin, Position{1, 0}, Position{2, 1}, Position{0, 2}, Position{1, 2}, Position{2, 2})
}

// Blinker returns a horizontal period-2 oscillator starting at origin
func Blinker(origin Position) Citizens {
	return place(origin, Position{0, 0}, Position{1, 0}, Position{2, 0})
}

// Block returns the 2x2 still life at origin
func Block(origin Position) Citizens {
	return place(origin, Position{0, 0}, Position{1, 0}, Position{0, 1}, Position{1, 1})
}

// Random fills vp with live cells, each present with probability density
func Random(rng *rand.Rand, vp Viewport, density float64) Citizens {
	c := NewCitizens()
	for y := vp.Min.Y; y < vp.Max.Y; y++ {
		for x := vp.Min.X; x < vp.Max.X; x++ {
			if rng.Float64() < density {
				c.Add(Position{X: x, Y: y})
			}
		}
	}
	return c
}

// Interesting scatters gliders and blinkers over vp, then adds random life
func Interesting(rng *rand.Rand, vp Viewport, density float64) Citizens {
	c := Random(rng, vp, density)
	if vp.Width() < 10 || vp.Height() < 10 {
		return c
	}

	add := func(p Citizens) {
		for cell := range p {
			c.Add(cell)
		}
	}
	add(Glider(vp.Min.Add(Position{5, 5})))
	add(Blinker(vp.Min.Add(Position{vp.Width() / 4, vp.Height() / 4})))
	if vp.Width() >= 20 && vp.Height() >= 15 {
		add(Glider(vp.Min.Add(Position{vp.Width() - 8, 5})))
	}
	if vp.Width() >= 30 {
		add(Blinker(vp.Min.Add(Position{3 * vp.Width() / 4, 3 * vp.Height() / 4})))
	}
	return c
}

var fixedPatterns = map[string]func(Position) Citizens{
	"glider":  Glider,
	"blinker": Blinker,
	"block":   Block,
}

// PatternNames lists every name PatternByName accepts
func PatternNames() []string {
	names := []string{"random", "interesting"}
	for name := range fixedPatterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PatternByName builds a named seed pattern inside vp
func PatternByName(name string, vp Viewport, density float64, seed uint64) (Citizens, error) {
	rng := rand.New(rand.NewPCG(seed, 0))
	switch name {
	case "random":
		return Random(rng, vp, density), nil
	case "interesting":
		return Interesting(rng, vp, density), nil
	}
	build, ok := fixedPatterns[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[PatternByName] %q, want one of %v", name, PatternNames())
	}
	return build(vp.Min.Add(Position{1, 1})), nil
}
