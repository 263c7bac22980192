package model

import (
	"github.com/sheikhrachel/go-life/rules"
)

// Status is the outcome of advancing the game by one generation
type Status int

const (
	// Ok means the generation changed and the game may continue
	Ok Status = iota
	// StillLife means the generation did not change and never will
	StillLife
	// AllDied means every cell died
	AllDied
	// OutOfRange means a cell reached a sentinel coordinate; the board was left untouched
	OutOfRange
	// GameOver means the game had already stopped and no work was done
	GameOver
)

func (s Status) String() string {
	switch s {
	case Ok:
		return "ok"
	case StillLife:
		return "still life"
	case AllDied:
		return "all died"
	case OutOfRange:
		return "out of range"
	case GameOver:
		return "game over"
	}
	return "unknown"
}

// Continues reports whether another generation may follow
func (s Status) Continues() bool {
	return s == Ok
}

// State is the run state of a game
type State int

const (
	NotStarted State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Game simulates Conway's Game of Life on a sparse board.
// A Game is not safe for concurrent use.
type Game struct {
	citizens   Citizens
	state      State
	generation uint64

	// reused across generations
	died []Cell
	born []Cell
}

// NewGame starts a game from generation 0. The game takes ownership of citizens.
func NewGame(citizens Citizens) *Game {
	if citizens == nil {
		citizens = NewCitizens()
	}
	return &Game{
		citizens: citizens,
		state:    NotStarted,
	}
}

// Next advances the board by one generation.
// Once any call returns something other than Ok, the game is stopped and
// every further call returns GameOver without touching the board.
func (g *Game) Next() Status {
	if g.state == Stopped {
		return GameOver
	}
	g.state = Running

	status := g.nextGeneration()
	if !status.Continues() {
		g.state = Stopped
	}
	return status
}

// Play calls Next up to maxIterations times, stopping at the first non-Ok
// status. It returns the number of generations that returned Ok.
func (g *Game) Play(maxIterations uint64) uint64 {
	var i uint64
	for ; i < maxIterations; i++ {
		if !g.Next().Continues() {
			break
		}
	}
	return i
}

// State returns the current run state
func (g *Game) State() State {
	return g.state
}

// Citizens returns the current alive set. Callers must not modify it.
func (g *Game) Citizens() Citizens {
	return g.citizens
}

// Generation returns the number of generations computed so far
func (g *Game) Generation() uint64 {
	return g.generation
}

// countNeighbors counts the alive cells around p
func (g *Game) countNeighbors(p Position) (count int) {
	for _, n := range p.Neighbors() {
		if g.citizens.Contains(n) {
			count++
		}
	}
	return
}

// nextGeneration computes the death and birth lists against the current
// board, and only then applies them.
func (g *Game) nextGeneration() Status {
	for cell := range g.citizens {
		if cell.IsOutOfRange() {
			return OutOfRange
		}
	}

	g.died = g.died[:0]
	g.born = g.born[:0]
	for cell := range g.citizens {
		for _, n := range cell.Neighbors() {
			if g.citizens.Contains(n) {
				continue
			}
			if rules.Born(g.countNeighbors(n)) {
				g.born = append(g.born, n)
			}
		}
		if !rules.Survives(g.countNeighbors(cell)) {
			g.died = append(g.died, cell)
		}
	}

	for _, cell := range g.died {
		g.citizens.Remove(cell)
	}
	for _, cell := range g.born {
		g.citizens.Add(cell)
	}
	g.generation++

	switch {
	case len(g.died) == 0 && len(g.born) == 0:
		return StillLife
	case g.citizens.Len() == 0:
		return AllDied
	}
	return Ok
}
