package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

const (
	gridPosLive = '*'
	gridPosDead = '-'

	macosClearCmd = "clear"
)

// Viewport is a rectangular window onto the board. Min is inclusive, Max is exclusive.
type Viewport struct {
	Min Position
	Max Position
}

// Width returns the number of columns in the viewport, 0 if inverted
func (v Viewport) Width() int64 {
	return max(0, v.Max.X-v.Min.X)
}

// Height returns the number of rows in the viewport, 0 if inverted
func (v Viewport) Height() int64 {
	return max(0, v.Max.Y-v.Min.Y)
}

// Contains reports whether p falls inside the viewport
func (v Viewport) Contains(p Position) bool {
	return p.X >= v.Min.X && p.X < v.Max.X && p.Y >= v.Min.Y && p.Y < v.Max.Y
}

// TerminalRenderer draws a viewport of the board as text
type TerminalRenderer struct {
	Live rune
	Dead rune
}

func (r *TerminalRenderer) markers() (live, dead rune) {
	live, dead = r.Live, r.Dead
	if live == 0 {
		live = gridPosLive
	}
	if dead == 0 {
		dead = gridPosDead
	}
	return
}

// Render writes one line per row of vp, top row first
func (r *TerminalRenderer) Render(w io.Writer, citizens Citizens, vp Viewport) error {
	live, dead := r.markers()
	bw := bufio.NewWriter(w)
	for y := vp.Min.Y; y < vp.Max.Y; y++ {
		for x := vp.Min.X; x < vp.Max.X; x++ {
			mark := dead
			if citizens.Contains(Position{X: x, Y: y}) {
				mark = live
			}
			if _, err := bw.WriteRune(mark); err != nil {
				return errors.Wrap(err, "[Render] failed to write cell")
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "[Render] failed to write row")
		}
	}
	return errors.Wrap(bw.Flush(), "[Render] failed to flush")
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
