// Package render draws a maze.Grid as text, overlaying a search.Result.
//
// Legend (DefaultOptions):
//
//	#  wall         A  start      B  goal
//	*  path cell    .  explored   ' ' open
//
// Start and goal are never overdrawn. Explored cells are drawn only when
// Options.ShowExplored is set, and path cells take precedence over them.
package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/search"
)

// ErrGridNil is returned by Render when the grid is nil.
var ErrGridNil = errors.New("render: grid is nil")

// Options selects the glyphs used by Render.
type Options struct {
	Wall, Open, Start, Goal, Path, Explored rune
	// ShowExplored marks expanded cells that are not on the path.
	ShowExplored bool
}

// DefaultOptions returns the legend above with ShowExplored off.
func DefaultOptions() Options {
	return Options{
		Wall:     '#',
		Open:     ' ',
		Start:    'A',
		Goal:     'B',
		Path:     '*',
		Explored: '.',
	}
}

// Render writes g to w, one line per row, with res overlaid. res may be nil.
func Render(w io.Writer, g *maze.Grid, res *search.Result, opts Options) error {
	if g == nil {
		return ErrGridNil
	}
	onPath := make(map[maze.Cell]bool)
	explored := make(map[maze.Cell]bool)
	if res != nil {
		for _, c := range res.Cells {
			onPath[c] = true
		}
		if opts.ShowExplored {
			for _, c := range res.Explored {
				explored[c] = true
			}
		}
	}

	bw := bufio.NewWriter(w)
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			cell := maze.Cell{Row: r, Col: c}
			var ch rune
			switch {
			case cell == g.Start():
				ch = opts.Start
			case cell == g.Goal():
				ch = opts.Goal
			case g.IsWall(cell):
				ch = opts.Wall
			case onPath[cell]:
				ch = opts.Path
			case explored[cell]:
				ch = opts.Explored
			default:
				ch = opts.Open
			}
			if _, err := bw.WriteRune(ch); err != nil {
				return fmt.Errorf("render: %w", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
