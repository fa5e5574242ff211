package maze

import (
	"fmt"
	"unicode/utf8"
)

// Cell identifies a grid position by row and column.
type Cell struct {
	Row, Col int
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Move returns the cell one step away in direction d.
func (c Cell) Move(d Direction) Cell {
	dr, dc := d.Delta()
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Direction is one of the four orthogonal moves.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// directions is the neighbor expansion order. It must not change:
// search tie-breaking depends on it.
var directions = [4]Direction{Up, Down, Left, Right}

// Directions returns the four moves in expansion order.
func Directions() []Direction {
	out := directions
	return out[:]
}

// Delta returns the (row, col) offset of d.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Neighbor pairs an adjacent cell with the move that reaches it.
type Neighbor struct {
	Dir  Direction
	Cell Cell
}

// Options selects the marker runes used when parsing.
type Options struct {
	// Start marks the single start cell.
	Start rune
	// Goal marks the single goal cell.
	Goal rune
	// Open marks a passable cell. Every other rune is a wall.
	Open rune
}

// DefaultOptions returns Options with Start='A', Goal='B', Open=' '.
func DefaultOptions() Options {
	return Options{
		Start: 'A',
		Goal:  'B',
		Open:  ' ',
	}
}

func (o Options) validate() error {
	for _, m := range []struct {
		name string
		r    rune
	}{{"start", o.Start}, {"goal", o.Goal}, {"open", o.Open}} {
		if m.r == '\n' || m.r == '\r' {
			return fmt.Errorf("%w: %s marker %q is a line terminator", ErrOptionViolation, m.name, m.r)
		}
		if !utf8.ValidRune(m.r) || m.r == utf8.RuneError {
			return fmt.Errorf("%w: %s marker %U is not a valid rune", ErrOptionViolation, m.name, m.r)
		}
	}
	if o.Start == o.Goal || o.Start == o.Open || o.Goal == o.Open {
		return fmt.Errorf("%w: markers must be distinct (start=%q goal=%q open=%q)",
			ErrOptionViolation, o.Start, o.Goal, o.Open)
	}
	return nil
}

// Grid is a parsed maze. It is immutable once built and safe for
// concurrent readers.
type Grid struct {
	width, height int
	walls         [][]bool
	start, goal   Cell
}
