package maze

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// Parse builds a Grid from a multi-line maze description.
// Returns ErrOptionViolation for clashing markers and ErrFormat unless the
// text holds exactly one start and one goal marker.
// Lines shorter than the widest line are padded with passable cells.
// Complexity: O(W×H) time and memory.
func Parse(text string, opts Options) (*Grid, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	starts := strings.Count(text, string(opts.Start))
	goals := strings.Count(text, string(opts.Goal))
	if starts != 1 || goals != 1 {
		return nil, fmt.Errorf("%w: want exactly one start %q and one goal %q, found %d and %d",
			ErrFormat, opts.Start, opts.Goal, starts, goals)
	}

	lines := splitLines(text)
	rows := make([][]rune, len(lines))
	width := 0
	for i, line := range lines {
		rows[i] = []rune(line)
		if len(rows[i]) > width {
			width = len(rows[i])
		}
	}

	g := &Grid{
		width:  width,
		height: len(rows),
		walls:  make([][]bool, len(rows)),
	}
	for r, row := range rows {
		// missing trailing columns stay false: absence is open space
		g.walls[r] = make([]bool, width)
		for c, ch := range row {
			switch ch {
			case opts.Start:
				g.start = Cell{Row: r, Col: c}
			case opts.Goal:
				g.goal = Cell{Row: r, Col: c}
			case opts.Open:
			default:
				g.walls[r][c] = true
			}
		}
	}

	return g, nil
}

// ParseReader reads all of r and parses it with Parse.
func ParseReader(r io.Reader, opts Options) (*Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("maze: read: %w", err)
	}
	return Parse(string(data), opts)
}

// Load parses the maze stored in the regular file at path.
// Returns an error wrapping ErrNotFound if path does not name a regular file.
func Load(path string, opts Options) (*Grid, error) {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	case err != nil:
		return nil, fmt.Errorf("maze: stat %s: %w", path, err)
	case !info.Mode().IsRegular():
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("maze: read %s: %w", path, err)
	}
	return Parse(string(data), opts)
}

// splitLines breaks text on \n, \r\n or \r. A trailing line break does not
// produce an extra empty row.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// Width returns the number of columns (the longest line, in runes).
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Start returns the start cell.
func (g *Grid) Start() Cell { return g.start }

// Goal returns the goal cell.
func (g *Grid) Goal() Cell { return g.goal }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// IsWall reports whether c is an in-bounds wall.
func (g *Grid) IsWall(c Cell) bool {
	return g.InBounds(c) && g.walls[c.Row][c.Col]
}

// Passable reports whether c is in bounds and not a wall.
func (g *Grid) Passable(c Cell) bool {
	return g.InBounds(c) && !g.walls[c.Row][c.Col]
}

// Walls returns a copy of the wall flags, indexed [row][col].
func (g *Grid) Walls() [][]bool {
	out := make([][]bool, g.height)
	for r := range g.walls {
		out[r] = make([]bool, g.width)
		copy(out[r], g.walls[r])
	}
	return out
}

// Neighbors returns every passable in-bounds cell adjacent to c, in the
// order up, down, left, right.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Neighbor {
	out := make([]Neighbor, 0, len(directions))
	for _, d := range directions {
		n := c.Move(d)
		if g.Passable(n) {
			out = append(out, Neighbor{Dir: d, Cell: n})
		}
	}
	return out
}
