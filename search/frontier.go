package search

import (
	"errors"

	"github.com/katalvlaran/mazepath/maze"
)

// errEmptyFrontier is returned by remove on an empty frontier. Solve checks
// empty first, so it never escapes the package.
var errEmptyFrontier = errors.New("search: empty frontier")

// node is one search-tree state. parent indexes the owning arena; the root
// has parent -1 and no action.
type node struct {
	state  maze.Cell
	parent int
	action maze.Direction
}

// frontier holds arena indices of discovered-but-unexpanded nodes. The
// strategy tag picks which end remove takes from; members answers
// "is this cell waiting" in O(1).
type frontier struct {
	strategy Strategy
	items    []int
	head     int // first live item; only advances for BreadthFirst
	members  map[maze.Cell]struct{}
}

func newFrontier(s Strategy, capacity int) *frontier {
	return &frontier{
		strategy: s,
		items:    make([]int, 0, capacity),
		members:  make(map[maze.Cell]struct{}, capacity),
	}
}

// add appends the node at arena index idx with the given state.
func (f *frontier) add(idx int, state maze.Cell) {
	f.items = append(f.items, idx)
	f.members[state] = struct{}{}
}

// containsState reports whether a node with state c is waiting.
func (f *frontier) containsState(c maze.Cell) bool {
	_, ok := f.members[c]
	return ok
}

func (f *frontier) empty() bool {
	return len(f.items)-f.head == 0
}

// remove takes one arena index per the strategy: newest for DepthFirst,
// oldest for BreadthFirst.
func (f *frontier) remove(arena []node) (int, error) {
	if f.empty() {
		return 0, errEmptyFrontier
	}
	var idx int
	switch f.strategy {
	case BreadthFirst:
		idx = f.items[f.head]
		f.head++
	default:
		last := len(f.items) - 1
		idx = f.items[last]
		f.items = f.items[:last]
	}
	delete(f.members, arena[idx].state)
	return idx, nil
}
