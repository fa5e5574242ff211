package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/maze"
)

func seedFrontier(s Strategy) (*frontier, []node) {
	arena := []node{
		{state: maze.Cell{Row: 0, Col: 0}, parent: -1},
		{state: maze.Cell{Row: 0, Col: 1}, parent: 0, action: maze.Right},
		{state: maze.Cell{Row: 1, Col: 0}, parent: 0, action: maze.Down},
	}
	f := newFrontier(s, len(arena))
	for i, n := range arena {
		f.add(i, n.state)
	}
	return f, arena
}

// TestFrontier_RemovalOrder checks LIFO for DepthFirst and FIFO for BreadthFirst.
func TestFrontier_RemovalOrder(t *testing.T) {
	cases := []struct {
		strategy Strategy
		want     []int
	}{
		{DepthFirst, []int{2, 1, 0}},
		{BreadthFirst, []int{0, 1, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.strategy.String(), func(t *testing.T) {
			f, arena := seedFrontier(tc.strategy)
			var got []int
			for !f.empty() {
				idx, err := f.remove(arena)
				require.NoError(t, err)
				require.False(t, f.containsState(arena[idx].state), "removed state must leave the frontier")
				got = append(got, idx)
			}
			require.Equal(t, tc.want, got)

			_, err := f.remove(arena)
			require.ErrorIs(t, err, errEmptyFrontier)
		})
	}
}

// TestFrontier_ContainsState checks membership before and after removal.
func TestFrontier_ContainsState(t *testing.T) {
	f, arena := seedFrontier(BreadthFirst)
	require.True(t, f.containsState(maze.Cell{Row: 0, Col: 1}))
	require.False(t, f.containsState(maze.Cell{Row: 5, Col: 5}))

	idx, err := f.remove(arena)
	require.NoError(t, err)
	require.Equal(t, 0, idx)
	require.False(t, f.containsState(maze.Cell{Row: 0, Col: 0}))
	require.True(t, f.containsState(maze.Cell{Row: 1, Col: 0}))
}
