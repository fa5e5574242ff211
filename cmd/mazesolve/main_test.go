package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/maze"
)

func writeMaze(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	return path
}

func TestRun_Solves(t *testing.T) {
	path := writeMaze(t, "A  \n   \n  B\n")
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}

	err := run(out, logs, []string{"-strategy", "bfs", path})

	require.NoError(t, err)
	require.Equal(t, "A  \n*  \n**B\nSolution found with 4 steps (method: BFS, 9 nodes explored).\n", out.String())
	require.Contains(t, logs.String(), "maze loaded")
}

func TestRun_SampleMaze(t *testing.T) {
	cases := []struct {
		strategy string
		summary  string
	}{
		{"dfs", "Solution found with 10 steps (method: DFS, 11 nodes explored).\n"},
		{"bfs", "Solution found with 10 steps (method: BFS, 11 nodes explored).\n"},
	}
	for _, tc := range cases {
		t.Run(tc.strategy, func(t *testing.T) {
			out := &bytes.Buffer{}
			require.NoError(t, run(out, &bytes.Buffer{}, []string{"-strategy", tc.strategy, "../../testdata/maze1.txt"}))
			require.Equal(t, "#####B#\n#####*#\n####**#\n####*##\n*****##\nA######\n"+tc.summary, out.String())
		})
	}
}

func TestRun_NoSolution(t *testing.T) {
	path := writeMaze(t, "A#B")
	out := &bytes.Buffer{}

	require.NoError(t, run(out, &bytes.Buffer{}, []string{"-strategy", "dfs", path}))
	require.Contains(t, out.String(), "No solution found.")
}

func TestRun_ShouldExit(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, run(out, &bytes.Buffer{}, []string{"-h"}))
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_MissingFile(t *testing.T) {
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{filepath.Join(t.TempDir(), "nope.txt")})
	require.ErrorIs(t, err, maze.ErrNotFound)
}

func TestRun_BadMaze(t *testing.T) {
	path := writeMaze(t, "A A B")
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{path})
	require.ErrorIs(t, err, maze.ErrFormat)
}

func TestRun_ParseError(t *testing.T) {
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
