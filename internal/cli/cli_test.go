package cli_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/internal/cli"
	"github.com/katalvlaran/mazepath/internal/config"
	"github.com/katalvlaran/mazepath/search"
)

func TestParse_Defaults(t *testing.T) {
	var out bytes.Buffer
	opts, exit, err := cli.Parse([]string{"maze1.txt"}, &out, config.Defaults())
	require.NoError(t, err)
	require.False(t, exit)
	require.Equal(t, &cli.Options{
		MazePath:  "maze1.txt",
		Strategy:  search.BreadthFirst,
		LogLevel:  "info",
		LogFormat: "text",
	}, opts)
}

func TestParse_Flags(t *testing.T) {
	var out bytes.Buffer
	args := []string{"-strategy", "DFS", "-show-explored", "-log-level", "debug", "-log-format", "JSON", "-timeout", "2s", "m.txt"}
	opts, exit, err := cli.Parse(args, &out, config.Defaults())
	require.NoError(t, err)
	require.False(t, exit)
	require.Equal(t, search.DepthFirst, opts.Strategy)
	require.True(t, opts.ShowExplored)
	require.Equal(t, "debug", opts.LogLevel)
	require.Equal(t, "json", opts.LogFormat)
	require.Equal(t, 2*time.Second, opts.Timeout)
}

func TestParse_HelpAndUsage(t *testing.T) {
	var out bytes.Buffer
	_, exit, err := cli.Parse([]string{"-h"}, &out, config.Defaults())
	require.NoError(t, err)
	require.True(t, exit)
	require.Contains(t, out.String(), "Usage:")

	out.Reset()
	_, exit, err = cli.Parse(nil, &out, config.Defaults())
	require.NoError(t, err)
	require.True(t, exit)
	require.Contains(t, out.String(), "MAZE_FILE")
}

func TestParse_Errors(t *testing.T) {
	cases := map[string][]string{
		"UnknownFlag":  {"-nope", "m.txt"},
		"BadStrategy":  {"-strategy", "astar", "m.txt"},
		"BadLevel":     {"-log-level", "loud", "m.txt"},
		"BadFormat":    {"-log-format", "xml", "m.txt"},
		"NegativeTime": {"-timeout", "-1s", "m.txt"},
		"TwoFiles":     {"a.txt", "b.txt"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, exit, err := cli.Parse(args, &bytes.Buffer{}, config.Defaults())
			require.False(t, exit)
			var exitErr *cli.ExitError
			require.True(t, errors.As(err, &exitErr), "want *ExitError, got %v", err)
			require.Equal(t, 2, exitErr.Code)
		})
	}
}
