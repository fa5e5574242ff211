package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/katalvlaran/mazepath/internal/config"
	"github.com/katalvlaran/mazepath/search"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Options is the validated outcome of Parse.
type Options struct {
	MazePath     string
	Strategy     search.Strategy
	ShowExplored bool
	LogLevel     string
	LogFormat    string
	Timeout      time.Duration // 0 disables the deadline
}

// Parse processes command-line arguments on top of the defaults in cfg.
// It returns the Options, a boolean indicating if the program should exit
// cleanly (help or no maze given), or an *ExitError with code 2.
func Parse(args []string, output io.Writer, cfg config.Config) (*Options, bool, error) {
	flagSet := flag.NewFlagSet("mazesolve", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
mazesolve - find a path through a text maze with DFS or BFS.

Usage:
  mazesolve [options] MAZE_FILE

Arguments:
  MAZE_FILE
    Text file with one 'A' (start), one 'B' (goal), spaces for open cells
    and any other character for walls.

Options:
`)
		flagSet.PrintDefaults()
	}

	strategyFlag := flagSet.String("strategy", cfg.Strategy, "Search strategy. Options: 'dfs' or 'bfs'.")
	exploredFlag := flagSet.Bool("show-explored", false, "Mark expanded cells that are not on the path.")
	logFormatFlag := flagSet.String("log-format", cfg.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", cfg.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	timeoutFlag := flagSet.Duration("timeout", 0, "Abort the search after this long. 0 disables the limit.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		slog.Debug("No maze path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "expected exactly one MAZE_FILE argument"}
	}

	strategy, err := search.ParseStrategy(*strategyFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: "invalid strategy: must be 'dfs' or 'bfs'"}
	}
	if *timeoutFlag < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid timeout: must not be negative"}
	}

	check := cfg
	check.LogLevel = strings.ToLower(*logLevelFlag)
	check.LogFormat = strings.ToLower(*logFormatFlag)
	if err := check.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	opts := &Options{
		MazePath:     flagSet.Arg(0),
		Strategy:     strategy,
		ShowExplored: *exploredFlag,
		LogLevel:     check.LogLevel,
		LogFormat:    check.LogFormat,
		Timeout:      *timeoutFlag,
	}
	slog.Debug("CLI parser finished successfully.", "options", opts)
	return opts, false, nil
}
