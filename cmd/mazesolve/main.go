package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/mazepath/internal/cli"
	"github.com/katalvlaran/mazepath/internal/config"
	"github.com/katalvlaran/mazepath/internal/logging"
	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/render"
	"github.com/katalvlaran/mazepath/search"
)

// main is the entrypoint for the mazesolve command.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run loads the maze, solves it and prints the rendering and summary to outW.
// Logs go to logW.
func run(outW, logW io.Writer, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}
	opts, shouldExit, err := cli.Parse(args, outW, cfg)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := logging.New(opts.LogLevel, opts.LogFormat, logW)
	logger.Debug("loading maze", "path", opts.MazePath)
	grid, err := maze.Load(opts.MazePath, maze.DefaultOptions())
	if err != nil {
		return err
	}
	logger.Info("maze loaded",
		"width", grid.Width(),
		"height", grid.Height(),
		"reachable", len(grid.ReachableFrom(grid.Start())))

	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}
	res, err := search.Solve(grid, opts.Strategy, search.WithContext(ctx), search.WithLogger(logger))
	if err != nil {
		return err
	}

	ropts := render.DefaultOptions()
	ropts.ShowExplored = opts.ShowExplored
	if err := render.Render(outW, grid, res, ropts); err != nil {
		return err
	}
	_, err = fmt.Fprintln(outW, res.Summary())
	return err
}
