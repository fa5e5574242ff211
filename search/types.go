package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/mazepath/maze"
)

// Sentinel errors for Solve.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrUnknownStrategy is returned for a strategy tag or name that is not recognised.
	ErrUnknownStrategy = errors.New("search: unknown strategy")
)

// Strategy selects the frontier removal order.
type Strategy int

const (
	// DepthFirst removes the most recently added node (stack).
	DepthFirst Strategy = iota
	// BreadthFirst removes the least recently added node (queue).
	BreadthFirst
)

// String returns the short strategy name used in summaries.
func (s Strategy) String() string {
	switch s {
	case DepthFirst:
		return "DFS"
	case BreadthFirst:
		return "BFS"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

func (s Strategy) valid() bool {
	return s == DepthFirst || s == BreadthFirst
}

// ParseStrategy maps "dfs", "depth-first", "bfs" or "breadth-first"
// (any case) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dfs", "depth-first":
		return DepthFirst, nil
	case "bfs", "breadth-first":
		return BreadthFirst, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Option configures Solve via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize Solve.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell is added to the frontier.
	OnEnqueue func(c maze.Cell)

	// OnExpand is called when a cell is removed from the frontier, before
	// the goal test. Returning an error aborts the search.
	OnExpand func(c maze.Cell) error

	// Logger receives a debug record when the search finishes.
	Logger *slog.Logger
}

// DefaultOptions returns Options with a background context, no-op hooks
// and a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(maze.Cell) {},
		OnExpand:  func(maze.Cell) error { return nil },
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c maze.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnExpand registers a callback to run on every frontier removal;
// returning an error from it stops the search.
func WithOnExpand(fn func(c maze.Cell) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithLogger sets the logger used for the completion record.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result holds the outcome of one Solve call.
//   - Solved: whether the goal was reached.
//   - Moves, Cells: the path, start excluded, goal last; Moves[i] leads into Cells[i].
//   - NodesExplored: number of frontier removals, goal included.
//   - Explored: the removed cells, in removal order.
type Result struct {
	Strategy      Strategy
	Solved        bool
	Moves         []maze.Direction
	Cells         []maze.Cell
	NodesExplored int
	Explored      []maze.Cell
}

// Steps returns the number of moves on the path, or 0 if unsolved.
func (r *Result) Steps() int {
	return len(r.Moves)
}

// Summary renders the one-line status shown to users.
func (r *Result) Summary() string {
	if !r.Solved {
		return "No solution found."
	}
	return fmt.Sprintf("Solution found with %d steps (method: %s, %d nodes explored).",
		r.Steps(), r.Strategy, r.NodesExplored)
}
