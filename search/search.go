package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/mazepath/maze"
)

// solver encapsulates the mutable state of one Solve call.
type solver struct {
	grid     *maze.Grid
	opts     Options
	ctx      context.Context
	arena    []node
	frontier *frontier
	explored map[maze.Cell]struct{}
	res      *Result
}

// Solve searches g from its start to its goal using strategy s.
// Returns ErrGridNil or ErrUnknownStrategy for invalid input, ctx.Err() on
// cancellation, or a wrapped OnExpand error. An unreachable goal yields a
// Result with Solved == false and a nil error.
func Solve(g *maze.Grid, s Strategy, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if !s.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, s)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Width() * g.Height()
	sv := &solver{
		grid:     g,
		opts:     o,
		ctx:      o.Ctx,
		arena:    make([]node, 0, n),
		frontier: newFrontier(s, n),
		explored: make(map[maze.Cell]struct{}, n),
		res: &Result{
			Strategy: s,
			Explored: make([]maze.Cell, 0, n),
		},
	}

	// Seed with the root node (no parent, no action)
	sv.push(g.Start(), -1, 0)
	err := sv.loop()
	if err != nil {
		o.Logger.Debug("search aborted",
			"strategy", s.String(),
			"nodes_explored", sv.res.NodesExplored,
			"error", err)
		return sv.res, err
	}

	o.Logger.LogAttrs(sv.ctx, slog.LevelDebug, "search finished", logAttrs(sv.res)...)
	return sv.res, nil
}

// push records a new node in the arena and adds it to the frontier.
func (sv *solver) push(state maze.Cell, parent int, action maze.Direction) {
	sv.arena = append(sv.arena, node{state: state, parent: parent, action: action})
	sv.frontier.add(len(sv.arena)-1, state)
	sv.opts.OnEnqueue(state)
}

// loop removes and expands nodes until the goal is found, the frontier is
// exhausted, or the context is done.
func (sv *solver) loop() error {
	goal := sv.grid.Goal()
	for !sv.frontier.empty() {
		select {
		case <-sv.ctx.Done():
			return sv.ctx.Err()
		default:
		}

		idx, err := sv.frontier.remove(sv.arena)
		if err != nil {
			return err
		}
		cur := sv.arena[idx]
		sv.res.NodesExplored++
		sv.res.Explored = append(sv.res.Explored, cur.state)
		if err := sv.opts.OnExpand(cur.state); err != nil {
			return fmt.Errorf("search: OnExpand error at %v: %w", cur.state, err)
		}

		if cur.state == goal {
			sv.reconstruct(idx)
			return nil
		}

		sv.explored[cur.state] = struct{}{}
		sv.expand(idx)
	}
	return nil
}

// expand adds every unseen neighbor of the node at idx as its child.
func (sv *solver) expand(idx int) {
	state := sv.arena[idx].state
	for _, nb := range sv.grid.Neighbors(state) {
		if sv.frontier.containsState(nb.Cell) {
			continue
		}
		if _, done := sv.explored[nb.Cell]; done {
			continue
		}
		sv.push(nb.Cell, idx, nb.Dir)
	}
}

// reconstruct walks parent indices from the goal node back to the root and
// stores the path in start-to-goal order. The root contributes nothing.
func (sv *solver) reconstruct(idx int) {
	var moves []maze.Direction
	var cells []maze.Cell
	for at := idx; sv.arena[at].parent >= 0; at = sv.arena[at].parent {
		moves = append(moves, sv.arena[at].action)
		cells = append(cells, sv.arena[at].state)
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
		cells[i], cells[j] = cells[j], cells[i]
	}
	sv.res.Solved = true
	sv.res.Moves = moves
	sv.res.Cells = cells
}

// logAttrs describes r for structured logging.
func logAttrs(r *Result) []slog.Attr {
	return []slog.Attr{
		slog.String("strategy", r.Strategy.String()),
		slog.Bool("solved", r.Solved),
		slog.Int("steps", r.Steps()),
		slog.Int("nodes_explored", r.NodesExplored),
	}
}
