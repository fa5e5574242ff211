// Package search solves a maze.Grid from its start to its goal with either
// a depth-first (stack) or breadth-first (queue) frontier.
//
// What
//
//   - Solve(g, strategy, opts...) runs one graph search and returns a Result:
//     the moves and cells of the path (start excluded, goal included), the
//     number of nodes removed from the frontier, and their removal order.
//   - Strategy is a tag: DepthFirst removes the newest frontier node (LIFO),
//     BreadthFirst the oldest (FIFO). Everything else is shared.
//   - A neighbor is added only when its cell is neither in the frontier nor
//     explored, so every reachable cell is expanded at most once.
//
// Why
//
//   - BreadthFirst returns a minimum-move path on unit-cost grids.
//   - DepthFirst returns some path when one exists, often after fewer
//     expansions on long corridors.
//
// Determinism
//
//	maze.Grid.Neighbors yields up, down, left, right. Children are pushed
//	in that order, so repeated runs on the same grid return the same Result.
//
// Concurrency
//
//	Solve owns its frontier, node arena and explored set. A single *maze.Grid
//	may be solved concurrently from many goroutines.
//
// Complexity (N = Width×Height)
//
//   - Time:   O(N) expansions, O(1) work per neighbor.
//   - Memory: O(N) for the arena, frontier and explored set.
//
// Options
//
//   - WithContext(ctx):   checked once per loop iteration; cancellation aborts.
//   - WithOnEnqueue(fn):  called for every cell added to the frontier.
//   - WithOnExpand(fn):   called for every cell removed; an error aborts.
//   - WithLogger(l):      receives one debug record per Solve.
//
// Errors
//
//   - ErrGridNil            if the grid pointer is nil.
//   - ErrUnknownStrategy    if the strategy tag is not DepthFirst or BreadthFirst.
//   - ctx.Err()             if the context is done.
//   - Wrapped OnExpand errors.
//
// An unreachable goal is not an error: Result.Solved is false.
package search
