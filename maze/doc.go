// Package maze parses a textual maze description into an immutable 2D
// occupancy grid with a single start and a single goal cell.
//
// What:
//
//   - Grid holds Width×Height wall flags plus the Start and Goal cells.
//   - Parse / ParseReader / Load build a Grid from text, a reader or a file.
//   - Neighbors lists passable orthogonal neighbors in a fixed order
//     (up, down, left, right), which fixes tie-breaking for every search.
//   - ReachableFrom floods the passable region containing a cell.
//
// Text format:
//
//	#####B#
//	##### #
//	####  #
//	#### ##
//	     ##
//	A######
//
//   - Options.Start ('A') marks the start, Options.Goal ('B') the goal.
//   - Options.Open (' ') is a passable cell; any other rune is a wall.
//   - Width is the longest line; shorter lines are padded with passable
//     cells, so a missing character is never a wall.
//
// Complexity:
//
//   - Parse:         O(W×H) time and memory.
//   - Neighbors:     O(1).
//   - ReachableFrom: O(W×H) time and memory.
//
// Errors:
//
//   - ErrFormat:          start or goal marker count is not exactly one.
//   - ErrNotFound:        Load was given a path that is not a regular file.
//   - ErrOptionViolation: marker runes are not pairwise distinct, are a line
//     terminator, or are not a valid non-replacement rune.
package maze
