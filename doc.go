// Package mazepath finds paths through text mazes with depth-first or
// breadth-first graph search.
//
// Under the hood, everything is organized under subpackages:
//
//	maze/    — parse text into an immutable Grid; neighbor and region queries
//	search/  — Solve with a stack (DFS) or queue (BFS) frontier
//	render/  — draw a Grid with a path overlay as text
//	api/     — HTTP endpoint around search.Solve
//	cmd/     — mazesolve (CLI) and mazeserver (HTTP) binaries
//
// Quick example:
//
//	#####B#
//	##### #
//	####  #
//	#### ##
//	     ##
//	A######
//
//	g, _ := maze.Load("maze1.txt", maze.DefaultOptions())
//	res, _ := search.Solve(g, search.BreadthFirst)
//	fmt.Println(res.Summary())
package mazepath
