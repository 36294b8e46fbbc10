// Package astar provides an A* path solver over carved core.Maze values,
// returning the cell sequence, its cost in steps, and the expansion count.
//
// What
//
//   - Solve searches from one cell to another across open links only; walls
//     are never crossed, so the input must already be carved.
//   - Endpoints default to the maze's first two boundary openings, the
//     entrance-to-exit route of a finished maze. WithEndpoints overrides
//     them for interior queries.
//   - SolveAndStore additionally writes the path into the maze via
//     Maze.SetSolution, ready for rendering layers to pick up.
//
// Heuristic
//
//	The estimate is Position.Dist: Manhattan on grid topologies,
//	ring-wrapped on polar ones. Uniform step costs keep it admissible on
//	the square grid. Diagonal or slanted links and weave tunnels cover
//	more than one Manhattan unit in a single step, so there the estimate
//	can overshoot and the returned path is near-shortest rather than
//	guaranteed shortest. Expanded reports how much of the maze the search
//	had to touch.
//
// Complexity (N = cell count)
//
//   - Time:   O(N log N) with the lazy-decrease-key heap.
//   - Memory: O(N) for the score, predecessor and settled tables.
//
// Errors
//
//   - ErrNilMaze      if the maze pointer is nil.
//   - ErrNeedOpenings if endpoints are defaulted and the maze has fewer
//     than two openings.
//   - ErrForeignCell  if an endpoint belongs to a different maze.
//   - ErrNoSolution   if the endpoints lie in different corridors.
//   - ErrNilEndpoint  (via panic) if WithEndpoints receives a nil cell.
//
// Usage
//
//	res, err := astar.Solve(m)
//	if err != nil { ... }
//	fmt.Println(res.Cost, len(res.Path), res.Expanded)
//
//	// Interior query between two picked cells:
//	res, err = astar.Solve(m, astar.WithEndpoints(a, b))
package astar
