// Package distmap computes single-source step distances over a carved
// core.Maze, the table behind difficulty scoring and colour-by-depth
// rendering.
//
// Overview:
//
//   - Compute flood-fills from one source cell across open links, assigning
//     each cell the minimum number of steps from the source.
//   - The source defaults to the maze's first opening (the entrance), and
//     to cell index 0 on mazes without openings; WithSource pins any cell.
//   - The result is an immutable DistanceMap: Of for point lookups, Max for
//     the farthest cell, Values for a table shaped for Maze.SetDistances.
//
// Weave back-fill:
//
//	Cells hidden under a tunnel have no direct link to their lateral
//	neighbours, so the surface pass leaves them unset. A second pass walks
//	each tunnel run and fills the covered cells from whichever end of the
//	run is cheaper to reach. Distances through a tunnel count the hop as a
//	single step, matching how the solver walks it.
//
// Completeness:
//
//	A maze with any unreachable cell yields ErrUnreachable and no map at
//	all. Difficulty metrics averaged over a partial table would be
//	silently wrong, so the table is withheld rather than truncated.
//
// Complexity (N = cell count):
//
//   - Time:   O(N log N); the weave back-fill adds one linear sweep.
//   - Memory: O(N) for the distance table and the settled set.
//
// Usage:
//
//	dm, err := distmap.Compute(m)
//	if err != nil { ... }
//	far, at := dm.Max()
//	m.SetDistances(dm.Values())
//	_ = far
//	_ = at
package distmap
