// Package analyze provides read-only structure checks over carved
// core.Maze values: link counts, corridor systems, deadends and the
// longest corridor.
//
// What
//
//   - ConnectionCount totals the open cell pairs, the carving's edge count.
//   - Components groups cells into corridor systems by flood fill.
//   - Deadends lists the cells with exactly one open side.
//   - IsPerfect checks the spanning-tree signature: a single component
//     holding every cell with exactly cellCount-1 links.
//   - LongestPath finds the maze diameter with a double breadth-first
//     sweep, exact on perfect mazes.
//
// Why
//
//   - Generators promise a perfect maze; IsPerfect is the cheap oracle that
//     holds them to it in tests.
//   - Deadend and diameter counts grade difficulty: more deadends punish
//     exploration, a longer diameter stretches the solve.
//   - Braiding trades deadends for loops; ConnectionCount and Deadends
//     before and after show exactly what a sweep changed.
//
// Determinism
//
//	Cells are scanned in index order and queues preserve discovery order,
//	so every result is reproducible for a given maze. Nothing here
//	mutates the maze.
//
// Complexity (N = cell count)
//
//	All checks run in O(N) time and O(N) memory; LongestPath performs two
//	sweeps and keeps a parent table.
//
// Usage
//
//	ok, err := analyze.IsPerfect(m)
//	ds := analyze.Deadends(m)
//	path, err := analyze.LongestPath(m)
package analyze
