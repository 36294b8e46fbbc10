// Package braid post-processes a carved maze by opening extra walls in
// deadend cells, trading the perfect-maze tree for loops.
//
// What
//
//   - A deadend is a cell with exactly one open side. Braid collects them
//     once, then draws uniformly without replacement and opens one walled
//     side per drawn cell, chosen uniformly among the sides that have a
//     directly adjacent neighbour to pair with. On the weave topology a
//     walled side whose practical neighbour lies across a tunnel stays shut.
//   - Every opening closes a cycle. A fully braided maze has no deadends
//     and offers multiple routes between most cell pairs.
//
// Why
//
//   - Perfect mazes punish wrong turns with forced backtracking. Loops
//     soften that, which suits game levels where flow matters more than
//     difficulty.
//   - Solvers and distance maps stay correct on braided mazes; only the
//     uniqueness of the shortest route goes away.
//
// Targets
//
//   - WithCount(n) opens up to n deadends.
//   - WithPercent(p) opens a p share of the deadends present at call time,
//     p within [0, 1]. The two options are mutually exclusive.
//   - The default is percent 1, the full sweep. The returned count can fall
//     short of the target: opening into a neighbouring deadend costs that
//     neighbour its deadend status, and such cells are skipped when drawn.
//
// Determinism
//
//	Candidates are collected in cell-index order and drawn with the
//	caller's *rand.Rand, so a fixed seed reproduces the exact wall set.
//
// Errors
//
//   - ErrNilMaze         if the maze pointer is nil.
//   - ErrNilRand         if the random source is nil.
//   - ErrBadCount        if WithCount is negative.
//   - ErrBadPercent      if WithPercent is outside [0, 1].
//   - ErrAmbiguousTarget if both targets are supplied.
//
// Usage
//
//	opened, err := braid.Braid(m, r)                      // full sweep
//	opened, err = braid.Braid(m, r, braid.WithPercent(0.5))
//	opened, err = braid.Braid(m, r, braid.WithCount(3))
package braid
