// Package generate provides eight maze-carving algorithms over *core.Maze:
// Backtracker, HuntAndKill, Kruskal, Sidewinder, BinaryTree, Division,
// WeaveCross and Wilson, selected through the Algorithm enum.
//
// What & Why
//
//   - What is a generator?
//     A generator rewrites the wall state of an existing maze so that the open
//     passages form a spanning tree of the cell lattice: every cell reachable,
//     no cycles, exactly one path between any two cells (a "perfect" maze).
//     The shape, topology and cell collection are never touched.
//
//   - Why several?
//     All eight produce perfect mazes; they differ in texture. Corridor
//     length, junction density, directional bias and solution-path twistiness
//     are properties of the algorithm, not of the topology, so the right
//     pick depends on what the maze is for.
//
// Algorithms Provided
//
//   - Backtracker (every topology)
//     Iterative depth-first carving with an explicit stack. Long winding
//     corridors, few junctions, hard for a human to solve.
//     Time O(cells), space O(cells) for the stack.
//
//   - HuntAndKill (every topology)
//     Random walk until boxed in, then a deterministic raster hunt for the
//     next start. Similar texture to Backtracker with fewer long dead ends.
//     Time O(cells^2) worst case, space O(cells).
//
//   - Kruskal (every topology)
//     Shuffled edge list folded through a union-find forest. Short local
//     corridors, many junctions, no large-scale bias.
//     Time O(E α(V)), space O(E + V).
//
//   - Sidewinder (quadrilateral only)
//     Row runs with one northward escape per run. The top row is always a
//     single open corridor. Time O(cells), space O(width).
//
//   - BinaryTree (quadrilateral, hex, polar)
//     One of two bias sides per cell. The cheapest and the most biased:
//     two open border corridors on quadrilateral grids, a spiral pull on
//     polar ones. Time O(cells), space O(1).
//
//   - Division (quadrilateral only)
//     The wall-adder: recursive splitting of the open field, one gap per
//     wall. Produces straight walls and room-like texture.
//     Time O(cells) amortised, space O(regions).
//
//   - WeaveCross (weave only)
//     Plants over/under crossings, then completes the tree with the
//     pre-seeded Kruskal phase. The only generator that creates tunnels.
//     Density is tunable with WithCrossings.
//
//   - Wilson (every topology)
//     Loop-erased random walks. The only unbiased generator: every spanning
//     tree is equally likely. Slowest in practice; early walks wander.
//
// Choosing an Algorithm
//
//   - Want difficulty: Backtracker or HuntAndKill (long corridors).
//   - Want uniformity for statistics: Wilson, or Kruskal as a cheap proxy.
//   - Want speed above all: BinaryTree, then Sidewinder.
//   - Want rooms and straight walls: Division.
//   - Want tunnels: WeaveCross on the Weave topology.
//
// Error Conditions
//
//	All generators validate before mutating, so a failed call leaves the
//	maze exactly as it was:
//
//	- ErrNilMaze              - nil maze handle.
//	- ErrNilRand              - nil *rand.Rand; generators never self-seed.
//	- ErrUnsupportedTopology  - Algorithm.Supports(maze.Kind()) is false.
//	- ErrUnknownAlgorithm     - Algorithm value outside the enum (Run only).
//
// Determinism
//
// Every generator draws exclusively from the *rand.Rand it is handed, so a
// fixed seed reproduces the identical maze on every platform. RandFromSeed
// is the canonical way to build one; the zero seed maps to a stable package
// default. The HuntAndKill hunt and the Kruskal edge collection iterate in
// cell-index order for the same reason.
//
// For usage see example_test.go in this package.
package generate
