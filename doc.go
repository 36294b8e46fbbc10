// Package lbrnth is an in-memory maze workshop: carve, braid, solve, rate
// and inspect labyrinths over seven cell tilings, from square grids to
// woven corridors and polar rings.
//
// 🚀 What is lbrnth?
//
//	A deterministic maze toolkit that brings together:
//		• Core primitives: cells, walls, topologies, openings, tunnel state
//		• Generators: Backtracker, HuntAndKill, Kruskal, Sidewinder,
//		  BinaryTree, Division, WeaveCross, Wilson
//		• Solving: A* over open links, tunnel hops in single steps
//		• Distance maps: single-source depth tables for rating & rendering
//		• Braiding: deadend removal, trees into looped arenas
//		• Analysis: components, deadends, perfection checks, diameter
//		• Builder: one plain-data Blueprint in, finished maze out
//
// ✨ Why choose lbrnth?
//
//   - Deterministic - one seed, one maze, byte for byte
//   - Topology-agnostic - algorithms speak to cells, not coordinates
//   - Honest errors - package sentinels, errors.Is all the way down
//   - Small surface - plain data in, plain results out
//
// Under the hood, everything is organized under these subpackages:
//
//	core/     - Maze, Cell, Side, topologies, walls & openings
//	generate/ - the eight carving algorithms behind one enum
//	astar/    - the path solver
//	distmap/  - single-source distance tables
//	braid/    - deadend removal
//	analyze/  - structure checks & diameter
//	builder/  - the Blueprint pipeline
//	examples/ - runnable scenarios
//
// Quick ASCII example:
//
//	    ┌──┬─────┐
//	    │  ╷  ╶──┤      a 4x3 square maze: one tree,
//	    ├─ └──┐  │      eleven links, one way through
//	    └─────┴──┘
//
// Start with builder.Build for the one-call pipeline, or compose the
// packages yourself; every stochastic stage takes the maze and a
// caller-owned *rand.Rand.
//
//	go get github.com/katalvlaran/lbrnth
package lbrnth
