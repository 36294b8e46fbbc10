// Package astar defines the result type, configuration options and sentinel
// errors for the A* maze solver.
package astar

import (
	"errors"

	"github.com/katalvlaran/lbrnth/core"
)

// Sentinel errors returned by Solve and SolveAndStore.
var (
	// ErrNilMaze indicates that a nil *core.Maze was passed in.
	ErrNilMaze = errors.New("astar: maze is nil")

	// ErrNeedOpenings indicates that no endpoints were supplied and the maze
	// carries fewer than two openings to default to.
	ErrNeedOpenings = errors.New("astar: need two openings or explicit endpoints")

	// ErrForeignCell indicates that an endpoint belongs to another maze.
	ErrForeignCell = errors.New("astar: endpoint belongs to another maze")

	// ErrNoSolution indicates that the frontier drained before the goal was
	// reached. Expected on braided input with walled-off regions or when the
	// maze was never carved; callers should branch on it, not fail hard.
	ErrNoSolution = errors.New("astar: no path between the endpoints")

	// ErrNilEndpoint guards the WithEndpoints constructor.
	ErrNilEndpoint = errors.New("astar: WithEndpoints requires non-nil cells")
)

// Options configures a single solve.
//
// From, To - explicit endpoints. When either is nil, Solve falls back to the
// maze's first two openings in insertion order.
type Options struct {
	From, To *core.Cell
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithEndpoints overrides the opening-derived endpoints. Panics on a nil
// cell; passing one is a programming error, not an input condition.
func WithEndpoints(from, to *core.Cell) Option {
	return func(o *Options) {
		if from == nil || to == nil {
			panic(ErrNilEndpoint.Error())
		}
		o.From, o.To = from, to
	}
}

// Result carries the solved path and the accounting of one search.
type Result struct {
	// Path walks open passages from the start to the goal, both inclusive.
	// A tunnel hop on the weave topology is a single step between its two
	// surface endpoints; the tunnelled cell does not appear.
	Path []*core.Cell

	// Cost is the number of steps taken, len(Path)-1.
	Cost int

	// Expanded counts the cells the search finalized, a measure of how much
	// of the maze the heuristic had to touch before committing.
	Expanded int
}
