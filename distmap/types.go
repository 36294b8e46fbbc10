// Package distmap defines the DistanceMap result type, options and sentinel
// errors for single-source distance computation.
package distmap

import (
	"errors"

	"github.com/katalvlaran/lbrnth/core"
)

// Sentinel errors returned by Compute.
var (
	// ErrNilMaze indicates that a nil *core.Maze was passed in.
	ErrNilMaze = errors.New("distmap: maze is nil")

	// ErrForeignSource indicates that the WithSource cell belongs to another
	// maze.
	ErrForeignSource = errors.New("distmap: source belongs to another maze")

	// ErrUnreachable indicates that at least one cell could not be assigned
	// a distance even after tunnel back-fill; no partial map is returned.
	ErrUnreachable = errors.New("distmap: maze is not fully connected")

	// ErrNilSource guards the WithSource constructor.
	ErrNilSource = errors.New("distmap: WithSource requires a non-nil cell")
)

// Options configures a single Compute run.
//
// Source - the zero-distance cell. When nil, Compute falls back to the
// maze's first opening, and to cell index 0 when no openings exist.
type Options struct {
	Source *core.Cell
}

// Option is a functional option for configuring Compute.
type Option func(*Options)

// WithSource pins the zero-distance cell. Panics on nil; passing one is a
// programming error, not an input condition.
func WithSource(c *core.Cell) Option {
	return func(o *Options) {
		if c == nil {
			panic(ErrNilSource.Error())
		}
		o.Source = c
	}
}

// DistanceMap is the immutable result of one Compute: the step count from
// the source to every cell of the maze.
type DistanceMap struct {
	maze   *core.Maze
	source *core.Cell
	values []int
}

// Source returns the zero-distance cell the map was computed from.
func (d *DistanceMap) Source() *core.Cell { return d.source }

// Of returns the distance to c, or -1 when c is nil or foreign.
func (d *DistanceMap) Of(c *core.Cell) int {
	if c == nil || !d.maze.Contains(c) {
		return -1
	}

	return d.values[c.Index()]
}

// Max returns the greatest distance in the map and the cell holding it, the
// first such cell in index order on ties. The pair names the maze's hardest
// reachable point from the source.
func (d *DistanceMap) Max() (int, *core.Cell) {
	best, at := 0, 0
	for i, v := range d.values {
		if v > best {
			best, at = v, i
		}
	}

	return best, d.maze.Cells()[at]
}

// Values returns a copy of the table indexed by Cell.Index, shaped for
// Maze.SetDistances.
func (d *DistanceMap) Values() []int {
	out := make([]int, len(d.values))
	copy(out, d.values)

	return out
}
