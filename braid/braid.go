// Package braid removes deadends from a carved maze by knocking one extra
// wall out of each, turning tree corridors into loops.
//
// A deadend is a cell with exactly one open side. Braiding draws deadends
// uniformly without replacement and opens one of the walled sides that has
// a neighbor to pair with, chosen uniformly when several qualify. Every
// opened wall closes a cycle, so a fully braided maze has no deadends left
// and many alternative routes.
//
// The sweep size is configurable: WithCount asks for an absolute number of
// openings, WithPercent for a share of the deadends present at call time.
// The default is percent 1, a full sweep.
//
// Notes on implementation choices:
//
//   - The candidate pool is an index-ordered slice, not a set. Draws must be
//     reproducible from the caller's seed, and map iteration order is not.
//   - Candidates are re-checked when drawn. Opening a wall into a
//     neighbouring deadend gives that neighbour a second exit, and a cell
//     that stopped being a deadend mid-sweep is skipped, not forced open.
//   - On weave mazes a wall may face a neighbour that sits across a tunnel.
//     Those sides stay shut: braiding only opens walls between directly
//     adjacent cells.
package braid

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lbrnth/core"
)

// Braid opens walls in deadend cells of m, drawing candidates from r, and
// returns the number of deadends actually opened. The maze is modified in
// place; cells that lost deadend status during the sweep are skipped, so
// the returned count can fall short of the requested target.
func Braid(m *core.Maze, r *rand.Rand, opts ...Option) (int, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(m, r, &o); err != nil {
		return 0, fmt.Errorf("Braid: %w", err)
	}

	pool := deadends(m)
	target := len(pool)
	switch {
	case o.hasCount:
		if o.Count < target {
			target = o.Count
		}
	case o.hasPercent:
		// Round to nearest so small percentages of small pools still bite.
		target = int(float64(target)*o.Percent + 0.5)
	}

	var opened int
	for opened < target && len(pool) > 0 {
		i := r.Intn(len(pool))
		c := pool[i]
		pool[i] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]

		if openSides(c) != 1 {
			continue
		}
		sides := openable(m, c)
		if len(sides) == 0 {
			continue
		}
		if err := c.Open(sides[r.Intn(len(sides))]); err != nil {
			continue
		}
		opened++
	}

	return opened, nil
}

// validate rejects nil inputs and out-of-range targets before any mutation.
func validate(m *core.Maze, r *rand.Rand, o *Options) error {
	switch {
	case m == nil:
		return ErrNilMaze
	case r == nil:
		return ErrNilRand
	case o.hasCount && o.hasPercent:
		return ErrAmbiguousTarget
	case o.hasCount && o.Count < 0:
		return ErrBadCount
	case o.hasPercent && (o.Percent < 0 || o.Percent > 1):
		return ErrBadPercent
	default:
		return nil
	}
}

// deadends collects every cell with exactly one open side, in index order
// so the draw sequence depends only on the caller's seed.
func deadends(m *core.Maze) []*core.Cell {
	var ds []*core.Cell
	for _, c := range m.Cells() {
		if openSides(c) == 1 {
			ds = append(ds, c)
		}
	}

	return ds
}

// openSides counts the sides of c without a wall. Boundary openings count
// too: an entrance cell with one corridor already has two exits and is not
// a deadend.
func openSides(c *core.Cell) int {
	var n int
	for _, s := range c.Sides() {
		if !c.HasWall(s) {
			n++
		}
	}

	return n
}

// openable lists the walled sides of c that can legally be opened: a
// practical neighbour must exist, and on weave mazes it must be directly
// adjacent rather than across a tunnel.
func openable(m *core.Maze, c *core.Cell) []core.Side {
	var sides []core.Side
	for _, s := range c.Sides() {
		if !c.HasWall(s) {
			continue
		}
		n := c.Neighbor(s)
		if n == nil {
			continue
		}
		if m.Kind() == core.Weave && c.Pos().Dist(n.Pos()) != 1 {
			continue
		}
		sides = append(sides, s)
	}

	return sides
}
