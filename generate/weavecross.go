// Package generate: the weave generator with planted crossings.
package generate

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lbrnth/core"
)

// weaveCross plants over/under crossings at random interior cells, then
// completes the spanning tree with the pre-seeded Kruskal phase, which folds
// the planted passages into the forest instead of cycling through them. The
// result is a perfect maze containing tunnels.
//
// Each planted crossing is a surface corridor through a middle cell on one
// axis and a two-cell connect between its flanks on the other, which flags
// the middle as a tunnel. Attempts colliding with an earlier crossing are
// skipped, so the crossing count is an upper bound. crossings < 0 selects
// the automatic density of one attempt per eight cells; grids thinner than
// three cells or built with a zero weave limit plant nothing and degrade to
// a plain Kruskal carve.
func weaveCross(m *core.Maze, r *rand.Rand, crossings int) error {
	if err := validate(WeaveCross, m, r); err != nil {
		return fmt.Errorf("weaveCross: %w", err)
	}
	m.ResetFull()

	if crossings < 0 {
		crossings = m.CellCount() / 8
	}
	width, height := m.Size()
	if m.MaxWeave() >= 1 && width >= 3 && height >= 3 {
		for i := 0; i < crossings; i++ {
			if err := plantCrossing(m, r); err != nil {
				return fmt.Errorf("weaveCross: plant: %w", err)
			}
		}
	}

	if err := kruskalCarve(m, r); err != nil {
		return fmt.Errorf("weaveCross: %w", err)
	}

	return nil
}

// plantCrossing tries one crossing at a uniformly chosen interior cell. The
// middle and all four orthogonal neighbors must be untouched; a collision
// with an earlier crossing skips the attempt without error.
func plantCrossing(m *core.Maze, r *rand.Rand) error {
	width, height := m.Size()
	x := 1 + r.Intn(width-2)
	y := 1 + r.Intn(height-2)

	mid := m.CellAt(x, y)
	north, south := m.CellAt(x, y-1), m.CellAt(x, y+1)
	west, east := m.CellAt(x-1, y), m.CellAt(x+1, y)
	for _, c := range []*core.Cell{mid, north, south, west, east} {
		if c.Tunnel() != core.TunnelNone || !isolated(c) {
			return nil
		}
	}

	// Surface corridor on one axis, tunnel under it on the other.
	over, under := [2]*core.Cell{north, south}, [2]*core.Cell{west, east}
	if r.Intn(2) == 1 {
		over, under = under, over
	}
	if err := mid.Connect(over[0]); err != nil {
		return err
	}
	if err := mid.Connect(over[1]); err != nil {
		return err
	}

	return under[0].Connect(under[1])
}

// isolated reports whether every side of c is still walled.
func isolated(c *core.Cell) bool {
	for _, s := range c.Sides() {
		if !c.HasWall(s) {
			return false
		}
	}

	return true
}
