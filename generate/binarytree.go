// Package generate: the binary-tree carver.
package generate

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lbrnth/core"
)

// binaryTree opens exactly one of two bias sides per cell, uniformly when
// both exist, else whichever exists. The bias pair follows the tiling:
// north/east on quadrilateral grids, north-west/east on hex, inward/
// clockwise on polar. Cells with no bias side (the root corner, the hub)
// open nothing; every chain of bias links terminates there, so the result
// is a tree.
//
// The cheapest carver in the package, and the most biased: quadrilateral
// grids show the two telltale open border corridors.
// Complexity: O(cells). Memory: O(1).
func binaryTree(m *core.Maze, r *rand.Rand) error {
	if err := validate(BinaryTree, m, r); err != nil {
		return fmt.Errorf("binaryTree: %w", err)
	}
	m.ResetFull()

	if m.Kind() == core.Polar {
		return binaryTreePolar(m, r)
	}

	first, second := core.North, core.East
	if m.Kind() == core.Hex {
		first = core.NorthWest
	}
	for _, c := range m.Cells() {
		var n *core.Cell
		a, b := c.Neighbor(first), c.Neighbor(second)
		switch {
		case a != nil && b != nil:
			n = a
			if r.Intn(2) == 1 {
				n = b
			}
		case a != nil:
			n = a
		case b != nil:
			n = b
		case m.Kind() == core.Hex:
			// One-wide hex strips lose north-west on even rows; lean on
			// north-east so the column still chains to the root.
			n = c.Neighbor(core.NorthEast)
		}
		if n == nil {
			continue
		}
		if err := c.Connect(n); err != nil {
			return fmt.Errorf("binaryTree: %w", err)
		}
	}

	return nil
}

// binaryTreePolar links every off-hub cell inward or clockwise. The seam
// cell of each ring never links clockwise, otherwise a fully clockwise ring
// would close into a cycle.
func binaryTreePolar(m *core.Maze, r *rand.Rand) error {
	widths := m.RingWidths()
	for ring := 1; ring < len(widths); ring++ {
		for i := 0; i < widths[ring]; i++ {
			c := m.CellAt(i, ring)
			n := c.Neighbor(core.Inward)
			if cw := c.Neighbor(core.Clockwise); cw != nil && i != 0 && r.Intn(2) == 1 {
				n = cw
			}
			if err := c.Connect(n); err != nil {
				return fmt.Errorf("binaryTree: %w", err)
			}
		}
	}

	return nil
}
