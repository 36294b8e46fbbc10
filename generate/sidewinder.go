// Package generate: the sidewinder carver.
package generate

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lbrnth/core"
)

// sidewinder carves row by row: each cell either extends the current run
// eastward on a coin flip or closes the run with one uniform northward
// escape. The top row has no escapes and becomes a single corridor, the
// signature sidewinder artifact.
//
// Quadrilateral grids only; the row/run notion has no hex or polar analog.
// Complexity: O(cells). Memory: O(width) for the run buffer.
func sidewinder(m *core.Maze, r *rand.Rand) error {
	if err := validate(Sidewinder, m, r); err != nil {
		return fmt.Errorf("sidewinder: %w", err)
	}
	m.ResetFull()

	width, height := m.Size()
	run := make([]*core.Cell, 0, width)
	for y := 0; y < height; y++ {
		run = run[:0]
		for x := 0; x < width; x++ {
			c := m.CellAt(x, y)
			run = append(run, c)

			east := c.Neighbor(core.East)
			north := c.Neighbor(core.North)
			if east != nil && (north == nil || r.Intn(2) == 0) {
				if err := c.Connect(east); err != nil {
					return fmt.Errorf("sidewinder: %w", err)
				}

				continue
			}

			// Close the run: one uniform member escapes northward. Every
			// member shares the row, so the escape exists whenever north
			// does.
			if north != nil {
				esc := run[r.Intn(len(run))]
				if err := esc.Connect(esc.Neighbor(core.North)); err != nil {
					return fmt.Errorf("sidewinder: %w", err)
				}
			}
			run = run[:0]
		}
	}

	return nil
}
