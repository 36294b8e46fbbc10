// Package generate: the hunt-and-kill carver.
package generate

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lbrnth/core"
)

// huntAndKill alternates random walks with a deterministic raster hunt.
//
// The walk connects the current cell to a uniformly chosen unvisited
// neighbor until none remain. The hunt then scans cells in raster order for
// the first unvisited cell adjacent to the visited region and connects it
// to its first visited neighbor in side-enumeration order; the scan order
// is deliberately deterministic so identical seeds reproduce identical
// mazes. The walk resumes there. No hit ends the run.
//
// Texture: similar to the backtracker but without a stack; walks bite into
// the visited region rather than retreating along it.
// Complexity: O(cells^2) worst case on the hunts, O(cells) space.
func huntAndKill(m *core.Maze, r *rand.Rand) error {
	if err := validate(HuntAndKill, m, r); err != nil {
		return fmt.Errorf("huntAndKill: %w", err)
	}
	m.ResetFull()

	cells := m.Cells()
	cur := cells[r.Intn(len(cells))]
	cur.SetVisited(true)

	var cand []*core.Cell
	for cur != nil {
		// 1) Walk until boxed in.
		for {
			cand = unvisitedNeighbors(cur, cand)
			next := walkStep(cur, cand, r)
			if next == nil {
				break
			}
			next.SetVisited(true)
			cur = next
		}

		// 2) Hunt in raster order for a fresh cell touching the tree.
		cur = nil
		for _, c := range cells {
			if c.Visited() {
				continue
			}
			if n := firstVisitedNeighbor(c); n != nil {
				if err := c.Connect(n); err != nil {
					return fmt.Errorf("huntAndKill: hunt connect: %w", err)
				}
				c.SetVisited(true)
				cur = c

				break
			}
		}
	}

	return nil
}

// walkStep draws uniformly from cand, discarding candidates the topology
// refuses to connect. Returns the connected cell or nil when cand drains.
func walkStep(cur *core.Cell, cand []*core.Cell, r *rand.Rand) *core.Cell {
	for len(cand) > 0 {
		i := r.Intn(len(cand))
		next := cand[i]
		if err := cur.Connect(next); err != nil {
			cand[i] = cand[len(cand)-1]
			cand = cand[:len(cand)-1]

			continue
		}

		return next
	}

	return nil
}

// firstVisitedNeighbor returns c's first visited practical neighbor in
// side-enumeration order, nil when the tree is not adjacent.
func firstVisitedNeighbor(c *core.Cell) *core.Cell {
	for _, s := range c.Sides() {
		for _, n := range c.NeighborsAcross(s) {
			if n.Visited() {
				return n
			}
		}
	}

	return nil
}
