// Package generate: Wilson's algorithm, the unbiased carver.
package generate

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lbrnth/core"
)

// wilson carves a uniform spanning tree by loop-erased random walks. One
// uniform cell seeds the tree; each round walks from an unvisited cell,
// recording the chosen exit per walked cell so that a revisit overwrites
// the earlier exit and erases the loop, then carves the recorded chain into
// the tree. Rounds repeat until no unvisited cells remain.
//
// The only generator here with no bias at all: every spanning tree of the
// grid is equally likely. Also the slowest; early walks wander long before
// the tree is large enough to hit.
func wilson(m *core.Maze, r *rand.Rand) error {
	if err := validate(Wilson, m, r); err != nil {
		return fmt.Errorf("wilson: %w", err)
	}
	m.ResetFull()

	pool := m.Cells()
	seed := pickCell(&pool, r)
	seed.SetVisited(true)

	exits := make(map[*core.Cell]*core.Cell, len(pool))
	for len(pool) > 0 {
		start := pickCell(&pool, r)
		if start.Visited() {
			// Absorbed by an earlier walk; nothing left to do.
			continue
		}

		// 1) Walk until the tree is hit. Only the last exit per cell
		// survives, which is exactly the loop erasure.
		for c := start; !c.Visited(); {
			ns := c.Neighbors()
			next := ns[r.Intn(len(ns))]
			exits[c] = next
			c = next
		}

		// 2) Carve the recorded chain. On the diagonal grid an earlier
		// segment of this same chain can shadow a later diagonal one;
		// truncate there and let a later walk finish the remainder.
		for c := start; !c.Visited(); {
			next := exits[c]
			if err := c.Connect(next); err != nil {
				break
			}
			c.SetVisited(true)
			c = next
		}
	}

	return nil
}
