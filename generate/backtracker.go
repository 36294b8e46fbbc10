// Package generate: the iterative depth-first carver.
package generate

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lbrnth/core"
)

// backtracker carves a perfect maze with an explicit stack.
//
// Steps:
//  1. Validate handles and topology; reset to the fully walled state.
//  2. Push a random start cell.
//  3. At the stack top, pick uniformly among unvisited neighbors. A
//     candidate the topology refuses to connect (a freshly shadowed
//     diagonal) is discarded without replacement and the draw repeats.
//  4. On success connect, mark, push, descend; on exhaustion pop.
//  5. Empty stack means every reachable cell is part of the tree.
//
// Produces long winding corridors with few junctions.
// Complexity: O(cells * sides), space O(cells) for the stack.
func backtracker(m *core.Maze, r *rand.Rand) error {
	if err := validate(Backtracker, m, r); err != nil {
		return fmt.Errorf("backtracker: %w", err)
	}
	m.ResetFull()

	cells := m.Cells()
	start := cells[r.Intn(len(cells))]
	start.SetVisited(true)
	stack := []*core.Cell{start}

	var cand []*core.Cell
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		cand = unvisitedNeighbors(cur, cand)

		advanced := false
		for len(cand) > 0 {
			i := r.Intn(len(cand))
			next := cand[i]
			if err := cur.Connect(next); err != nil {
				// Unreachable after all: drop and redraw.
				cand[i] = cand[len(cand)-1]
				cand = cand[:len(cand)-1]

				continue
			}
			next.SetVisited(true)
			stack = append(stack, next)
			advanced = true

			break
		}
		if !advanced {
			stack = stack[:len(stack)-1]
		}
	}

	return nil
}
