// Package generate: recursive division, the wall-adder.
package generate

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lbrnth/core"
)

// region is one open rectangle awaiting a split, in cell coordinates.
type region struct {
	x, y, w, h int
}

// division starts from the fully open field and adds walls: each region is
// split perpendicular to its longer axis (ties broken randomly) by a wall
// with exactly one randomly placed passage, and the two halves are queued.
// Regions stop subdividing once either dimension reaches 1.
//
// On the diagonal-square grid a split also walls both diagonal families
// crossing the line, otherwise the halves would stay connected under the
// new wall. Quadrilateral grids only.
//
// The texture is the recognisable "rooms and long walls" one.
// Complexity: O(cells) amortised. Memory: O(regions) for the work stack.
func division(m *core.Maze, r *rand.Rand) error {
	if err := validate(Division, m, r); err != nil {
		return fmt.Errorf("division: %w", err)
	}
	m.ResetEmpty()

	width, height := m.Size()
	stack := []region{{x: 0, y: 0, w: width, h: height}}
	for len(stack) > 0 {
		reg := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if reg.w < 2 || reg.h < 2 {
			continue
		}

		vertical := reg.w > reg.h
		if reg.w == reg.h {
			vertical = r.Intn(2) == 1
		}

		var err error
		var halves [2]region
		if vertical {
			halves, err = splitVertical(m, reg, r)
		} else {
			halves, err = splitHorizontal(m, reg, r)
		}
		if err != nil {
			return fmt.Errorf("division: %w", err)
		}
		stack = append(stack, halves[0], halves[1])
	}

	return nil
}

// splitHorizontal adds an east-west wall between two rows of reg, leaving
// one gap, and returns the upper and lower halves.
func splitHorizontal(m *core.Maze, reg region, r *rand.Rand) ([2]region, error) {
	wallY := reg.y + 1 + r.Intn(reg.h-1)
	gapX := reg.x + r.Intn(reg.w)

	diag := m.Kind() == core.DiagSquare
	for x := reg.x; x < reg.x+reg.w; x++ {
		upper := m.CellAt(x, wallY-1)
		if x != gapX {
			if err := upper.Close(core.South); err != nil {
				return [2]region{}, err
			}
		}
		if !diag {
			continue
		}
		// Both diagonal families cross the wall line. A shadowed diagonal
		// has no practical neighbor to pair with, so wall each half
		// explicitly.
		if x+1 < reg.x+reg.w {
			if err := upper.Close(core.SouthEast); err != nil {
				return [2]region{}, err
			}
			if err := m.CellAt(x+1, wallY).Close(core.NorthWest); err != nil {
				return [2]region{}, err
			}
		}
		if x-1 >= reg.x {
			if err := upper.Close(core.SouthWest); err != nil {
				return [2]region{}, err
			}
			if err := m.CellAt(x-1, wallY).Close(core.NorthEast); err != nil {
				return [2]region{}, err
			}
		}
	}

	top := region{x: reg.x, y: reg.y, w: reg.w, h: wallY - reg.y}
	bottom := region{x: reg.x, y: wallY, w: reg.w, h: reg.h - top.h}

	return [2]region{top, bottom}, nil
}

// splitVertical adds a north-south wall between two columns of reg, leaving
// one gap, and returns the left and right halves.
func splitVertical(m *core.Maze, reg region, r *rand.Rand) ([2]region, error) {
	wallX := reg.x + 1 + r.Intn(reg.w-1)
	gapY := reg.y + r.Intn(reg.h)

	diag := m.Kind() == core.DiagSquare
	for y := reg.y; y < reg.y+reg.h; y++ {
		left := m.CellAt(wallX-1, y)
		if y != gapY {
			if err := left.Close(core.East); err != nil {
				return [2]region{}, err
			}
		}
		if !diag {
			continue
		}
		if y-1 >= reg.y {
			if err := left.Close(core.NorthEast); err != nil {
				return [2]region{}, err
			}
			if err := m.CellAt(wallX, y-1).Close(core.SouthWest); err != nil {
				return [2]region{}, err
			}
		}
		if y+1 < reg.y+reg.h {
			if err := left.Close(core.SouthEast); err != nil {
				return [2]region{}, err
			}
			if err := m.CellAt(wallX, y+1).Close(core.NorthWest); err != nil {
				return [2]region{}, err
			}
		}
	}

	lhs := region{x: reg.x, y: reg.y, w: wallX - reg.x, h: reg.h}
	rhs := region{x: wallX, y: reg.y, w: reg.w - lhs.w, h: reg.h}

	return [2]region{lhs, rhs}, nil
}
