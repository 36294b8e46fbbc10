// Package core: boundary openings.
//
// An opening is a hole punched through the outer wall of the maze, the usual
// entrance and exit of a scenario. OpeningSpec names a cell symbolically so
// that callers stay independent of concrete dimensions: "center of the top
// row" keeps meaning that after a resize. The maze records openings in the
// order they were added; solvers treat the first two as start and goal.
package core

import "fmt"

// Mark selects how one axis of an OpeningSpec is resolved.
type Mark uint8

// Axis marks. MarkAt reads AxisSpec.Index; the rest ignore it.
const (
	MarkAt Mark = iota
	MarkStart
	MarkCenter
	MarkEnd
)

// AxisSpec pins a single coordinate, either literally or symbolically.
type AxisSpec struct {
	Mark  Mark
	Index int
}

// OpeningSpec names a boundary cell. On Cartesian topologies X and Y are
// column and row; on the polar topology X is the index within the ring and
// Y is the ring number.
type OpeningSpec struct {
	X AxisSpec
	Y AxisSpec
}

// At is shorthand for a literal coordinate.
func At(i int) AxisSpec { return AxisSpec{Mark: MarkAt, Index: i} }

// Start marks coordinate 0 of its axis.
func Start() AxisSpec { return AxisSpec{Mark: MarkStart} }

// Center marks the middle of the axis extent.
func Center() AxisSpec { return AxisSpec{Mark: MarkCenter} }

// End marks the last coordinate of the axis.
func End() AxisSpec { return AxisSpec{Mark: MarkEnd} }

// resolveAxis maps an AxisSpec onto 0..extent-1.
func resolveAxis(a AxisSpec, extent int) (int, error) {
	var i int
	switch a.Mark {
	case MarkAt:
		i = a.Index
	case MarkStart:
		i = 0
	case MarkCenter:
		i = extent / 2
	case MarkEnd:
		i = extent - 1
	default:
		return 0, fmt.Errorf("resolveAxis: mark %d: %w", a.Mark, ErrNoSuchCell)
	}
	if i < 0 || i >= extent {
		return 0, fmt.Errorf("resolveAxis: index %d of %d: %w", i, extent, ErrNoSuchCell)
	}

	return i, nil
}

// AddOpening resolves spec to a cell, derives its boundary-facing side and
// force-opens that one wall bit. The cell must actually sit on the outer
// boundary and must not already hold an opening.
//
// Side derivation prefers the vertical boundary: a corner cell of a
// Cartesian maze opens through its top or bottom wall, not the lateral one.
// On the polar topology only the outermost ring qualifies and the Outward
// bit is cleared directly, since no cell exists beyond it.
//
// Returns the opened cell, or ErrNoSuchCell / ErrOpeningExists /
// ErrNotBoundary.
func (m *Maze) AddOpening(spec OpeningSpec) (*Cell, error) {
	c, err := m.resolveSpec(spec)
	if err != nil {
		return nil, err
	}
	for _, o := range m.openings {
		if o == c {
			return nil, fmt.Errorf("AddOpening: cell %d: %w", c.index, ErrOpeningExists)
		}
	}
	s, err := m.boundarySide(c)
	if err != nil {
		return nil, err
	}
	c.clearBit(s)
	m.openings = append(m.openings, c)

	return c, nil
}

// resolveSpec resolves both axes of an OpeningSpec against the maze shape.
// Polar resolves the ring first, because the index extent depends on it.
func (m *Maze) resolveSpec(spec OpeningSpec) (*Cell, error) {
	if m.kind == Polar {
		ring, err := resolveAxis(spec.Y, m.radius)
		if err != nil {
			return nil, err
		}
		idx, err := resolveAxis(spec.X, m.ringW[ring])
		if err != nil {
			return nil, err
		}

		return m.rows[ring][idx], nil
	}
	x, err := resolveAxis(spec.X, m.width)
	if err != nil {
		return nil, err
	}
	y, err := resolveAxis(spec.Y, m.height)
	if err != nil {
		return nil, err
	}

	return m.rows[y][x], nil
}

// boundarySide picks the wall bit an opening at c should clear: the first
// side, in precedence order, that belongs to the cell's side set and has no
// cell beyond it. Vertical boundaries outrank horizontal ones.
func (m *Maze) boundarySide(c *Cell) (Side, error) {
	if m.kind == Polar {
		if c.pos.(PolarPoint).Ring == m.radius-1 {
			return Outward, nil
		}

		return 0, fmt.Errorf("boundarySide: ring %d: %w", c.pos.(PolarPoint).Ring, ErrNotBoundary)
	}

	p := c.pos.(Point)
	var cand []Side
	if p.Y == 0 {
		cand = append(cand, North, NorthEast, NorthWest)
	}
	if p.Y == m.height-1 {
		cand = append(cand, South, SouthEast, SouthWest)
	}
	if p.X == 0 {
		cand = append(cand, West, NorthWest, SouthWest)
	}
	if p.X == m.width-1 {
		cand = append(cand, East, NorthEast, SouthEast)
	}
	for _, s := range cand {
		if c.validSide(s) && len(m.topo.span(c, s)) == 0 {
			return s, nil
		}
	}

	return 0, fmt.Errorf("boundarySide: (%d,%d): %w", p.X, p.Y, ErrNotBoundary)
}
