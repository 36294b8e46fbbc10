// Package core: Position primitives and their topology metrics.
package core

// Position is an opaque, comparable cell coordinate. Implementations are
// plain structs, so Position values may key maps and compare with ==.
//
// Dist is the topology family's own distance metric: Manhattan for the
// Cartesian family, ring-wrapped for the polar family. Positions from
// different families carry no metric information about each other and
// report 0, which keeps the solver's heuristic admissible.
type Position interface {
	// Dist returns the metric distance to other, in cells.
	Dist(other Position) int
}

// Point is the Cartesian coordinate used by every grid-shaped topology.
// X grows east, Y grows south (raster order).
type Point struct {
	X, Y int
}

// Dist returns the Manhattan distance |dx|+|dy| when other is a Point, else 0.
func (p Point) Dist(other Position) int {
	q, ok := other.(Point)
	if !ok {
		return 0
	}

	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// PolarPoint is the circular-topology coordinate: Index counts cells within
// the ring (clockwise from the seam), Ring counts rings from the hub, and
// Width is the cell count of that ring. Ring widths grow outward in exact
// multiples, so two indices always compare after scaling to the wider ring.
type PolarPoint struct {
	Index, Ring, Width int
}

// Dist returns the ring-wrapped metric: the radial gap plus the angular gap
// taken the shorter way around, measured in cells of the wider ring.
func (p PolarPoint) Dist(other Position) int {
	q, ok := other.(PolarPoint)
	if !ok {
		return 0
	}
	radial := abs(p.Ring - q.Ring)

	// Degenerate widths (the hub) have no angular component.
	if p.Width <= 1 || q.Width <= 1 {
		return radial
	}

	// 1) Scale both indices onto the wider ring. Widths are exact multiples
	//    up the ring chain, so the scaling is integral.
	wide, a, b := p.Width, p.Index, q.Index
	if q.Width > wide {
		wide = q.Width
	}
	a = a * (wide / p.Width)
	b = b * (wide / q.Width)

	// 2) Take the shorter way around the ring.
	delta := abs(a - b)
	if wrap := wide - delta; wrap < delta {
		delta = wrap
	}

	return radial + delta
}

// abs avoids pulling in math for an int metric.
func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
