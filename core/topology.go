// Package core: the topology strategy behind neighbor resolution.
//
// Every topology implements the resolver interface; cells delegate all
// adjacency questions to their maze's resolver. Resolution is pure and
// state-derived: nothing caches neighbor lists, so mutations that affect
// adjacency (weave tunnel flags, diagonal shadows) are always observed.
package core

// resolver answers the adjacency questions of one topology.
//
// sides     - the valid side set of a cell, in enumeration order.
// neighbor  - the practical cell across one side (first of the fan), or nil.
// fan       - every cell across one side; len > 1 only for polar Outward.
// span      - the geometric cells across one side, ignoring dynamic blocking
//             (diagonal shadows, tunnel flags); empty exactly on boundary or
//             invalid sides. Resets and opening detection use it.
// relation  - the side leading from a to b, plus the intermediate cells of a
//             weave long connect; ErrNotNeighbors when no relation exists.
type resolver interface {
	sides(c *Cell) []Side
	neighbor(c *Cell, s Side) *Cell
	fan(c *Cell, s Side) []*Cell
	span(c *Cell, s Side) []*Cell
	relation(a, b *Cell) (Side, []*Cell, error)
}

// newResolver wires the topology strategy for a maze under construction.
func newResolver(m *Maze) (resolver, error) {
	switch m.kind {
	case Square:
		return &gridResolver{cartesianBase{m}}, nil
	case Hex:
		return &hexResolver{cartesianBase{m}}, nil
	case Triangle:
		return &triResolver{cartesianBase{m}}, nil
	case OctoSquare:
		return &octoResolver{cartesianBase{m}}, nil
	case DiagSquare:
		return &diagResolver{cartesianBase{m}}, nil
	case Polar:
		return &polarResolver{m}, nil
	case Weave:
		return &weaveResolver{cartesianBase{m}}, nil
	default:
		return nil, ErrUnknownTopology
	}
}

// Fixed side sets, ordered by side enumeration.
var (
	quadSides = []Side{North, East, South, West}
	octoSides = []Side{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
	hexSides  = []Side{NorthEast, East, SouthEast, SouthWest, West, NorthWest}
	triUp     = []Side{East, South, West}
	triDown   = []Side{North, East, West}
)

// cartesianBase carries the helpers shared by all grid-shaped resolvers.
type cartesianBase struct {
	m *Maze
}

// at returns the cell at (x, y), nil out of bounds.
func (b cartesianBase) at(x, y int) *Cell { return b.m.CellAt(x, y) }

// step returns the cell one unit offset away across s, nil when s has no
// fixed offset or the target is out of bounds.
func (b cartesianBase) step(c *Cell, s Side) *Cell {
	dx, dy, ok := s.Offset()
	if !ok {
		return nil
	}
	p := c.pos.(Point)

	return b.at(p.X+dx, p.Y+dy)
}

// match finds the side of set whose unit offset carries a to b.
func (b cartesianBase) match(a, o *Cell, set []Side) (Side, bool) {
	pa, po := a.pos.(Point), o.pos.(Point)
	dx, dy := po.X-pa.X, po.Y-pa.Y
	for _, s := range set {
		sx, sy, ok := s.Offset()
		if ok && sx == dx && sy == dy {
			return s, true
		}
	}

	return 0, false
}

// singleFan wraps a 0..1 neighbor into the fan shape.
func singleFan(n *Cell) []*Cell {
	if n == nil {
		return nil
	}

	return []*Cell{n}
}
