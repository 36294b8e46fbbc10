// Package core: Cell, the per-topology wall-state holder and neighbor resolver.
//
// A Cell owns one uint16 wall word (bit set = wall, bit clear = open passage)
// plus the generator scratch state the algorithm packages share: a visited
// flag and, on the weave topology, the tunnel axis. All wall mutation funnels
// through Connect/Open/Close, which keep the pairwise invariant: the state of
// side s on a cell always equals the state of s.Opposite() on the neighbor
// across s.
package core

import "fmt"

// Cell is one tile of a Maze. Cells are created by NewMaze and never
// constructed directly; the zero value is not usable.
type Cell struct {
	// maze owns this cell; all resolution goes through its topology.
	maze *Maze

	// pos is the cell's immutable coordinate.
	pos Position

	// index is the cell's stable raster position within Maze.Cells.
	index int

	// walls is the wall word: one bit per Side, set = wall.
	walls uint16

	// visited is shared scratch state for the generator family.
	visited bool

	// tunnel is the under-passage axis; meaningful on the weave topology only.
	tunnel TunnelAxis
}

// Pos returns the cell's coordinate.
func (c *Cell) Pos() Position { return c.pos }

// Index returns the cell's stable position within Maze.Cells (raster order).
// Distance tables are indexed by it.
func (c *Cell) Index() int { return c.index }

// Walls returns the raw wall word. Bits of sides outside the cell's side set
// are always set. Intended for renderers; use HasWall for topology-correct
// reads (the polar outward side needs more than one bit).
func (c *Cell) Walls() uint16 { return c.walls }

// Visited reports the generator scratch flag.
func (c *Cell) Visited() bool { return c.visited }

// SetVisited sets the generator scratch flag.
func (c *Cell) SetVisited(v bool) { c.visited = v }

// Tunnel returns the under-passage axis of a weave cell (TunnelNone elsewhere).
func (c *Cell) Tunnel() TunnelAxis { return c.tunnel }

// Sides returns the cell's valid side set in enumeration order. The set is
// position-dependent on parity topologies (triangle base, octagon/square mix)
// and ring-dependent on the polar topology.
func (c *Cell) Sides() []Side { return c.maze.topo.sides(c) }

// HasWall reports whether side s is closed. For the polar outward side the
// answer is true only when every mapped outward cell is walled toward this
// cell; a single bit is unreliable once the fan-out exceeds one. Sides
// outside the cell's set always report a wall.
func (c *Cell) HasWall(s Side) bool {
	if c.maze.kind == Polar && s == Outward {
		if kids := c.maze.topo.fan(c, Outward); len(kids) > 0 {
			for _, k := range kids {
				if !k.hasBit(Inward) {
					return false
				}
			}

			return true
		}
	}

	return c.hasBit(s)
}

// Neighbor returns the practical neighbor across s, or nil when none exists:
// out of bounds, an invalid side, a shadowed diagonal, or a weave scan that
// runs past the skip limit. When the polar outward side fans out to several
// cells, the first is returned; use NeighborsAcross for the full fan.
func (c *Cell) Neighbor(s Side) *Cell { return c.maze.topo.neighbor(c, s) }

// NeighborsAcross returns every cell across s. Only the polar outward side
// can yield more than one; all other sides yield zero or one.
func (c *Cell) NeighborsAcross(s Side) []*Cell { return c.maze.topo.fan(c, s) }

// Neighbors returns all existing practical neighbors in side-enumeration
// order, with the polar outward fan expanded in ring order.
func (c *Cell) Neighbors() []*Cell {
	var out []*Cell
	for _, s := range c.Sides() {
		out = append(out, c.maze.topo.fan(c, s)...)
	}

	return out
}

// Linked reports whether an open passage exists between c and o. False when
// the cells share no relation at all.
func (c *Cell) Linked(o *Cell) bool {
	if o == nil || o.maze != c.maze || o == c {
		return false
	}
	s, _, err := c.maze.topo.relation(c, o)
	if err != nil {
		return false
	}
	if s == Outward {
		// Truth lives in the child's inward bit.
		return !o.hasBit(Inward)
	}

	return !c.hasBit(s)
}

// Connect opens the passage between c and o. It derives the side relation
// from the two positions, clears the matching bit pair, and preserves the
// pairwise invariant. Symmetric and idempotent.
//
// On the weave topology a connect spanning k>1 cells along an axis flags
// every unflagged intermediate as a tunnel parallel to the travel axis and
// clears bits on the two endpoints only. An intermediate already tunnelled
// on the perpendicular axis rejects the connect: both levels are occupied.
//
// Errors: ErrNoSuchCell (nil), ErrWrongMaze, ErrNotNeighbors.
func (c *Cell) Connect(o *Cell) error {
	// 1) Validate the pairing before touching any state.
	if o == nil {
		return fmt.Errorf("Connect: nil cell: %w", ErrNoSuchCell)
	}
	if o.maze != c.maze {
		return fmt.Errorf("Connect: %w", ErrWrongMaze)
	}
	if o == c {
		return fmt.Errorf("Connect: cell to itself: %w", ErrNotNeighbors)
	}

	// 2) Derive the relation; mids is non-empty only for weave long connects.
	s, mids, err := c.maze.topo.relation(c, o)
	if err != nil {
		return fmt.Errorf("Connect: %w", err)
	}

	// 3) Reject occupied tunnels first so failure leaves no partial state.
	axis := s.Axis()
	for _, t := range mids {
		if t.tunnel != TunnelNone && t.tunnel != axis {
			return fmt.Errorf("Connect: intermediate at %v tunnelled across: %w", t.pos, ErrNotNeighbors)
		}
	}

	// 4) Flag fresh intermediates, then clear the endpoint pair.
	for _, t := range mids {
		if t.tunnel == TunnelNone {
			t.tunnel = axis
		}
	}
	c.clearBit(s)
	o.clearBit(s.Opposite())

	return nil
}

// Open clears the passage across s toward the practical neighbor. With a
// multi-cell outward fan the first child is opened; connect an explicit pair
// for finer control. Returns ErrNoSuchCell when no neighbor exists (boundary
// sides are opened through Maze.AddOpening, not here).
func (c *Cell) Open(s Side) error {
	if !c.validSide(s) {
		return fmt.Errorf("Open(%v): %w", s, ErrInvalidSide)
	}
	n := c.Neighbor(s)
	if n == nil {
		return fmt.Errorf("Open(%v): %w", s, ErrNoSuchCell)
	}

	return c.Connect(n)
}

// Close walls the passage across s, pairing with the neighbor when one
// exists. Closing a boundary-facing side re-walls an opening. Closing the
// polar outward side walls the entire fan; the parent's outward marker bit
// is re-set only when every child is walled again.
func (c *Cell) Close(s Side) error {
	if !c.validSide(s) {
		return fmt.Errorf("Close(%v): %w", s, ErrInvalidSide)
	}

	switch {
	case c.maze.kind == Polar && s == Outward:
		for _, kid := range c.maze.topo.fan(c, Outward) {
			kid.setBit(Inward)
		}
		c.setBit(Outward)
	case c.maze.kind == Polar && s == Inward:
		c.setBit(Inward)
		if p := c.Neighbor(Inward); p != nil {
			p.refreshOutwardMarker()
		}
	default:
		c.setBit(s)
		if n := c.Neighbor(s); n != nil {
			n.setBit(s.Opposite())
		}
	}

	return nil
}

// hasBit reports the raw wall bit for s.
func (c *Cell) hasBit(s Side) bool { return c.walls&uint16(s) != 0 }

// setBit walls side s without pairing.
func (c *Cell) setBit(s Side) { c.walls |= uint16(s) }

// clearBit opens side s without pairing.
func (c *Cell) clearBit(s Side) { c.walls &^= uint16(s) }

// validSide reports whether s belongs to the cell's side set.
func (c *Cell) validSide(s Side) bool {
	for _, v := range c.Sides() {
		if v == s {
			return true
		}
	}

	return false
}

// refreshOutwardMarker recomputes the best-effort outward bit from the fan:
// set when every child is walled, clear otherwise. Boundary cells (no fan)
// keep their bit untouched; openings own it there.
func (c *Cell) refreshOutwardMarker() {
	kids := c.maze.topo.fan(c, Outward)
	if len(kids) == 0 {
		return
	}
	for _, k := range kids {
		if !k.hasBit(Inward) {
			c.clearBit(Outward)

			return
		}
	}
	c.setBit(Outward)
}
