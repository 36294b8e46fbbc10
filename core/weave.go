// Package core: the weave-topology resolver.
//
// A weave maze is a square grid where a passage may dive under a cell
// instead of stopping at it. A cell carrying a tunnel flag hosts an
// under-passage along the flagged axis; travel parallel to that axis skips
// over it and lands on the first cell beyond. The skip range is bounded by
// the maze's weave limit, so tunnels never run arbitrarily far.
package core

// weaveResolver layers tunnel skipping on top of plain grid adjacency.
type weaveResolver struct {
	cartesianBase
}

func (r *weaveResolver) sides(c *Cell) []Side { return quadSides }

// neighbor walks along the side's axis, skipping consecutive cells whose
// tunnel flag runs parallel to the travel direction. A cell with no flag,
// or a perpendicular flag, terminates the walk.
func (r *weaveResolver) neighbor(c *Cell, s Side) *Cell {
	axis := s.Axis()
	// A tunnel cell's surface corridor runs perpendicular to its
	// under-passage; parallel surface travel cannot start here.
	if c.tunnel == axis {
		return nil
	}
	cur := r.step(c, s)
	for skipped := 0; cur != nil; cur = r.step(cur, s) {
		if cur.tunnel == TunnelNone || cur.tunnel != axis {
			return cur
		}
		skipped++
		if skipped > r.m.maxWeave {
			return nil
		}
	}

	return nil
}

func (r *weaveResolver) fan(c *Cell, s Side) []*Cell { return singleFan(r.neighbor(c, s)) }

// span reports plain grid adjacency; tunnel flags do not bend it.
func (r *weaveResolver) span(c *Cell, s Side) []*Cell { return singleFan(r.step(c, s)) }

// relation resolves a pair that shares a row or column and is separated by
// at most maxWeave intermediate cells. The mids are returned so that
// Connect can vet and flag them.
func (r *weaveResolver) relation(a, b *Cell) (Side, []*Cell, error) {
	pa, pb := a.pos.(Point), b.pos.(Point)
	var s Side
	var k int
	switch {
	case pa.Y == pb.Y && pa.X != pb.X:
		if k = pb.X - pa.X; k > 0 {
			s = East
		} else {
			s, k = West, -k
		}
	case pa.X == pb.X && pa.Y != pb.Y:
		if k = pb.Y - pa.Y; k > 0 {
			s = South
		} else {
			s, k = North, -k
		}
	default:
		return 0, nil, ErrNotNeighbors
	}
	if k-1 > r.m.maxWeave {
		return 0, nil, ErrNotNeighbors
	}
	// Endpoints flagged parallel to the travel axis have no surface to open.
	if axis := s.Axis(); a.tunnel == axis || b.tunnel == axis {
		return 0, nil, ErrNotNeighbors
	}
	if k == 1 {
		return s, nil, nil
	}
	mids := make([]*Cell, 0, k-1)
	for cur := r.step(a, s); cur != b; cur = r.step(cur, s) {
		mids = append(mids, cur)
	}

	return s, mids, nil
}
