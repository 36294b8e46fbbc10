// Package core: the circular-topology resolver.
//
// Rings are indexed from the hub outward. Ring widths only grow, and each
// width is an exact multiple of the previous one, so the inward side always
// maps to exactly one parent while the outward side fans out to a fixed
// block of children. The hub is a single cell with nothing but an outward
// fan covering all of ring one.
package core

// Polar side sets by ring shape, ordered by side enumeration.
var (
	polarHub    = []Side{Outward}
	polarNarrow = []Side{Inward, Outward}
	polarFull   = []Side{Inward, Outward, Clockwise, CounterClockwise}
)

// polarRingWidths derives the cell count per ring: width(0)=1, each later
// ring multiplies the previous width by ceil(subdiv*ring / previous), so the
// widths track the growing circumference while staying exact multiples.
func polarRingWidths(radius, subdiv int) []int {
	w := make([]int, radius)
	w[0] = 1
	for r := 1; r < radius; r++ {
		prev := w[r-1]
		mult := (subdiv*r + prev - 1) / prev
		if mult < 1 {
			mult = 1
		}
		w[r] = prev * mult
	}

	return w
}

// polarResolver implements the ring adjacency rules.
type polarResolver struct {
	m *Maze
}

func (r *polarResolver) sides(c *Cell) []Side {
	pp := c.pos.(PolarPoint)
	switch {
	case pp.Ring == 0:
		return polarHub
	case pp.Width < 2:
		return polarNarrow
	default:
		return polarFull
	}
}

func (r *polarResolver) neighbor(c *Cell, s Side) *Cell {
	pp := c.pos.(PolarPoint)
	switch s {
	case Inward:
		if pp.Ring == 0 {
			return nil
		}
		mult := r.m.ringW[pp.Ring] / r.m.ringW[pp.Ring-1]

		return r.m.rows[pp.Ring-1][pp.Index/mult]
	case Outward:
		if kids := r.fan(c, Outward); len(kids) > 0 {
			return kids[0]
		}

		return nil
	case Clockwise:
		if pp.Ring == 0 || pp.Width < 2 {
			return nil
		}

		return r.m.rows[pp.Ring][(pp.Index+1)%pp.Width]
	case CounterClockwise:
		if pp.Ring == 0 || pp.Width < 2 {
			return nil
		}

		return r.m.rows[pp.Ring][(pp.Index-1+pp.Width)%pp.Width]
	default:
		return nil
	}
}

func (r *polarResolver) fan(c *Cell, s Side) []*Cell {
	if s != Outward {
		return singleFan(r.neighbor(c, s))
	}
	pp := c.pos.(PolarPoint)
	if pp.Ring+1 >= len(r.m.rows) {
		return nil
	}
	mult := r.m.ringW[pp.Ring+1] / r.m.ringW[pp.Ring]
	kids := make([]*Cell, 0, mult)
	base := pp.Index * mult
	for k := 0; k < mult; k++ {
		kids = append(kids, r.m.rows[pp.Ring+1][base+k])
	}

	return kids
}

func (r *polarResolver) span(c *Cell, s Side) []*Cell { return r.fan(c, s) }

func (r *polarResolver) relation(a, b *Cell) (Side, []*Cell, error) {
	pa, pb := a.pos.(PolarPoint), b.pos.(PolarPoint)
	switch {
	case pb.Ring == pa.Ring && pa.Ring > 0 && pa.Width > 1:
		cw := pb.Index == (pa.Index+1)%pa.Width
		ccw := pb.Index == (pa.Index-1+pa.Width)%pa.Width
		switch {
		case cw && ccw:
			// Width two: both lateral sides point at b. Prefer a side that
			// is already open so reads agree with whichever bit pair an
			// earlier connect cleared; fresh connects go clockwise.
			if a.hasBit(Clockwise) && !a.hasBit(CounterClockwise) {
				return CounterClockwise, nil, nil
			}

			return Clockwise, nil, nil
		case cw:
			return Clockwise, nil, nil
		case ccw:
			return CounterClockwise, nil, nil
		}
	case pb.Ring == pa.Ring+1:
		mult := r.m.ringW[pb.Ring] / r.m.ringW[pa.Ring]
		if pb.Index/mult == pa.Index {
			return Outward, nil, nil
		}
	case pb.Ring == pa.Ring-1:
		mult := r.m.ringW[pa.Ring] / r.m.ringW[pb.Ring]
		if pa.Index/mult == pb.Index {
			return Inward, nil, nil
		}
	}

	return 0, nil, ErrNotNeighbors
}
