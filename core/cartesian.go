// Package core: resolvers for the grid-shaped topologies: square, hex,
// triangle, mixed square/octagon, and the 45°-diagonal square.
package core

import "fmt"

// --- Square ------------------------------------------------------------------

// gridResolver is the plain orthogonal grid: four fixed-offset sides.
type gridResolver struct {
	cartesianBase
}

func (r *gridResolver) sides(*Cell) []Side { return quadSides }

func (r *gridResolver) neighbor(c *Cell, s Side) *Cell {
	if s&(North|East|South|West) == 0 {
		return nil
	}

	return r.step(c, s)
}

func (r *gridResolver) fan(c *Cell, s Side) []*Cell { return singleFan(r.neighbor(c, s)) }

func (r *gridResolver) span(c *Cell, s Side) []*Cell { return r.fan(c, s) }

func (r *gridResolver) relation(a, b *Cell) (Side, []*Cell, error) {
	if s, ok := r.match(a, b, quadSides); ok {
		return s, nil, nil
	}

	return 0, nil, ErrNotNeighbors
}

// --- Hex ---------------------------------------------------------------------

// hexOffsetsEven and hexOffsetsOdd are the odd-r layout tables: odd rows sit
// half a cell to the east, so the slanted sides change column by row parity.
var (
	hexOffsetsEven = map[Side][2]int{
		NorthEast: {0, -1}, East: {1, 0}, SouthEast: {0, 1},
		SouthWest: {-1, 1}, West: {-1, 0}, NorthWest: {-1, -1},
	}
	hexOffsetsOdd = map[Side][2]int{
		NorthEast: {1, -1}, East: {1, 0}, SouthEast: {1, 1},
		SouthWest: {0, 1}, West: {-1, 0}, NorthWest: {0, -1},
	}
)

// hexResolver is the hexagonal grid in odd-r offset coordinates.
type hexResolver struct {
	cartesianBase
}

func (r *hexResolver) sides(*Cell) []Side { return hexSides }

func (r *hexResolver) offsets(c *Cell) map[Side][2]int {
	if c.pos.(Point).Y%2 == 0 {
		return hexOffsetsEven
	}

	return hexOffsetsOdd
}

func (r *hexResolver) neighbor(c *Cell, s Side) *Cell {
	d, ok := r.offsets(c)[s]
	if !ok {
		return nil
	}
	p := c.pos.(Point)

	return r.at(p.X+d[0], p.Y+d[1])
}

func (r *hexResolver) fan(c *Cell, s Side) []*Cell { return singleFan(r.neighbor(c, s)) }

func (r *hexResolver) span(c *Cell, s Side) []*Cell { return r.fan(c, s) }

func (r *hexResolver) relation(a, b *Cell) (Side, []*Cell, error) {
	pa, pb := a.pos.(Point), b.pos.(Point)
	dx, dy := pb.X-pa.X, pb.Y-pa.Y
	for s, d := range r.offsets(a) {
		if d[0] == dx && d[1] == dy {
			return s, nil, nil
		}
	}

	return 0, nil, ErrNotNeighbors
}

// --- Triangle ----------------------------------------------------------------

// triResolver is the triangular grid. Parity of (x+y) orients the cell:
// even cells point up and rest on a southern base, odd cells point down and
// hang from a northern base; east and west are always present.
type triResolver struct {
	cartesianBase
}

// pointsUp reports the triangle orientation at the cell's position.
func pointsUp(p Point) bool { return (p.X+p.Y)%2 == 0 }

func (r *triResolver) sides(c *Cell) []Side {
	if pointsUp(c.pos.(Point)) {
		return triUp
	}

	return triDown
}

func (r *triResolver) neighbor(c *Cell, s Side) *Cell {
	up := pointsUp(c.pos.(Point))
	switch s {
	case East, West:
		return r.step(c, s)
	case South:
		if up {
			return r.step(c, s)
		}
	case North:
		if !up {
			return r.step(c, s)
		}
	}

	return nil
}

func (r *triResolver) fan(c *Cell, s Side) []*Cell { return singleFan(r.neighbor(c, s)) }

func (r *triResolver) span(c *Cell, s Side) []*Cell { return r.fan(c, s) }

func (r *triResolver) relation(a, b *Cell) (Side, []*Cell, error) {
	if s, ok := r.match(a, b, r.sides(a)); ok {
		return s, nil, nil
	}

	return 0, nil, ErrNotNeighbors
}

// --- OctoSquare --------------------------------------------------------------

// octoResolver is the 4.8.8 tiling. Octagon cells sit on even (x+y) parity
// and use all eight sides; square cells sit on odd parity with the four
// orthogonal sides only. Diagonal steps preserve parity, so octagons touch
// octagons diagonally and squares never see a diagonal at all: those bits
// are out of the square side set and stay walled through every write.
type octoResolver struct {
	cartesianBase
}

// octagonAt reports the cell kind at the position.
func octagonAt(p Point) bool { return (p.X+p.Y)%2 == 0 }

func (r *octoResolver) sides(c *Cell) []Side {
	if octagonAt(c.pos.(Point)) {
		return octoSides
	}

	return quadSides
}

func (r *octoResolver) neighbor(c *Cell, s Side) *Cell {
	if s.Diagonal() && !octagonAt(c.pos.(Point)) {
		return nil
	}

	return r.step(c, s)
}

func (r *octoResolver) fan(c *Cell, s Side) []*Cell { return singleFan(r.neighbor(c, s)) }

func (r *octoResolver) span(c *Cell, s Side) []*Cell { return r.fan(c, s) }

func (r *octoResolver) relation(a, b *Cell) (Side, []*Cell, error) {
	if s, ok := r.match(a, b, r.sides(a)); ok {
		return s, nil, nil
	}

	return 0, nil, ErrNotNeighbors
}

// --- DiagSquare --------------------------------------------------------------

// diagFlanks names the two orthogonal sides flanking each diagonal. The
// diagonal passage from a cell geometrically crosses the passage between the
// cells across those two sides.
var diagFlanks = map[Side][2]Side{
	NorthEast: {North, East},
	SouthEast: {South, East},
	SouthWest: {South, West},
	NorthWest: {North, West},
}

// diagResolver is the square grid with 45° diagonals. A diagonal side is
// traversable only while not shadowed: the two flanking cells must not be
// linked to each other, since their passage would cross the diagonal. The
// check probes those cells' connectivity on every query; nothing is cached,
// so carving one of a crossing pair immediately shadows the other.
type diagResolver struct {
	cartesianBase
}

func (r *diagResolver) sides(*Cell) []Side { return octoSides }

// shadowed reports whether the diagonal s from c is cut off by an open
// crossing passage between the two flanking cells.
func (r *diagResolver) shadowed(c *Cell, s Side) bool {
	f := diagFlanks[s]
	u, v := r.step(c, f[0]), r.step(c, f[1])

	return u != nil && v != nil && u.Linked(v)
}

func (r *diagResolver) neighbor(c *Cell, s Side) *Cell {
	t := r.step(c, s)
	if t == nil {
		return nil
	}
	if s.Diagonal() && r.shadowed(c, s) {
		return nil
	}

	return t
}

func (r *diagResolver) fan(c *Cell, s Side) []*Cell { return singleFan(r.neighbor(c, s)) }

// span ignores the shadow rule: the geometric target alone decides.
func (r *diagResolver) span(c *Cell, s Side) []*Cell { return singleFan(r.step(c, s)) }

func (r *diagResolver) relation(a, b *Cell) (Side, []*Cell, error) {
	s, ok := r.match(a, b, octoSides)
	if !ok {
		return 0, nil, ErrNotNeighbors
	}
	// A shadowed diagonal is connectable only if the pair is already open
	// (then the crossing pair cannot be, and the relation must keep working).
	if s.Diagonal() && a.hasBit(s) && r.shadowed(a, s) {
		return 0, nil, fmt.Errorf("diagonal shadowed: %w", ErrNotNeighbors)
	}

	return s, nil, nil
}
