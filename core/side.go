// Package core: the Side bit-enum shared by all topologies.
//
// Every topology draws its side set from the same twelve values, so a single
// uint16 wall word per cell covers all tilings. Bit set = wall, bit clear =
// open passage. Side values are powers of two; side-enumeration order (the
// order of AllSides) is the deterministic order the hunt phase and the
// neighbor listings rely on.
package core

// Side identifies one face of a cell. Each value occupies a unique bit of the
// cell's wall word. A topology uses a subset of the twelve values; asking a
// cell about a side outside its set reports a wall.
type Side uint16

const (
	// North faces -y on the square lattice.
	North Side = 1 << iota
	// NorthEast is the +x,-y diagonal (hex slant on even rows differs; see topology tables).
	NorthEast
	// East faces +x.
	East
	// SouthEast is the +x,+y diagonal.
	SouthEast
	// South faces +y.
	South
	// SouthWest is the -x,+y diagonal.
	SouthWest
	// West faces -x.
	West
	// NorthWest is the -x,-y diagonal.
	NorthWest
	// Inward faces the previous (smaller) ring of a polar maze.
	Inward
	// Outward faces the next (larger) ring; it may map to several cells.
	Outward
	// Clockwise faces the next index within the same ring, wrapping.
	Clockwise
	// CounterClockwise faces the previous index within the same ring, wrapping.
	CounterClockwise

	sideLimit // first unused bit; keep last
)

// fullWallWord has every side bit set; freshly reset cells start here so that
// invalid sides always read as walls without per-topology masking.
const fullWallWord = uint16(sideLimit) - 1

// AllSides lists every Side in enumeration order. Topology side sets preserve
// this relative order, which keeps raster scans and hunt phases deterministic.
var AllSides = []Side{
	North, NorthEast, East, SouthEast,
	South, SouthWest, West, NorthWest,
	Inward, Outward, Clockwise, CounterClockwise,
}

// opposites maps each side bit to its opposite; built once at init.
var opposites = map[Side]Side{
	North:            South,
	South:            North,
	East:             West,
	West:             East,
	NorthEast:        SouthWest,
	SouthWest:        NorthEast,
	SouthEast:        NorthWest,
	NorthWest:        SouthEast,
	Inward:           Outward,
	Outward:          Inward,
	Clockwise:        CounterClockwise,
	CounterClockwise: Clockwise,
}

// cartesianOffsets holds the unit square-lattice offset per side. Hex rows and
// triangle bases bend these rules, so their resolvers keep their own tables.
var cartesianOffsets = map[Side][2]int{
	North:     {0, -1},
	NorthEast: {1, -1},
	East:      {1, 0},
	SouthEast: {1, 1},
	South:     {0, 1},
	SouthWest: {-1, 1},
	West:      {-1, 0},
	NorthWest: {-1, -1},
}

// sideNames backs Side.String.
var sideNames = map[Side]string{
	North:            "North",
	NorthEast:        "NorthEast",
	East:             "East",
	SouthEast:        "SouthEast",
	South:            "South",
	SouthWest:        "SouthWest",
	West:             "West",
	NorthWest:        "NorthWest",
	Inward:           "Inward",
	Outward:          "Outward",
	Clockwise:        "Clockwise",
	CounterClockwise: "CounterClockwise",
}

// Opposite returns the side facing back at s. Total over the enum; invalid
// input returns 0.
func (s Side) Opposite() Side { return opposites[s] }

// Offset returns the unit square-lattice offset of s and ok=true for the
// eight Cartesian sides. Polar sides have no fixed offset (the neighbor is
// context-dependent), so ok=false. Topologies with parity-dependent geometry
// (hex, the triangle base) resolve through their own tables instead.
func (s Side) Offset() (dx, dy int, ok bool) {
	d, ok := cartesianOffsets[s]

	return d[0], d[1], ok
}

// Axis returns the travel axis of s on the square lattice: TunnelEW for
// East/West, TunnelNS for North/South, TunnelNone otherwise. The weave
// resolver uses it for the parallel-tunnel test.
func (s Side) Axis() TunnelAxis {
	switch s {
	case East, West:
		return TunnelEW
	case North, South:
		return TunnelNS
	default:
		return TunnelNone
	}
}

// Diagonal reports whether s is one of the four 45° sides.
func (s Side) Diagonal() bool {
	return s == NorthEast || s == SouthEast || s == SouthWest || s == NorthWest
}

// Valid reports whether s is exactly one defined side bit.
func (s Side) Valid() bool {
	return s != 0 && s < sideLimit && s&(s-1) == 0
}

// String returns the canonical side name, or "Side(?)" for invalid values.
func (s Side) String() string {
	if n, ok := sideNames[s]; ok {
		return n
	}

	return "Side(?)"
}
