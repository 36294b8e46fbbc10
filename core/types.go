// Package core defines the central Maze, Cell, Position, and Side types,
// and the topology machinery that lets every algorithm in lbrnth operate
// uniformly over seven planar tilings.
//
// This file declares Topology, TunnelAxis, the sentinel errors, and the
// package constants shared by the topology resolvers.
//
// Errors:
//
//	ErrBadDimension    - non-positive width, height, or radius.
//	ErrBadSubdivision  - non-positive polar subdivision factor.
//	ErrBadWeave        - negative weave skip limit.
//	ErrUnknownTopology - topology value outside the closed enum.
//	ErrInvalidSide     - side is not part of the cell's side set.
//	ErrNotNeighbors    - the two cells share no traversable relation.
//	ErrWrongMaze       - cell belongs to a different Maze instance.
//	ErrNoSuchCell      - no cell exists at the requested location.
//	ErrNotBoundary     - cell has no boundary-facing side to force open.
//	ErrOpeningExists   - the cell already carries an opening.
//	ErrBadDistances    - distance table length does not match the cell count.
package core

import "errors"

// Sentinel errors for maze construction and mutation.
var (
	// ErrBadDimension indicates a non-positive width, height, or radius.
	ErrBadDimension = errors.New("core: non-positive dimension")

	// ErrBadSubdivision indicates a non-positive polar subdivision factor.
	ErrBadSubdivision = errors.New("core: non-positive subdivision")

	// ErrBadWeave indicates a negative weave skip limit.
	ErrBadWeave = errors.New("core: negative max-weave")

	// ErrUnknownTopology indicates a Topology value outside the closed enum.
	ErrUnknownTopology = errors.New("core: unknown topology")

	// ErrInvalidSide indicates a side that is not part of the cell's side set.
	ErrInvalidSide = errors.New("core: side not valid for cell")

	// ErrNotNeighbors indicates two cells with no traversable relation between them.
	ErrNotNeighbors = errors.New("core: cells are not neighbors")

	// ErrWrongMaze indicates a cell owned by a different Maze instance.
	ErrWrongMaze = errors.New("core: cell belongs to a different maze")

	// ErrNoSuchCell indicates that no cell exists at the requested location.
	ErrNoSuchCell = errors.New("core: no cell at position")

	// ErrNotBoundary indicates a cell with no boundary-facing side to force open.
	ErrNotBoundary = errors.New("core: cell is not on the boundary")

	// ErrOpeningExists indicates a duplicate opening on the same cell.
	ErrOpeningExists = errors.New("core: opening already present")

	// ErrBadDistances indicates a distance table whose length does not match the cell count.
	ErrBadDistances = errors.New("core: distance table length mismatch")
)

// Topology selects the tiling rule of a Maze. The set is closed: every
// algorithm package dispatches on these values and nothing else.
type Topology uint8

const (
	// Square is the plain orthogonal grid: four sides per cell.
	Square Topology = iota

	// Hex is the hexagonal grid in odd-r offset layout: six sides per cell.
	Hex

	// Triangle is the triangular grid: east, west, and a parity-dependent base side.
	Triangle

	// OctoSquare is the mixed 4.8.8 tiling: octagon cells on even (x+y) parity
	// with eight sides, square cells on odd parity with four.
	OctoSquare

	// DiagSquare is the square grid extended with 45° diagonal sides, subject
	// to the shadow rule (a diagonal is blocked while the passage it would
	// cross is open).
	DiagSquare

	// Polar is the circular maze: concentric rings whose width grows outward
	// in exact multiples, with a single hub cell in the middle.
	Polar

	// Weave is the square grid extended with passages that may tunnel under
	// other passages, bounded by the maze's weave skip limit.
	Weave

	topologyCount // sentinel for validation; keep last
)

// topologyNames backs Topology.String; index-aligned with the enum.
var topologyNames = [...]string{
	Square:     "Square",
	Hex:        "Hex",
	Triangle:   "Triangle",
	OctoSquare: "OctoSquare",
	DiagSquare: "DiagSquare",
	Polar:      "Polar",
	Weave:      "Weave",
}

// String returns the canonical topology name, or "Topology(?)" out of range.
func (t Topology) String() string {
	if !t.Valid() {
		return "Topology(?)"
	}

	return topologyNames[t]
}

// Valid reports whether t is a member of the closed enum.
func (t Topology) Valid() bool { return t < topologyCount }

// Quadrilateral reports whether every cell of the topology is a four-or-more
// sided cell on the square lattice with full North/East/South/West adjacency.
// Sidewinder and the division generator require this.
func (t Topology) Quadrilateral() bool {
	return t == Square || t == DiagSquare || t == Weave
}

// TunnelAxis records the orientation of the passage running underneath a
// weave cell. TunnelNone means the cell carries no under-passage.
type TunnelAxis uint8

const (
	// TunnelNone marks a cell without an under-passage.
	TunnelNone TunnelAxis = iota

	// TunnelEW marks an under-passage running east-west.
	TunnelEW

	// TunnelNS marks an under-passage running north-south.
	TunnelNS
)

// String returns a short axis tag for debug output.
func (a TunnelAxis) String() string {
	switch a {
	case TunnelEW:
		return "EW"
	case TunnelNS:
		return "NS"
	default:
		return "none"
	}
}
