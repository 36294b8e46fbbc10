// Package core provides the maze data model: cells carrying wall bits,
// uniform adjacency over seven tilings, boundary openings and the derived
// artifacts (solution path, distance field) that generators and solvers
// populate.
//
// A Maze is a fixed arena of Cells. Every cell owns one uint16 wall word;
// each bit is one Side. All mutation funnels through Cell.Connect /
// Cell.Open / Cell.Close, which keep the pairwise invariant: a passage
// between two cells is open on both matching bits or on neither.
//
// Topologies (Topology):
//
//   - Square      - the plain 4-connected grid
//   - Hex         - hexagons in odd-r offset rows, 6 sides
//   - Triangle    - alternating up/down triangles, 3 sides each
//   - OctoSquare  - the 4.8.8 tiling: octagons with 8 sides, squares with 4
//   - DiagSquare  - 8-connected grid; diagonals obey the shadow rule
//   - Polar       - concentric rings around a hub; ring widths are exact
//     multiples of the previous ring, so inward is always 1:1 and outward
//     fans out to a fixed block
//   - Weave       - 4-connected grid where passages may tunnel under
//     flagged cells (up to the max-weave skip limit)
//
// The topology decides three things per cell: its side set (Sides), the
// practical neighbor across a side (Neighbor, NeighborsAcross) and how a
// cell pair maps back onto a side (Connect). Algorithms written against
// those three primitives run unchanged on every tiling.
//
// Construction:
//
//	NewMaze(t Topology, opts ...MazeOption) (*Maze, error)
//
//	WithSize(w, h)      - Cartesian family dimensions
//	WithRadius(r)       - polar ring count
//	WithSubdivision(n)  - polar angular density (default 6)
//	WithMaxWeave(k)     - weave skip limit (default 1; 0 disables skipping)
//
// Core methods:
//
//	// Shape
//	Kind() Topology, Size() (w, h int), Radius() int, RingWidths() []int
//	CellCount() int, Cells() []*Cell, CellAt(x, y int) *Cell, Contains(*Cell) bool
//
//	// Wall state
//	ResetFull()      // every wall closed; generators that carve start here
//	ResetEmpty()     // interior open, boundary closed; wall-adders start here
//	ResetVisited()   // clear the visited scratch flag only
//
//	// Openings and artifacts
//	AddOpening(OpeningSpec) (*Cell, error)
//	Openings() []*Cell
//	SetSolution([]*Cell) error / Solution() []*Cell
//	SetDistances([]int) error / Distances() []int / DistanceAt(*Cell) (int, bool)
//	String() string  // ASCII wall art (quad family) or wall-word listing
//
// Cell methods:
//
//	Pos() Position, Index() int, Sides() []Side, Walls() uint16
//	HasWall(Side) bool, Visited() bool, SetVisited(bool)
//	Neighbor(Side) *Cell, NeighborsAcross(Side) []*Cell, Neighbors() []*Cell
//	Linked(*Cell) bool
//	Connect(*Cell) error, Open(Side) error, Close(Side) error
//	Tunnel() TunnelAxis
//
// Errors:
//
//	ErrBadDimension    - non-positive width or height
//	ErrBadSubdivision  - non-positive subdivision
//	ErrBadWeave        - negative max-weave
//	ErrUnknownTopology - Topology outside the enum
//	ErrInvalidSide     - side not in the cell's side set
//	ErrNotNeighbors    - cell pair with no side relation
//	ErrWrongMaze       - cell belongs to another maze
//	ErrNoSuchCell      - no cell at the named location
//	ErrNotBoundary     - opening requested on an interior cell
//	ErrOpeningExists   - duplicate opening on one cell
//	ErrBadDistances    - distance slice length mismatch
//
// Everything is in-memory and single-goroutine; wrap a Maze in your own
// lock if you must share it. Construction is O(cells), every per-cell
// operation O(1) apart from polar outward fans, which cost O(fan width).
package core
