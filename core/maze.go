// Package core: the Maze container.
//
// A Maze owns a fixed collection of cells of one topology. The shape is
// immutable after construction; wall state, openings, the cached solution
// path, and the cached distance table are the only mutable parts. Resets
// restore a maze to a known wall state before a generator runs.
package core

import "fmt"

// Construction defaults; overridden through MazeOptions.
const (
	defaultSubdivision = 6
	defaultMaxWeave    = 1
)

// mazeConfig collects constructor parameters before validation.
type mazeConfig struct {
	width, height  int
	radius, subdiv int
	maxWeave       int
}

// MazeOption customizes NewMaze. Options only record values; NewMaze
// validates the resolved configuration and reports sentinel errors, so a
// forgotten dimension surfaces as ErrBadDimension rather than a panic.
type MazeOption func(*mazeConfig)

// WithSize sets the grid dimensions of a Cartesian-family maze.
func WithSize(width, height int) MazeOption {
	return func(c *mazeConfig) { c.width, c.height = width, height }
}

// WithRadius sets the ring count of a polar maze, hub included.
func WithRadius(radius int) MazeOption {
	return func(c *mazeConfig) { c.radius = radius }
}

// WithSubdivision sets the polar subdivision factor: the target cell count
// per unit of ring circumference. Defaults to 6.
func WithSubdivision(n int) MazeOption {
	return func(c *mazeConfig) { c.subdiv = n }
}

// WithMaxWeave sets how many consecutive tunnel cells a weave passage may
// skip. Zero disables tunnelling; defaults to 1.
func WithMaxWeave(k int) MazeOption {
	return func(c *mazeConfig) { c.maxWeave = k }
}

// Maze is a fixed collection of cells under one topology.
type Maze struct {
	kind Topology

	// Cartesian extents; zero for polar mazes.
	width, height int

	// Polar extents; zero for Cartesian mazes.
	radius, subdiv int

	// ringW holds the polar ring widths, hub first.
	ringW []int

	// maxWeave bounds the weave tunnel scan.
	maxWeave int

	topo  resolver
	cells []*Cell
	rows  [][]*Cell

	openings []*Cell
	solution []*Cell
	dist     []int
}

// NewMaze builds a maze of the given topology. The shape is fixed for the
// lifetime of the value; every cell starts fully walled (ResetFull state).
//
// Required options per family: WithSize for the Cartesian topologies,
// WithRadius for Polar. WithSubdivision and WithMaxWeave refine Polar and
// Weave respectively and carry defaults.
//
// Errors: ErrUnknownTopology, ErrBadDimension, ErrBadSubdivision, ErrBadWeave.
func NewMaze(t Topology, opts ...MazeOption) (*Maze, error) {
	// 1) Resolve configuration: defaults first, options in call order.
	if !t.Valid() {
		return nil, fmt.Errorf("NewMaze: topology %d: %w", uint8(t), ErrUnknownTopology)
	}
	cfg := mazeConfig{subdiv: defaultSubdivision, maxWeave: defaultMaxWeave}
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate per family; fail before any allocation.
	m := &Maze{kind: t}
	if t == Polar {
		if cfg.radius < 1 {
			return nil, fmt.Errorf("NewMaze: radius %d: %w", cfg.radius, ErrBadDimension)
		}
		if cfg.subdiv < 1 {
			return nil, fmt.Errorf("NewMaze: subdivision %d: %w", cfg.subdiv, ErrBadSubdivision)
		}
		m.radius, m.subdiv = cfg.radius, cfg.subdiv
		m.ringW = polarRingWidths(cfg.radius, cfg.subdiv)
	} else {
		if cfg.width < 1 || cfg.height < 1 {
			return nil, fmt.Errorf("NewMaze: size %dx%d: %w", cfg.width, cfg.height, ErrBadDimension)
		}
		m.width, m.height = cfg.width, cfg.height
		if t == Weave {
			if cfg.maxWeave < 0 {
				return nil, fmt.Errorf("NewMaze: max-weave %d: %w", cfg.maxWeave, ErrBadWeave)
			}
			m.maxWeave = cfg.maxWeave
		}
	}

	// 3) Wire the topology strategy and allocate the cell collection.
	topo, err := newResolver(m)
	if err != nil {
		return nil, fmt.Errorf("NewMaze: %w", err)
	}
	m.topo = topo
	m.build()
	m.ResetFull()

	return m, nil
}

// build allocates cells in deterministic raster order: row-major for the
// Cartesian family, hub-first ring-major for polar.
func (m *Maze) build() {
	if m.kind == Polar {
		m.rows = make([][]*Cell, m.radius)
		for r := 0; r < m.radius; r++ {
			w := m.ringW[r]
			row := make([]*Cell, w)
			for i := 0; i < w; i++ {
				c := &Cell{maze: m, pos: PolarPoint{Index: i, Ring: r, Width: w}, index: len(m.cells)}
				row[i] = c
				m.cells = append(m.cells, c)
			}
			m.rows[r] = row
		}

		return
	}

	m.rows = make([][]*Cell, m.height)
	for y := 0; y < m.height; y++ {
		row := make([]*Cell, m.width)
		for x := 0; x < m.width; x++ {
			c := &Cell{maze: m, pos: Point{X: x, Y: y}, index: len(m.cells)}
			row[x] = c
			m.cells = append(m.cells, c)
		}
		m.rows[y] = row
	}
}

// Kind returns the maze topology.
func (m *Maze) Kind() Topology { return m.kind }

// Size returns the Cartesian extents; (0, 0) for polar mazes.
func (m *Maze) Size() (width, height int) { return m.width, m.height }

// Radius returns the polar ring count; 0 for Cartesian mazes.
func (m *Maze) Radius() int { return m.radius }

// Subdivision returns the polar subdivision factor; 0 for Cartesian mazes.
func (m *Maze) Subdivision() int { return m.subdiv }

// MaxWeave returns the weave skip limit; 0 elsewhere.
func (m *Maze) MaxWeave() int { return m.maxWeave }

// RingWidths returns a copy of the polar ring widths, hub first; nil for
// Cartesian mazes.
func (m *Maze) RingWidths() []int {
	if m.ringW == nil {
		return nil
	}
	out := make([]int, len(m.ringW))
	copy(out, m.ringW)

	return out
}

// CellCount returns the number of cells.
func (m *Maze) CellCount() int { return len(m.cells) }

// Cells returns the cells in raster order. The slice is a copy; the cells
// are shared. This is the renderer's iteration contract together with
// Cell.Walls and Cell.Pos.
func (m *Maze) Cells() []*Cell {
	out := make([]*Cell, len(m.cells))
	copy(out, m.cells)

	return out
}

// CellAt returns the cell at (x, y), nil when out of range. For polar mazes
// x is the index within the ring and y is the ring, hub = (0, 0).
func (m *Maze) CellAt(x, y int) *Cell {
	if y < 0 || y >= len(m.rows) {
		return nil
	}
	row := m.rows[y]
	if x < 0 || x >= len(row) {
		return nil
	}

	return row[x]
}

// ResetFull walls every side of every cell and clears tunnel flags, visited
// flags, openings, the solution, and the distance table. Carving generators
// start here.
func (m *Maze) ResetFull() {
	for _, c := range m.cells {
		c.walls = fullWallWord
		c.visited = false
		c.tunnel = TunnelNone
	}
	m.clearDerived()
}

// ResetEmpty opens every interior side (both halves of each pair) and keeps
// boundary-facing and invalid sides walled. Ancillary state is cleared as in
// ResetFull. Wall-adding generators start here.
func (m *Maze) ResetEmpty() {
	for _, c := range m.cells {
		c.walls = fullWallWord
		c.visited = false
		c.tunnel = TunnelNone
	}
	for _, c := range m.cells {
		for _, s := range c.Sides() {
			if len(m.topo.span(c, s)) > 0 {
				c.clearBit(s)
			}
		}
	}
	m.clearDerived()
}

// ResetVisited clears only the generator scratch flags.
func (m *Maze) ResetVisited() {
	for _, c := range m.cells {
		c.visited = false
	}
}

// clearDerived drops openings, solution, and distances after a reset.
func (m *Maze) clearDerived() {
	m.openings = nil
	m.solution = nil
	m.dist = nil
}

// Contains reports whether c is one of this maze's cells.
func (m *Maze) Contains(c *Cell) bool { return c != nil && c.maze == m }

// Openings returns the opening cells in insertion order (copy).
func (m *Maze) Openings() []*Cell {
	out := make([]*Cell, len(m.openings))
	copy(out, m.openings)

	return out
}

// SetSolution stores the solved path. Cells must belong to this maze; a nil
// path clears the cache.
func (m *Maze) SetSolution(path []*Cell) error {
	for _, c := range path {
		if c == nil || c.maze != m {
			return fmt.Errorf("SetSolution: %w", ErrWrongMaze)
		}
	}
	if path == nil {
		m.solution = nil

		return nil
	}
	m.solution = make([]*Cell, len(path))
	copy(m.solution, path)

	return nil
}

// Solution returns the last stored path (copy), nil when none is cached.
func (m *Maze) Solution() []*Cell {
	if m.solution == nil {
		return nil
	}
	out := make([]*Cell, len(m.solution))
	copy(out, m.solution)

	return out
}

// SetDistances stores a per-cell distance table indexed by Cell.Index. The
// length must equal CellCount (ErrBadDistances); nil clears the cache.
func (m *Maze) SetDistances(d []int) error {
	if d == nil {
		m.dist = nil

		return nil
	}
	if len(d) != len(m.cells) {
		return fmt.Errorf("SetDistances: got %d values for %d cells: %w", len(d), len(m.cells), ErrBadDistances)
	}
	m.dist = make([]int, len(d))
	copy(m.dist, d)

	return nil
}

// Distances returns a copy of the stored distance table, nil when none.
func (m *Maze) Distances() []int {
	if m.dist == nil {
		return nil
	}
	out := make([]int, len(m.dist))
	copy(out, m.dist)

	return out
}

// DistanceAt returns the stored distance of c and whether a table is cached
// for this maze and cell.
func (m *Maze) DistanceAt(c *Cell) (int, bool) {
	if m.dist == nil || c == nil || c.maze != m {
		return 0, false
	}

	return m.dist[c.index], true
}
