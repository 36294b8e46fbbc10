package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lbrnth/core"
)

// TestNewMaze_Validation verifies that every malformed configuration is
// rejected with its sentinel before any allocation-visible effect.
func TestNewMaze_Validation(t *testing.T) {
	// Unknown topology value.
	_, err := core.NewMaze(core.Topology(42), core.WithSize(3, 3))
	assert.ErrorIs(t, err, core.ErrUnknownTopology)

	// Cartesian family without dimensions.
	_, err = core.NewMaze(core.Square)
	assert.ErrorIs(t, err, core.ErrBadDimension)

	// Non-positive dimensions.
	_, err = core.NewMaze(core.Hex, core.WithSize(0, 4))
	assert.ErrorIs(t, err, core.ErrBadDimension)
	_, err = core.NewMaze(core.Triangle, core.WithSize(4, -1))
	assert.ErrorIs(t, err, core.ErrBadDimension)

	// Polar needs a positive radius and subdivision.
	_, err = core.NewMaze(core.Polar)
	assert.ErrorIs(t, err, core.ErrBadDimension)
	_, err = core.NewMaze(core.Polar, core.WithRadius(3), core.WithSubdivision(0))
	assert.ErrorIs(t, err, core.ErrBadSubdivision)

	// Weave rejects a negative skip limit; zero is legal and disables skipping.
	_, err = core.NewMaze(core.Weave, core.WithSize(3, 3), core.WithMaxWeave(-1))
	assert.ErrorIs(t, err, core.ErrBadWeave)
	m, err := core.NewMaze(core.Weave, core.WithSize(3, 3), core.WithMaxWeave(0))
	require.NoError(t, err)
	assert.Equal(t, 0, m.MaxWeave())
}

// TestNewMaze_Shapes verifies cell counts and accessors across all topologies.
func TestNewMaze_Shapes(t *testing.T) {
	cases := []struct {
		name  string
		t     core.Topology
		opts  []core.MazeOption
		cells int
	}{
		{"square 4x3", core.Square, []core.MazeOption{core.WithSize(4, 3)}, 12},
		{"hex 4x3", core.Hex, []core.MazeOption{core.WithSize(4, 3)}, 12},
		{"triangle 5x2", core.Triangle, []core.MazeOption{core.WithSize(5, 2)}, 10},
		{"octo 3x3", core.OctoSquare, []core.MazeOption{core.WithSize(3, 3)}, 9},
		{"diag 3x3", core.DiagSquare, []core.MazeOption{core.WithSize(3, 3)}, 9},
		{"polar r3", core.Polar, []core.MazeOption{core.WithRadius(3)}, 19},
		{"weave 4x4", core.Weave, []core.MazeOption{core.WithSize(4, 4)}, 16},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := core.NewMaze(tc.t, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.t, m.Kind())
			assert.Equal(t, tc.cells, m.CellCount())
			assert.Len(t, m.Cells(), tc.cells)

			// Indices follow raster order and CellAt agrees with Cells.
			for i, c := range m.Cells() {
				assert.Equal(t, i, c.Index())
			}
		})
	}
}

// TestMaze_PolarRingWidths verifies the growth rule: the hub ring has width
// one and every later width is an exact multiple of the previous one, close
// to subdivision*ring.
func TestMaze_PolarRingWidths(t *testing.T) {
	m, err := core.NewMaze(core.Polar, core.WithRadius(4))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 6, 12, 24}, m.RingWidths())

	m, err = core.NewMaze(core.Polar, core.WithRadius(6), core.WithSubdivision(4))
	require.NoError(t, err)
	w := m.RingWidths()
	require.Len(t, w, 6)
	assert.Equal(t, 1, w[0])
	for r := 1; r < len(w); r++ {
		assert.Zerof(t, w[r]%w[r-1], "ring %d width %d not a multiple of %d", r, w[r], w[r-1])
		assert.GreaterOrEqualf(t, w[r], 4*r, "ring %d width %d below subdiv*ring", r, w[r])
	}

	// Cartesian mazes carry no ring table.
	sq, err := core.NewMaze(core.Square, core.WithSize(2, 2))
	require.NoError(t, err)
	assert.Nil(t, sq.RingWidths())
}

// TestMaze_CellAt verifies bounds handling in both addressing schemes.
func TestMaze_CellAt(t *testing.T) {
	m, err := core.NewMaze(core.Square, core.WithSize(3, 2))
	require.NoError(t, err)
	require.NotNil(t, m.CellAt(2, 1))
	assert.Nil(t, m.CellAt(3, 0))
	assert.Nil(t, m.CellAt(0, 2))
	assert.Nil(t, m.CellAt(-1, 0))

	p, err := core.NewMaze(core.Polar, core.WithRadius(3))
	require.NoError(t, err)
	hub := p.CellAt(0, 0)
	require.NotNil(t, hub)
	assert.Equal(t, core.PolarPoint{Index: 0, Ring: 0, Width: 1}, hub.Pos())
	// Ring 2 has width 12; index 12 is out of range, ring 3 does not exist.
	assert.NotNil(t, p.CellAt(11, 2))
	assert.Nil(t, p.CellAt(12, 2))
	assert.Nil(t, p.CellAt(0, 3))
}

// TestMaze_ResetFull verifies the all-walls state and ancillary clearing.
func TestMaze_ResetFull(t *testing.T) {
	m, err := core.NewMaze(core.Square, core.WithSize(3, 3))
	require.NoError(t, err)

	a, b := m.CellAt(0, 0), m.CellAt(1, 0)
	require.NoError(t, a.Connect(b))
	a.SetVisited(true)
	_, err = m.AddOpening(core.OpeningSpec{X: core.Start(), Y: core.Start()})
	require.NoError(t, err)

	m.ResetFull()
	assert.True(t, a.HasWall(core.East))
	assert.True(t, b.HasWall(core.West))
	assert.False(t, a.Visited())
	assert.Empty(t, m.Openings())
	assert.Nil(t, m.Solution())
	assert.Nil(t, m.Distances())
}

// TestMaze_ResetEmpty verifies that interior sides open pairwise while the
// outer boundary stays walled, on a grid and on a polar maze.
func TestMaze_ResetEmpty(t *testing.T) {
	m, err := core.NewMaze(core.Square, core.WithSize(3, 3))
	require.NoError(t, err)
	m.ResetEmpty()

	mid := m.CellAt(1, 1)
	for _, s := range mid.Sides() {
		assert.Falsef(t, mid.HasWall(s), "interior side %v still walled", s)
	}
	corner := m.CellAt(0, 0)
	assert.True(t, corner.HasWall(core.North))
	assert.True(t, corner.HasWall(core.West))
	assert.False(t, corner.HasWall(core.East))
	assert.False(t, corner.HasWall(core.South))
	assert.True(t, corner.Linked(m.CellAt(1, 0)))

	p, err := core.NewMaze(core.Polar, core.WithRadius(3))
	require.NoError(t, err)
	p.ResetEmpty()
	hub := p.CellAt(0, 0)
	assert.False(t, hub.HasWall(core.Outward))
	rim := p.CellAt(0, 2)
	assert.True(t, rim.HasWall(core.Outward), "outer boundary must stay walled")
	assert.False(t, rim.HasWall(core.Inward))
	assert.False(t, rim.HasWall(core.Clockwise))
}

// TestMaze_SolutionRoundTrip verifies storage, copying, and validation of
// the cached solution path.
func TestMaze_SolutionRoundTrip(t *testing.T) {
	m, err := core.NewMaze(core.Square, core.WithSize(3, 1))
	require.NoError(t, err)
	other, err := core.NewMaze(core.Square, core.WithSize(3, 1))
	require.NoError(t, err)

	path := []*core.Cell{m.CellAt(0, 0), m.CellAt(1, 0), m.CellAt(2, 0)}
	require.NoError(t, m.SetSolution(path))
	got := m.Solution()
	require.Len(t, got, 3)
	assert.Same(t, path[1], got[1])

	// The stored path is a copy: mutating the input must not alias.
	path[0] = nil
	assert.NotNil(t, m.Solution()[0])

	// Foreign cells are rejected, nil clears.
	assert.ErrorIs(t, m.SetSolution([]*core.Cell{other.CellAt(0, 0)}), core.ErrWrongMaze)
	require.NoError(t, m.SetSolution(nil))
	assert.Nil(t, m.Solution())

	assert.True(t, m.Contains(m.CellAt(1, 0)))
	assert.False(t, m.Contains(other.CellAt(1, 0)))
	assert.False(t, m.Contains(nil))
}

// TestMaze_DistancesRoundTrip verifies the distance table contract.
func TestMaze_DistancesRoundTrip(t *testing.T) {
	m, err := core.NewMaze(core.Square, core.WithSize(2, 2))
	require.NoError(t, err)

	_, ok := m.DistanceAt(m.CellAt(0, 0))
	assert.False(t, ok, "no table cached yet")

	assert.ErrorIs(t, m.SetDistances([]int{1, 2, 3}), core.ErrBadDistances)

	require.NoError(t, m.SetDistances([]int{0, 1, 1, 2}))
	d, ok := m.DistanceAt(m.CellAt(1, 1))
	require.True(t, ok)
	assert.Equal(t, 2, d)
	assert.Equal(t, []int{0, 1, 1, 2}, m.Distances())

	require.NoError(t, m.SetDistances(nil))
	assert.Nil(t, m.Distances())
}
