package braid_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lbrnth/braid"
	"github.com/katalvlaran/lbrnth/core"
	"github.com/katalvlaran/lbrnth/generate"
)

// comb builds a 3x3 maze shaped like a comb: an east-west spine along the
// top row and three teeth hanging south. The tooth tips (0,2), (1,2) and
// (2,2) are the only deadends.
func comb(t *testing.T) *core.Maze {
	t.Helper()
	m, err := core.NewMaze(core.Square, core.WithSize(3, 3))
	require.NoError(t, err)
	for x := 0; x < 2; x++ {
		require.NoError(t, m.CellAt(x, 0).Connect(m.CellAt(x+1, 0)))
	}
	for x := 0; x < 3; x++ {
		require.NoError(t, m.CellAt(x, 0).Connect(m.CellAt(x, 1)))
		require.NoError(t, m.CellAt(x, 1).Connect(m.CellAt(x, 2)))
	}
	require.Equal(t, 3, countDeadends(m))

	return m
}

func countDeadends(m *core.Maze) int {
	var n int
	for _, c := range m.Cells() {
		var open int
		for _, s := range c.Sides() {
			if !c.HasWall(s) {
				open++
			}
		}
		if open == 1 {
			n++
		}
	}

	return n
}

func snapshotWalls(m *core.Maze) []uint16 {
	out := make([]uint16, 0, m.CellCount())
	for _, c := range m.Cells() {
		out = append(out, c.Walls())
	}

	return out
}

func TestBraid_FullSweep(t *testing.T) {
	m, err := core.NewMaze(core.Square, core.WithSize(8, 6))
	require.NoError(t, err)
	require.NoError(t, generate.Backtracker.Run(m, generate.RandFromSeed(42)))
	before := countDeadends(m)
	require.Positive(t, before, "a carved tree always has deadends")

	opened, err := braid.Braid(m, generate.RandFromSeed(7))
	require.NoError(t, err)
	assert.Positive(t, opened)
	assert.LessOrEqual(t, opened, before)
	assert.Zero(t, countDeadends(m), "full sweep leaves no deadend behind")
}

func TestBraid_Count(t *testing.T) {
	m := comb(t)

	opened, err := braid.Braid(m, generate.RandFromSeed(3), braid.WithCount(1))
	require.NoError(t, err)
	assert.Equal(t, 1, opened)
	assert.Equal(t, 9, linkCount(m), "one wall opened on top of the 8-link comb")
}

// linkCount totals open cell pairs by summing open sides and halving.
func linkCount(m *core.Maze) int {
	var open int
	for _, c := range m.Cells() {
		for _, s := range c.Sides() {
			if !c.HasWall(s) {
				open++
			}
		}
	}

	return open / 2
}

func TestBraid_Percent(t *testing.T) {
	// Rounded to nearest: half of 3 deadends means a 2-opening target, and
	// on the comb both openings always land.
	m := comb(t)
	opened, err := braid.Braid(m, generate.RandFromSeed(11), braid.WithPercent(0.5))
	require.NoError(t, err)
	assert.Equal(t, 2, opened)
}

func TestBraid_ZeroTargets(t *testing.T) {
	for name, opt := range map[string]braid.Option{
		"count":   braid.WithCount(0),
		"percent": braid.WithPercent(0),
	} {
		t.Run(name, func(t *testing.T) {
			m := comb(t)
			before := snapshotWalls(m)

			opened, err := braid.Braid(m, generate.RandFromSeed(1), opt)
			require.NoError(t, err)
			assert.Zero(t, opened)
			assert.Equal(t, before, snapshotWalls(m))
		})
	}
}

func TestBraid_Validation(t *testing.T) {
	m := comb(t)
	r := generate.RandFromSeed(1)

	_, err := braid.Braid(nil, r)
	assert.ErrorIs(t, err, braid.ErrNilMaze)

	_, err = braid.Braid(m, nil)
	assert.ErrorIs(t, err, braid.ErrNilRand)

	_, err = braid.Braid(m, r, braid.WithCount(-1))
	assert.ErrorIs(t, err, braid.ErrBadCount)

	_, err = braid.Braid(m, r, braid.WithPercent(-0.1))
	assert.ErrorIs(t, err, braid.ErrBadPercent)

	_, err = braid.Braid(m, r, braid.WithPercent(1.1))
	assert.ErrorIs(t, err, braid.ErrBadPercent)

	before := snapshotWalls(m)
	_, err = braid.Braid(m, r, braid.WithCount(2), braid.WithPercent(0.5))
	assert.ErrorIs(t, err, braid.ErrAmbiguousTarget)
	assert.Equal(t, before, snapshotWalls(m), "failed runs never touch the maze")
}

// TestBraid_BoundaryOnlyDeadends pins the skip path: in a one-cell-high
// corridor the end cells are deadends whose walled sides all face the
// boundary, so there is nothing legal to open.
func TestBraid_BoundaryOnlyDeadends(t *testing.T) {
	m, err := core.NewMaze(core.Square, core.WithSize(5, 1))
	require.NoError(t, err)
	m.ResetEmpty()
	require.Equal(t, 2, countDeadends(m))

	opened, err := braid.Braid(m, generate.RandFromSeed(5))
	require.NoError(t, err)
	assert.Zero(t, opened)
	assert.Equal(t, 2, countDeadends(m))
}

// TestBraid_WeaveKeepsTunnelShut braids a weave maze holding a cell whose
// walled east side faces a neighbour across a tunnel. The sweep must open
// its south wall instead and leave the tunnel-facing wall alone.
func TestBraid_WeaveKeepsTunnelShut(t *testing.T) {
	m, err := core.NewMaze(core.Weave, core.WithSize(3, 3), core.WithMaxWeave(1))
	require.NoError(t, err)

	// Over path north-south through the centre, then an east-west tunnel
	// under it, immediately walled up again. The tunnel marker stays, so
	// (0,1)'s practical east neighbour remains (2,1), two cells away.
	require.NoError(t, m.CellAt(1, 0).Connect(m.CellAt(1, 1)))
	require.NoError(t, m.CellAt(1, 1).Connect(m.CellAt(1, 2)))
	require.NoError(t, m.CellAt(0, 1).Connect(m.CellAt(2, 1)))
	require.NoError(t, m.CellAt(0, 1).Close(core.East))
	require.NoError(t, m.CellAt(0, 0).Connect(m.CellAt(0, 1)))

	left := m.CellAt(0, 1)
	require.Same(t, m.CellAt(2, 1), left.Neighbor(core.East))

	_, err = braid.Braid(m, generate.RandFromSeed(2))
	require.NoError(t, err)
	assert.True(t, left.HasWall(core.East), "tunnel-spanning side stays shut")
	assert.True(t, left.Linked(m.CellAt(0, 2)), "the directly adjacent side opens instead")
}

func TestBraid_Polar(t *testing.T) {
	m, err := core.NewMaze(core.Polar, core.WithRadius(3))
	require.NoError(t, err)
	require.NoError(t, generate.Backtracker.Run(m, generate.RandFromSeed(6)))

	opened, err := braid.Braid(m, generate.RandFromSeed(6))
	require.NoError(t, err)
	assert.Positive(t, opened)
	// The hub owns nothing but its outward fan, so it may survive as the
	// one deadend braiding cannot touch.
	assert.LessOrEqual(t, countDeadends(m), 1)
}

func TestBraid_Reproducible(t *testing.T) {
	carve := func(seed int64) *core.Maze {
		m, err := core.NewMaze(core.Square, core.WithSize(10, 8))
		require.NoError(t, err)
		require.NoError(t, generate.Backtracker.Run(m, generate.RandFromSeed(21)))
		_, err = braid.Braid(m, rand.New(rand.NewSource(seed)), braid.WithPercent(0.6))
		require.NoError(t, err)

		return m
	}

	assert.Equal(t, snapshotWalls(carve(9)), snapshotWalls(carve(9)))
}
