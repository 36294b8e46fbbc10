package analyze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lbrnth/analyze"
	"github.com/katalvlaran/lbrnth/braid"
	"github.com/katalvlaran/lbrnth/core"
	"github.com/katalvlaran/lbrnth/generate"
)

// comb builds the 3x3 comb tree: a spine along the top row with three
// teeth hanging south. 9 cells, 8 links, deadends at the tooth tips.
func comb(t *testing.T) *core.Maze {
	t.Helper()
	m, err := core.NewMaze(core.Square, core.WithSize(3, 3))
	require.NoError(t, err)
	for x := 0; x < 3; x++ {
		if x < 2 {
			require.NoError(t, m.CellAt(x, 0).Connect(m.CellAt(x+1, 0)))
		}
		require.NoError(t, m.CellAt(x, 0).Connect(m.CellAt(x, 1)))
		require.NoError(t, m.CellAt(x, 1).Connect(m.CellAt(x, 2)))
	}

	return m
}

func TestConnectionCount(t *testing.T) {
	assert.Zero(t, analyze.ConnectionCount(nil))

	m := comb(t)
	assert.Equal(t, 8, analyze.ConnectionCount(m))

	// Walled maze: no links at all.
	m.ResetFull()
	assert.Zero(t, analyze.ConnectionCount(m))

	// Open field: every interior wall down. A 3x3 grid holds 12 pairs.
	m.ResetEmpty()
	assert.Equal(t, 12, analyze.ConnectionCount(m))
}

func TestComponents(t *testing.T) {
	assert.Nil(t, analyze.Components(nil))

	m, err := core.NewMaze(core.Square, core.WithSize(3, 2))
	require.NoError(t, err)

	// Fully walled: six singleton systems.
	comps := analyze.Components(m)
	require.Len(t, comps, 6)
	for _, comp := range comps {
		assert.Len(t, comp, 1)
	}

	// Two corridors: the top row and the bottom row.
	for x := 0; x < 2; x++ {
		require.NoError(t, m.CellAt(x, 0).Connect(m.CellAt(x+1, 0)))
		require.NoError(t, m.CellAt(x, 1).Connect(m.CellAt(x+1, 1)))
	}
	comps = analyze.Components(m)
	require.Len(t, comps, 2)
	assert.Same(t, m.CellAt(0, 0), comps[0][0])
	assert.Same(t, m.CellAt(0, 1), comps[1][0])
	assert.Len(t, comps[0], 3)
	assert.Len(t, comps[1], 3)

	// One bridge merges them.
	require.NoError(t, m.CellAt(1, 0).Connect(m.CellAt(1, 1)))
	comps = analyze.Components(m)
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 6)
}

func TestDeadends(t *testing.T) {
	assert.Nil(t, analyze.Deadends(nil))

	m := comb(t)
	ds := analyze.Deadends(m)
	require.Len(t, ds, 3)
	assert.Same(t, m.CellAt(0, 2), ds[0])
	assert.Same(t, m.CellAt(1, 2), ds[1])
	assert.Same(t, m.CellAt(2, 2), ds[2])
}

// TestDeadends_OpeningCounts pins the boundary rule: a gap in the outer
// wall is an open side, so an entrance cell with one corridor link is a
// junction, not a deadend.
func TestDeadends_OpeningCounts(t *testing.T) {
	m, err := core.NewMaze(core.Square, core.WithSize(3, 1))
	require.NoError(t, err)
	m.ResetEmpty()
	require.Len(t, analyze.Deadends(m), 2)

	_, err = m.AddOpening(core.OpeningSpec{X: core.Start(), Y: core.Start()})
	require.NoError(t, err)
	ds := analyze.Deadends(m)
	require.Len(t, ds, 1)
	assert.Same(t, m.CellAt(2, 0), ds[0])
}

func TestIsPerfect(t *testing.T) {
	_, err := analyze.IsPerfect(nil)
	assert.ErrorIs(t, err, analyze.ErrNilMaze)

	m := comb(t)
	ok, err := analyze.IsPerfect(m)
	require.NoError(t, err)
	assert.True(t, ok)

	// An extra link closes a cycle and breaks perfection.
	require.NoError(t, m.CellAt(0, 1).Connect(m.CellAt(1, 1)))
	ok, err = analyze.IsPerfect(m)
	require.NoError(t, err)
	assert.False(t, ok)

	// A walled maze is all singletons, equally imperfect.
	m.ResetFull()
	ok, err = analyze.IsPerfect(m)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsPerfect_Generated(t *testing.T) {
	m, err := core.NewMaze(core.Weave, core.WithSize(8, 6), core.WithMaxWeave(1))
	require.NoError(t, err)
	require.NoError(t, generate.WeaveCross.Run(m, generate.RandFromSeed(42)))

	ok, err := analyze.IsPerfect(m)
	require.NoError(t, err)
	assert.True(t, ok)

	// Braiding adds links, so perfection is lost.
	opened, err := braid.Braid(m, generate.RandFromSeed(1))
	require.NoError(t, err)
	require.Positive(t, opened)
	ok, err = analyze.IsPerfect(m)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLongestPath_Comb(t *testing.T) {
	m := comb(t)

	path, err := analyze.LongestPath(m)
	require.NoError(t, err)
	require.Len(t, path, 7, "tip to tip around the spine")
	assert.Same(t, m.CellAt(2, 2), path[0])
	assert.Same(t, m.CellAt(0, 2), path[6])
	for i := 1; i < len(path); i++ {
		assert.True(t, path[i-1].Linked(path[i]))
	}
}

func TestLongestPath_Edges(t *testing.T) {
	_, err := analyze.LongestPath(nil)
	assert.ErrorIs(t, err, analyze.ErrNilMaze)

	m, err := core.NewMaze(core.Square, core.WithSize(2, 2))
	require.NoError(t, err)
	_, err = analyze.LongestPath(m)
	assert.ErrorIs(t, err, analyze.ErrDisconnected)

	one, err := core.NewMaze(core.Square, core.WithSize(1, 1))
	require.NoError(t, err)
	path, err := analyze.LongestPath(one)
	require.NoError(t, err)
	require.Len(t, path, 1)
	assert.Same(t, one.CellAt(0, 0), path[0])
}

func TestLongestPath_Generated(t *testing.T) {
	m, err := core.NewMaze(core.Polar, core.WithRadius(4))
	require.NoError(t, err)
	require.NoError(t, generate.Backtracker.Run(m, generate.RandFromSeed(8)))

	path, err := analyze.LongestPath(m)
	require.NoError(t, err)
	require.Greater(t, len(path), 2)
	for i := 1; i < len(path); i++ {
		assert.True(t, path[i-1].Linked(path[i]))
	}
}
