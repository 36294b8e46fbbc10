// Package analyze inspects carved mazes without modifying them: link
// totals, connected components, deadends and the longest corridor.
package analyze

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lbrnth/core"
)

// ConnectionCount returns the number of open cell pairs. Boundary openings
// have no partner cell and are not counted. A nil maze counts zero.
func ConnectionCount(m *core.Maze) int {
	if m == nil {
		return 0
	}
	var links int
	for _, c := range m.Cells() {
		for _, n := range c.Neighbors() {
			// Each pair shows up from both ends; count it from the lower index.
			if c.Linked(n) && n.Index() > c.Index() {
				links++
			}
		}
	}

	return links
}

// Components groups the cells into corridor systems by flood-filling over
// open links. Components and the cells within them come out in cell-index
// discovery order, so the grouping is reproducible. A nil maze yields nil.
func Components(m *core.Maze) [][]*core.Cell {
	if m == nil {
		return nil
	}
	visited := mapset.New[*core.Cell]()
	var comps [][]*core.Cell
	for _, c := range m.Cells() {
		if visited.Has(c) {
			continue
		}
		visited.Put(c)
		queue := []*core.Cell{c}
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, n := range u.Neighbors() {
				if !u.Linked(n) || visited.Has(n) {
					continue
				}
				visited.Put(n)
				queue = append(queue, n)
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// Deadends returns the cells with exactly one open side, in index order.
// Boundary openings count as open sides, so an entrance cell with one
// corridor is not a deadend. A nil maze yields nil.
func Deadends(m *core.Maze) []*core.Cell {
	if m == nil {
		return nil
	}
	var ds []*core.Cell
	for _, c := range m.Cells() {
		var open int
		for _, s := range c.Sides() {
			if !c.HasWall(s) {
				open++
			}
		}
		if open == 1 {
			ds = append(ds, c)
		}
	}

	return ds
}

// IsPerfect reports whether m is a perfect maze: one corridor system
// spanning every cell with exactly cellCount-1 links, which is the
// spanning-tree signature. Braided or partially carved mazes report false.
func IsPerfect(m *core.Maze) (bool, error) {
	if m == nil {
		return false, fmt.Errorf("IsPerfect: %w", ErrNilMaze)
	}

	return ConnectionCount(m) == m.CellCount()-1 && len(Components(m)) == 1, nil
}

// LongestPath returns the maze diameter as a cell sequence, found with two
// breadth-first sweeps: the first finds a farthest cell from an arbitrary
// start, the second finds the farthest cell from there and keeps the walk.
// On a perfect maze this is the exact tree diameter; with cycles present
// the sweep returns a longest shortest-path from the first sweep's
// endpoint, a tight lower bound. Tunnel hops count as single steps.
func LongestPath(m *core.Maze) ([]*core.Cell, error) {
	if m == nil {
		return nil, fmt.Errorf("LongestPath: %w", ErrNilMaze)
	}

	a, _, reached := farthest(m, m.Cells()[0])
	if reached != m.CellCount() {
		return nil, fmt.Errorf("LongestPath: %d of %d cells reachable: %w",
			reached, m.CellCount(), ErrDisconnected)
	}
	b, parent, _ := farthest(m, a)

	// Walk back from b to a, then flip to read a -> b.
	var path []*core.Cell
	for c := b; c != nil; c = parent[c.Index()] {
		path = append(path, c)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// farthest runs one breadth-first sweep over open links from start and
// returns the first deepest cell found, the parent table of the sweep and
// the number of cells reached.
func farthest(m *core.Maze, start *core.Cell) (far *core.Cell, parent []*core.Cell, reached int) {
	depth := make([]int, m.CellCount())
	for i := range depth {
		depth[i] = -1
	}
	parent = make([]*core.Cell, m.CellCount())
	depth[start.Index()] = 0
	far = start
	queue := []*core.Cell{start}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		reached++
		if depth[u.Index()] > depth[far.Index()] {
			far = u
		}
		for _, n := range u.Neighbors() {
			if !u.Linked(n) || depth[n.Index()] >= 0 {
				continue
			}
			depth[n.Index()] = depth[u.Index()] + 1
			parent[n.Index()] = u
			queue = append(queue, n)
		}
	}

	return far, parent, reached
}
