// Package astar implements A* search over the open passages of a maze.
//
// The frontier is a min-heap ordered by f = g + h, where g counts steps from
// the start and h is the Position.Dist estimate to the goal. The heap uses
// the lazy decrease-key pattern: improving a cell pushes a duplicate entry
// and the stale one is skipped when popped.
//
// Notes on implementation choices:
//
//   - Every open passage costs one step, including a weave tunnel hop whose
//     surface length is greater. The heuristic measures surface distance, so
//     on the weave and diagonal tilings A* trades strict optimality for
//     fewer expansions. On a perfect maze the path is unique either way.
//   - Cells are keyed by Cell.Index into flat slices rather than maps; the
//     cell count is fixed and small lookups dominate the loop.
package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lbrnth/core"
)

// Solve searches for a path between two cells of m over open passages only.
// Endpoints default to the maze's first two openings in insertion order;
// WithEndpoints overrides.
//
// Returns ErrNilMaze, ErrNeedOpenings or ErrForeignCell for bad input and
// ErrNoSolution when the endpoints are not connected. The maze itself is
// never written; use SolveAndStore to cache the path on it.
//
// Complexity: O(cells log cells) time, O(cells) space.
func Solve(m *core.Maze, opts ...Option) (*Result, error) {
	// 1) Apply options.
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the handle before dereferencing anything.
	if m == nil {
		return nil, ErrNilMaze
	}

	// 3) Resolve endpoints: explicit pair, else the first two openings.
	from, to := cfg.From, cfg.To
	if from == nil || to == nil {
		ops := m.Openings()
		if len(ops) < 2 {
			return nil, fmt.Errorf("Solve: %d opening(s): %w", len(ops), ErrNeedOpenings)
		}
		from, to = ops[0], ops[1]
	}
	if !m.Contains(from) || !m.Contains(to) {
		return nil, fmt.Errorf("Solve: %w", ErrForeignCell)
	}

	// 4) Run.
	r := &runner{
		goal: to,
		g:    make([]int, m.CellCount()),
		prev: make([]*core.Cell, m.CellCount()),
		done: make([]bool, m.CellCount()),
		pq:   make(nodePQ, 0, m.CellCount()/2+1),
	}
	for i := range r.g {
		r.g[i] = math.MaxInt
	}

	return r.search(from)
}

// SolveAndStore runs Solve and caches the path on the maze, so the dump
// renderer and downstream consumers can pick it up. The maze is written only
// on success.
func SolveAndStore(m *core.Maze, opts ...Option) (*Result, error) {
	res, err := Solve(m, opts...)
	if err != nil {
		return nil, err
	}
	if err := m.SetSolution(res.Path); err != nil {
		return nil, fmt.Errorf("SolveAndStore: %w", err)
	}

	return res, nil
}

// runner holds the mutable state of a single search.
type runner struct {
	goal     *core.Cell
	g        []int        // best known step count per cell index
	prev     []*core.Cell // parent links for the path rebuild
	done     []bool       // finalized cells; stale heap duplicates skip here
	pq       nodePQ
	expanded int
}

// search drives the main loop: pop the lowest f, finalize, relax neighbors,
// stop at the goal or when the frontier drains.
func (r *runner) search(from *core.Cell) (*Result, error) {
	r.g[from.Index()] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{cell: from, f: from.Pos().Dist(r.goal.Pos())})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		c := item.cell
		if r.done[c.Index()] {
			continue
		}
		r.done[c.Index()] = true
		r.expanded++

		if c == r.goal {
			return r.result(), nil
		}
		r.relax(c)
	}

	return nil, fmt.Errorf("Solve: %w", ErrNoSolution)
}

// relax offers c's open neighbors a path through c, pushing every strict
// improvement onto the frontier.
func (r *runner) relax(c *core.Cell) {
	base := r.g[c.Index()]
	for _, n := range c.Neighbors() {
		if !c.Linked(n) || r.done[n.Index()] {
			continue
		}
		if base+1 >= r.g[n.Index()] {
			continue
		}
		r.g[n.Index()] = base + 1
		r.prev[n.Index()] = c
		heap.Push(&r.pq, &nodeItem{cell: n, f: base + 1 + n.Pos().Dist(r.goal.Pos())})
	}
}

// result rebuilds the path by walking parent links back from the goal.
func (r *runner) result() *Result {
	path := []*core.Cell{r.goal}
	for c := r.prev[r.goal.Index()]; c != nil; c = r.prev[c.Index()] {
		path = append(path, c)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return &Result{Path: path, Cost: len(path) - 1, Expanded: r.expanded}
}

// nodeItem is one frontier entry: a cell and its f = g + h priority.
type nodeItem struct {
	cell *core.Cell
	f    int
}

// nodePQ is a min-heap of *nodeItem ordered by f ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less prefers the smaller f.
func (pq nodePQ) Less(i, j int) bool { return pq[i].f < pq[j].f }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
