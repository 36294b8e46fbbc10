// Package distmap computes single-source shortest distances over the open
// passages of a maze, every step costing one.
//
// The main pass is the classic heap relaxation: extract the unfinalized cell
// of minimum distance, relax its open neighbors, push improvements (lazy
// decrease-key, duplicates skipped on pop). On the weave topology a second
// pass back-fills tunnelled cells, which carry no open sides of their own
// and are invisible to the surface relaxation.
//
// A cell left without a distance after both passes is a hard failure: the
// whole map is withheld with ErrUnreachable rather than returned partial.
package distmap

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lbrnth/core"
)

// unreached marks cells the relaxation has not assigned yet.
const unreached = math.MaxInt

// Compute returns the distance table of m from a source cell. The source
// defaults to the maze's first opening, then to cell index 0; WithSource
// overrides. The maze is never written; pair the result's Values with
// Maze.SetDistances to cache it.
//
// Complexity: O(cells log cells) time, O(cells) space.
func Compute(m *core.Maze, opts ...Option) (*DistanceMap, error) {
	// 1) Apply options.
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the handle, then pin the source.
	if m == nil {
		return nil, ErrNilMaze
	}
	src := cfg.Source
	if src == nil {
		if ops := m.Openings(); len(ops) > 0 {
			src = ops[0]
		} else {
			src = m.Cells()[0]
		}
	} else if !m.Contains(src) {
		return nil, fmt.Errorf("Compute: %w", ErrForeignSource)
	}

	// 3) Surface pass.
	values := make([]int, m.CellCount())
	for i := range values {
		values[i] = unreached
	}
	values[src.Index()] = 0

	done := make([]bool, m.CellCount())
	pq := make(distPQ, 0, m.CellCount()/2+1)
	heap.Init(&pq)
	heap.Push(&pq, &distItem{cell: src})
	for pq.Len() > 0 {
		c := heap.Pop(&pq).(*distItem).cell
		if done[c.Index()] {
			continue
		}
		done[c.Index()] = true

		base := values[c.Index()]
		for _, n := range c.Neighbors() {
			if !c.Linked(n) || base+1 >= values[n.Index()] {
				continue
			}
			values[n.Index()] = base + 1
			heap.Push(&pq, &distItem{cell: n, dist: base + 1})
		}
	}

	// 4) Tunnel pass, then the completeness gate.
	if m.Kind() == core.Weave {
		backfillTunnels(m, values)
	}
	for i, v := range values {
		if v == unreached {
			return nil, fmt.Errorf("Compute: cell %v: %w", m.Cells()[i].Pos(), ErrUnreachable)
		}
	}

	return &DistanceMap{maze: m, source: src, values: values}, nil
}

// backfillTunnels walks the grid for tunnel runs and assigns each tunnelled
// cell the nearer endpoint's distance plus its offset into the run. Cells
// the surface network already reached keep their surface distance.
func backfillTunnels(m *core.Maze, values []int) {
	width, height := m.Size()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			switch m.CellAt(x, y).Tunnel() {
			case core.TunnelEW:
				if p := m.CellAt(x-1, y); p != nil && p.Tunnel() == core.TunnelEW {
					continue // interior of a run, handled from its start
				}
				fillRun(m, values, x, y, 1, 0)
			case core.TunnelNS:
				if p := m.CellAt(x, y-1); p != nil && p.Tunnel() == core.TunnelNS {
					continue
				}
				fillRun(m, values, x, y, 0, 1)
			}
		}
	}
}

// fillRun fills one maximal tunnel run starting at (x, y) along (dx, dy).
func fillRun(m *core.Maze, values []int, x, y, dx, dy int) {
	axis := m.CellAt(x, y).Tunnel()
	runLen := 0
	for {
		c := m.CellAt(x+dx*runLen, y+dy*runLen)
		if c == nil || c.Tunnel() != axis {
			break
		}
		runLen++
	}

	entry := m.CellAt(x-dx, y-dy)
	exit := m.CellAt(x+dx*runLen, y+dy*runLen)
	if entry == nil || exit == nil || !entry.Linked(exit) {
		// Stale flags with the passage since re-walled; nothing to stand on.
		return
	}

	dA, dB := values[entry.Index()], values[exit.Index()]
	for i := 1; i <= runLen; i++ {
		mid := m.CellAt(x+dx*(i-1), y+dy*(i-1))
		if values[mid.Index()] != unreached {
			continue
		}
		v := unreached
		if dA != unreached {
			v = dA + i
		}
		if dB != unreached && dB+runLen+1-i < v {
			v = dB + runLen + 1 - i
		}
		if v != unreached {
			values[mid.Index()] = v
		}
	}
}

// distItem is one frontier entry: a cell and its tentative distance.
type distItem struct {
	cell *core.Cell
	dist int
}

// distPQ is a min-heap of *distItem ordered by dist ascending.
type distPQ []*distItem

// Len returns the number of items in the heap.
func (pq distPQ) Len() int { return len(pq) }

// Less prefers the smaller tentative distance.
func (pq distPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq distPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push.
func (pq *distPQ) Push(x interface{}) { *pq = append(*pq, x.(*distItem)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *distPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
