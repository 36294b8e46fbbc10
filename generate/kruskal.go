// Package generate: randomized Kruskal, the edge-list carver.
package generate

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lbrnth/core"
)

// cellPair is one undirected adjacency: a carveable wall between two cells.
type cellPair struct {
	a, b *core.Cell
}

// kruskal carves a spanning tree from a shuffled edge list and a
// disjoint-set forest. The texture is the classic Kruskal one: short local
// corridors, many junctions, no long-range bias.
//
// Complexity: O(E α(V)) after the O(E) shuffle. Memory: O(E + V).
func kruskal(m *core.Maze, r *rand.Rand) error {
	if err := validate(Kruskal, m, r); err != nil {
		return fmt.Errorf("kruskal: %w", err)
	}
	m.ResetFull()

	if err := kruskalCarve(m, r); err != nil {
		return fmt.Errorf("kruskal: %w", err)
	}

	return nil
}

// collectEdges gathers every practical adjacency exactly once. Each pair is
// recorded from its lower-indexed endpoint, which deduplicates the two
// directions without a set.
func collectEdges(m *core.Maze) []cellPair {
	edges := make([]cellPair, 0, m.CellCount()*2)
	for _, c := range m.Cells() {
		for _, n := range c.Neighbors() {
			if n.Index() > c.Index() {
				edges = append(edges, cellPair{a: c, b: n})
			}
		}
	}

	return edges
}

// kruskalCarve runs the union phase on the maze as it stands: passages
// already open are folded into the forest first, so a caller may plant
// connections (the weave crossing pass does) and still end with a tree.
//
// DSU: iterative find with grandparent path compression, union by rank.
func kruskalCarve(m *core.Maze, r *rand.Rand) error {
	edges := collectEdges(m)
	shuffleEdgesInPlace(edges, r)

	// One set per cell, keyed by cell index.
	parent := make([]int, m.CellCount())
	rank := make([]int, m.CellCount())
	for i := range parent {
		parent[i] = i
	}

	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	components := m.CellCount()
	union := func(u, v int) {
		rootU := find(u)
		rootV := find(v)
		if rootU == rootV {
			return
		}
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
		components--
	}

	// Fold pre-planted passages into the forest before carving.
	for _, e := range edges {
		if e.a.Linked(e.b) {
			union(e.a.Index(), e.b.Index())
		}
	}

	for _, e := range edges {
		if components == 1 {
			break
		}
		if find(e.a.Index()) == find(e.b.Index()) {
			continue
		}
		if err := e.a.Connect(e.b); err != nil {
			// A crossing carve shadowed this edge since collection; the
			// endpoints stay reachable through their orthogonal walls.
			continue
		}
		union(e.a.Index(), e.b.Index())
	}

	return nil
}
