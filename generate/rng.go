// Package generate - RNG utilities shared by all generators.
//
// Generators never self-seed: the random source is always an explicit
// handle, so the same seed reproduces the same maze on every platform.
// RandFromSeed is the one factory; the helpers below keep the hot loops
// allocation-free.
//
// Concurrency: math/rand.Rand is not goroutine-safe. Do not share one
// handle across concurrent builds.
package generate

import (
	"math/rand"

	"github.com/katalvlaran/lbrnth/core"
)

// defaultRandSeed replaces a zero seed. Arbitrary but stable, so the
// zero-value Blueprint stays reproducible.
const defaultRandSeed int64 = 1

// RandFromSeed returns a deterministic *rand.Rand. A zero seed falls back
// to the package default; any other value is used verbatim.
func RandFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRandSeed
	}

	return rand.New(rand.NewSource(seed))
}

// shuffleEdgesInPlace performs an in-place Fisher-Yates shuffle.
func shuffleEdgesInPlace(edges []cellPair, r *rand.Rand) {
	for i := len(edges) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		edges[i], edges[j] = edges[j], edges[i]
	}
}

// pickCell removes and returns a uniformly chosen element, order not
// preserved. The slice must be non-empty.
func pickCell(cells *[]*core.Cell, r *rand.Rand) *core.Cell {
	s := *cells
	i := r.Intn(len(s))
	c := s[i]
	s[i] = s[len(s)-1]
	*cells = s[:len(s)-1]

	return c
}

// unvisitedNeighbors appends the unvisited practical neighbors of c to dst
// and returns it; dst is reused across calls to avoid reallocating.
func unvisitedNeighbors(c *core.Cell, dst []*core.Cell) []*core.Cell {
	dst = dst[:0]
	for _, n := range c.Neighbors() {
		if !n.Visited() {
			dst = append(dst, n)
		}
	}

	return dst
}
