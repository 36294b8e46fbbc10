// Package generate: the Algorithm enum, dispatch, and shared validation.
//
// Errors:
//
//	ErrNilMaze             - nil maze handle.
//	ErrNilRand             - nil random source; generators never self-seed.
//	ErrUnsupportedTopology - the algorithm cannot carve this tiling.
//	ErrUnknownAlgorithm    - Algorithm value outside the closed enum.
package generate

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lbrnth/core"
)

// Sentinel errors shared by all generators.
var (
	// ErrNilMaze indicates a nil maze handle.
	ErrNilMaze = errors.New("generate: nil maze")

	// ErrNilRand indicates a nil random source.
	ErrNilRand = errors.New("generate: nil random source")

	// ErrUnsupportedTopology indicates an algorithm/topology mismatch.
	ErrUnsupportedTopology = errors.New("generate: topology not supported")

	// ErrUnknownAlgorithm indicates an Algorithm value outside the closed enum.
	ErrUnknownAlgorithm = errors.New("generate: unknown algorithm")
)

// Algorithm selects a maze generator. The enum is the serializable boundary
// the builder package exposes; Run dispatches to the implementation.
type Algorithm uint8

const (
	// Backtracker is the iterative depth-first carver: long winding
	// corridors, few junctions. Supports every topology.
	Backtracker Algorithm = iota

	// HuntAndKill alternates random walks with a deterministic raster hunt.
	// Supports every topology.
	HuntAndKill

	// Kruskal carves a uniform-flavour spanning tree from a shuffled edge
	// list and a disjoint-set forest. Supports every topology.
	Kruskal

	// Sidewinder carves row runs with northward escapes. Quadrilateral
	// grids only.
	Sidewinder

	// BinaryTree opens one of two bias sides per cell. Quadrilateral, hex,
	// and polar grids.
	BinaryTree

	// Division is the wall-adder: recursive splitting of open regions.
	// Quadrilateral grids only.
	Division

	// WeaveCross pre-seeds over/under crossings and completes the tree with
	// the pre-seeded Kruskal phase. Weave topology only.
	WeaveCross

	// Wilson carves a uniform spanning tree by loop-erased random walks.
	// Supports every topology.
	Wilson

	algorithmCount // sentinel for validation; keep last
)

// algorithmNames backs Algorithm.String; index-aligned with the enum.
var algorithmNames = [...]string{
	Backtracker: "Backtracker",
	HuntAndKill: "HuntAndKill",
	Kruskal:     "Kruskal",
	Sidewinder:  "Sidewinder",
	BinaryTree:  "BinaryTree",
	Division:    "Division",
	WeaveCross:  "WeaveCross",
	Wilson:      "Wilson",
}

// String returns the canonical algorithm name, or "Algorithm(?)" out of range.
func (a Algorithm) String() string {
	if !a.Valid() {
		return "Algorithm(?)"
	}

	return algorithmNames[a]
}

// Valid reports whether a is a member of the closed enum.
func (a Algorithm) Valid() bool { return a < algorithmCount }

// Supports reports whether the algorithm can carve topology t.
func (a Algorithm) Supports(t core.Topology) bool {
	switch a {
	case Backtracker, HuntAndKill, Kruskal, Wilson:
		return t.Valid()
	case Sidewinder, Division:
		return t.Quadrilateral()
	case BinaryTree:
		return t.Quadrilateral() || t == core.Hex || t == core.Polar
	case WeaveCross:
		return t == core.Weave
	default:
		return false
	}
}

// Option tunes a single Run beyond the algorithm choice.
type Option func(*tuning)

// tuning collects the per-run knobs behind the Option closures.
type tuning struct {
	crossings int
}

// WithCrossings caps how many over/under crossings the weave generator
// attempts to plant before its spanning phase. Zero plants none; a negative
// value restores the automatic density of one attempt per eight cells.
// Other algorithms ignore the option.
func WithCrossings(n int) Option {
	return func(t *tuning) { t.crossings = n }
}

// Run resets the maze and carves it with the selected algorithm.
func (a Algorithm) Run(m *core.Maze, r *rand.Rand, opts ...Option) error {
	t := tuning{crossings: -1}
	for _, opt := range opts {
		opt(&t)
	}
	switch a {
	case Backtracker:
		return backtracker(m, r)
	case HuntAndKill:
		return huntAndKill(m, r)
	case Kruskal:
		return kruskal(m, r)
	case Sidewinder:
		return sidewinder(m, r)
	case BinaryTree:
		return binaryTree(m, r)
	case Division:
		return division(m, r)
	case WeaveCross:
		return weaveCross(m, r, t.crossings)
	case Wilson:
		return wilson(m, r)
	default:
		return fmt.Errorf("Run: algorithm %d: %w", uint8(a), ErrUnknownAlgorithm)
	}
}

// Generators lists every algorithm in enum order.
func Generators() []Algorithm {
	out := make([]Algorithm, 0, int(algorithmCount))
	for a := Algorithm(0); a < algorithmCount; a++ {
		out = append(out, a)
	}

	return out
}

// validate runs the shared precondition checks of algorithm a: handles
// first, then topology compatibility. Generators call it before any
// mutation so a failed run leaves the maze untouched; each wraps the
// result under its own name.
func validate(a Algorithm, m *core.Maze, r *rand.Rand) error {
	if m == nil {
		return ErrNilMaze
	}
	if r == nil {
		return ErrNilRand
	}
	if !a.Supports(m.Kind()) {
		return fmt.Errorf("%v: %w", m.Kind(), ErrUnsupportedTopology)
	}

	return nil
}
