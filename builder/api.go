// SPDX-License-Identifier: MIT
// Package: lbrnth/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(bp, opts...). Resolves cfg, runs the stages in
//     a fixed order: construct → generate → openings → braid → solve →
//     distances. Optional stages are skipped, never reordered.
//   - Blueprint is plain data: serializable primitives only, no callbacks,
//     so a blueprint can travel through config files and CLI flags.
//   - Determinism: the same Blueprint yields the same maze; only Result.ID
//     differs between runs.
//   - Failures wrap the stage name once, "Build: <stage>: %w", leaving the
//     downstream sentinel reachable with errors.Is. No partial cleanup: a
//     failed build returns nil and the half-built maze is dropped.
//
// AI-Hints (practical):
//   - Branch on the wrapped sentinels: errors.Is(err, braid.ErrBadPercent)
//     catches a bad Blueprint.Braid through the stage prefix.
//   - Solve defaults its endpoints to the first two openings; list at least
//     two in Blueprint.Openings before setting Solve.
//   - Distances follows the same source rule as distmap.Compute: the first
//     opening when present, cell zero otherwise.

package builder

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lbrnth/astar"
	"github.com/katalvlaran/lbrnth/braid"
	"github.com/katalvlaran/lbrnth/core"
	"github.com/katalvlaran/lbrnth/distmap"
	"github.com/katalvlaran/lbrnth/generate"
)

// Blueprint is a complete, plain-data build request. The zero value asks
// for a Square maze carved by Backtracker, which still fails construct
// until Width and Height are set.
type Blueprint struct {
	// Topology picks the cell arrangement.
	Topology core.Topology
	// Width and Height size the grid families; ignored for Polar.
	Width, Height int
	// Radius and Subdivision size the polar family. Subdivision 0 keeps
	// the core default.
	Radius, Subdivision int
	// MaxWeave caps tunnel spans on Weave mazes; 0 keeps the core default.
	MaxWeave int
	// Algorithm carves the corridors.
	Algorithm generate.Algorithm
	// Seed fixes every stochastic stage; 0 selects the fixed default
	// stream, it never means "random".
	Seed int64
	// Braid opens this share of deadends after carving, 0 through 1.
	// 0 skips the stage and keeps the maze perfect.
	Braid float64
	// Openings are boundary gaps cut after carving, in order.
	Openings []core.OpeningSpec
	// Solve stores an entrance-to-exit path on the maze and in the result.
	Solve bool
	// Distances computes the distance table and stores it on the maze.
	Distances bool
}

// Result carries everything one Build produced.
type Result struct {
	// ID tags the build for log correlation; fresh per call.
	ID uuid.UUID
	// Maze is the finished maze with openings, solution and distances
	// already attached where requested.
	Maze *core.Maze
	// Solution is the stored path, nil unless Blueprint.Solve.
	Solution []*core.Cell
	// Distances is the computed table, nil unless Blueprint.Distances.
	Distances *distmap.DistanceMap
	// Opened is the number of deadends the braid stage opened.
	Opened int
}

// Build runs the blueprint through the pipeline and returns the finished
// artifact. The first failing stage aborts the build with its name in the
// error; stages after it never run.
func Build(bp Blueprint, opts ...Option) (*Result, error) {
	cfg := newBuildConfig(opts...)
	res := &Result{ID: uuid.New()}
	log := cfg.log.WithField("build", res.ID)
	rng := cfg.rng
	if rng == nil {
		rng = generate.RandFromSeed(bp.Seed)
	}

	m, err := construct(bp)
	if err != nil {
		return nil, fmt.Errorf("Build: %s: %w", StageConstruct, err)
	}
	res.Maze = m
	log.WithFields(logrus.Fields{
		"topology": m.Kind().String(),
		"cells":    m.CellCount(),
	}).Debug("maze constructed")

	if err = bp.Algorithm.Run(m, rng); err != nil {
		return nil, fmt.Errorf("Build: %s: %w", StageGenerate, err)
	}
	log.WithField("algorithm", bp.Algorithm.String()).Debug("maze carved")

	for _, spec := range bp.Openings {
		if _, err = m.AddOpening(spec); err != nil {
			return nil, fmt.Errorf("Build: %s: %w", StageOpenings, err)
		}
	}

	if bp.Braid != 0 {
		res.Opened, err = braid.Braid(m, rng, braid.WithPercent(bp.Braid))
		if err != nil {
			return nil, fmt.Errorf("Build: %s: %w", StageBraid, err)
		}
		log.WithField("opened", res.Opened).Debug("deadends braided")
	}

	if bp.Solve {
		sol, err := astar.SolveAndStore(m)
		if err != nil {
			return nil, fmt.Errorf("Build: %s: %w", StageSolve, err)
		}
		res.Solution = sol.Path
		log.WithFields(logrus.Fields{
			"cost":     sol.Cost,
			"expanded": sol.Expanded,
		}).Debug("solution stored")
	}

	if bp.Distances {
		dm, err := distmap.Compute(m)
		if err != nil {
			return nil, fmt.Errorf("Build: %s: %w", StageDistances, err)
		}
		if err = m.SetDistances(dm.Values()); err != nil {
			return nil, fmt.Errorf("Build: %s: %w", StageDistances, err)
		}
		res.Distances = dm
		far, _ := dm.Max()
		log.WithField("max_distance", far).Debug("distance table stored")
	}

	log.WithFields(logrus.Fields{
		"openings": len(m.Openings()),
		"opened":   res.Opened,
	}).Info("build complete")

	return res, nil
}

// construct allocates the maze for bp, translating the relevant blueprint
// fields into the topology family's own options.
func construct(bp Blueprint) (*core.Maze, error) {
	var mopts []core.MazeOption
	switch {
	case bp.Topology == core.Polar:
		mopts = append(mopts, core.WithRadius(bp.Radius))
		if bp.Subdivision > 0 {
			mopts = append(mopts, core.WithSubdivision(bp.Subdivision))
		}
	case bp.Topology == core.Weave:
		mopts = append(mopts, core.WithSize(bp.Width, bp.Height))
		if bp.MaxWeave > 0 {
			mopts = append(mopts, core.WithMaxWeave(bp.MaxWeave))
		}
	default:
		mopts = append(mopts, core.WithSize(bp.Width, bp.Height))
	}

	return core.NewMaze(bp.Topology, mopts...)
}
