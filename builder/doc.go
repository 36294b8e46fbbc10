// Package builder turns a plain-data Blueprint into a finished maze in one
// call: topology construction, carving, boundary openings, optional
// braiding, solving and distance mapping, in that fixed order.
//
// The package is the configuration boundary of the module. Everything a
// build needs travels inside the Blueprint as serializable primitives, so
// requests can come from config files, CLI flags or network payloads
// without touching the algorithm packages directly. Build performs no I/O
// itself; progress goes to an injected logrus.FieldLogger (discarded by
// default) and every build is tagged with a fresh uuid for correlation.
//
// The package offers the following key components:
//
//   - Blueprint: the complete build request.
//     – Topology family sizing (Width/Height, Radius/Subdivision, MaxWeave).
//     – Algorithm and Seed for reproducible carving.
//     – Braid share, Openings, Solve and Distances toggles.
//   - Build(bp, opts...): the one orchestrator, returning *Result.
//   - Result: maze, solution path, distance table, braid count, build ID.
//   - Options:
//     – WithLogger: structured stage logging (Debug milestones, Info summary).
//     – WithRand: share one random stream across builds.
//
// Guarantees:
//
//   - Deterministic: one Blueprint, one maze; only Result.ID varies.
//   - Fail-fast: the first failing stage aborts with "Build: <stage>: %w",
//     keeping the downstream sentinel reachable via errors.Is.
//   - Never panics at runtime; option constructors panic on nil inputs.
//
// A minimal build:
//
//	res, err := builder.Build(builder.Blueprint{
//	    Topology:  core.Square,
//	    Width:     12,
//	    Height:    9,
//	    Algorithm: generate.Backtracker,
//	    Seed:      7,
//	    Openings: []core.OpeningSpec{
//	        {X: core.Start(), Y: core.Start()},
//	        {X: core.End(), Y: core.End()},
//	    },
//	    Solve: true,
//	})
package builder
