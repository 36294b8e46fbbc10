// SPDX-License-Identifier: MIT
// Package: lbrnth/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Build attaches stage context as "Build: <stage>: %w"; the wrapped error
//     is the failing package's own sentinel (core/generate/braid/astar/distmap),
//     so one errors.Is reaches the root cause through the stage prefix.
//   • Runtime code MUST NOT panic; validation panics are confined to the
//     option constructors (WithLogger, WithRand).
//
// AI-Hints (practical guidance):
//   • Branch on downstream sentinels, not strings: errors.Is(err,
//     generate.ErrUnsupportedTopology) matches through the Build wrapper.
//   • The stage constants (StageConstruct...) name which step failed; use
//     them when logging rejected blueprints.
//   • The two sentinels below only ever appear as panic payloads.

package builder

import "errors"

// ErrNilLogger is the panic payload of WithLogger(nil). A blueprint build
// with no logging wants the default discard logger, not an explicit nil.
var ErrNilLogger = errors.New("builder: WithLogger requires a non-nil logger")

// ErrNilRand is the panic payload of WithRand(nil). Reproducibility flows
// from Blueprint.Seed by default; an explicit nil RNG has no meaning.
var ErrNilRand = errors.New("builder: WithRand requires a non-nil source")
