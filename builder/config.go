// SPDX-License-Identifier: MIT
// Package: lbrnth/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • buildConfig is the single source of truth for the two injected
//     collaborators: the logger and the random source.
//   • Defaults are deterministic and documented; no globals.
//   • newBuildConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • log = a logrus logger writing to io.Discard (silent builds)
//   • rng = nil (Build derives one from Blueprint.Seed)
//
// AI-Hints:
//   • Inject WithLogger(logrus.StandardLogger()) or any *logrus.Entry to see
//     per-stage build progress; the default swallows everything.
//   • Inject WithRand to share one stream across several builds; otherwise
//     each Build starts its own stream at Blueprint.Seed.

package builder

import (
	"io"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// buildConfig aggregates the injected collaborators of one Build call.
// It is resolved once per call and passed by value.
type buildConfig struct {
	// Structured logger; stage milestones go out at Debug, the summary at Info.
	log logrus.FieldLogger
	// Random stream shared by every stochastic stage; nil means seed-derived.
	rng *rand.Rand
}

// newBuildConfig constructs a config with deterministic defaults and applies
// all options in order.
func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{log: discardLogger(), rng: nil}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// discardLogger returns a logrus logger whose output is thrown away, the
// default for library callers that did not opt into logging.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
