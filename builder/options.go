// SPDX-License-Identifier: MIT
// Package: lbrnth/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type Option func(*buildConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs; the
//     build pipeline itself never panics.
//   • Determinism is explicit: the stream is Blueprint.Seed unless WithRand
//     overrides it.
//   • No hidden globals; everything flows through buildConfig.
//
// AI-Hints:
//   • Prefer Blueprint.Seed over WithRand for reproducible fixtures; the
//     seed is part of the blueprint, the RNG is not.
//   • WithLogger accepts any logrus.FieldLogger: a *logrus.Logger, a
//     *logrus.Entry with preset fields, or a test hook logger.

package builder

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Option customizes one Build call by mutating its buildConfig before the
// pipeline starts.
type Option func(*buildConfig)

// WithLogger routes build progress to l. Panics on nil; silence is the
// default already, not something to ask for.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic(ErrNilLogger.Error())
	}

	return func(c *buildConfig) {
		c.log = l
	}
}

// WithRand substitutes the random stream for every stochastic stage,
// overriding Blueprint.Seed. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(ErrNilRand.Error())
	}

	return func(c *buildConfig) {
		c.rng = r
	}
}
