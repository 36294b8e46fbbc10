// Package braid defines the options and sentinel errors for deadend
// removal.
package braid

import "errors"

// Sentinel errors returned by Braid.
var (
	// ErrNilMaze indicates that a nil *core.Maze was passed in.
	ErrNilMaze = errors.New("braid: maze is nil")

	// ErrNilRand indicates a nil random source; braiding never self-seeds.
	ErrNilRand = errors.New("braid: random source is nil")

	// ErrBadCount indicates a negative WithCount target.
	ErrBadCount = errors.New("braid: count must be non-negative")

	// ErrBadPercent indicates a WithPercent value outside [0, 1].
	ErrBadPercent = errors.New("braid: percent must be within [0, 1]")

	// ErrAmbiguousTarget indicates that both WithCount and WithPercent were
	// supplied; the two targets cannot be reconciled.
	ErrAmbiguousTarget = errors.New("braid: WithCount and WithPercent are mutually exclusive")
)

// Options configures a single Braid run. Exactly one of the two targets may
// be set; neither means percent 1, the full sweep.
type Options struct {
	Count      int
	Percent    float64
	hasCount   bool
	hasPercent bool
}

// Option is a functional option for configuring Braid.
type Option func(*Options)

// WithCount asks for an absolute number of deadends to open. Values are
// validated inside Braid so the error surfaces on the call, not here.
func WithCount(n int) Option {
	return func(o *Options) {
		o.Count = n
		o.hasCount = true
	}
}

// WithPercent asks for a share of the deadends collected at call time,
// 0 = none, 1 = all. Validated inside Braid.
func WithPercent(p float64) Option {
	return func(o *Options) {
		o.Percent = p
		o.hasPercent = true
	}
}
