// Package gbascore scores every node of an interaction network by its
// proximity to a seed set of known-associated nodes ("guilt by
// association"). It drives the nbwalk engine for depths 1..d_max,
// attenuates each depth layer by alpha^t, and accumulates the result
// into a dense per-node ScoreVector.
//
// All input validation happens before any computation starts: once
// Score begins propagating, it is pure arithmetic over a finite,
// pre-validated state space and cannot fail, so partial output is never
// produced.
//
// Errors (sentinel):
//
//	ErrNilGraph       - nil *core.Graph passed to Score.
//	ErrBadAlpha       - alpha outside the open interval (0,1).
//	ErrBadDepth       - negative maximum depth.
//	ErrEmptySeeds     - empty seed slice after resolution.
//	ErrSeedOutOfRange - a seed index outside [0, NodeCount).
package gbascore

import (
	"errors"

	"github.com/katalvlaran/gbacent/nbwalk"
)

// Sentinel errors for parameter validation. Each aborts Score before any
// propagation work begins.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Score.
	ErrNilGraph = errors.New("gbascore: graph is nil")

	// ErrBadAlpha indicates an attenuation coefficient outside (0,1).
	ErrBadAlpha = errors.New("gbascore: alpha must lie in the open interval (0,1)")

	// ErrBadDepth indicates a negative maximum propagation depth.
	ErrBadDepth = errors.New("gbascore: maximum depth must be non-negative")

	// ErrEmptySeeds indicates that the resolved seed set is empty.
	ErrEmptySeeds = errors.New("gbascore: seed set is empty")

	// ErrSeedOutOfRange indicates a seed index that is not a graph node.
	ErrSeedOutOfRange = errors.New("gbascore: seed index out of range")
)

// Default parameter values, mirrored by the CLI flags.
const (
	// DefaultAlpha is the attenuation coefficient: each additional step
	// away from a seed halves its influence.
	DefaultAlpha = 0.5

	// DefaultMaxDepth is the maximum propagation distance.
	DefaultMaxDepth = 5
)

// ScoreVector holds one non-negative score per node, indexed by the
// graph's dense node index. It is freshly allocated by each Score call
// and never mutated afterward.
type ScoreVector []float64

// Options configures a Score computation.
//
// Alpha        – attenuation coefficient in the open interval (0,1).
// MaxDepth     – maximum propagation distance; 0 is a valid no-op that
// yields the all-zero vector (no walk of length ≥ 1 is taken).
// Workers      – goroutines per depth layer (see nbwalk.WithWorkers).
// NormPolicy   – hub-suppression divisor (see nbwalk.NormPolicy).
// NormExponent – secondary exponent on the normalization term.
type Options struct {
	Alpha        float64
	MaxDepth     int
	Workers      int
	NormPolicy   nbwalk.NormPolicy
	NormExponent float64
}

// Option is a functional option for configuring Score.
type Option func(*Options)

// WithAlpha sets the attenuation coefficient. Validated by Score:
// values outside (0,1) yield ErrBadAlpha.
func WithAlpha(alpha float64) Option {
	return func(o *Options) { o.Alpha = alpha }
}

// WithMaxDepth sets the maximum propagation distance. Validated by
// Score: negative values yield ErrBadDepth.
func WithMaxDepth(d int) Option {
	return func(o *Options) { o.MaxDepth = d }
}

// WithWorkers sets the per-depth worker count passed through to nbwalk.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithNormPolicy selects the degree normalization target passed through
// to nbwalk.
func WithNormPolicy(p nbwalk.NormPolicy) Option {
	return func(o *Options) { o.NormPolicy = p }
}

// WithNormExponent sets the secondary normalization exponent passed
// through to nbwalk.
func WithNormExponent(exp float64) Option {
	return func(o *Options) { o.NormExponent = exp }
}

// DefaultOptions returns the scoring defaults: alpha 0.5, depth 5,
// single worker, in-degree normalization with exponent 1.
func DefaultOptions() Options {
	return Options{
		Alpha:        DefaultAlpha,
		MaxDepth:     DefaultMaxDepth,
		Workers:      nbwalk.DefaultWorkers,
		NormPolicy:   nbwalk.DefaultNormPolicy,
		NormExponent: nbwalk.DefaultNormExponent,
	}
}
