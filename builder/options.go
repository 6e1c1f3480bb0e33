// SPDX-License-Identifier: MIT
// Package: digraphx/builder
//
// options.go - functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs; constructors
// themselves return errors. Determinism is explicit: seed via WithSeed or
// WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes a builderConfig before any constructor runs.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors and weights.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a fresh *rand.Rand seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-arc weight generator. The function receives
// the (possibly nil) RNG. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithLoops lets RandomSparse sample self-loops u→u.
func WithLoops() BuilderOption {
	return func(c *builderConfig) {
		c.loops = true
	}
}
