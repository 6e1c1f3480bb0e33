// SPDX-License-Identifier: MIT
// Package: digraphx/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil              (pure unless seeded)
//   • weightFn = DefaultWeightFn  (constant DefaultEdgeWeight)
//   • loops    = false            (RandomSparse skips u→u)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for every emitted arc.
	weightFn WeightFn
	// Whether RandomSparse may emit self-loops.
	loops bool
}

// newBuilderConfig applies opts in order over the defaults; last wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next arc weight.
func (c builderConfig) weight() float64 {
	return c.weightFn(c.rng)
}
