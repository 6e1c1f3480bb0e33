// SPDX-License-Identifier: MIT
// Package: digraphx/builder
//
// weight_fn.go - arc weight distributions.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight of every arc when no WeightFn is set.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an arc weight from an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always yields value. Negative values are allowed:
// negative cycles are the point of this module.
func ConstantWeightFn(value float64) WeightFn {
	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn samples uniformly in [min, max). Panics if max < min.
// A nil rng yields min.
func UniformWeightFn(min, max float64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// IntWeightFn samples an integer uniformly in [min, max] inclusive and
// returns it as float64, so sums stay exact. Panics if max < min.
// A nil rng yields min.
func IntWeightFn(min, max int) WeightFn {
	if max < min {
		panic(fmt.Sprintf("IntWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return float64(min)
		}

		return float64(min + rng.Intn(max-min+1))
	}
}

// WithConstantWeight sets a fixed arc weight.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max).
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithIntWeight sets integer weights drawn uniformly from [min,max].
func WithIntWeight(min, max int) BuilderOption {
	return WithWeightFn(IntWeightFn(min, max))
}
