// SPDX-License-Identifier: MIT
// Package: digraphx/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model: include each ordered pair (i,j) independently with probability p;
// self-loops only under WithLoops.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng required when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism: trials run i asc, then j asc; for a fixed seed the arc set and
// weights are identical across runs.
//
// Complexity: O(n²) Bernoulli trials, O(1) extra space.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor sampling an Erdős–Rényi-like digraph
// over n nodes with independent arc probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(b *Batch, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		b.Grow(n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j && !cfg.loops {
					continue
				}
				// p ∈ {0,1} never touches the RNG.
				var keep bool
				switch p {
				case probMin:
					keep = false
				case probMax:
					keep = true
				default:
					keep = cfg.rng.Float64() < p
				}
				if keep {
					b.Arc(i, j, cfg.weight())
				}
			}
		}

		return nil
	}
}
