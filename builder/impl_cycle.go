// SPDX-License-Identifier: MIT
// Package: digraphx/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); n = 1 is a single self-loop.
//   • Emits arcs i → (i+1)%n for i = 0..n-1 in that order.
//   • Weight per arc: cfg.weightFn(cfg.rng).
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 1
)

// Cycle returns a Constructor for the directed ring C_n.
func Cycle(n int) Constructor {
	return func(b *Batch, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		b.Grow(n)
		for i := 0; i < n; i++ {
			b.Arc(i, (i+1)%n, cfg.weight())
		}

		return nil
	}
}
