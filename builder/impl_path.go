// SPDX-License-Identifier: MIT
// Package: digraphx/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits arcs (i-1) → i for i = 1..n-1 in increasing order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor for the directed path P_n. It is acyclic, so
// no composition of Path alone ever holds a negative cycle.
func Path(n int) Constructor {
	return func(b *Batch, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		b.Grow(n)
		for i := 1; i < n; i++ {
			b.Arc(i-1, i, cfg.weight())
		}

		return nil
	}
}
