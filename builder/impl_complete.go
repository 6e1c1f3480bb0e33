// SPDX-License-Identifier: MIT
// Package: digraphx/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits every ordered pair (i,j), i ≠ j, lexicographically; each arc
//     draws its own weight, so i→j and j→i may differ.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for the complete digraph on n nodes.
func Complete(n int) Constructor {
	return func(b *Batch, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		b.Grow(n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j {
					b.Arc(i, j, cfg.weight())
				}
			}
		}

		return nil
	}
}
