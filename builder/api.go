// SPDX-License-Identifier: MIT
// Package: digraphx/builder
//
// api.go - Build orchestrator, the Batch arc buffer and the Constructor type.

package builder

import (
	"fmt"

	"github.com/katalvlaran/digraphx/tinydigraph"
)

// Batch accumulates the nodes and weighted arcs emitted by constructors.
// Nodes are the integers 0..Nodes()-1; arcs keep emission order.
type Batch struct {
	n    int
	arcs []tinydigraph.Arc[int, float64]
}

// Grow makes sure nodes 0..n-1 exist. Constructors share the node range,
// so composing Cycle(4) with Complete(3) yields four nodes.
func (b *Batch) Grow(n int) {
	if n > b.n {
		b.n = n
	}
}

// Arc records u→v with weight w. Endpoints must lie inside the node range.
func (b *Batch) Arc(u, v int, w float64) {
	b.arcs = append(b.arcs, tinydigraph.Arc[int, float64]{From: u, To: v, Edge: w})
}

// Nodes returns the current size of the node range.
func (b *Batch) Nodes() int { return b.n }

// Arcs returns the recorded arcs in emission order.
func (b *Batch) Arcs() []tinydigraph.Arc[int, float64] { return b.arcs }

// Constructor emits a deterministic topology into b using the resolved
// configuration. Constructors validate their parameters and return wrapped
// sentinel errors; they never panic.
type Constructor func(b *Batch, cfg builderConfig) error

// EdgeFn turns an emitted arc into the edge value stored in the graph.
type EdgeFn[E any] func(u, v int, w float64) E

// Weight is the EdgeFn that stores the sampled weight itself.
func Weight(_, _ int, w float64) float64 { return w }

// Build resolves bopts, runs every constructor in order and materializes
// the result as a TinyDiGraph over 0..n-1 whose edges come from edge.
// A later arc between the same pair replaces the earlier one.
//
// Errors:
//   - ErrConstructFailed for a nil constructor or nil edge function.
//   - Any constructor error, wrapped as "Build: %w".
func Build[E any](edge EdgeFn[E], bopts []BuilderOption, cons ...Constructor) (*tinydigraph.TinyDiGraph[int, E], error) {
	if edge == nil {
		return nil, fmt.Errorf("Build: nil edge function: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	var b Batch
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(&b, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	g := tinydigraph.NewRange[E](b.n)
	for _, a := range b.arcs {
		if err := g.AddEdge(a.From, a.To, edge(a.From, a.To, a.Edge)); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}
