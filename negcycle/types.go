// SPDX-License-Identifier: MIT
// Package: digraphx/negcycle
//
// types.go - adjacency view, cycle type, sentinel errors and options.

package negcycle

import (
	"errors"
	"iter"
	"maps"

	"github.com/rs/zerolog"
)

// Sentinel errors. The finders panic with these (wrapped with context)
// because every one of them signals a broken caller contract or a broken
// internal invariant, never a recoverable runtime condition.
var (
	// ErrNilGraph indicates that a nil adjacency view was passed to a constructor.
	ErrNilGraph = errors.New("negcycle: graph is nil")

	// ErrNodeNotFound indicates an edge whose destination is not a node of the view.
	ErrNodeNotFound = errors.New("negcycle: edge endpoint is not a node of the graph")

	// ErrNoPointer indicates a cycle walk reached a node without a pred/succ pointer.
	ErrNoPointer = errors.New("negcycle: node has no pointer in the policy graph")

	// ErrInvariant indicates a cycle of the policy graph failed the negativity check.
	ErrInvariant = errors.New("negcycle: policy cycle is not negative")

	// ErrBadMaxPasses indicates a negative MaxPasses option.
	ErrBadMaxPasses = errors.New("negcycle: MaxPasses must be non-negative")

	// ErrOptionType indicates a generic option built for a different distance domain.
	ErrOptionType = errors.New("negcycle: option value does not match the distance domain")
)

// Digraph is the read-only adjacency view the finders consume:
// node → (neighbor → edge). At most one edge per ordered pair; self-loops
// are allowed. Every neighbor yielded by Neighbors must also be yielded by
// Nodes. Implementations must not change while a finder uses them.
type Digraph[N comparable, E any] interface {
	// Nodes yields every node once.
	Nodes() iter.Seq[N]

	// Neighbors yields (v, e) for every edge u→v.
	Neighbors(u N) iter.Seq2[N, E]
}

// MapDigraph is the plain nested-map adjacency view. Sinks must still be
// present as keys (with an empty inner map) to count as nodes.
type MapDigraph[N comparable, E any] map[N]map[N]E

// Nodes yields the outer keys in map order.
func (m MapDigraph[N, E]) Nodes() iter.Seq[N] { return maps.Keys(m) }

// Neighbors yields the inner map of u in map order.
func (m MapDigraph[N, E]) Neighbors(u N) iter.Seq2[N, E] { return maps.All(m[u]) }

// Cycle is a closed walk given as its edges. Cycles found in the
// predecessor direction list edges against the arc direction (each edge's
// tail is the next edge's head); successor cycles list them along it.
// Rotations of the same walk denote the same cycle.
type Cycle[E any] []E

// link is one pointer of the policy (functional) graph: the neighbor it
// points to and the edge joining them.
type link[N comparable, E any] struct {
	node N
	edge E
}

// Options configures a Finder or FinderQ.
//
// MaxPasses – upper bound on relaxation passes per Howard call; 0 = none.
// Logger    – debug tracing sink; defaults to zerolog.Nop().
//
// The UpdateOK constraint hook is set through WithUpdateOK only, since its
// type depends on the distance domain.
type Options struct {
	MaxPasses int            // relaxation pass bound, 0 = unbounded
	Logger    zerolog.Logger // debug events

	updateOK any // func(current, candidate D) bool, checked by the constructor
}

// Option represents a functional option for the finders.
type Option func(*Options)

// DefaultOptions returns the defaults: no constraint hook, unbounded passes,
// silent logger.
func DefaultOptions() Options {
	return Options{
		MaxPasses: 0,
		Logger:    zerolog.Nop(),
	}
}

// WithUpdateOK installs a constraint hook consulted before each accepted
// relaxation. The function's type must match the finder's distance domain.
func WithUpdateOK[D any](fn func(current, candidate D) bool) Option {
	return func(o *Options) {
		o.updateOK = fn
	}
}

// WithMaxPasses bounds the relaxation passes of a single Howard call.
// Panics with ErrBadMaxPasses if n < 0.
func WithMaxPasses(n int) Option {
	if n < 0 {
		panic(ErrBadMaxPasses.Error())
	}
	return func(o *Options) {
		o.MaxPasses = n
	}
}

// WithLogger routes debug events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// resolveUpdateOK extracts the typed hook from o, panicking with
// ErrOptionType when it was built for another domain.
func resolveUpdateOK[D any](o Options) func(current, candidate D) bool {
	if o.updateOK == nil {
		return nil
	}
	fn, ok := o.updateOK.(func(current, candidate D) bool)
	if !ok {
		panic(ErrOptionType.Error())
	}

	return fn
}
