// File: types.go
// Role: TinyDiGraph, Arc, Option, sentinel errors, and the New / NewRange
// constructors.
//
// Errors:
//
//	ErrNodeNotFound    - an operation referenced a node that was never added.
//	ErrEdgeNotFound    - RemoveEdge on an absent ordered pair.
//	ErrBadCapacity     - negative capacity hint.

package tinydigraph

import (
	"errors"
	"sync"
)

// Sentinel errors for TinyDiGraph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("tinydigraph: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("tinydigraph: edge not found")

	// ErrBadCapacity indicates a negative capacity hint.
	ErrBadCapacity = errors.New("tinydigraph: capacity must be non-negative")
)

// Arc is one edge u→v with its payload.
type Arc[N comparable, E any] struct {
	// From is the tail node.
	From N

	// To is the head node.
	To N

	// Edge is the payload stored for the ordered pair (From, To).
	Edge E
}

// half is an outgoing edge stored by the index of its head.
type half[E any] struct {
	to   int
	edge E
}

// TinyDiGraph is a simple directed graph: at most one edge per ordered
// pair, self-loops allowed. Nodes get dense indices 0..n-1 in insertion
// order; neighbor lists keep edge insertion order, so every iteration is
// deterministic.
//
// All methods are safe for concurrent use: mu guards every field.
// Iterators take a snapshot under the read lock and yield without holding
// it, so loop bodies may call back into the graph.
//
// TinyDiGraph implements negcycle.Digraph.
type TinyDiGraph[N comparable, E any] struct {
	mu sync.RWMutex

	nodes []N                 // index → node
	index map[N]int           // node → index
	out   [][]half[E]         // out[i]: outgoing edges of node i, insertion order
	pos   []map[int]int       // pos[i][j]: position of the edge i→j in out[i]
	in    [][]int             // in[j]: tails of the edges into j, insertion order
	attrs []map[string]string // per-node string attributes, allocated lazily
	edges int                 // edge count

	scratch sync.Pool // *[]half[E] snapshots for Neighbors/Predecessors
}

// Option configures a TinyDiGraph before creation.
type Option func(*config)

type config struct {
	capacity int
}

// WithCapacity pre-sizes node storage for n nodes.
// Panics with ErrBadCapacity if n < 0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(ErrBadCapacity.Error())
	}
	return func(c *config) { c.capacity = n }
}

// New creates an empty graph.
// Complexity: O(capacity).
func New[N comparable, E any](opts ...Option) *TinyDiGraph[N, E] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &TinyDiGraph[N, E]{
		nodes: make([]N, 0, cfg.capacity),
		index: make(map[N]int, cfg.capacity),
		out:   make([][]half[E], 0, cfg.capacity),
		pos:   make([]map[int]int, 0, cfg.capacity),
		in:    make([][]int, 0, cfg.capacity),
		attrs: make([]map[string]string, 0, cfg.capacity),
	}
}

// NewRange creates a graph on the nodes 0..n-1 and no edges.
// Panics with ErrBadCapacity if n < 0.
func NewRange[E any](n int) *TinyDiGraph[int, E] {
	g := New[int, E](WithCapacity(n))
	for i := 0; i < n; i++ {
		g.addNodeLocked(i)
	}

	return g
}
