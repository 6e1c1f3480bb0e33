// File: methods_nodes.go
// Role: node lifecycle, indexing and attributes.
//
// Determinism:
//   - Nodes() yields nodes in insertion order; Index/NodeAt follow it.

package tinydigraph

import (
	"fmt"
	"iter"
)

// AddNode inserts u if absent and returns its index (idempotent).
// Complexity: O(1) amortized.
func (g *TinyDiGraph[N, E]) AddNode(u N) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addNodeLocked(u)
}

// InitNodes adds nodes in the given order, skipping those already present.
func (g *TinyDiGraph[N, E]) InitNodes(nodes ...N) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, u := range nodes {
		g.addNodeLocked(u)
	}
}

// addNodeLocked requires g.mu held for writing (or exclusive ownership).
func (g *TinyDiGraph[N, E]) addNodeLocked(u N) int {
	if i, ok := g.index[u]; ok {
		return i
	}
	i := len(g.nodes)
	g.nodes = append(g.nodes, u)
	g.index[u] = i
	g.out = append(g.out, nil)
	g.pos = append(g.pos, make(map[int]int))
	g.in = append(g.in, nil)
	g.attrs = append(g.attrs, nil)

	return i
}

// HasNode reports whether u was added.
func (g *TinyDiGraph[N, E]) HasNode(u N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.index[u]
	return ok
}

// NumberOfNodes returns the node count.
func (g *TinyDiGraph[N, E]) NumberOfNodes() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Nodes yields every node in insertion order.
func (g *TinyDiGraph[N, E]) Nodes() iter.Seq[N] {
	g.mu.RLock()
	snapshot := append([]N(nil), g.nodes...)
	g.mu.RUnlock()

	return func(yield func(N) bool) {
		for _, u := range snapshot {
			if !yield(u) {
				return
			}
		}
	}
}

// Index returns the dense index of u.
func (g *TinyDiGraph[N, E]) Index(u N) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[u]
	return i, ok
}

// NodeAt returns the node with index i.
func (g *TinyDiGraph[N, E]) NodeAt(i int) (N, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if i < 0 || i >= len(g.nodes) {
		var zero N
		return zero, false
	}

	return g.nodes[i], true
}

// SetNodeAttr stores a string attribute on u.
// Returns ErrNodeNotFound if u is absent.
func (g *TinyDiGraph[N, E]) SetNodeAttr(u N, key, value string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	i, ok := g.index[u]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNodeNotFound, u)
	}
	if g.attrs[i] == nil {
		g.attrs[i] = make(map[string]string)
	}
	g.attrs[i][key] = value

	return nil
}

// NodeAttr returns the attribute key of u, if set.
func (g *TinyDiGraph[N, E]) NodeAttr(u N, key string) (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[u]
	if !ok {
		return "", false
	}
	v, ok := g.attrs[i][key]
	return v, ok
}
