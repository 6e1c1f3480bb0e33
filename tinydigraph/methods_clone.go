// File: methods_clone.go
// Role: structural copies.

package tinydigraph

import "maps"

// Clone returns an independent copy of the structure: nodes, indices,
// edges and attributes. Edge payloads are copied by assignment, so
// reference payloads (maps, pointers) are shared with g.
// Complexity: O(V + E).
func (g *TinyDiGraph[N, E]) Clone() *TinyDiGraph[N, E] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &TinyDiGraph[N, E]{
		nodes: append([]N(nil), g.nodes...),
		index: maps.Clone(g.index),
		out:   make([][]half[E], len(g.out)),
		pos:   make([]map[int]int, len(g.pos)),
		in:    make([][]int, len(g.in)),
		attrs: make([]map[string]string, len(g.attrs)),
		edges: g.edges,
	}
	for i := range g.nodes {
		c.out[i] = append([]half[E](nil), g.out[i]...)
		c.pos[i] = maps.Clone(g.pos[i])
		c.in[i] = append([]int(nil), g.in[i]...)
		c.attrs[i] = maps.Clone(g.attrs[i])
	}

	return c
}
