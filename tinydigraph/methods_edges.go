// File: methods_edges.go
// Role: edge mutation and adjacency queries.
//
// Determinism:
//   - Neighbors/Predecessors/Edges follow edge insertion order. Replacing
//     the payload of an existing pair keeps its position.

package tinydigraph

import (
	"fmt"
	"iter"
	"slices"
)

// AddEdge stores e for the ordered pair (u, v), replacing any previous
// payload. Both nodes must already exist (ErrNodeNotFound).
// Complexity: O(1) amortized.
func (g *TinyDiGraph[N, E]) AddEdge(u, v N, e E) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	i, ok := g.index[u]
	if !ok {
		return fmt.Errorf("AddEdge %v→%v: %w: %v", u, v, ErrNodeNotFound, u)
	}
	j, ok := g.index[v]
	if !ok {
		return fmt.Errorf("AddEdge %v→%v: %w: %v", u, v, ErrNodeNotFound, v)
	}
	if p, exists := g.pos[i][j]; exists {
		g.out[i][p].edge = e
		return nil
	}
	g.pos[i][j] = len(g.out[i])
	g.out[i] = append(g.out[i], half[E]{to: j, edge: e})
	g.in[j] = append(g.in[j], i)
	g.edges++

	return nil
}

// AddEdgesFrom adds every arc in order, stopping at the first error.
func (g *TinyDiGraph[N, E]) AddEdgesFrom(arcs ...Arc[N, E]) error {
	for _, a := range arcs {
		if err := g.AddEdge(a.From, a.To, a.Edge); err != nil {
			return err
		}
	}

	return nil
}

// RemoveEdge deletes the edge u→v.
// Returns ErrNodeNotFound or ErrEdgeNotFound.
// Complexity: O(out-degree(u) + in-degree(v)).
func (g *TinyDiGraph[N, E]) RemoveEdge(u, v N) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	i, j, err := g.pairLocked(u, v)
	if err != nil {
		return err
	}
	p, exists := g.pos[i][j]
	if !exists {
		return fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, u, v)
	}
	g.out[i] = slices.Delete(g.out[i], p, p+1)
	delete(g.pos[i], j)
	for q := p; q < len(g.out[i]); q++ {
		g.pos[i][g.out[i][q].to] = q
	}
	g.in[j] = slices.DeleteFunc(g.in[j], func(t int) bool { return t == i })
	g.edges--

	return nil
}

// pairLocked resolves both endpoints; requires g.mu held.
func (g *TinyDiGraph[N, E]) pairLocked(u, v N) (int, int, error) {
	i, ok := g.index[u]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %v", ErrNodeNotFound, u)
	}
	j, ok := g.index[v]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %v", ErrNodeNotFound, v)
	}

	return i, j, nil
}

// HasEdge reports whether the edge u→v exists.
func (g *TinyDiGraph[N, E]) HasEdge(u, v N) bool {
	_, ok := g.Edge(u, v)
	return ok
}

// Edge returns the payload of u→v.
func (g *TinyDiGraph[N, E]) Edge(u, v N) (E, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var zero E
	i, j, err := g.pairLocked(u, v)
	if err != nil {
		return zero, false
	}
	p, ok := g.pos[i][j]
	if !ok {
		return zero, false
	}

	return g.out[i][p].edge, true
}

// NumberOfEdges returns the edge count.
func (g *TinyDiGraph[N, E]) NumberOfEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Neighbors yields (v, e) for every edge u→v. Unknown u yields nothing.
// The edge list is snapshotted when iteration starts, into a scratch buffer
// reused across calls, so a relaxation sweep does not allocate per node.
func (g *TinyDiGraph[N, E]) Neighbors(u N) iter.Seq2[N, E] {
	return func(yield func(N, E) bool) {
		g.mu.RLock()
		i, ok := g.index[u]
		if !ok {
			g.mu.RUnlock()
			return
		}
		buf := g.borrow()
		*buf = append(*buf, g.out[i]...)
		nodes := g.nodes
		g.mu.RUnlock()
		defer g.release(buf)

		for _, h := range *buf {
			if !yield(nodes[h.to], h.edge) {
				return
			}
		}
	}
}

// Predecessors yields (t, e) for every edge t→u. Unknown u yields nothing.
// Snapshot semantics as Neighbors.
func (g *TinyDiGraph[N, E]) Predecessors(u N) iter.Seq2[N, E] {
	return func(yield func(N, E) bool) {
		g.mu.RLock()
		j, ok := g.index[u]
		if !ok {
			g.mu.RUnlock()
			return
		}
		buf := g.borrow()
		for _, t := range g.in[j] {
			*buf = append(*buf, half[E]{to: t, edge: g.out[t][g.pos[t][j]].edge})
		}
		nodes := g.nodes
		g.mu.RUnlock()
		defer g.release(buf)

		for _, h := range *buf {
			if !yield(nodes[h.to], h.edge) {
				return
			}
		}
	}
}

// Edges returns every edge, grouped by tail in node order.
func (g *TinyDiGraph[N, E]) Edges() []Arc[N, E] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	arcs := make([]Arc[N, E], 0, g.edges)
	for i, outs := range g.out {
		for _, h := range outs {
			arcs = append(arcs, Arc[N, E]{From: g.nodes[i], To: g.nodes[h.to], Edge: h.edge})
		}
	}

	return arcs
}

// borrow takes an empty scratch buffer from the pool.
func (g *TinyDiGraph[N, E]) borrow() *[]half[E] {
	if buf, ok := g.scratch.Get().(*[]half[E]); ok {
		return buf
	}

	return new([]half[E])
}

// release clears buf and hands it back to the pool. Payloads are zeroed so
// the pool does not keep them alive.
func (g *TinyDiGraph[N, E]) release(buf *[]half[E]) {
	clear(*buf)
	*buf = (*buf)[:0]
	g.scratch.Put(buf)
}
