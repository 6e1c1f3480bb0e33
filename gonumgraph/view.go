// Package gonumgraph bridges digraphx and gonum's graph packages.
//
// View exposes any gonum graph.WeightedDirected as a negcycle.Digraph, so
// Howard's method and the parametric solvers run directly on gonum graphs.
// Export goes the other way, and HasNegativeCycle answers the negative
// cycle question with gonum's Bellman-Ford as an independent oracle.
package gonumgraph

import (
	"errors"
	"fmt"
	"iter"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/digraphx/negcycle"
	"github.com/katalvlaran/digraphx/numeric"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates a nil gonum graph.
	ErrNilGraph = errors.New("gonumgraph: graph is nil")

	// ErrSelfLoop indicates a self-loop, which gonum's simple graphs refuse.
	ErrSelfLoop = errors.New("gonumgraph: self-loops cannot be exported")
)

// View is a read-only negcycle.Digraph over a gonum weighted digraph.
// Nodes are gonum node IDs; edges are gonum weighted edges.
type View struct {
	g graph.WeightedDirected
}

var _ negcycle.Digraph[int64, graph.WeightedEdge] = (*View)(nil)

// NewView wraps g. Panics with ErrNilGraph if g is nil.
func NewView(g graph.WeightedDirected) *View {
	if g == nil {
		panic(ErrNilGraph.Error())
	}

	return &View{g: g}
}

// Nodes yields every node ID of the underlying graph.
func (v *View) Nodes() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		it := v.g.Nodes()
		for it.Next() {
			if !yield(it.Node().ID()) {
				return
			}
		}
	}
}

// Neighbors yields (head ID, edge) for every edge out of u.
func (v *View) Neighbors(u int64) iter.Seq2[int64, graph.WeightedEdge] {
	return func(yield func(int64, graph.WeightedEdge) bool) {
		it := v.g.From(u)
		for it.Next() {
			to := it.Node().ID()
			if !yield(to, v.g.WeightedEdge(u, to)) {
				return
			}
		}
	}
}

// Weight reads a gonum edge weight as a numeric.Float distance.
func Weight(e graph.WeightedEdge) numeric.Float { return numeric.Float(e.Weight()) }

// Export copies g into a gonum weighted digraph, numbering nodes in
// iteration order. It returns the graph and the node → ID mapping.
// Self-loops are rejected with ErrSelfLoop.
func Export[N comparable, E any](g negcycle.Digraph[N, E], weight func(E) float64) (*simple.WeightedDirectedGraph, map[N]int64, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	out := simple.NewWeightedDirectedGraph(0, 0)
	ids := make(map[N]int64)
	for u := range g.Nodes() {
		id := int64(len(ids))
		ids[u] = id
		out.AddNode(simple.Node(id))
	}
	for u := range g.Nodes() {
		for v, e := range g.Neighbors(u) {
			if u == v {
				return nil, nil, fmt.Errorf("%w: %v", ErrSelfLoop, u)
			}
			to, ok := ids[v]
			if !ok {
				return nil, nil, fmt.Errorf("gonumgraph: edge %v→%v: %w", u, v, negcycle.ErrNodeNotFound)
			}
			out.SetWeightedEdge(out.NewWeightedEdge(simple.Node(ids[u]), simple.Node(to), weight(e)))
		}
	}

	return out, ids, nil
}

// HasNegativeCycle reports whether g has a negative cycle, using gonum's
// Bellman-Ford from a fresh super-source joined to every node by a
// zero-weight edge. g is extended with that source node.
func HasNegativeCycle(g *simple.WeightedDirectedGraph) bool {
	nodes := graph.NodesOf(g.Nodes())
	src := g.NewNode()
	g.AddNode(src)
	for _, n := range nodes {
		g.SetWeightedEdge(g.NewWeightedEdge(src, n, 0))
	}
	_, ok := path.BellmanFordFrom(src, g)

	return !ok
}
