// Package tinydigraph provides TinyDiGraph, a compact indexed directed
// graph container for the digraphx algorithms.
//
// Overview:
//
//   - Nodes receive dense indices 0..n-1 in insertion order (Index, NodeAt);
//     NewRange builds the common "nodes are 0..n-1" graph in one call.
//   - At most one edge per ordered pair; adding a pair again replaces its
//     payload in place. Self-loops are allowed.
//   - Nodes, Neighbors, Predecessors and Edges iterate in insertion order,
//     so algorithms run on a TinyDiGraph are reproducible run to run.
//   - Nodes carry optional free-form string attributes (SetNodeAttr,
//     NodeAttr) for labels and metadata.
//
// TinyDiGraph implements negcycle.Digraph and can be handed straight to
// the finders and solvers:
//
//	g := tinydigraph.NewRange[numeric.Int](3)
//	_ = g.AddEdge(0, 1, 7)
//	_ = g.AddEdge(1, 0, -9)
//	f := negcycle.NewFinder[int, numeric.Int, numeric.Int](g)
//
// Concurrency:
//
//   - Every method takes the graph's sync.RWMutex; writes are exclusive,
//     reads shared.
//   - Iterators snapshot under the read lock and yield lock-free, so a loop
//     body may mutate the graph; it will not see its own mutations.
//
// Errors:
//
//   - ErrNodeNotFound: AddEdge/RemoveEdge/SetNodeAttr on an unknown node.
//   - ErrEdgeNotFound: RemoveEdge on an absent pair.
//   - ErrBadCapacity:  negative capacity hint (panic).
//
// Complexity:
//
//   - AddNode, AddEdge, Edge, HasEdge: O(1) amortized.
//   - Neighbors/Predecessors: O(degree) snapshot.
//   - RemoveEdge: O(out-degree + in-degree).
//   - Clone, Edges: O(V + E).
package tinydigraph
