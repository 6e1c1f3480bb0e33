// Package negcycle finds negative cycles in directed graphs with Howard's
// policy-iteration method.
//
// Overview:
//
//   - Howard's method interleaves Bellman-Ford relaxation passes with cheap
//     scans of the pointer (policy) graph instead of running Bellman-Ford to
//     completion and checking once. As soon as a pass exposes any negative
//     cycle the search stops and reports every cycle that pass exposed.
//   - Finder works along predecessor pointers. FinderQ works in either
//     direction: HowardPred is Finder's algorithm, HowardSucc relaxes tails
//     instead of heads and walks cycles forward.
//   - Both are generic over the node type N, the edge payload E and the
//     distance domain D (numeric.Float, numeric.Int, numeric.Rat or your own
//     numeric.Ring). Edge weights are read through a caller-supplied
//     func(E) D, so one graph can be searched under many weightings; the
//     parametric solvers rely on this.
//
// Distances:
//
//   - dist is owned by the caller and updated in place. Absent entries read
//     as zero, which is the seed cycle problems want. Single-source callers
//     should seed every non-source node with numeric.Inf(1). Successor
//     search (FinderQ.HowardSucc) is the mirror image: +Inf seeds blind it,
//     so seed it with zeros or with numeric.Inf(-1) on every non-sink node.
//   - On an empty result dist holds a shortest-path fixpoint. On a
//     non-empty result it is the state after the pass that exposed the
//     cycles, useful as a warm start for the next call.
//
// Options:
//
//   - WithUpdateOK(fn): constraint hook consulted before each improving
//     relaxation; returning false rejects it.
//   - WithMaxPasses(n): cap relaxation passes per call (0 = no cap).
//   - WithLogger(l):    zerolog debug events (passes, cycles found).
//
// Errors (panics, wrapped with context):
//
//   - ErrNilGraph:     nil adjacency view.
//   - ErrNodeNotFound: an edge leads outside the node set.
//   - ErrNoPointer:    a cycle walk met a node without a pointer.
//   - ErrInvariant:    a reported cycle failed the negativity re-check.
//   - ErrOptionType:   WithUpdateOK built for another distance domain.
//
// Complexity:
//
//   - Time:  O(P·(V + E)) per Howard call, P = relaxation passes performed
//     (P ≤ V when no negative cycle exists).
//   - Space: O(V) for the pointer map and the owner map of each scan.
//
// Example:
//
//	g := negcycle.MapDigraph[string, numeric.Int]{
//	    "a": {"b": 1},
//	    "b": {"c": 1},
//	    "c": {"a": -3},
//	}
//	f := negcycle.NewFinder[string, numeric.Int, numeric.Int](g)
//	cycles := f.Howard(map[string]numeric.Int{}, func(w numeric.Int) numeric.Int { return w })
//	// len(cycles) == 1, the cycle holds the three weights.
package negcycle
