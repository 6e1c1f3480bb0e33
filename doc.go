// Package digraphx finds negative cycles and optimal cycle ratios in
// weighted directed graphs.
//
// What is digraphx?
//
//	A small generic toolkit built around Howard's policy-iteration method:
//		• negcycle:    Howard negative-cycle finder (predecessor and successor modes)
//		• parametric:  maximum parametric ratio engine on top of negcycle
//		• cycleratio:  minimum cycle ratio (cost/time) with input validation
//		• numeric:     Ring/Field constraints plus Float, Int and exact Rat domains
//		• tinydigraph: compact insertion-ordered digraph with integer indexing
//		• gonumgraph:  gonum graph adapter and Bellman-Ford cross-check
//		• builder:     deterministic test digraph generators
//
// Every algorithm is generic over the node type N, the edge payload E and
// the distance domain D, and reads the graph through negcycle.Digraph:
//
//	type Digraph[N comparable, E any] interface {
//		Nodes() iter.Seq[N]
//		Neighbors(u N) iter.Seq2[N, E]
//	}
//
// so negcycle.MapDigraph, tinydigraph.TinyDiGraph and gonumgraph.View all
// plug in directly.
//
// Quick start:
//
//	g := negcycle.MapDigraph[string, numeric.Int]{
//		"a": {"b": 1},
//		"b": {"c": -3},
//		"c": {"a": 1},
//	}
//	f := negcycle.NewFinder[string, numeric.Int, numeric.Int](g)
//	cycles := f.Howard(map[string]numeric.Int{}, func(w numeric.Int) numeric.Int { return w })
//
// Logging goes through zerolog (silent by default, see each package's
// WithLogger option). Nothing here is safe for concurrent use except
// tinydigraph, which guards its state with a RWMutex.
package digraphx
