// Package builder generates deterministic test digraphs for digraphx.
//
// Constructors (Cycle, Path, Complete, RandomSparse) emit weighted arcs into
// a shared Batch; Build runs them in order and materializes a
// *tinydigraph.TinyDiGraph[int, E], turning each arc into an edge value
// through an EdgeFn:
//
//	g, err := builder.Build(builder.Weight,
//		[]builder.BuilderOption{builder.WithSeed(1), builder.WithIntWeight(-3, 10)},
//		builder.RandomSparse(50, 0.1))
//
// Configuration:
//
//   - WithSeed / WithRand: RNG for RandomSparse and weight sampling.
//   - WithWeightFn, WithConstantWeight, WithUniformWeight, WithIntWeight:
//     per-arc weight distribution (default DefaultEdgeWeight).
//   - WithLoops: allow RandomSparse to sample self-loops.
//
// Option constructors panic on meaningless input. Constructors return
// wrapped sentinels (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource); check them with errors.Is.
//
// Determinism: equal options, seed and constructor order yield identical
// graphs.
package builder
