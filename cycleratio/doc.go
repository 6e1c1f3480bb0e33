// Package cycleratio solves the minimum cycle ratio problem: over all
// cycles C of a directed graph whose edges carry a cost and a non-negative
// time, find
//
//	min  Σ_{e∈C} cost(e) / Σ_{e∈C} time(e)
//
// Typical uses are clock-period analysis of synchronous circuits (cost =
// delay, time = registers) and throughput bounds of cyclic schedules.
//
// The problem is the parametric problem of package parametric with
// Distance(r, e) = cost(e) - r·time(e) and ZeroCancel(C) = Σcost / Σtime.
// NewSolver checks its preconditions before any search: times must be
// non-negative, and no cycle may consist of zero-time edges only (its ratio
// would be a division by zero). The latter check runs gonum's topological
// sort over the zero-time subgraph.
//
// Edge payloads are read through accessors, so any edge type works. Two
// ready-made payloads are provided:
//
//   - Edge[R] with fields Cost and Time (accessors EdgeCost, EdgeTime).
//   - Attrs[R], a string-keyed attribute map (accessors AttrCost,
//     AttrTime); SetDefault fills in attributes missing on some edges.
//
// Example:
//
//	g := negcycle.MapDigraph[string, cycleratio.Edge[numeric.Rat]]{ ... }
//	s, err := cycleratio.NewSolver(g, cycleratio.EdgeCost[numeric.Rat], cycleratio.EdgeTime[numeric.Rat])
//	if err != nil { ... }
//	ratio, cycle := s.Run(map[string]numeric.Rat{}, numeric.RatFromInt(10000))
package cycleratio
