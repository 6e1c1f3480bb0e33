// Package parametric reduces ratio optimisation over cycles to repeated
// negative-cycle detection.
//
// Problem:
//
//	max  r
//	s.t. dist[v] - dist[u] <= Distance(r, e)   for every edge e = u→v
//
// The constraints are feasible exactly when the graph weighted by
// Distance(r, ·) has no negative cycle. Starting from a caller-supplied
// trial ratio that is too large, every round runs Howard's method at the
// trial ratio, asks ZeroCancel for the breakeven ratio of each negative
// cycle found, and moves the trial ratio down to the smallest of them. A
// round that finds no cycle below the trial ratio proves it optimal.
//
// Solvers:
//
//   - MaxSolver: predecessor search (negcycle.Finder) every round.
//   - QSolver:   the same engine over negcycle.FinderQ, searching along
//     predecessors, successors or alternating (WithDirection).
//
// Both return the final ratio and the cycle that justified the last
// improvement (nil when the initial ratio was already optimal). The
// cycleratio package supplies the classical minimum-cycle-ratio API.
//
// Options:
//
//   - WithOnRound(fn):     observe (round, trial ratio) at the start of each round.
//   - WithMaxRounds(n):    stop after n rounds with the best ratio so far.
//   - WithPickOneOnly():   adopt the first improving cycle of a round.
//   - WithDirection(d):    QSolver search direction (Pred, Succ, Alternate).
//   - WithUpdateOK(fn):    relaxation constraint hook, forwarded to the finder.
//   - WithLogger(l):       zerolog debug events, forwarded to the finder.
//
// Termination: the trial ratio strictly decreases every round and each
// adopted value is the breakeven ratio of some cycle, of which a finite
// graph has finitely many, so the loop ends. Exact domains (numeric.Rat)
// end on exact ties; with numeric.Float rounding may add a round.
package parametric
