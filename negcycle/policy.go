// SPDX-License-Identifier: MIT
// Package: digraphx/negcycle
//
// policy.go - relaxation passes and cycle handling on the policy graph.
//
// The policy graph is the pred (or succ) map: every node holds at most one
// pointer, so it is a functional graph, a forest whose roots may be closed
// into cycles. Those cycles are exactly the negative cycles Howard's method
// is looking for.
//
// Invariants kept by the relaxations (strict "<" improvements only):
//   • pred[v] = (u, e)  ⇒  dist[v] ≥ dist[u] + w(e)
//   • succ[u] = (v, e)  ⇒  dist[v] ≥ dist[u] + w(e)
// Summing either inequality around a pointer cycle, with the strict
// inequality contributed by the most recent update, proves the cycle weight
// negative. isNegative re-checks this on every reported cycle.
//
// Complexity:
//   • relax*:      O(V + E) per pass.
//   • findCycles:  O(V) per scan (each node is walked at most once).
//   • cycleList / isNegative: O(L) for a cycle of length L.

package negcycle

import (
	"fmt"

	"github.com/katalvlaran/digraphx/numeric"
)

// direction tells a pointer map how its links are oriented against arcs.
type direction int

const (
	// backward: point[v] = (u, e) for the arc u→v (predecessor pointers).
	backward direction = iota
	// forward: point[u] = (v, e) for the arc u→v (successor pointers).
	forward
)

// String names the direction for log events.
func (d direction) String() string {
	if d == forward {
		return "succ"
	}

	return "pred"
}

// relaxPred runs one predecessor relaxation pass over every arc u→v:
// if dist[u]+w(e) < dist[v] (and ok agrees), lower dist[v] and set pred[v].
// Reports whether anything changed.
func relaxPred[N comparable, E any, D numeric.Ring[D]](
	g Digraph[N, E],
	dist map[N]D,
	weight func(E) D,
	pred map[N]link[N, E],
	ok func(current, candidate D) bool,
) bool {
	changed := false
	for u := range g.Nodes() {
		du := dist[u]
		for v, e := range g.Neighbors(u) {
			candidate := du.Add(weight(e))
			current := dist[v]
			if !candidate.Less(current) {
				continue
			}
			if ok != nil && !ok(current, candidate) {
				continue
			}
			dist[v] = candidate
			pred[v] = link[N, E]{node: u, edge: e}
			changed = true
			// A self-loop may have just lowered u itself.
			if v == u {
				du = candidate
			}
		}
	}

	return changed
}

// relaxSucc runs one successor relaxation pass over every arc u→v:
// if dist[u]+w(e) < dist[v] (and ok agrees), raise the source to
// dist[u] = dist[v]-w(e) and set succ[u]. Reports whether anything changed.
func relaxSucc[N comparable, E any, D numeric.Ring[D]](
	g Digraph[N, E],
	dist map[N]D,
	weight func(E) D,
	succ map[N]link[N, E],
	ok func(current, candidate D) bool,
) bool {
	changed := false
	for u := range g.Nodes() {
		for v, e := range g.Neighbors(u) {
			candidate := dist[v].Sub(weight(e))
			current := dist[u]
			if !current.Less(candidate) {
				continue
			}
			if ok != nil && !ok(current, candidate) {
				continue
			}
			dist[u] = candidate
			succ[u] = link[N, E]{node: v, edge: e}
			changed = true
		}
	}

	return changed
}

// findCycles scans the functional graph point for cycles and returns one
// entry node per cycle. Each walk tags the nodes it visits with its start
// node (the owner); meeting a node owned by the same walk closes a cycle,
// meeting one owned by an earlier walk ends the walk. Every node is
// visited at most once across all walks.
func findCycles[N comparable, E any](g Digraph[N, E], point map[N]link[N, E]) []N {
	owner := make(map[N]N, len(point))
	var handles []N
	for start := range g.Nodes() {
		if _, seen := owner[start]; seen {
			continue
		}
		cur := start
		for {
			owner[cur] = start
			next, ok := point[cur]
			if !ok {
				break // reached a root of the forest
			}
			cur = next.node
			if tag, seen := owner[cur]; seen {
				if tag == start {
					handles = append(handles, cur)
				}
				break
			}
		}
	}

	return handles
}

// step returns the pointer out of vtx, panicking with ErrNoPointer if none.
func step[N comparable, E any](point map[N]link[N, E], vtx N) link[N, E] {
	next, ok := point[vtx]
	if !ok {
		panic(fmt.Errorf("%w: %v", ErrNoPointer, vtx))
	}

	return next
}

// cycleList collects the edges met while following point from handle back
// to handle.
func cycleList[N comparable, E any](handle N, point map[N]link[N, E]) Cycle[E] {
	var cycle Cycle[E]
	vtx := handle
	for {
		next := step(point, vtx)
		cycle = append(cycle, next.edge)
		vtx = next.node
		if vtx == handle {
			break
		}
	}

	return cycle
}

// isNegative reports whether some arc (from→to, e) on the pointer cycle
// through handle violates dist[to] ≤ dist[from] + w(e).
func isNegative[N comparable, E any, D numeric.Ring[D]](
	handle N,
	dist map[N]D,
	weight func(E) D,
	point map[N]link[N, E],
	dir direction,
) bool {
	vtx := handle
	for {
		next := step(point, vtx)
		from, to := next.node, vtx
		if dir == forward {
			from, to = vtx, next.node
		}
		if dist[from].Add(weight(next.edge)).Less(dist[to]) {
			return true
		}
		vtx = next.node
		if vtx == handle {
			break
		}
	}

	return false
}

// checkEndpoints verifies that every neighbor of every node is itself a
// node of g, panicking with ErrNodeNotFound otherwise.
func checkEndpoints[N comparable, E any](g Digraph[N, E]) {
	nodes := make(map[N]struct{})
	for u := range g.Nodes() {
		nodes[u] = struct{}{}
	}
	for u := range g.Nodes() {
		for v := range g.Neighbors(u) {
			if _, ok := nodes[v]; !ok {
				panic(fmt.Errorf("%w: edge %v→%v", ErrNodeNotFound, u, v))
			}
		}
	}
}
