package cycleratio

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/digraphx/negcycle"
	"github.com/katalvlaran/digraphx/numeric"
	"github.com/katalvlaran/digraphx/parametric"
)

// Solver finds the cycle minimising Σcost / Σtime.
//
//	max  r
//	s.t. dist[v] - dist[u] <= cost(e) - r·time(e)   for every edge e = u→v
//
// The optimum r is the minimum cycle ratio. Solver is a parametric.MaxSolver
// over API, with the preconditions of the problem checked at construction.
type Solver[N comparable, E any, R numeric.Field[R]] struct {
	inner *parametric.MaxSolver[N, E, R]
	api   API[E, R]
}

// NewSolver validates g against the accessors and binds a solver to it.
//
// Errors:
//   - ErrNilGraph, ErrNilAccessor for missing arguments.
//   - negcycle.ErrNodeNotFound if an edge leads outside the node set.
//   - numeric.ErrNaN if some edge has a NaN cost or time.
//   - ErrNegativeTime if some edge has time < 0.
//   - ErrZeroTimeCycle if the zero-time edges close a cycle.
//
// opts are parametric solver options (logger, round hook, round bound, …).
//
// Complexity: O(V + E) validation.
func NewSolver[N comparable, E any, R numeric.Field[R]](
	g negcycle.Digraph[N, E],
	cost, time func(E) R,
	opts ...parametric.Option,
) (*Solver[N, E, R], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if cost == nil || time == nil {
		return nil, ErrNilAccessor
	}
	if err := validate(g, cost, time); err != nil {
		return nil, err
	}
	api := NewAPI(cost, time)

	return &Solver[N, E, R]{
		inner: parametric.NewMaxSolver[N, E, R](g, api, opts...),
		api:   api,
	}, nil
}

// Run searches down from r0, which must be at least the optimum (any
// value above every edge's cost/time ratio will do). dist is updated in
// place. It returns the minimum cycle ratio and a cycle attaining it, or
// (r0, nil) if the graph is acyclic or r0 is already optimal.
func (s *Solver[N, E, R]) Run(dist map[N]R, r0 R) (R, negcycle.Cycle[E]) {
	return s.inner.Run(dist, r0)
}

// Rounds reports how many parametric rounds the last Run performed.
func (s *Solver[N, E, R]) Rounds() int { return s.inner.Rounds() }

// API exposes the ratio API the solver runs on.
func (s *Solver[N, E, R]) API() API[E, R] { return s.api }

// validate rejects dangling edges, NaN costs or times, negative times and
// zero-time cycles.
// Zero-time edges are copied into a gonum graph; a topological order of it
// exists exactly when they close no cycle. Self-loops are checked directly
// since gonum's simple graphs refuse them.
func validate[N comparable, E any, R numeric.Field[R]](g negcycle.Digraph[N, E], cost, time func(E) R) error {
	ids := make(map[N]int64)
	var names []N
	for u := range g.Nodes() {
		ids[u] = int64(len(names))
		names = append(names, u)
	}

	var zero R
	zg := simple.NewDirectedGraph()
	for u := range g.Nodes() {
		for v, e := range g.Neighbors(u) {
			vid, ok := ids[v]
			if !ok {
				return fmt.Errorf("cycleratio: edge %v→%v: %w", u, v, negcycle.ErrNodeNotFound)
			}
			t := time(e)
			if numeric.IsNaN(cost(e)) || numeric.IsNaN(t) {
				return fmt.Errorf("%w: edge %v→%v", numeric.ErrNaN, u, v)
			}
			if t.Less(zero) {
				return fmt.Errorf("%w: edge %v→%v", ErrNegativeTime, u, v)
			}
			if !t.IsZero() {
				continue
			}
			if u == v {
				return fmt.Errorf("%w: self-loop on %v", ErrZeroTimeCycle, u)
			}
			zg.SetEdge(zg.NewEdge(simple.Node(ids[u]), simple.Node(vid)))
		}
	}

	if _, err := topo.Sort(zg); err != nil {
		var cyclic topo.Unorderable
		if errors.As(err, &cyclic) && len(cyclic) > 0 {
			var members []N
			for _, n := range cyclic[0] {
				members = append(members, names[n.ID()])
			}
			return fmt.Errorf("%w: through %v", ErrZeroTimeCycle, members)
		}
		return fmt.Errorf("%w: %v", ErrZeroTimeCycle, err)
	}

	return nil
}
