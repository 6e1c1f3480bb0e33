package negcycle

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/digraphx/numeric"
)

// Finder searches negative cycles along predecessor pointers.
//
// A Finder is bound to one immutable adjacency view and may be reused across
// any number of Howard calls (the parametric solvers call it once per
// round). It is not safe for concurrent use.
type Finder[N comparable, E any, D numeric.Ring[D]] struct {
	g         Digraph[N, E]
	pred      map[N]link[N, E]
	updateOK  func(current, candidate D) bool
	maxPasses int
	log       zerolog.Logger
	passes    int // relaxation passes of the last Howard call
}

// NewFinder binds a Finder to g.
//
// Panics with ErrNilGraph if g is nil, with ErrNodeNotFound if an edge
// points outside the node set, and with ErrOptionType if WithUpdateOK was
// built for another distance domain.
//
// Complexity: O(V + E) for the endpoint check.
func NewFinder[N comparable, E any, D numeric.Ring[D]](g Digraph[N, E], opts ...Option) *Finder[N, E, D] {
	if g == nil {
		panic(ErrNilGraph.Error())
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	checkEndpoints(g)

	return &Finder[N, E, D]{
		g:         g,
		pred:      make(map[N]link[N, E]),
		updateOK:  resolveUpdateOK[D](cfg),
		maxPasses: cfg.MaxPasses,
		log:       cfg.Logger.With().Str("component", "negcycle.Finder").Logger(),
	}
}

// Relax performs one predecessor relaxation pass over every edge and
// reports whether any distance improved. dist is updated in place; absent
// entries read as zero.
func (f *Finder[N, E, D]) Relax(dist map[N]D, weight func(E) D) bool {
	return relaxPred(f.g, dist, weight, f.pred, f.updateOK)
}

// Howard runs Howard's method from the distances in dist and returns the
// negative cycles exposed by the first relaxation pass that produced any.
// An empty result means the passes reached a fixpoint: the graph has no
// negative cycle and dist holds shortest-path distances.
//
// Absent dist entries read as zero, not as "unreachable". That is the
// right seed for cycle problems on closed systems; for single-source
// distances seed every other node with numeric.Inf(1). Those seeds suit
// predecessor search only; see FinderQ.HowardSucc for the successor side.
//
// Panics with ErrInvariant if a reported cycle fails the negativity check.
func (f *Finder[N, E, D]) Howard(dist map[N]D, weight func(E) D) []Cycle[E] {
	clear(f.pred)
	cycles, passes := howard(f.g, f.pred, backward, dist, weight, f.maxPasses, f.log, func() bool {
		return relaxPred(f.g, dist, weight, f.pred, f.updateOK)
	})
	f.passes = passes

	return cycles
}

// Passes reports how many relaxation passes the last Howard call ran.
func (f *Finder[N, E, D]) Passes() int { return f.passes }

// howard is the policy-iteration loop shared by Finder and FinderQ:
// relax until nothing changes or a scan of point exposes cycles.
func howard[N comparable, E any, D numeric.Ring[D]](
	g Digraph[N, E],
	point map[N]link[N, E],
	dir direction,
	dist map[N]D,
	weight func(E) D,
	maxPasses int,
	log zerolog.Logger,
	relax func() bool,
) ([]Cycle[E], int) {
	var cycles []Cycle[E]
	passes := 0
	for len(cycles) == 0 {
		if maxPasses > 0 && passes >= maxPasses {
			log.Debug().Str("dir", dir.String()).Int("passes", passes).Msg("pass limit reached")
			break
		}
		passes++
		if !relax() {
			break
		}
		for _, handle := range findCycles(g, point) {
			if !isNegative(handle, dist, weight, point, dir) {
				panic(fmt.Errorf("%w: %s cycle through %v", ErrInvariant, dir, handle))
			}
			cycle := cycleList(handle, point)
			log.Debug().Str("dir", dir.String()).Int("pass", passes).Int("length", len(cycle)).Msg("negative cycle")
			cycles = append(cycles, cycle)
		}
	}
	log.Debug().Str("dir", dir.String()).Int("passes", passes).Int("cycles", len(cycles)).Msg("howard done")

	return cycles, passes
}
