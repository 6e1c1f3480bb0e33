package negcycle

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/digraphx/numeric"
)

// FinderQ runs Howard's method in either direction over one graph.
//
// HowardPred relaxes heads (dist[v] lowered, pred[v] recorded) exactly like
// Finder.Howard. HowardSucc relaxes tails: for an arc u→v with
// dist[u]+w < dist[v] it raises dist[u] to dist[v]-w and records
// succ[u] = v, so cycles can be walked forward. The two pointer maps are
// independent; each call clears only its own, so a caller may alternate
// directions between calls without cross-contamination.
type FinderQ[N comparable, E any, D numeric.Ring[D]] struct {
	g         Digraph[N, E]
	pred      map[N]link[N, E]
	succ      map[N]link[N, E]
	updateOK  func(current, candidate D) bool
	maxPasses int
	log       zerolog.Logger
	passes    int
}

// NewFinderQ binds a FinderQ to g. Panics as NewFinder does.
func NewFinderQ[N comparable, E any, D numeric.Ring[D]](g Digraph[N, E], opts ...Option) *FinderQ[N, E, D] {
	if g == nil {
		panic(ErrNilGraph.Error())
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	checkEndpoints(g)

	return &FinderQ[N, E, D]{
		g:         g,
		pred:      make(map[N]link[N, E]),
		succ:      make(map[N]link[N, E]),
		updateOK:  resolveUpdateOK[D](cfg),
		maxPasses: cfg.MaxPasses,
		log:       cfg.Logger.With().Str("component", "negcycle.FinderQ").Logger(),
	}
}

// RelaxPred performs one predecessor relaxation pass.
func (f *FinderQ[N, E, D]) RelaxPred(dist map[N]D, weight func(E) D) bool {
	return relaxPred(f.g, dist, weight, f.pred, f.updateOK)
}

// RelaxSucc performs one successor relaxation pass.
func (f *FinderQ[N, E, D]) RelaxSucc(dist map[N]D, weight func(E) D) bool {
	return relaxSucc(f.g, dist, weight, f.succ, f.updateOK)
}

// HowardPred is Howard's method along predecessor pointers. It clears only
// the pred map.
func (f *FinderQ[N, E, D]) HowardPred(dist map[N]D, weight func(E) D) []Cycle[E] {
	clear(f.pred)
	cycles, passes := howard(f.g, f.pred, backward, dist, weight, f.maxPasses, f.log, func() bool {
		return relaxPred(f.g, dist, weight, f.pred, f.updateOK)
	})
	f.passes = passes

	return cycles
}

// HowardSucc is Howard's method along successor pointers. It clears only
// the succ map. Returned cycles list their edges in arc order.
//
// Successor relaxation raises tails towards dist[head] - w, so it is the
// mirror image of the predecessor seeds: a +Inf seed pulls every tail that
// reaches it up to +Inf and the search goes blind. Seed with zeros, or with
// numeric.Inf(-1) on every node except a sink.
func (f *FinderQ[N, E, D]) HowardSucc(dist map[N]D, weight func(E) D) []Cycle[E] {
	clear(f.succ)
	cycles, passes := howard(f.g, f.succ, forward, dist, weight, f.maxPasses, f.log, func() bool {
		return relaxSucc(f.g, dist, weight, f.succ, f.updateOK)
	})
	f.passes = passes

	return cycles
}

// Passes reports how many relaxation passes the last Howard* call ran.
func (f *FinderQ[N, E, D]) Passes() int { return f.passes }
