package parametric

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/digraphx/negcycle"
	"github.com/katalvlaran/digraphx/numeric"
)

// MaxSolver solves the maximum parametric problem
//
//	max  r
//	s.t. dist[v] - dist[u] <= api.Distance(r, e)   for every edge e = u→v
//
// by repeated negative-cycle search at the current trial ratio, each round
// cutting the ratio down to the smallest breakeven ratio among the cycles
// found. It is not safe for concurrent use.
type MaxSolver[N comparable, E any, R numeric.Field[R]] struct {
	finder *negcycle.Finder[N, E, R]
	api    API[E, R]
	cfg    Options
	hooks  hooks[R]
	log    zerolog.Logger
	rounds int
}

// NewMaxSolver binds a solver to g and api.
//
// Panics with ErrNilAPI if api is nil, with ErrOptionType if a generic
// option was built for another ratio domain, and as negcycle.NewFinder does
// for a bad graph.
func NewMaxSolver[N comparable, E any, R numeric.Field[R]](
	g negcycle.Digraph[N, E],
	api API[E, R],
	opts ...Option,
) *MaxSolver[N, E, R] {
	if api == nil {
		panic(ErrNilAPI.Error())
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	h := resolve[R](cfg)

	return &MaxSolver[N, E, R]{
		finder: negcycle.NewFinder[N, E, R](g, finderOptions(cfg, h)...),
		api:    api,
		cfg:    cfg,
		hooks:  h,
		log:    cfg.Logger.With().Str("component", "parametric.MaxSolver").Logger(),
	}
}

// Run searches from the trial ratio and the distances in dist (updated in
// place, warm-starting every round). It returns the final ratio and the
// cycle that justified the last improvement; the cycle is nil when ratio
// was never improved.
func (s *MaxSolver[N, E, R]) Run(dist map[N]R, ratio R) (R, negcycle.Cycle[E]) {
	r, c, rounds := solve(s.api, ratio, s.cfg, s.hooks, s.log, func(_ int, weight func(E) R) []negcycle.Cycle[E] {
		return s.finder.Howard(dist, weight)
	})
	s.rounds = rounds

	return r, c
}

// Rounds reports how many rounds the last Run performed.
func (s *MaxSolver[N, E, R]) Rounds() int { return s.rounds }

// search runs one inner negative-cycle search under weight.
type search[E any, R any] func(round int, weight func(E) R) []negcycle.Cycle[E]

// solve is the cutting-plane loop shared by MaxSolver and QSolver.
func solve[E any, R numeric.Field[R]](
	api API[E, R],
	ratio R,
	cfg Options,
	h hooks[R],
	log zerolog.Logger,
	find search[E, R],
) (R, negcycle.Cycle[E], int) {
	var best negcycle.Cycle[E]
	round := 0
	for {
		if cfg.MaxRounds > 0 && round >= cfg.MaxRounds {
			log.Debug().Int("rounds", round).Msg("round limit reached")
			break
		}
		round++
		if h.onRound != nil {
			h.onRound(round, ratio)
		}

		trial := ratio
		weight := func(e E) R { return api.Distance(trial, e) }

		rMin := ratio
		var cMin negcycle.Cycle[E]
		cycles := find(round, weight)
		for _, c := range cycles {
			ri := api.ZeroCancel(c)
			if ri.Less(rMin) {
				rMin, cMin = ri, c
				if cfg.PickOneOnly {
					break
				}
			}
		}

		if e := log.Debug(); e.Enabled() {
			e.Int("round", round).
				Str("ratio", fmt.Sprint(ratio)).
				Str("best", fmt.Sprint(rMin)).
				Int("cycles", len(cycles)).
				Msg("round")
		}
		if !rMin.Less(ratio) {
			break
		}
		best, ratio = cMin, rMin
	}
	log.Debug().Int("rounds", round).Bool("improved", best != nil).Msg("converged")

	return ratio, best, round
}
