package parametric

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/digraphx/negcycle"
	"github.com/katalvlaran/digraphx/numeric"
)

// QSolver is MaxSolver driving a bidirectional finder: each round searches
// along predecessor or successor pointers as WithDirection selects. With
// Alternate, odd rounds search successors and even rounds predecessors;
// since a round only follows an improving one, the direction flips after
// every improvement.
//
// The engine itself is identical to MaxSolver's. Pick the direction in
// which the constraints of the API propagate best.
type QSolver[N comparable, E any, R numeric.Field[R]] struct {
	finder *negcycle.FinderQ[N, E, R]
	api    API[E, R]
	cfg    Options
	hooks  hooks[R]
	log    zerolog.Logger
	rounds int
}

// NewQSolver binds a solver to g and api. Panics as NewMaxSolver does.
func NewQSolver[N comparable, E any, R numeric.Field[R]](
	g negcycle.Digraph[N, E],
	api API[E, R],
	opts ...Option,
) *QSolver[N, E, R] {
	if api == nil {
		panic(ErrNilAPI.Error())
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	h := resolve[R](cfg)

	return &QSolver[N, E, R]{
		finder: negcycle.NewFinderQ[N, E, R](g, finderOptions(cfg, h)...),
		api:    api,
		cfg:    cfg,
		hooks:  h,
		log: cfg.Logger.With().
			Str("component", "parametric.QSolver").
			Str("direction", cfg.Direction.String()).
			Logger(),
	}
}

// Run is MaxSolver.Run over the configured direction(s).
func (s *QSolver[N, E, R]) Run(dist map[N]R, ratio R) (R, negcycle.Cycle[E]) {
	r, c, rounds := solve(s.api, ratio, s.cfg, s.hooks, s.log, func(round int, weight func(E) R) []negcycle.Cycle[E] {
		if s.succ(round) {
			return s.finder.HowardSucc(dist, weight)
		}
		return s.finder.HowardPred(dist, weight)
	})
	s.rounds = rounds

	return r, c
}

// Rounds reports how many rounds the last Run performed.
func (s *QSolver[N, E, R]) Rounds() int { return s.rounds }

// succ reports whether the given 1-based round searches successors.
func (s *QSolver[N, E, R]) succ(round int) bool {
	switch s.cfg.Direction {
	case Succ:
		return true
	case Alternate:
		return round%2 == 1
	default:
		return false
	}
}
