// SPDX-License-Identifier: MIT
// Package: digraphx/parametric
//
// types.go - ratio API, sentinel errors, search direction and options.

package parametric

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/digraphx/negcycle"
)

// Sentinel errors.
var (
	// ErrNilAPI indicates that a nil ratio API was passed to a constructor.
	ErrNilAPI = errors.New("parametric: ratio API is nil")

	// ErrBadMaxRounds indicates a negative MaxRounds option.
	ErrBadMaxRounds = errors.New("parametric: MaxRounds must be non-negative")

	// ErrBadDirection indicates an unknown Direction value.
	ErrBadDirection = errors.New("parametric: unknown search direction")

	// ErrOptionType indicates a generic option built for a different ratio domain.
	ErrOptionType = errors.New("parametric: option value does not match the ratio domain")
)

// API is the pluggable ratio behaviour the solvers are driven by.
//
// Distance is the parametric weight of edge at the trial ratio; it must be
// total for every (ratio, edge) pair the solver passes, and never NaN:
// the finders compare with Less, which a NaN silently breaks. ZeroCancel returns
// the ratio at which the summed parametric weight of cycle is exactly zero.
type API[E any, R any] interface {
	Distance(ratio R, edge E) R
	ZeroCancel(cycle negcycle.Cycle[E]) R
}

// Direction selects the inner negative-cycle search of a QSolver.
type Direction int

const (
	// Pred searches along predecessor pointers every round.
	Pred Direction = iota
	// Succ searches along successor pointers every round.
	Succ
	// Alternate starts with Succ and flips after every improving round.
	Alternate
)

// String names the direction.
func (d Direction) String() string {
	switch d {
	case Pred:
		return "pred"
	case Succ:
		return "succ"
	case Alternate:
		return "alternate"
	default:
		return "unknown"
	}
}

// Options configures MaxSolver and QSolver.
type Options struct {
	MaxRounds   int            // round bound, 0 = unbounded
	PickOneOnly bool           // stop scanning a round's cycles at the first improvement
	Direction   Direction      // QSolver only
	Logger      zerolog.Logger // debug events, shared with the inner finder

	onRound  any // func(round int, ratio R)
	updateOK any // func(current, candidate R) bool
}

// Option represents a functional option for the solvers.
type Option func(*Options)

// DefaultOptions returns the defaults: unbounded rounds, every cycle of a
// round considered, predecessor search, silent logger.
func DefaultOptions() Options {
	return Options{
		MaxRounds: 0,
		Direction: Pred,
		Logger:    zerolog.Nop(),
	}
}

// WithLogger routes solver and finder debug events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnRound installs a hook called at the start of every round with the
// 1-based round number and the trial ratio of that round.
func WithOnRound[R any](fn func(round int, ratio R)) Option {
	return func(o *Options) {
		o.onRound = fn
	}
}

// WithMaxRounds bounds the number of rounds; when the bound is hit the
// best ratio reached so far is returned. Panics with ErrBadMaxRounds if n < 0.
func WithMaxRounds(n int) Option {
	if n < 0 {
		panic(ErrBadMaxRounds.Error())
	}
	return func(o *Options) {
		o.MaxRounds = n
	}
}

// WithPickOneOnly makes each round adopt the first improving cycle instead
// of the most improving one.
func WithPickOneOnly() Option {
	return func(o *Options) {
		o.PickOneOnly = true
	}
}

// WithDirection selects the inner search of a QSolver. MaxSolver ignores it.
// Panics with ErrBadDirection for values other than Pred, Succ, Alternate.
func WithDirection(d Direction) Option {
	if d < Pred || d > Alternate {
		panic(ErrBadDirection.Error())
	}
	return func(o *Options) {
		o.Direction = d
	}
}

// WithUpdateOK forwards a relaxation constraint hook to the inner finder.
func WithUpdateOK[R any](fn func(current, candidate R) bool) Option {
	return func(o *Options) {
		o.updateOK = fn
	}
}

// hooks holds the typed forms of the generic options.
type hooks[R any] struct {
	onRound  func(round int, ratio R)
	updateOK func(current, candidate R) bool
}

// resolve type-checks the generic options against the ratio domain R,
// panicking with ErrOptionType on mismatch.
func resolve[R any](o Options) hooks[R] {
	var h hooks[R]
	if o.onRound != nil {
		fn, ok := o.onRound.(func(round int, ratio R))
		if !ok {
			panic(ErrOptionType.Error())
		}
		h.onRound = fn
	}
	if o.updateOK != nil {
		fn, ok := o.updateOK.(func(current, candidate R) bool)
		if !ok {
			panic(ErrOptionType.Error())
		}
		h.updateOK = fn
	}

	return h
}

// finderOptions translates solver options into inner finder options.
func finderOptions[R any](o Options, h hooks[R]) []negcycle.Option {
	opts := []negcycle.Option{negcycle.WithLogger(o.Logger)}
	if h.updateOK != nil {
		opts = append(opts, negcycle.WithUpdateOK(h.updateOK))
	}

	return opts
}
