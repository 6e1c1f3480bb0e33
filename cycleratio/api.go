// SPDX-License-Identifier: MIT
// Package: digraphx/cycleratio
//
// api.go - the cost/time ratio API and ready-made edge accessors.

package cycleratio

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/digraphx/negcycle"
	"github.com/katalvlaran/digraphx/numeric"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates that a nil adjacency view was passed to NewSolver.
	ErrNilGraph = errors.New("cycleratio: graph is nil")

	// ErrNilAccessor indicates a nil cost or time accessor.
	ErrNilAccessor = errors.New("cycleratio: cost and time accessors are required")

	// ErrNegativeTime indicates an edge whose time is below zero.
	ErrNegativeTime = errors.New("cycleratio: edge time is negative")

	// ErrZeroTimeCycle indicates a cycle whose total time is zero; its ratio is undefined.
	ErrZeroTimeCycle = errors.New("cycleratio: cycle has zero total time")
)

// API is the parametric API of the minimum cycle ratio problem:
//
//	Distance(r, e)  = cost(e) - r·time(e)
//	ZeroCancel(c)   = Σcost(c) / Σtime(c)
//
// It implements parametric.API.
type API[E any, R numeric.Field[R]] struct {
	cost    func(E) R
	time    func(E) R
	nanable bool // R has NaNs to guard against
}

// NewAPI builds the API from the two edge accessors.
func NewAPI[E any, R numeric.Field[R]](cost, time func(E) R) API[E, R] {
	var zero R
	_, nanable := any(zero).(interface{ IsNaN() bool })

	return API[E, R]{cost: cost, time: time, nanable: nanable}
}

// Distance returns cost(e) - ratio·time(e). Panics with numeric.ErrNaN if
// the result is NaN (an infinite ratio against a zero time, for instance),
// since the finders need ordered values.
func (a API[E, R]) Distance(ratio R, e E) R {
	d := a.cost(e).Sub(ratio.Mul(a.time(e)))
	if a.nanable && numeric.IsNaN(d) {
		panic(fmt.Errorf("%w: distance at ratio %v", numeric.ErrNaN, ratio))
	}

	return d
}

// ZeroCancel returns Σcost / Σtime over cycle. Panics with ErrZeroTimeCycle
// when Σtime is zero; NewSolver rules such cycles out up front.
func (a API[E, R]) ZeroCancel(cycle negcycle.Cycle[E]) R {
	var cost, time R
	for _, e := range cycle {
		cost = cost.Add(a.cost(e))
		time = time.Add(a.time(e))
	}
	if time.IsZero() {
		panic(fmt.Errorf("%w: %d edges", ErrZeroTimeCycle, len(cycle)))
	}

	return cost.Quo(time)
}

// Edge is a plain cost/time edge payload.
type Edge[R any] struct {
	Cost R
	Time R
}

// EdgeCost reads Edge.Cost.
func EdgeCost[R any](e Edge[R]) R { return e.Cost }

// EdgeTime reads Edge.Time.
func EdgeTime[R any](e Edge[R]) R { return e.Time }

// Attribute keys read by AttrCost and AttrTime.
const (
	KeyCost = "cost"
	KeyTime = "time"
)

// Attrs is a free-form attribute edge payload, for graphs assembled from
// labelled data. Missing keys read as zero.
type Attrs[R any] map[string]R

// AttrCost reads the "cost" attribute.
func AttrCost[R any](a Attrs[R]) R { return a[KeyCost] }

// AttrTime reads the "time" attribute.
func AttrTime[R any](a Attrs[R]) R { return a[KeyTime] }

// SetDefault stores value under key on every edge of g that lacks it.
// Edges with a nil attribute map get a fresh one.
func SetDefault[N comparable, R any](g negcycle.MapDigraph[N, Attrs[R]], key string, value R) {
	for _, nbrs := range g {
		for v, attrs := range nbrs {
			if attrs == nil {
				attrs = Attrs[R]{}
				nbrs[v] = attrs
			}
			if _, ok := attrs[key]; !ok {
				attrs[key] = value
			}
		}
	}
}
