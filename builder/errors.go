// SPDX-License-Identifier: MIT
// Package: digraphx/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach context with %w.
// Validation order when several checks fail: size, then probability, then RNG.

package builder

import "errors"

// ErrTooFewVertices indicates a vertex count below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (see WithSeed/WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates Build was handed a nil constructor or a nil
// edge function.
var ErrConstructFailed = errors.New("builder: construction failed")
