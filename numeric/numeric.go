// SPDX-License-Identifier: MIT
// Package: digraphx/numeric
//
// numeric.go - capability interfaces for distance and ratio domains.
//
// Contract:
//   • Ring values support Add, Sub and a strict total order via Less.
//   • Field values additionally support Mul, Quo and IsZero.
//   • The zero value of every implementation is the additive identity, so a
//     missing map entry reads as zero without any special casing.
//   • Values are immutable: every operation returns a fresh value.

package numeric

import "errors"

// Sentinel errors for numeric domains.
var (
	// ErrNaN indicates a floating-point NaN where an ordered value is required.
	ErrNaN = errors.New("numeric: NaN is not an ordered value")

	// ErrDivByZero indicates an exact division by zero.
	ErrDivByZero = errors.New("numeric: division by zero")
)

// Ring is the arithmetic the negative-cycle finders need from a distance
// domain. Less must be a strict total order over every value the caller
// feeds in.
type Ring[T any] interface {
	Add(T) T
	Sub(T) T
	Less(T) bool
}

// Field is the arithmetic ratio computations need on top of Ring.
type Field[T any] interface {
	Ring[T]
	Mul(T) T
	Quo(T) T
	IsZero() bool
}

// Sum folds xs with Add starting from the zero value of T.
func Sum[T Ring[T]](xs ...T) T {
	var total T
	for _, x := range xs {
		total = total.Add(x)
	}

	return total
}

// Min returns the smaller of a and b; ties return a.
func Min[T Ring[T]](a, b T) T {
	if b.Less(a) {
		return b
	}

	return a
}

// IsNaN reports whether x is a NaN of a domain that has one, that is a type
// with an IsNaN() bool method such as Float. Exact domains never are.
func IsNaN[T any](x T) bool {
	n, ok := any(x).(interface{ IsNaN() bool })

	return ok && n.IsNaN()
}
