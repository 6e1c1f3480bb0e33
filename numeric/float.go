package numeric

import (
	"fmt"
	"math"
)

// Float is a float64 distance/ratio domain. Infinities are allowed and
// behave as expected under Add and Less; NaN is not, see CheckFloat.
type Float float64

// CheckFloat converts v to Float, rejecting NaN.
func CheckFloat(v float64) (Float, error) {
	if math.IsNaN(v) {
		return 0, ErrNaN
	}

	return Float(v), nil
}

// Inf returns +Inf if sign >= 0, -Inf otherwise.
func Inf(sign int) Float { return Float(math.Inf(sign)) }

// Add returns x + y.
func (x Float) Add(y Float) Float { return x + y }

// Sub returns x - y.
func (x Float) Sub(y Float) Float { return x - y }

// Mul returns x * y.
func (x Float) Mul(y Float) Float { return x * y }

// Quo returns x / y with IEEE semantics (y == 0 yields ±Inf).
func (x Float) Quo(y Float) Float { return x / y }

// Less reports x < y.
func (x Float) Less(y Float) bool { return x < y }

// IsZero reports x == 0.
func (x Float) IsZero() bool { return x == 0 }

// IsInf reports whether x is an infinity.
func (x Float) IsInf() bool { return math.IsInf(float64(x), 0) }

// IsNaN reports whether x is NaN, as Inf·0 or Inf-Inf produce.
func (x Float) IsNaN() bool { return math.IsNaN(float64(x)) }

// String formats x with %g.
func (x Float) String() string { return fmt.Sprintf("%g", float64(x)) }
