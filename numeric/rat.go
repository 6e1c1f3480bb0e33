package numeric

import (
	"fmt"
	"math/big"
)

// Rat is an exact rational domain backed by math/big.
//
// The zero value is 0. Operations never mutate their operands, so Rat values
// may be copied and shared freely (map values, cycle accumulators, …).
type Rat struct {
	r *big.Rat
}

// NewRat returns a/b in lowest terms. It panics with ErrDivByZero if b == 0.
func NewRat(a, b int64) Rat {
	if b == 0 {
		panic(fmt.Errorf("NewRat(%d, 0): %w", a, ErrDivByZero))
	}

	return Rat{r: big.NewRat(a, b)}
}

// RatFromInt returns the integer a as a Rat.
func RatFromInt(a int64) Rat { return Rat{r: new(big.Rat).SetInt64(a)} }

// RatFromBig copies x into a Rat. A nil x yields 0.
func RatFromBig(x *big.Rat) Rat {
	if x == nil {
		return Rat{}
	}

	return Rat{r: new(big.Rat).Set(x)}
}

// val returns the backing value, substituting 0 for the zero Rat.
// The result must not be mutated.
func (x Rat) val() *big.Rat {
	if x.r == nil {
		return new(big.Rat)
	}

	return x.r
}

// Add returns x + y.
func (x Rat) Add(y Rat) Rat { return Rat{r: new(big.Rat).Add(x.val(), y.val())} }

// Sub returns x - y.
func (x Rat) Sub(y Rat) Rat { return Rat{r: new(big.Rat).Sub(x.val(), y.val())} }

// Mul returns x * y.
func (x Rat) Mul(y Rat) Rat { return Rat{r: new(big.Rat).Mul(x.val(), y.val())} }

// Quo returns x / y. It panics with ErrDivByZero if y == 0.
func (x Rat) Quo(y Rat) Rat {
	if y.IsZero() {
		panic(fmt.Errorf("%s / 0: %w", x, ErrDivByZero))
	}

	return Rat{r: new(big.Rat).Quo(x.val(), y.val())}
}

// Less reports x < y.
func (x Rat) Less(y Rat) bool { return x.Cmp(y) < 0 }

// Cmp compares x and y and returns -1, 0 or +1.
func (x Rat) Cmp(y Rat) int { return x.val().Cmp(y.val()) }

// Equal reports whether x and y denote the same rational.
func (x Rat) Equal(y Rat) bool { return x.Cmp(y) == 0 }

// IsZero reports x == 0.
func (x Rat) IsZero() bool { return x.r == nil || x.r.Sign() == 0 }

// Big returns a copy of x as a *big.Rat.
func (x Rat) Big() *big.Rat { return new(big.Rat).Set(x.val()) }

// Float64 returns the nearest float64 to x.
func (x Rat) Float64() float64 {
	f, _ := x.val().Float64()

	return f
}

// String formats x as "a/b", or "a" when x is an integer.
func (x Rat) String() string { return x.val().RatString() }
