package numeric

import "strconv"

// Int is an int64 distance domain. It is a Ring, not a Field: integer
// division would silently truncate ratios, so ratio solvers need Float or Rat.
type Int int64

// Add returns x + y.
func (x Int) Add(y Int) Int { return x + y }

// Sub returns x - y.
func (x Int) Sub(y Int) Int { return x - y }

// Mul returns x * y.
func (x Int) Mul(y Int) Int { return x * y }

// Less reports x < y.
func (x Int) Less(y Int) bool { return x < y }

// String formats x in base 10.
func (x Int) String() string { return strconv.FormatInt(int64(x), 10) }
