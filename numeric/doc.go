// Package numeric defines the arithmetic capabilities the digraphx
// algorithms are generic over, and three ready-made domains.
//
// Overview:
//
//   - Ring[T]:  Add, Sub, Less. Enough for negative-cycle detection.
//   - Field[T]: Ring plus Mul, Quo, IsZero. Needed by ratio computations
//     such as the minimum cycle ratio (cost − r·time, Σcost / Σtime).
//
// Implementations:
//
//   - Float: float64. Fast; ±Inf usable as "unreached" distance seeds.
//     NaN breaks the total order and must never enter a computation
//     (CheckFloat guards conversions from untrusted input).
//   - Int:   int64. A Ring only.
//   - Rat:   exact rationals over math/big. Slower, but ratios such as 9/5
//     come out exact, which makes parametric searches terminate on exact
//     ties instead of rounding noise.
//
// The zero value of each type is the additive identity. Algorithms rely on
// this: an absent map entry reads as zero.
//
// Swapping domains is a compile-time choice:
//
//	f := negcycle.NewFinder[string, numeric.Rat, numeric.Rat](g)
//	f := negcycle.NewFinder[string, numeric.Float, numeric.Float](g)
package numeric
