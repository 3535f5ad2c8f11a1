// SPDX-License-Identifier: MIT

package field

import (
	"math"
	"math/rand"
)

// Real is the Field over ℝ, the real numbers, with float64 elements.
// Use the package singleton R; the type itself carries no state.
type Real struct{}

// R is the ready-to-use Field over the real numbers.
var R = Real{}

var _ Field[float64] = R

// Name returns "ℝ", the math abbreviation of the real numbers.
func (Real) Name() string { return "ℝ" }

// Zero returns the additive identity 0.0.
func (Real) Zero() float64 { return 0 }

// One returns the multiplicative identity 1.0.
func (Real) One() float64 { return 1 }

// Add returns a + b.
func (Real) Add(a, b float64) float64 { return a + b }

// Neg returns -a.
func (Real) Neg(a float64) float64 { return -a }

// Sub returns a - b.
func (Real) Sub(a, b float64) float64 { return a - b }

// Mul returns a * b.
func (Real) Mul(a, b float64) float64 { return a * b }

// Inv returns the multiplicative inverse 1/a, or ErrDivisionByZero when
// a is zero-like within DefaultThreshold.
func (f Real) Inv(a float64) (float64, error) {
	if f.IsZero(a) {
		return 0, ErrDivisionByZero
	}

	return 1 / a, nil
}

// Div returns a / b, or ErrDivisionByZero when b is zero-like within
// DefaultThreshold.
func (f Real) Div(a, b float64) (float64, error) {
	if f.IsZero(b) {
		return 0, ErrDivisionByZero
	}

	return a / b, nil
}

// Eq reports equality within DefaultThreshold. Floats are inherently
// imprecise, so exact comparison would betray the field axioms after a
// handful of operations.
func (Real) Eq(a, b float64) bool { return math.Abs(a-b) < DefaultThreshold }

// IsZero checks if v equals 0.0 within the effective threshold.
func (Real) IsZero(v float64, opts ...Option) bool {
	o := gatherOptions(opts...)

	return math.Abs(v) < o.threshold
}

// IsOne checks if v equals 1.0 within the effective threshold.
func (Real) IsOne(v float64, opts ...Option) bool {
	o := gatherOptions(opts...)

	return math.Abs(v-1) < o.threshold
}

// Cast converts a numeric value into a float64 element of ℝ.
//
// Accepted inputs: every Go integer/unsigned/float kind, bool, *big.Rat,
// gf2.GF2, and numeric strings. Complex kinds are not elements of ℝ.
// Non-finite values (NaN, ±Inf) are rejected.
//
// Errors:
//   - ErrNotElement — on every failure mode.
//
// Complexity: O(1).
func (Real) Cast(value any, _ ...Option) (float64, error) {
	f, ok := toFloat64(value)
	if !ok {
		return 0, ErrNotElement
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrNotElement
	}

	return f, nil
}

// Validate checks if value is an element of ℝ; it wraps Cast and
// reports the outcome as a boolean.
func (f Real) Validate(value any, opts ...Option) bool {
	_, err := f.Cast(value, opts...)

	return err == nil
}

// Random draws a uniformly distributed element from [0, 1], rounded to
// the effective number of digits. A nil rng falls back to the fixed
// default seed.
func (f Real) Random(rng *rand.Rand, opts ...Option) float64 {
	return f.RandomBetween(rng, f.Zero(), f.One(), opts...)
}

// RandomBetween draws a uniformly distributed element from the interval
// spanned by lower and upper (which may arrive reversed), rounded to the
// effective number of digits.
//
// Complexity: O(1).
func (Real) RandomBetween(rng *rand.Rand, lower, upper float64, opts ...Option) float64 {
	o := gatherOptions(opts...)
	r := ensureRNG(rng)

	// Uniform draw handles upper < lower naturally.
	v := lower + r.Float64()*(upper-lower)

	return roundTo(v, o.ndigits)
}

// roundTo rounds v to n decimal digits.
func roundTo(v float64, n int) float64 {
	p := math.Pow(10, float64(n))

	return math.Round(v*p) / p
}
