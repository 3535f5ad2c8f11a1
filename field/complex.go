// SPDX-License-Identifier: MIT

package field

import (
	"math/cmplx"
	"math/rand"
	"strconv"
)

// Complex is the Field over ℂ, the complex numbers, with complex128
// elements. Use the package singleton C; the type itself carries no state.
type Complex struct{}

// C is the ready-to-use Field over the complex numbers.
var C = Complex{}

var _ Field[complex128] = C

// Name returns "ℂ", the math abbreviation of the complex numbers.
func (Complex) Name() string { return "ℂ" }

// Zero returns the additive identity 0+0i.
func (Complex) Zero() complex128 { return 0 }

// One returns the multiplicative identity 1+0i.
func (Complex) One() complex128 { return 1 }

// Add returns a + b.
func (Complex) Add(a, b complex128) complex128 { return a + b }

// Neg returns -a.
func (Complex) Neg(a complex128) complex128 { return -a }

// Sub returns a - b.
func (Complex) Sub(a, b complex128) complex128 { return a - b }

// Mul returns a * b.
func (Complex) Mul(a, b complex128) complex128 { return a * b }

// Inv returns the multiplicative inverse 1/a, or ErrDivisionByZero when
// a is zero-like within DefaultThreshold.
func (f Complex) Inv(a complex128) (complex128, error) {
	if f.IsZero(a) {
		return 0, ErrDivisionByZero
	}

	return 1 / a, nil
}

// Div returns a / b, or ErrDivisionByZero when b is zero-like within
// DefaultThreshold.
func (f Complex) Div(a, b complex128) (complex128, error) {
	if f.IsZero(b) {
		return 0, ErrDivisionByZero
	}

	return a / b, nil
}

// Eq reports equality within DefaultThreshold in absolute terms.
func (Complex) Eq(a, b complex128) bool { return cmplx.Abs(a-b) < DefaultThreshold }

// IsZero checks if v deviates from 0+0i by less than the effective
// threshold in absolute terms.
func (Complex) IsZero(v complex128, opts ...Option) bool {
	o := gatherOptions(opts...)

	return cmplx.Abs(v) < o.threshold
}

// IsOne checks if v deviates from 1+0i by less than the effective
// threshold in absolute terms.
func (Complex) IsOne(v complex128, opts ...Option) bool {
	o := gatherOptions(opts...)

	return cmplx.Abs(v-1) < o.threshold
}

// Cast converts a numeric value into a complex128 element of ℂ.
//
// Accepted inputs: complex128/complex64, every real-valued kind that ℝ
// accepts, and strings in Go complex literal form (e.g. "1+2i").
// Values with a non-finite component are rejected.
//
// Errors:
//   - ErrNotElement — on every failure mode.
//
// Complexity: O(1).
func (Complex) Cast(value any, _ ...Option) (complex128, error) {
	var c complex128
	switch v := value.(type) {
	case complex128:
		c = v
	case complex64:
		c = complex128(v)
	case string:
		parsed, err := strconv.ParseComplex(v, 128)
		if err != nil {
			return 0, ErrNotElement
		}
		c = parsed
	default:
		f, ok := toFloat64(value)
		if !ok {
			return 0, ErrNotElement
		}
		c = complex(f, 0)
	}

	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		return 0, ErrNotElement
	}

	return c, nil
}

// Validate checks if value is an element of ℂ; it wraps Cast and
// reports the outcome as a boolean.
func (f Complex) Validate(value any, opts ...Option) bool {
	_, err := f.Cast(value, opts...)

	return err == nil
}

// Random draws a uniformly distributed element from the unit square
// spanned by 0+0i and 1+0i (so the imaginary part collapses to 0),
// rounded component-wise. A nil rng falls back to the fixed default seed.
func (f Complex) Random(rng *rand.Rand, opts ...Option) complex128 {
	return f.RandomBetween(rng, f.Zero(), f.One(), opts...)
}

// RandomBetween draws a uniformly distributed element from the rectangle
// with opposing corners lower and upper: the real and imaginary parts are
// drawn separately. Bounds may arrive in reversed order. Both parts are
// rounded to the effective number of digits.
//
// Complexity: O(1).
func (Complex) RandomBetween(rng *rand.Rand, lower, upper complex128, opts ...Option) complex128 {
	o := gatherOptions(opts...)
	r := ensureRNG(rng)

	re := real(lower) + r.Float64()*(real(upper)-real(lower))
	im := imag(lower) + r.Float64()*(imag(upper)-imag(lower))

	return complex(roundTo(re, o.ndigits), roundTo(im, o.ndigits))
}
