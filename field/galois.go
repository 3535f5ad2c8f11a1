// SPDX-License-Identifier: MIT

package field

import (
	"math/rand"

	"github.com/katalvlaran/lalib/gf2"
)

// Galois is the Field of two elements with gf2.GF2 values. Use the
// package singleton GF2; the type itself carries no state.
//
// The element type and its arithmetic live in the gf2 package; this
// wrapper lifts them onto the Field interface so GF(2) plugs into the
// same generic code paths as ℚ, ℝ and ℂ.
type Galois struct{}

// GF2 is the ready-to-use Galois Field of two elements.
var GF2 = Galois{}

var _ Field[gf2.GF2] = GF2

// Name returns "GF2", the common abbreviation of the field.
func (Galois) Name() string { return "GF2" }

// Zero returns the additive identity gf2.Zero.
func (Galois) Zero() gf2.GF2 { return gf2.Zero }

// One returns the multiplicative identity gf2.One.
func (Galois) One() gf2.GF2 { return gf2.One }

// Add returns a + b (XOR in GF(2)).
func (Galois) Add(a, b gf2.GF2) gf2.GF2 { return a.Add(b) }

// Neg returns -a, which is a itself in GF(2).
func (Galois) Neg(a gf2.GF2) gf2.GF2 { return a.Neg() }

// Sub returns a - b; identical to Add in GF(2).
func (Galois) Sub(a, b gf2.GF2) gf2.GF2 { return a.Sub(b) }

// Mul returns a * b (AND in GF(2)).
func (Galois) Mul(a, b gf2.GF2) gf2.GF2 { return a.Mul(b) }

// Inv returns the multiplicative inverse of a, or ErrDivisionByZero for
// gf2.Zero. The only invertible element is gf2.One, its own inverse.
func (Galois) Inv(a gf2.GF2) (gf2.GF2, error) {
	if !a.Bool() {
		return gf2.Zero, ErrDivisionByZero
	}

	return gf2.One, nil
}

// Div returns a / b, or ErrDivisionByZero when b is gf2.Zero.
func (Galois) Div(a, b gf2.GF2) (gf2.GF2, error) {
	q, err := a.Div(b)
	if err != nil {
		return gf2.Zero, ErrDivisionByZero
	}

	return q, nil
}

// Eq reports exact equality; GF(2) needs no threshold.
func (Galois) Eq(a, b gf2.GF2) bool { return a == b }

// IsZero checks if v is gf2.Zero.
func (Galois) IsZero(v gf2.GF2, _ ...Option) bool { return !v.Bool() }

// IsOne checks if v is gf2.One.
func (Galois) IsOne(v gf2.GF2, _ ...Option) bool { return v.Bool() }

// Cast converts a numeric value into a GF(2) element by delegating to
// gf2.From: strict by default, relaxed via WithNonStrict, tolerance via
// WithThreshold.
//
// Errors:
//   - ErrNotElement — on every failure mode (the gf2 sentinels stay an
//     implementation detail of the element package).
//
// Complexity: O(1).
func (Galois) Cast(value any, opts ...Option) (gf2.GF2, error) {
	o := gatherOptions(opts...)

	castOpts := []gf2.Option{gf2.WithThreshold(o.threshold)}
	if !o.strict {
		castOpts = append(castOpts, gf2.WithNonStrict())
	}

	v, err := gf2.From(value, castOpts...)
	if err != nil {
		return gf2.Zero, ErrNotElement
	}

	return v, nil
}

// Validate checks if value is an element of GF(2); it wraps Cast and
// reports the outcome as a boolean.
func (f Galois) Validate(value any, opts ...Option) bool {
	_, err := f.Cast(value, opts...)

	return err == nil
}

// Random draws gf2.Zero or gf2.One with equal probability. A nil rng
// falls back to the fixed default seed.
func (f Galois) Random(rng *rand.Rand, opts ...Option) gf2.GF2 {
	return f.RandomBetween(rng, gf2.Zero, gf2.One, opts...)
}

// RandomBetween draws one of the two bounds with equal probability;
// with both bounds equal the draw is that value with certainty.
//
// Complexity: O(1).
func (Galois) RandomBetween(rng *rand.Rand, lower, upper gf2.GF2, _ ...Option) gf2.GF2 {
	r := ensureRNG(rng)

	if r.Intn(2) == 0 {
		return lower
	}

	return upper
}
