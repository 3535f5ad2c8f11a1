// SPDX-License-Identifier: MIT

package field

import "math/rand"

// Field is the abstract blueprint of a mathematical field over element
// type T. The four singletons Q, R, C and GF2 implement it for *big.Rat,
// float64, complex128 and gf2.GF2 respectively.
//
// Arithmetic contract:
//   - Add/Neg/Sub/Mul are total over field elements.
//   - Inv/Div return ErrDivisionByZero for a zero-like divisor and are
//     total otherwise.
//   - Eq is the field's notion of element equality: exact for ℚ and GF2,
//     within DefaultThreshold for ℝ and ℂ.
//
// Casting contract:
//   - Cast converts arbitrary numeric inputs (Go numeric kinds, *big.Rat,
//     gf2.GF2, bool, numeric strings) into T or returns ErrNotElement.
//   - Validate wraps Cast into a membership check.
//
// Randomness contract:
//   - Random draws uniformly between Zero() and One().
//   - RandomBetween draws uniformly between two bounds, which may arrive
//     in reversed order.
//   - A nil *rand.Rand falls back to a fixed deterministic seed.
type Field[T any] interface {
	// Name is the common abbreviation used in math notation, e.g. "ℝ".
	// It also identifies the field when two generic values meet; see
	// vector.ErrFieldMismatch.
	Name() string

	// Zero is the field's additive identity.
	Zero() T
	// One is the field's multiplicative identity.
	One() T

	Add(a, b T) T
	Neg(a T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Inv(a T) (T, error)
	Div(a, b T) (T, error)

	Eq(a, b T) bool
	IsZero(v T, opts ...Option) bool
	IsOne(v T, opts ...Option) bool

	Cast(value any, opts ...Option) (T, error)
	Validate(value any, opts ...Option) bool

	Random(rng *rand.Rand, opts ...Option) T
	RandomBetween(rng *rand.Rand, lower, upper T, opts ...Option) T
}
