// SPDX-License-Identifier: MIT

// Package field implements the classic fields of linear algebra as
// first-class Go values: ℚ (rationals), ℝ (reals), ℂ (complex numbers)
// and GF2 (the Galois field of two elements).
//
// 🚀 What is a Field?
//
//	A set with addition and multiplication obeying the classic axioms —
//	associativity, commutativity, identities, inverses, distributivity.
//	Fields are where the scalars of linear algebra live; swapping the
//	field swaps the flavor of the whole theory.
//
// ✨ Key features:
//   - one generic interface Field[T] covering all four fields
//   - ready-to-use singletons: field.Q, field.R, field.C, field.GF2
//   - Cast() converts arbitrary numeric inputs into field elements,
//     Validate() answers membership as a boolean
//   - IsZero()/IsOne() compare against the identities, with a numeric
//     threshold where exact comparison makes no sense (ℝ, ℂ)
//   - deterministic Random()/RandomBetween() draws via an explicit RNG
//   - library-wide defaults as documented constants (DefaultNDigits,
//     DefaultThreshold, DefaultMaxDenominator) overridable per call
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lalib/field"
//
//	x, err := field.Q.Cast("1/3")     // *big.Rat 1/3, exact
//	y, err := field.R.Cast(0.25)      // float64
//	ok := field.C.Validate("1+2i")    // true
//
//	sum := field.R.Add(y, field.R.One())
//	inv, err := field.Q.Inv(x)        // 3/1
//
// Element types per field:
//
//	Q   — *big.Rat   (exact arithmetic; values are copied in and out)
//	R   — float64    (non-finite values are rejected at the cast boundary)
//	C   — complex128 (same finiteness policy, component-wise)
//	GF2 — gf2.GF2    (see the gf2 package for the element type itself)
//
// Division by a zero-like element returns ErrDivisionByZero for every
// field; failed casts fold into the single sentinel ErrNotElement.
//
// See example_test.go and axioms_test.go — the latter replays the classic
// field axioms over random draws from every field.
package field
