// Package gf2 implements the two elements of GF(2), the Galois field
// of two elements, as a standalone value type with full arithmetic.
//
// 🚀 What is GF(2)?
//
//	The smallest possible field: just two values, one and zero, with
//	addition working modulo 2.  It shows up all over the place:
//	  • Coding theory & parity checks
//	  • Cryptography (bit-level mixing)
//	  • Combinatorics & incidence structures
//	  • Teaching what a "field" actually is
//
// ✨ Key features:
//   - exactly two values: gf2.One and gf2.Zero (the type's zero value)
//   - Add is XOR, Mul is AND; subtraction equals addition in GF(2)
//   - From() casts any numeric input, with a strict mode accepting only
//     1-like and 0-like values within a configurable threshold
//   - non-strict mode maps every non-zero number to One
//   - division and modulo by Zero return ErrDivisionByZero
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lalib/gf2"
//
//	v, err := gf2.From(1)               // One
//	w, err := gf2.From(0.9999)          // ErrNotGF2Like (strict, default threshold 1e-12)
//	x, err := gf2.From(42, gf2.WithNonStrict()) // One
//
//	sum := v.Add(v)  // Zero: one + one wraps around
//	prod := v.Mul(v) // One
//
// All values print like the math notation: One.String() == "one",
// Zero.String() == "zero".
//
// See example_test.go for runnable demos.
package gf2
