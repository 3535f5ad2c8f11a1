// Package lalib is your in-memory playground for studying linear algebra —
// from the fields that numbers live in to the discrete vectors built on
// top of them.
//
// 🚀 What is lalib?
//
//	A small, deterministic, zero-dependency library that brings together:
//		• Fields: ℚ (rationals), ℝ (reals), ℂ (complex numbers), GF2 (Galois field of two)
//		• Elements: the GF2 values one & zero with full arithmetic
//		• Domains: immutable label sets indexing discrete vectors
//		• Vectors: element-wise arithmetic over any (Domain, Field) pair
//
// ✨ Why choose lalib?
//
//   - Beginner-friendly – minimal API, math-first naming (R, Q, C, GF2)
//   - Rock-solid guarantees – sentinel errors, documented defaults, no global state
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – explicit RNGs, fixed seeds, reproducible draws
//
// Under the hood, everything is organized under four subpackages:
//
//	domain/ — Domain label sets for discrete vectors & their canonical form
//	field/  — the Field interface plus the ℚ, ℝ, ℂ and GF2 singletons
//	gf2/    — the two Galois-field values one & zero as a standalone type
//	vector/ — discrete vectors binding one Domain, one Field, one entry per label
//
// Quick taste:
//
//	v, _ := gf2.From(1)
//	sum := v.Add(v) // gf2.Zero — addition in GF(2) is XOR
//
// Dive into the per-package doc.go files for the exact casting, threshold
// and randomness rules, and into example_test.go files for runnable demos.
//
//	go get github.com/katalvlaran/lalib
package lalib
