// SPDX-License-Identifier: MIT

// Package field: functional configuration for casting and random draws.
// This file defines:
//   - documented defaults (constants, single source of truth),
//   - Option / options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: options fields are unexported; public APIs consume ...Option.
package field

import "math"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultNDigits is the number of significant digits to the right of
	// the decimal point kept by random draws from ℝ and ℂ.
	DefaultNDigits = 12

	// DefaultThreshold is the tolerance for the zero-like / one-like
	// equality checks in fields without exact representations (ℝ, ℂ) and
	// for the strict GF2 cast. Equals 1 / 10^DefaultNDigits.
	DefaultThreshold = 1e-12

	// DefaultMaxDenominator bounds the denominator that ℚ casts derive
	// from inherently imprecise float inputs. Equals 10^DefaultNDigits.
	DefaultMaxDenominator = 1_000_000_000_000

	// DefaultStrict controls the GF2 cast mode: only 1-like and 0-like
	// values are accepted by default.
	DefaultStrict = true
)

// Internal panic messages (no magic strings).
const (
	panicThresholdInvalid      = "field: WithThreshold: eps must be finite, non-negative"
	panicNDigitsInvalid        = "field: WithNDigits: n must be non-negative"
	panicMaxDenominatorInvalid = "field: WithMaxDenominator: d must be strictly positive"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*options)

// options stores the effective configuration after applying Option
// setters. It is intentionally unexported; public entry points accept
// ...Option and resolve them via gatherOptions.
type options struct {
	threshold      float64 // >= 0; DefaultThreshold
	ndigits        int     // >= 0; DefaultNDigits
	maxDenominator int64   // >= 1; DefaultMaxDenominator
	strict         bool    // DefaultStrict (GF2 cast only)
}

// WithThreshold sets the tolerance used by IsZero/IsOne on ℝ and ℂ and
// by the strict GF2 cast. Panics when eps is NaN, infinite, or negative.
//
// Complexity: O(1).
func WithThreshold(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *options) { o.threshold = eps }
}

// WithNDigits sets how many decimal digits random draws from ℝ and ℂ
// keep. Panics when n is negative.
//
// Complexity: O(1).
func WithNDigits(n int) Option {
	if n < 0 {
		panic(panicNDigitsInvalid)
	}

	return func(o *options) { o.ndigits = n }
}

// WithMaxDenominator bounds the denominator ℚ derives from float inputs.
// Larger bounds reproduce the float bit pattern more faithfully but
// produce "weird" fractions; see the ℚ docs. Panics when d < 1.
//
// Complexity: O(1).
func WithMaxDenominator(d int64) Option {
	if d < 1 {
		panic(panicMaxDenominatorInvalid)
	}

	return func(o *options) { o.maxDenominator = d }
}

// WithNonStrict relaxes the GF2 cast: any non-zero-like number becomes
// one. Ignored by the other fields.
//
// Complexity: O(1).
func WithNonStrict() Option {
	return func(o *options) { o.strict = false }
}

// gatherOptions applies user-provided Option setters on top of the
// documented defaults; last-writer-wins semantics.
//
// Complexity: O(k) for k options.
func gatherOptions(user ...Option) options {
	o := options{
		threshold:      DefaultThreshold,
		ndigits:        DefaultNDigits,
		maxDenominator: DefaultMaxDenominator,
		strict:         DefaultStrict,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
