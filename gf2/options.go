// Package gf2: functional configuration for the From cast.
// Defaults are documented constants (single source of truth); setters
// panic only on nonsensical parameters (programmer error), never on
// user data — bad data surfaces as sentinel errors from From.
package gf2

import "math"

// DefaultThreshold is the tolerance used to decide whether a numeric
// value counts as 1-like or 0-like.
const DefaultThreshold = 1e-12

// DefaultStrict controls the default casting mode: only values within
// the threshold of 1 or 0 are accepted.
const DefaultStrict = true

const panicThresholdInvalid = "gf2: WithThreshold: eps must be finite, non-negative"

// Option mutates the internal cast options. Safe to apply repeatedly.
type Option func(*options)

// options stores the effective cast configuration; it stays unexported
// so From remains the single entry point.
type options struct {
	strict    bool
	threshold float64
}

// WithThreshold sets the tolerance for the 1-like / 0-like equality checks.
// Panics with a stable message if eps is NaN, infinite, or negative.
//
// Complexity: O(1).
func WithThreshold(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *options) { o.threshold = eps }
}

// WithNonStrict relaxes the cast: any numeric value other than a 0-like
// one becomes One, mirroring the usual "truthiness" of numbers.
//
// Complexity: O(1).
func WithNonStrict() Option {
	return func(o *options) { o.strict = false }
}

// gatherOptions applies user setters on top of the documented defaults;
// last-writer-wins semantics.
func gatherOptions(user ...Option) options {
	o := options{
		strict:    DefaultStrict,
		threshold: DefaultThreshold,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
