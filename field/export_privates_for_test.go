// SPDX-License-Identifier: MIT

package field

// Test-Bridge (White-Box) for Private Helpers
//
// Purpose:
//   - Expose the unexported continued-fraction kernel and the options
//     resolution to field_test ONLY, without widening the prod API.
//
// Provided Surface:
//   - LimitDenominator_TestOnly: thin pass-through to limitDenominator.
//   - GatherOptionsSnapshot_TestOnly: read-only view of resolved options.

import "math/big"

// LimitDenominator_TestOnly forwards to the private limitDenominator kernel.
func LimitDenominator_TestOnly(x *big.Rat, maxDen int64) *big.Rat {
	return limitDenominator(x, maxDen)
}

// OptionsSnapshot is a stable, test-facing copy of the internal options.
type OptionsSnapshot struct {
	Threshold      float64
	NDigits        int
	MaxDenominator int64
	Strict         bool
}

// GatherOptionsSnapshot_TestOnly resolves opts against the defaults and
// returns a snapshot. Keep in sync with the options layout.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		Threshold:      o.threshold,
		NDigits:        o.ndigits,
		MaxDenominator: o.maxDenominator,
		Strict:         o.strict,
	}
}
