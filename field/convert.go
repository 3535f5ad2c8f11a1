// SPDX-License-Identifier: MIT
// Package field: shared numeric funnel for the Cast implementations.
// Keeps per-field cast code minimal by converting every real-valued
// input kind into float64 in exactly one place.

package field

import (
	"math/big"
	"strconv"

	"github.com/katalvlaran/lalib/gf2"
)

// toFloat64 converts every supported real-valued input into a float64.
// Complex kinds are intentionally NOT handled here: whether a complex
// input is acceptable depends on the target field.
//
// The boolean result reports convertibility, not finiteness; callers
// apply their own finiteness policy.
func toFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case bool:
		if v {
			return 1, true
		}

		return 0, true
	case gf2.GF2:
		return v.Float64(), true
	case *big.Rat:
		if v == nil {
			return 0, false
		}
		f, _ := v.Float64()

		return f, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}

		return f, true
	default:
		return 0, false
	}
}
