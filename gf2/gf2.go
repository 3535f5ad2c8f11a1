package gf2

import (
	"math"
	"math/big"
	"strconv"
)

// GF2 is a value of the Galois field of two elements.
//
// Only the two exported constants are valid values; From is the blessed
// constructor for anything else. The type's zero value is Zero, so an
// uninitialized GF2 is already a well-formed field element.
type GF2 uint8

const (
	// Zero is the additive identity of GF(2).
	Zero GF2 = 0
	// One is the multiplicative identity of GF(2).
	One GF2 = 1
)

// From casts an arbitrary numeric value as a GF(2) element.
//
// Accepted inputs: GF2 itself, bool, every Go integer and unsigned kind,
// float32/float64, complex64/complex128, *big.Rat, and numeric strings
// (parsed like Go complex literals, e.g. "1", "0.25", "1+0i").
//
// Casting rules:
//   - the imaginary part must vanish within the threshold;
//   - NaN is never accepted;
//   - strict mode (default): the real part must equal 1 or 0 within the
//     threshold, otherwise ErrNotGF2Like;
//   - non-strict mode (WithNonStrict): any 0-like real part becomes Zero,
//     everything else becomes One.
//
// Errors:
//   - ErrNonNumeric — value is of a non-numeric type or an unparsable string.
//   - ErrNotGF2Like — value is numeric but not castable under the rules above.
//
// Complexity: O(1).
func From(value any, opts ...Option) (GF2, error) {
	o := gatherOptions(opts...)

	c, err := toComplex(value)
	if err != nil {
		return Zero, err
	}

	return fromComplex(c, o)
}

// toComplex funnels every supported input type into a complex128.
func toComplex(value any) (complex128, error) {
	switch v := value.(type) {
	case GF2:
		return complex(float64(v&1), 0), nil
	case bool:
		if v {
			return 1, nil
		}

		return 0, nil
	case int:
		return complex(float64(v), 0), nil
	case int8:
		return complex(float64(v), 0), nil
	case int16:
		return complex(float64(v), 0), nil
	case int32:
		return complex(float64(v), 0), nil
	case int64:
		return complex(float64(v), 0), nil
	case uint:
		return complex(float64(v), 0), nil
	case uint8:
		return complex(float64(v), 0), nil
	case uint16:
		return complex(float64(v), 0), nil
	case uint32:
		return complex(float64(v), 0), nil
	case uint64:
		return complex(float64(v), 0), nil
	case float32:
		return complex(float64(v), 0), nil
	case float64:
		return complex(v, 0), nil
	case complex64:
		return complex128(v), nil
	case complex128:
		return v, nil
	case *big.Rat:
		if v == nil {
			return 0, ErrNonNumeric
		}
		f, _ := v.Float64()

		return complex(f, 0), nil
	case string:
		c, err := strconv.ParseComplex(v, 128)
		if err != nil {
			return 0, ErrNonNumeric
		}

		return c, nil
	default:
		return 0, ErrNonNumeric
	}
}

// fromComplex applies the strict / non-strict decision rules to a number.
func fromComplex(c complex128, o options) (GF2, error) {
	if !(math.Abs(imag(c)) < o.threshold) {
		return Zero, ErrNotGF2Like
	}

	r := real(c)
	if math.IsNaN(r) {
		return Zero, ErrNotGF2Like
	}

	if o.strict {
		if math.Abs(r-1) < o.threshold {
			return One, nil
		}
		if math.Abs(r) < o.threshold {
			return Zero, nil
		}

		return Zero, ErrNotGF2Like
	}

	if math.Abs(r) < o.threshold {
		return Zero, nil
	}

	return One, nil
}

// Add returns g + other. Addition in GF(2) is XOR: One.Add(One) == Zero.
// Subtraction is the very same operation, see Sub.
func (g GF2) Add(other GF2) GF2 { return (g ^ other) & 1 }

// Sub returns g - other. In GF(2) every element is its own additive
// inverse, so subtraction coincides with addition.
func (g GF2) Sub(other GF2) GF2 { return g.Add(other) }

// Neg returns -g, which in GF(2) is g itself.
func (g GF2) Neg() GF2 { return g & 1 }

// Mul returns g * other. Multiplication in GF(2) is AND.
func (g GF2) Mul(other GF2) GF2 { return g & other & 1 }

// Div returns g / other, or ErrDivisionByZero when other is Zero.
// Division by One is the identity.
func (g GF2) Div(other GF2) (GF2, error) {
	if other&1 == 0 {
		return Zero, ErrDivisionByZero
	}

	return g & 1, nil
}

// Mod returns g % other, or ErrDivisionByZero when other is Zero.
// Any value modulo One is Zero.
func (g GF2) Mod(other GF2) (GF2, error) {
	if other&1 == 0 {
		return Zero, ErrDivisionByZero
	}

	return Zero, nil
}

// Pow returns g ** other. The convention Zero.Pow(Zero) == One matches
// integer exponentiation (0⁰ = 1).
func (g GF2) Pow(other GF2) GF2 {
	if other&1 == 0 {
		return One
	}

	return g & 1
}

// Int casts g as an int: 1 or 0.
func (g GF2) Int() int { return int(g & 1) }

// Float64 casts g as a float64: 1.0 or 0.0.
func (g GF2) Float64() float64 { return float64(g & 1) }

// Complex128 casts g as a complex128 with a zero imaginary part.
func (g GF2) Complex128() complex128 { return complex(g.Float64(), 0) }

// Bool casts g as a boolean: One is true, Zero is false.
func (g GF2) Bool() bool { return g&1 == 1 }

// String renders the math notation: "one" or "zero".
func (g GF2) String() string {
	if g.Bool() {
		return "one"
	}

	return "zero"
}
