// SPDX-License-Identifier: MIT

package field

import (
	"math/big"
	"math/rand"

	"github.com/katalvlaran/lalib/gf2"
)

// Rational is the Field over ℚ, the rational numbers, with *big.Rat
// elements. Use the package singleton Q; the type itself carries no state.
//
// Although Q.Cast accepts floats as possible field elements, do so only
// with care: floats are inherently imprecise numbers (0.1+0.2 is not
// 3/10ths). To mitigate this, float casts run through a denominator
// limit (DefaultMaxDenominator, override via WithMaxDenominator), so
// floats with just a couple of digits produce the fraction you meant:
//
//	Q.Cast(0.1)                                  // 1/10
//	Q.Cast(0.1, WithMaxDenominator(1e18))        // 3602879701896397/36028797018963968
//
// Strings avoid the problem entirely and are parsed exactly:
//
//	Q.Cast("0.1")  // 1/10
//	Q.Cast("1/10") // 1/10
//
// big.Rat values are mutable, so ℚ copies every element on the way in
// (Cast) and hands out fresh values from Zero, One and the arithmetic
// methods; no caller can mutate another caller's elements.
type Rational struct{}

// Q is the ready-to-use Field over the rational numbers.
var Q = Rational{}

var _ Field[*big.Rat] = Q

// Name returns "ℚ", the math abbreviation of the rational numbers.
func (Rational) Name() string { return "ℚ" }

// Zero returns the additive identity 0/1. A fresh value on every call:
// big.Rat is mutable and identities must not be.
func (Rational) Zero() *big.Rat { return new(big.Rat) }

// One returns the multiplicative identity 1/1, fresh on every call.
func (Rational) One() *big.Rat { return big.NewRat(1, 1) }

// Add returns a + b as a fresh value.
func (Rational) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }

// Neg returns -a as a fresh value.
func (Rational) Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) }

// Sub returns a - b as a fresh value.
func (Rational) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }

// Mul returns a * b as a fresh value.
func (Rational) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

// Inv returns the multiplicative inverse b/a of a/b, or
// ErrDivisionByZero when a is exactly zero.
func (Rational) Inv(a *big.Rat) (*big.Rat, error) {
	if a.Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	return new(big.Rat).Inv(a), nil
}

// Div returns a / b as a fresh value, or ErrDivisionByZero when b is
// exactly zero.
func (Rational) Div(a, b *big.Rat) (*big.Rat, error) {
	if b.Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	return new(big.Rat).Quo(a, b), nil
}

// Eq reports exact equality; ℚ needs no threshold.
func (Rational) Eq(a, b *big.Rat) bool { return a.Cmp(b) == 0 }

// IsZero checks if v is exactly 0/1.
func (Rational) IsZero(v *big.Rat, _ ...Option) bool { return v.Sign() == 0 }

// IsOne checks if v is exactly 1/1.
func (Rational) IsOne(v *big.Rat, _ ...Option) bool { return v.Num().Cmp(v.Denom()) == 0 }

// Cast converts a numeric value into a *big.Rat element of ℚ.
//
// Accepted inputs: *big.Rat (copied), every Go integer/unsigned kind,
// bool, gf2.GF2 (all exact, never through float64, so 64-bit values keep
// every bit), strings in fraction or decimal form ("1/3", "0.1" — parsed
// exactly), and floats (converted through the denominator limit; see the
// type docs). Non-finite floats are rejected.
//
// Errors:
//   - ErrNotElement — on every failure mode.
//
// Complexity: O(log maxDenominator) for float inputs, O(1) otherwise.
func (Rational) Cast(value any, opts ...Option) (*big.Rat, error) {
	o := gatherOptions(opts...)

	switch v := value.(type) {
	case *big.Rat:
		if v == nil {
			return nil, ErrNotElement
		}

		return new(big.Rat).Set(v), nil
	case string:
		r, ok := new(big.Rat).SetString(v)
		if !ok {
			return nil, ErrNotElement
		}

		return r, nil
	case float64:
		return ratFromFloat(v, o.maxDenominator)
	case float32:
		return ratFromFloat(float64(v), o.maxDenominator)
	case int:
		return new(big.Rat).SetInt64(int64(v)), nil
	case int8:
		return new(big.Rat).SetInt64(int64(v)), nil
	case int16:
		return new(big.Rat).SetInt64(int64(v)), nil
	case int32:
		return new(big.Rat).SetInt64(int64(v)), nil
	case int64:
		return new(big.Rat).SetInt64(v), nil
	case uint:
		return new(big.Rat).SetUint64(uint64(v)), nil
	case uint8:
		return new(big.Rat).SetUint64(uint64(v)), nil
	case uint16:
		return new(big.Rat).SetUint64(uint64(v)), nil
	case uint32:
		return new(big.Rat).SetUint64(uint64(v)), nil
	case uint64:
		return new(big.Rat).SetUint64(v), nil
	case bool:
		if v {
			return big.NewRat(1, 1), nil
		}

		return new(big.Rat), nil
	case gf2.GF2:
		return new(big.Rat).SetInt64(int64(v.Int())), nil
	default:
		return nil, ErrNotElement
	}
}

// ratFromFloat converts a float into a rational through the denominator
// limit. Rejects NaN and ±Inf.
func ratFromFloat(f float64, maxDen int64) (*big.Rat, error) {
	r := new(big.Rat).SetFloat64(f)
	if r == nil { // SetFloat64 returns nil for non-finite inputs
		return nil, ErrNotElement
	}

	return limitDenominator(r, maxDen), nil
}

// Validate checks if value is an element of ℚ; it wraps Cast and
// reports the outcome as a boolean.
func (f Rational) Validate(value any, opts ...Option) bool {
	_, err := f.Cast(value, opts...)

	return err == nil
}

// Random draws a uniformly distributed element from [0/1, 1/1] with the
// denominator bounded by the effective maximum. A nil rng falls back to
// the fixed default seed.
func (f Rational) Random(rng *rand.Rand, opts ...Option) *big.Rat {
	return f.RandomBetween(rng, f.Zero(), f.One(), opts...)
}

// RandomBetween draws a uniformly distributed element from the interval
// spanned by lower and upper (which may arrive reversed). The draw goes
// through float64 space and back through the denominator limit, so the
// result's denominator never exceeds the effective maximum.
//
// Complexity: O(log maxDenominator).
func (Rational) RandomBetween(rng *rand.Rand, lower, upper *big.Rat, opts ...Option) *big.Rat {
	o := gatherOptions(opts...)
	r := ensureRNG(rng)

	lo, _ := lower.Float64()
	hi, _ := upper.Float64()
	v := lo + r.Float64()*(hi-lo)

	return limitDenominator(new(big.Rat).SetFloat64(v), o.maxDenominator)
}

// limitDenominator returns the closest rational to x whose denominator
// is at most maxDen, using the classic continued-fraction walk over the
// Stern–Brocot tree. x itself is returned (as a copy) when its
// denominator already fits.
//
// The two final candidates are the last convergent inside the bound and
// the best semiconvergent; ties go to the semiconvergent's neighbor with
// the smaller error, matching the textbook construction.
//
// Complexity: O(log maxDen) big.Int divisions.
func limitDenominator(x *big.Rat, maxDen int64) *big.Rat {
	md := big.NewInt(maxDen)
	if x.Denom().Cmp(md) <= 0 {
		return new(big.Rat).Set(x)
	}

	// Convergent state: p0/q0 and p1/q1 bracket x ever tighter.
	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	n := new(big.Int).Set(x.Num())
	d := new(big.Int).Set(x.Denom())

	for {
		// d stays strictly positive: the first step floors n/d, every
		// later step uses a remainder in [0, d).
		a := new(big.Int).Div(n, d)
		q2 := new(big.Int).Add(q0, new(big.Int).Mul(a, q1))
		if q2.Cmp(md) > 0 {
			break
		}
		p2 := new(big.Int).Add(p0, new(big.Int).Mul(a, p1))
		p0, q0, p1, q1 = p1, q1, p2, q2
		n, d = d, new(big.Int).Sub(n, new(big.Int).Mul(a, d))
	}

	// Best semiconvergent still under the bound.
	k := new(big.Int).Div(new(big.Int).Sub(md, q0), q1)
	first := new(big.Rat).SetFrac(
		new(big.Int).Add(p0, new(big.Int).Mul(k, p1)),
		new(big.Int).Add(q0, new(big.Int).Mul(k, q1)),
	)
	second := new(big.Rat).SetFrac(p1, q1)

	errFirst := new(big.Rat).Sub(first, x)
	errFirst.Abs(errFirst)
	errSecond := new(big.Rat).Sub(second, x)
	errSecond.Abs(errSecond)

	if errSecond.Cmp(errFirst) <= 0 {
		return second
	}

	return first
}
