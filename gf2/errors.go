package gf2

import "errors"

var (
	// ErrNonNumeric indicates the input does not behave like a number at all.
	ErrNonNumeric = errors.New("gf2: value must be a number")
	// ErrNotGF2Like indicates a numeric input that is neither 1-like nor 0-like
	// within the effective threshold (strict mode), or is NaN / has a
	// non-negligible imaginary part (any mode).
	ErrNotGF2Like = errors.New("gf2: value must be either 1-like or 0-like")
	// ErrDivisionByZero indicates division or modulo by the Zero element.
	ErrDivisionByZero = errors.New("gf2: division by zero-like value")
)
