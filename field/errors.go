// SPDX-License-Identifier: MIT
// Package field: sentinel error set. All fields MUST return these
// sentinels and tests MUST check them via errors.Is. No field panics on
// user data; panics are reserved for programmer errors in option
// constructors.

package field

import "errors"

var (
	// ErrNotElement is returned when a value cannot be cast as an element
	// of the field. All cast failure modes (wrong type, unparsable string,
	// non-finite number, out-of-field value) fold into this one sentinel;
	// membership is a yes/no question.
	ErrNotElement = errors.New("field: value is not an element of the field")

	// ErrDivisionByZero is returned by Inv and Div when the divisor is a
	// zero-like element of the field.
	ErrDivisionByZero = errors.New("field: division by zero-like element")
)
