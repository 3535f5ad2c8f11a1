package domain

import "errors"

var (
	// ErrEmptyDomain indicates a constructor received no labels; a Domain
	// must index at least one vector entry.
	ErrEmptyDomain = errors.New("domain: must provide at least one label")
	// ErrNonPositive indicates Canonical received a size below one.
	ErrNonPositive = errors.New("domain: must provide a strictly positive integer")
)
