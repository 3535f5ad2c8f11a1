package vector

import "errors"

var (
	// ErrLabelMismatch is returned by New when the entry keys do not
	// cover the domain's labels exactly.
	ErrLabelMismatch = errors.New("vector: entries must cover the domain labels exactly")

	// ErrUnknownLabel is returned by At and Set for a label outside the
	// vector's domain.
	ErrUnknownLabel = errors.New("vector: label is not in the domain")

	// ErrDomainMismatch is returned by binary operations when the two
	// vectors are indexed by different domains.
	ErrDomainMismatch = errors.New("vector: vectors are indexed by different domains")

	// ErrFieldMismatch is returned by binary operations when the two
	// vectors hold elements of different fields.
	ErrFieldMismatch = errors.New("vector: vectors hold elements of different fields")
)
