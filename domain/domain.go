package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Domain is an immutable set of labels indexing a discrete vector.
//
// The zero value is an empty, invalid Domain; New, FromKeys and Canonical
// are the blessed constructors and enforce the at-least-one-label rule.
// All methods are total: they never panic, even on the zero value.
type Domain[L comparable] struct {
	labels map[L]struct{}
}

// New builds a Domain from explicit labels. Duplicates collapse, so
// New("a", "b", "a") equals New("a", "b").
//
// Errors:
//   - ErrEmptyDomain — no labels were provided.
//
// Complexity: O(k) for k labels.
func New[L comparable](labels ...L) (Domain[L], error) {
	if len(labels) == 0 {
		return Domain[L]{}, ErrEmptyDomain
	}

	set := make(map[L]struct{}, len(labels))
	for _, l := range labels {
		set[l] = struct{}{}
	}

	return Domain[L]{labels: set}, nil
}

// FromKeys builds a Domain from the keys of a map, mirroring the
// convenience of indexing a vector by an existing lookup table.
//
// Errors:
//   - ErrEmptyDomain — the map has no keys.
//
// Complexity: O(k) for k keys.
func FromKeys[L comparable, V any](m map[L]V) (Domain[L], error) {
	if len(m) == 0 {
		return Domain[L]{}, ErrEmptyDomain
	}

	set := make(map[L]struct{}, len(m))
	for l := range m {
		set[l] = struct{}{}
	}

	return Domain[L]{labels: set}, nil
}

// Canonical builds the Domain {0, 1, ..., n-1}, the index set of an
// n-vector.
//
// Errors:
//   - ErrNonPositive — n < 1.
//
// Complexity: O(n).
func Canonical(n int) (Domain[int], error) {
	if n < 1 {
		return Domain[int]{}, ErrNonPositive
	}

	set := make(map[int]struct{}, n)
	for i := 0; i < n; i++ {
		set[i] = struct{}{}
	}

	return Domain[int]{labels: set}, nil
}

// Len reports the number of labels.
func (d Domain[L]) Len() int { return len(d.labels) }

// Contains reports whether label belongs to the Domain.
func (d Domain[L]) Contains(label L) bool {
	_, ok := d.labels[label]

	return ok
}

// Labels returns a fresh slice of all labels in deterministic order:
// integer labels sort numerically, everything else sorts by its
// fmt.Sprint rendering.
//
// Complexity: O(k log k).
func (d Domain[L]) Labels() []L {
	out := make([]L, 0, len(d.labels))
	for l := range d.labels {
		out = append(out, l)
	}
	sortLabels(out)

	return out
}

// Equal reports whether both Domains hold exactly the same labels.
//
// Complexity: O(k).
func (d Domain[L]) Equal(other Domain[L]) bool {
	if len(d.labels) != len(other.labels) {
		return false
	}
	for l := range d.labels {
		if _, ok := other.labels[l]; !ok {
			return false
		}
	}

	return true
}

// IsCanonical reports whether the labels are exactly the integers
// 0, 1, ..., Len()-1.
//
// Complexity: O(k).
func (d Domain[L]) IsCanonical() bool {
	if len(d.labels) == 0 {
		return false
	}
	for l := range d.labels {
		i, ok := any(l).(int)
		if !ok {
			return false
		}
		if i < 0 || i >= len(d.labels) {
			return false
		}
	}

	// All labels are ints inside [0, n) and the set holds n distinct
	// values, so it must be exactly {0..n-1}.
	return true
}

// String renders canonical Domains as "Domain(n)" and every other
// Domain as the deterministic label listing "Domain(a, b, c)".
func (d Domain[L]) String() string {
	if d.IsCanonical() {
		return fmt.Sprintf("Domain(%d)", len(d.labels))
	}

	parts := make([]string, 0, len(d.labels))
	for _, l := range d.Labels() {
		parts = append(parts, fmt.Sprint(l))
	}

	return fmt.Sprintf("Domain(%s)", strings.Join(parts, ", "))
}

// sortLabels orders labels numerically when they are ints, otherwise by
// their fmt.Sprint form. Both orders are total and stable across runs.
func sortLabels[L comparable](labels []L) {
	if len(labels) > 0 {
		if _, ok := any(labels[0]).(int); ok {
			sort.Slice(labels, func(i, j int) bool {
				return any(labels[i]).(int) < any(labels[j]).(int)
			})

			return
		}
	}

	sort.Slice(labels, func(i, j int) bool {
		return fmt.Sprint(labels[i]) < fmt.Sprint(labels[j])
	})
}
