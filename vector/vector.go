package vector

import (
	"math/rand"

	"github.com/katalvlaran/lalib/domain"
	"github.com/katalvlaran/lalib/field"
)

// Vector is a discrete vector: one field element per domain label.
//
// The zero value is empty and unusable; New, Zeros, Ones and Random are
// the blessed constructors. Vectors are immutable from the outside —
// every operation hands back a fresh Vector and leaves its operands
// untouched, so sharing a Vector across goroutines for reading is safe.
type Vector[L comparable, T any] struct {
	dom     domain.Domain[L]
	fld     field.Field[T]
	entries map[L]T
}

// New builds a Vector over dom and fld from explicit entries. The entry
// keys must cover the domain's labels exactly: no label may be missing
// and no extra key may appear. The entries map is copied. An empty
// (zero-value) domain is rejected outright — a vector holds at least
// one entry.
//
// Errors:
//   - ErrLabelMismatch — entries and domain labels differ, or the
//     domain is empty.
//
// Complexity: O(k) for k labels.
func New[L comparable, T any](dom domain.Domain[L], fld field.Field[T], entries map[L]T) (Vector[L, T], error) {
	if dom.Len() == 0 || len(entries) != dom.Len() {
		return Vector[L, T]{}, ErrLabelMismatch
	}
	for label := range entries {
		if !dom.Contains(label) {
			return Vector[L, T]{}, ErrLabelMismatch
		}
	}

	copied := make(map[L]T, len(entries))
	for label, value := range entries {
		copied[label] = value
	}

	return Vector[L, T]{dom: dom, fld: fld, entries: copied}, nil
}

// Zeros builds the additive identity vector: fld.Zero() at every label.
//
// Complexity: O(k).
func Zeros[L comparable, T any](dom domain.Domain[L], fld field.Field[T]) Vector[L, T] {
	return fill(dom, fld, func(L) T { return fld.Zero() })
}

// Ones builds the all-ones vector: fld.One() at every label.
//
// Complexity: O(k).
func Ones[L comparable, T any](dom domain.Domain[L], fld field.Field[T]) Vector[L, T] {
	return fill(dom, fld, func(L) T { return fld.One() })
}

// Random builds a vector of independent random draws from fld. Labels
// are visited in the domain's deterministic order, so a fixed seed
// reproduces the same vector. A nil rng is resolved to the field
// package's default generator once, up front: per-draw fallbacks would
// restart from the fixed seed and hand every label the same value.
//
// Complexity: O(k log k) due to the label ordering.
func Random[L comparable, T any](dom domain.Domain[L], fld field.Field[T], rng *rand.Rand, opts ...field.Option) Vector[L, T] {
	if rng == nil {
		rng = field.NewDefaultRNG()
	}

	entries := make(map[L]T, dom.Len())
	for _, label := range dom.Labels() {
		entries[label] = fld.Random(rng, opts...)
	}

	return Vector[L, T]{dom: dom, fld: fld, entries: entries}
}

// fill builds a vector by evaluating gen at every label, in the
// domain's deterministic order.
func fill[L comparable, T any](dom domain.Domain[L], fld field.Field[T], gen func(L) T) Vector[L, T] {
	entries := make(map[L]T, dom.Len())
	for _, label := range dom.Labels() {
		entries[label] = gen(label)
	}

	return Vector[L, T]{dom: dom, fld: fld, entries: entries}
}

// Domain returns the index set of the vector.
func (v Vector[L, T]) Domain() domain.Domain[L] { return v.dom }

// Field returns the field the entries live in.
func (v Vector[L, T]) Field() field.Field[T] { return v.fld }

// Len reports the number of entries, i.e. the domain size.
func (v Vector[L, T]) Len() int { return v.dom.Len() }

// At returns the entry stored under label.
//
// Errors:
//   - ErrUnknownLabel — label is not in the domain.
//
// Complexity: O(1).
func (v Vector[L, T]) At(label L) (T, error) {
	value, ok := v.entries[label]
	if !ok {
		var zero T

		return zero, ErrUnknownLabel
	}

	return value, nil
}

// Set returns a fresh vector with the entry under label replaced; v
// itself is unchanged.
//
// Errors:
//   - ErrUnknownLabel — label is not in the domain.
//
// Complexity: O(k).
func (v Vector[L, T]) Set(label L, value T) (Vector[L, T], error) {
	if !v.dom.Contains(label) {
		return Vector[L, T]{}, ErrUnknownLabel
	}

	out := v.clone()
	out.entries[label] = value

	return out, nil
}

// Add returns v + other element-wise as a fresh vector.
//
// Errors:
//   - ErrDomainMismatch — the vectors are indexed by different domains.
//   - ErrFieldMismatch — the vectors hold elements of different fields.
//
// Complexity: O(k).
func (v Vector[L, T]) Add(other Vector[L, T]) (Vector[L, T], error) {
	if err := v.compatible(other); err != nil {
		return Vector[L, T]{}, err
	}

	return v.zipWith(other, v.fld.Add), nil
}

// Sub returns v - other element-wise as a fresh vector.
//
// Errors: same as Add.
//
// Complexity: O(k).
func (v Vector[L, T]) Sub(other Vector[L, T]) (Vector[L, T], error) {
	if err := v.compatible(other); err != nil {
		return Vector[L, T]{}, err
	}

	return v.zipWith(other, v.fld.Sub), nil
}

// Neg returns the additive inverse -v as a fresh vector.
//
// Complexity: O(k).
func (v Vector[L, T]) Neg() Vector[L, T] {
	return v.Apply(v.fld.Neg)
}

// Scale returns scalar * v element-wise as a fresh vector.
//
// Complexity: O(k).
func (v Vector[L, T]) Scale(scalar T) Vector[L, T] {
	return v.Apply(func(value T) T { return v.fld.Mul(scalar, value) })
}

// Apply returns a fresh vector with fn mapped over every entry.
//
// Complexity: O(k) plus k calls to fn.
func (v Vector[L, T]) Apply(fn func(T) T) Vector[L, T] {
	entries := make(map[L]T, len(v.entries))
	for label, value := range v.entries {
		entries[label] = fn(value)
	}

	return Vector[L, T]{dom: v.dom, fld: v.fld, entries: entries}
}

// Equal reports whether both vectors share the domain and field and
// every pair of entries is equal under the field's Eq.
//
// Complexity: O(k).
func (v Vector[L, T]) Equal(other Vector[L, T]) bool {
	if v.compatible(other) != nil {
		return false
	}
	for label, value := range v.entries {
		if !v.fld.Eq(value, other.entries[label]) {
			return false
		}
	}

	return true
}

// compatible fails fast when two vectors cannot meet in one operation.
// Fields are identified by Name: two Field[T] values with the same name
// define the same arithmetic.
func (v Vector[L, T]) compatible(other Vector[L, T]) error {
	if !v.dom.Equal(other.dom) {
		return ErrDomainMismatch
	}
	if v.fld.Name() != other.fld.Name() {
		return ErrFieldMismatch
	}

	return nil
}

// zipWith combines two compatible vectors entry-by-entry.
func (v Vector[L, T]) zipWith(other Vector[L, T], op func(a, b T) T) Vector[L, T] {
	entries := make(map[L]T, len(v.entries))
	for label, value := range v.entries {
		entries[label] = op(value, other.entries[label])
	}

	return Vector[L, T]{dom: v.dom, fld: v.fld, entries: entries}
}

// clone copies the entries map; domain and field are immutable and shared.
func (v Vector[L, T]) clone() Vector[L, T] {
	entries := make(map[L]T, len(v.entries))
	for label, value := range v.entries {
		entries[label] = value
	}

	return Vector[L, T]{dom: v.dom, fld: v.fld, entries: entries}
}
