// Package vector provides discrete vectors: one field element per label
// of a domain.
//
// 🚀 What is vector?
//
// A Vector[L, T] binds a domain.Domain[L] (the index set), a
// field.Field[T] (the arithmetic), and exactly one entry of type T per
// label. It is the joint surface of the domain and field packages:
// element-wise arithmetic over arbitrary label sets, like a map with
// algebra.
//
// ✨ Key features
//
//   - Constructors New, Zeros, Ones and Random, each covering the domain
//     exactly (ErrLabelMismatch otherwise).
//   - Element access via At and Set, guarded by ErrUnknownLabel.
//   - Element-wise Add, Sub, Neg, Scale and Apply; binary operations
//     fail fast with ErrDomainMismatch or ErrFieldMismatch.
//   - Value semantics: every operation allocates a fresh Vector and
//     never mutates its operands.
//
// ⚙️ Usage
//
//	dom, _ := domain.New("x", "y", "z")
//	v, _ := vector.New(dom, field.R, map[string]float64{"x": 1, "y": 2, "z": 3})
//	w := vector.Ones(dom, field.R)
//	sum, _ := v.Add(w)      // (2, 3, 4)
//	twice := v.Scale(2)     // (2, 4, 6)
//
// Norms, inner products and solvers are out of scope; vector stays a
// container with field arithmetic.
package vector
