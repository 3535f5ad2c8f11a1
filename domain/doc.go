// Package domain models the index sets of discrete vectors.
//
// 🚀 What is a Domain?
//
//	In conventional math a 3-vector over the reals is indexed by the
//	strictly positive naturals {1, 2, 3}.  Programs count from 0, so in
//	lalib the same vector has the Domain {0, 1, 2}.  We call Domains of
//	the shape {0, 1, ..., n-1} "canonical", and they can be built from
//	just the length:
//
//	  d, _ := domain.Canonical(3) // Domain(3)
//
//	Domains do not need to be made of numbers.  Any comparable label
//	type works — letters, words, coin sides:
//
//	  d, _ := domain.New("heads", "tails")
//
// ✨ Key features:
//   - immutable by construction: constructors copy, accessors copy back
//   - at least one label is enforced (vectors must have an entry)
//   - canonical Domains detected via IsCanonical and rendered as Domain(n)
//   - deterministic Labels()/String() ordering for stable output
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lalib/domain"
//
//	d, err := domain.New("a", "b", "c")
//	d.Len()          // 3
//	d.Contains("b")  // true
//	d.IsCanonical()  // false — labels are not 0..n-1 integers
//
// See example_test.go for runnable demos.
package domain
