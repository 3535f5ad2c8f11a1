// File: domain/example_test.go
package domain_test

import (
	"fmt"

	"github.com/katalvlaran/lalib/domain"
)

// ExampleCanonical demonstrates the canonical Domain of a 3-vector:
// programs count from 0, so the index set is {0, 1, 2}.
func ExampleCanonical() {
	d, _ := domain.Canonical(3)

	fmt.Println(d)
	fmt.Println(d.IsCanonical())

	// Output:
	// Domain(3)
	// true
}

// ExampleNew demonstrates a Domain over non-numeric labels —
// here the two sides of a coin.
func ExampleNew() {
	d, _ := domain.New("heads", "tails")

	fmt.Println(d)
	fmt.Println(d.Len(), d.Contains("heads"), d.IsCanonical())

	// Output:
	// Domain(heads, tails)
	// 2 true false
}
