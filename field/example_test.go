package field_test

import (
	"fmt"

	"github.com/katalvlaran/lalib/field"
)

// ExampleRational_Cast shows why strings are the safe road into ℚ and
// how the denominator limit rescues plain float literals.
func ExampleRational_Cast() {
	exact, _ := field.Q.Cast("0.1")
	rescued, _ := field.Q.Cast(0.1)

	fmt.Println(exact.RatString())
	fmt.Println(rescued.RatString())
	// Output:
	// 1/10
	// 1/10
}

// ExampleRational_Add shows ℚ escaping the classic float trap:
// one tenth plus two tenths is exactly three tenths.
func ExampleRational_Add() {
	a, _ := field.Q.Cast("0.1")
	b, _ := field.Q.Cast("0.2")

	fmt.Println(field.Q.Add(a, b).RatString())
	x := 0.1
	fmt.Println(x + 0.2)
	// Output:
	// 3/10
	// 0.30000000000000004
}

// ExampleComplex_Inv shows the multiplicative inverse of i.
func ExampleComplex_Inv() {
	inv, _ := field.C.Inv(complex(0, 1))

	fmt.Println(inv)
	// Output:
	// (0-1i)
}

// ExampleGalois_Cast shows the strict and relaxed casting modes of GF(2).
func ExampleGalois_Cast() {
	strict, err := field.GF2.Cast(42)
	fmt.Println(strict, err)

	relaxed, _ := field.GF2.Cast(42, field.WithNonStrict())
	fmt.Println(relaxed)
	// Output:
	// zero field: value is not an element of the field
	// one
}
