package bitset_test

import (
	"fmt"

	"github.com/rogpeppe/bitset"
)

func ExampleBuilder_Of() {
	primes := bitset.Ints().Of(2, 3, 5, 7, 11)
	fmt.Println(primes.Contains(7))
	fmt.Println(primes.Contains(9))
	fmt.Println(primes)
	// Output:
	// true
	// false
	// BitSet(2, 3, 5, 7, 11)
}

func ExampleEnum() {
	type color = string
	colors := bitset.Enum[color]("red", "green", "blue")

	warm := colors.Of("red")
	fmt.Println(warm.Union(colors.Of("blue")))
	// Output:
	// BitSet(red, blue)
}

func ExampleSet_All() {
	s := bitset.Ints().Of(130, 5, 64)
	for x := range s.All() {
		fmt.Println(x)
	}
	// Output:
	// 5
	// 64
	// 130
}
