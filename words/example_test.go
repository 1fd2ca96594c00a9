package words_test

import (
	"fmt"

	"github.com/katalvlaran/ternary/words"
)

// ExampleCanonical canonicalises the blackdye scale sLmLsLmLsL.
func ExampleCanonical() {
	sLmL := words.Word{2, 0, 1, 0, 2, 0, 1, 0, 2, 0}
	fmt.Println(words.Canonical(sLmL))
	fmt.Println(words.ChiralityOf(sLmL), words.MaximumVariety(sLmL))
	// Output:
	// 0102010202
	// Achiral 4
}

// ExampleMOSMode lists the seven modes of the diatonic scale 5L 2s from
// darkest to brightest.
func ExampleMOSMode() {
	for br := 0; br < 7; br++ {
		fmt.Println(br, words.MOSMode(5, 2, br))
	}
	// Output:
	// 0 1001000
	// 1 1000100
	// 2 0100100
	// 3 0100010
	// 4 0010010
	// 5 0010001
	// 6 0001001
}
