package profile_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/ternary/profile"
)

// ExampleAnalyzeWord profiles the diasem scale.
func ExampleAnalyzeWord() {
	p, err := profile.AnalyzeWord("LmLsLmLsL")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p.CanonicalWord, p.Chirality, p.MaxVariety)
	fmt.Println(p.Structure.GS, p.Structure.Complexity)
	fmt.Println(*p.LatticeBasis)
	// Output:
	// LLmLsLmLs Right 3
	// [[1 1 0] [1 0 1]] 2
	// [[1 1 0] [1 0 1]]
}

// ExampleAnalyzeSignature lists the MOS substitution scales of 5L 2m 2s
// that stay MOS under every monotone identification.
func ExampleAnalyzeSignature() {
	profiles, err := profile.AnalyzeSignature(context.Background(), [3]int{5, 2, 2},
		profile.WithMode(profile.ModeMOSSubstitution),
		profile.WithMonotone(true, true, true),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, p := range profiles {
		if p.Word == "LLmLsLmLs" {
			fmt.Println(p.Word, p.MaxVariety)
		}
	}
	// Output:
	// LLmLsLmLs 3
}
