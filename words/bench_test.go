package words_test

import (
	"testing"

	"github.com/katalvlaran/ternary/words"
)

// BenchmarkCanonical measures Booth's algorithm on a 25-note scale.
func BenchmarkCanonical(b *testing.B) {
	s := w("0021201202012021020210212")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = words.Canonical(s)
	}
}

// BenchmarkMaximumVariety measures the O(n³) variety scan.
func BenchmarkMaximumVariety(b *testing.B) {
	s := w("0021201202012021020210212")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = words.MaximumVariety(s)
	}
}

// BenchmarkMOSSubstitutionScales enumerates 8L 5m 5s substitution scales.
func BenchmarkMOSSubstitutionScales(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = words.MOSSubstitutionScales([3]int{8, 5, 5})
	}
}
