package profile_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/ternary/profile"
)

func BenchmarkAnalyzeWord(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = profile.AnalyzeWord("LLsmsLmsLsLmsLsmLsLsmLsms")
	}
}

func BenchmarkAnalyzeSignature(b *testing.B) {
	ctx := context.Background()
	for i := 0; i < b.N; i++ {
		_, _ = profile.AnalyzeSignature(ctx, [3]int{5, 2, 2})
	}
}
