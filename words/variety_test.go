package words_test

import (
	"testing"

	"github.com/katalvlaran/ternary/countvec"
	"github.com/katalvlaran/ternary/words"
	"github.com/stretchr/testify/assert"
)

func TestMaximumVariety(t *testing.T) {
	assert.Equal(t, 3, words.MaximumVariety(diasem))
	assert.Equal(t, 4, words.MaximumVariety(blackdye))
	assert.Equal(t, 2, words.MaximumVariety(diatonic))
	assert.Equal(t, 3, words.MaximumVariety(w("0010201")), "altered diatonic")
	assert.Equal(t, 1, words.MaximumVariety(w("1")))
	assert.Equal(t, 0, words.MaximumVariety(words.Word{}))

	assert.True(t, words.MaximumVarietyIs(diatonic, 2))
	assert.True(t, words.MaximumVarietyIs(diasem, 3))
	assert.False(t, words.MaximumVarietyIs(blackdye, 3))
	assert.True(t, words.MaximumVarietyIs(blackdye, 4))
	assert.True(t, words.MaximumVarietyIs(words.Word{}, 0))
}

func TestSpectrum(t *testing.T) {
	got := words.Spectrum(diatonic, 2)
	want := []countvec.Vector{
		countvec.FromLetters([]int{0, 1}),
		countvec.FromLetters([]int{0, 0}),
	}
	assert.Equal(t, want, got)
	assert.Nil(t, words.Spectrum(words.Word{}, 1))
}

func TestStrictVarietyAndBlockBalance(t *testing.T) {
	assert.True(t, words.IsStrictVariety(diatonic))
	assert.True(t, words.IsStrictVariety(diasem))
	assert.False(t, words.IsStrictVariety(blackdye))

	assert.Equal(t, 1, words.BlockBalance(diatonic))
	assert.Equal(t, 1, words.BlockBalance(diasem))
	assert.Equal(t, 2, words.BlockBalance(blackdye))
	assert.Equal(t, 1, words.BlockBalance(w("1")))
	assert.Equal(t, 0, words.BlockBalance(words.Word{}))
}
