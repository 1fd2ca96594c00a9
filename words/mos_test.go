package words_test

import (
	"testing"

	"github.com/katalvlaran/ternary/countvec"
	"github.com/katalvlaran/ternary/numth"
	"github.com/katalvlaran/ternary/words"
	"github.com/stretchr/testify/assert"
)

func TestBrightestMOSBresenham(t *testing.T) {
	mos, gen := words.BrightestMOSBresenham(5, 2)
	assert.Equal(t, w("0001001"), mos)
	assert.Equal(t, countvec.FromLetters([]int{0, 0, 0, 1}), gen)

	mos, gen = words.BrightestMOSBresenham(5, 3)
	assert.Equal(t, w("00100101"), mos)
	assert.Equal(t, countvec.FromLetters([]int{0, 0, 1}), gen)

	mos, gen = words.BrightestMOSBresenham(2, 5)
	assert.Equal(t, w("0110111"), mos)
	assert.Equal(t, countvec.FromLetters([]int{0, 1, 1}), gen)

	// non-primitive: repeated primitive MOS
	mos, gen = words.BrightestMOSBresenham(4, 6)
	assert.Equal(t, w("0101101011"), mos)
	assert.Equal(t, countvec.FromLetters([]int{0, 1}), gen)
}

func TestBrightestMOSEdgeCases(t *testing.T) {
	mos, gen := words.BrightestMOSBresenham(3, 0)
	assert.Equal(t, w("000"), mos)
	assert.Equal(t, 1, gen.Len())

	mos, _ = words.BrightestMOSBjorklund(0, 2)
	assert.Equal(t, w("11"), mos)

	mos, gen = words.BrightestMOSBresenham(0, 0)
	assert.Empty(t, mos)
	assert.True(t, gen.IsZero())

	mos, _ = words.BrightestMOSBjorklund(-1, 2)
	assert.Nil(t, mos)
}

func TestBjorklundAgreesWithBresenham(t *testing.T) {
	for a := 1; a <= 20; a++ {
		for b := 1; b <= 20; b++ {
			m1, g1 := words.BrightestMOSBresenham(a, b)
			m2, g2 := words.BrightestMOSBjorklund(a, b)
			assert.Equal(t, m1, m2, "a=%d b=%d", a, b)
			assert.True(t, g1.Equal(g2), "a=%d b=%d", a, b)
		}
	}
}

func TestMOSModes(t *testing.T) {
	assert.Equal(t, w("1001000"), words.MOSMode(5, 2, 0), "locrian is the darkest mode")
	assert.Equal(t, w("0001001"), words.MOSMode(5, 2, 6), "lydian is the brightest mode")
	assert.Equal(t, w("0010001"), words.MOSMode(5, 2, 5))
	assert.Equal(t, words.MOSMode(5, 2, 1), words.MOSMode(5, 2, 8), "brightness wraps")
	assert.Empty(t, words.MOSMode(0, 0, 3))

	for a := 1; a <= 12; a++ {
		for b := 1; b <= 12; b++ {
			if numth.GCD(a, b) != 1 {
				continue
			}
			for br := 0; br < a+b; br++ {
				mode := words.MOSMode(a, b, br)
				assert.Equal(t, 2, words.MaximumVariety(mode), "a=%d b=%d br=%d", a, b, br)
				assert.Equal(t, 1, words.BlockBalance(mode), "a=%d b=%d br=%d", a, b, br)
			}
		}
	}
}
