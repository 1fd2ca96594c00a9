package words

import (
	"github.com/katalvlaran/ternary/countvec"
	"github.com/katalvlaran/ternary/numth"
)

// BrightestMOSBresenham returns the brightest (lexicographically least)
// mode of the MOS a·L b·s over letters {0, 1}, together with its bright
// generator, by walking the lattice path under the line y = (b/a)·x.
//
// When d = gcd(a, b) > 1 the primitive MOS (a/d)L (b/d)s is repeated d
// times and its generator is returned. A zero count yields a monochromatic
// word whose generator is a single step. Negative counts yield (nil, 0).
//
// Complexity: O(a + b).
func BrightestMOSBresenham(a, b int) (Word, countvec.Vector) {
	if w, gen, done := mosEdgeCases(a, b); done {
		return w, gen
	}
	if d := numth.GCD(a, b); d > 1 {
		prim, gen := BrightestMOSBresenham(a/d, b/d)
		return repeatWord(prim, d), gen
	}
	// stacking the dark generator b times reaches the large step
	genSteps, _ := numth.ModInv(b, a+b)
	w := make(Word, 0, a+b)
	x, y := 0, 0
	for x < a || y < b {
		if a*(y+1) <= b*x {
			y++
			w = append(w, 1)
		} else {
			x++
			w = append(w, 0)
		}
	}

	return w, countvec.FromLetters(w[:genSteps])
}

// BrightestMOSBjorklund returns the same mode and generator as
// BrightestMOSBresenham, built by Bjorklund-style merging of two seed
// words, appending the lexicographically larger seed to the smaller one at
// every stage.
func BrightestMOSBjorklund(a, b int) (Word, countvec.Vector) {
	if w, gen, done := mosEdgeCases(a, b); done {
		return w, gen
	}
	if d := numth.GCD(a, b); d > 1 {
		prim, gen := BrightestMOSBjorklund(a/d, b/d)
		return repeatWord(prim, d), gen
	}
	genSteps, _ := numth.ModInv(b, a+b)
	first, second := Word{0}, Word{1}
	countFirst, countSecond := a, b
	for countSecond != 1 {
		prevFirst := first
		first = append(first.Clone(), second...)
		if countFirst > countSecond {
			second = prevFirst
			countFirst, countSecond = countSecond, countFirst-countSecond
		} else {
			countSecond -= countFirst
		}
		if Compare(first, second) > 0 {
			first, second = second, first
			countFirst, countSecond = countSecond, countFirst
		}
	}
	w := append(repeatWord(first, countFirst), second...)

	return w, countvec.FromLetters(w[:genSteps])
}

// MOSMode returns the mode of a·L b·s with the given brightness: the number
// of bright generators stacked up from the root. Brightness is taken modulo
// a+b; 0 is the darkest mode and a+b−1 the brightest.
func MOSMode(a, b, brightness int) Word {
	n := a + b
	if a < 0 || b < 0 || n == 0 {
		return Word{}
	}
	brightness %= n
	if brightness < 0 {
		brightness += n
	}
	mos, gen := BrightestMOSBresenham(a, b)

	return Rotate(mos, (n-1-brightness)*gen.Len())
}

func mosEdgeCases(a, b int) (Word, countvec.Vector, bool) {
	switch {
	case a < 0 || b < 0:
		return nil, countvec.Zero(), true
	case a == 0 && b == 0:
		return Word{}, countvec.Zero(), true
	case b == 0:
		return repeatWord(Word{0}, a), countvec.FromLetters([]int{0}), true
	case a == 0:
		return repeatWord(Word{1}, b), countvec.FromLetters([]int{1}), true
	}

	return nil, countvec.Vector{}, false
}

func repeatWord(w Word, times int) Word {
	out := make(Word, 0, len(w)*times)
	for i := 0; i < times; i++ {
		out = append(out, w...)
	}

	return out
}
