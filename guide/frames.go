package guide

import (
	"slices"

	"github.com/katalvlaran/ternary/countvec"
	"github.com/katalvlaran/ternary/numth"
	"github.com/katalvlaran/ternary/words"
)

// TrySimple returns the simple frames of s generated by k-steps, sorted
// and deduplicated. k must be coprime to len(s).
func TrySimple(s words.Word, k int) []Frame {
	if len(s) == 0 || numth.GCD(len(s), k) != 1 {
		return nil
	}
	var out []Frame
	for _, gs := range GuidedChains(StackedStepClass(k, s, LetterInterval)) {
		out = append(out, NewSimple(gs))
	}

	return sortUnique(out)
}

// TryMultiple returns the frames of s with the given multiplicity m built
// from k-steps. m must be at least 2 and divide len(s).
//
// With g = gcd(k, n), when (n/g) mod m ≠ 0 the scale must split into
// g = m interleaved g-step subscales that are rotations of one another;
// their rotational offsets give the chord. Otherwise the k-step chains of
// length n/m on every rotation are grouped by the GS they carry, and a GS
// yields a frame when exactly m chains carry it and together they visit
// every degree once.
func TryMultiple(s words.Word, m, k int) []Frame {
	n := len(s)
	if m < 2 || n == 0 || n%m != 0 {
		return nil
	}
	g := numth.GCD(k, n)
	if (n/g)%m != 0 {
		if g != m {
			return nil
		}
		return interleaved(s, g)
	}

	return disjointChains(s, m, k)
}

func interleaved(s words.Word, g int) []Frame {
	n := len(s)
	subs := make([][]countvec.Vector, g)
	for d := range subs {
		subs[d] = StackedStepClass(g, words.Rotate(s, d), LetterInterval)[:n/g]
	}
	root := subs[0]
	chord := make([]countvec.Vector, g)
	for i, sub := range subs {
		offset, ok := words.OffsetOfFunc(root, sub, countvec.Vector.Equal)
		if !ok {
			return nil
		}
		chord[i] = words.DyadOnDegree(s, 0, offset*g+i)
	}
	slices.SortStableFunc(chord, func(a, b countvec.Vector) int { return a.Len() - b.Len() })

	var out []Frame
	for _, gs := range subscaleGSList(root) {
		out = append(out, Frame{GS: gs, Chord: chord})
	}

	return sortUnique(out)
}

type chain struct {
	start int
	gs    []countvec.Vector
}

func disjointChains(s words.Word, m, k int) []Frame {
	n := len(s)
	length := n / m
	if length == 1 {
		return nil
	}
	var chains []chain
	for i, rot := range words.Rotations(s) {
		c := StackedStepClass(k, rot, LetterInterval)[:length]
		if countvec.Contains(c[:length-1], c[length-1]) {
			continue
		}
		chains = append(chains, chain{start: i, gs: words.WeakPeriodPatternFunc(c[:length-1], countvec.Vector.Equal)})
	}

	gses := make([][]countvec.Vector, 0, len(chains))
	for _, c := range chains {
		gses = append(gses, c.gs)
	}
	slices.SortFunc(gses, countvec.CompareSlices)
	gses = slices.CompactFunc(gses, countvec.EqualSlices)

	var out []Frame
	for _, gs := range gses {
		var starts []int
		for _, c := range chains {
			if countvec.EqualSlices(c.gs, gs) {
				starts = append(starts, c.start)
			}
		}
		if len(starts) != m || !coversOnce(starts, k, length, n) {
			continue
		}
		first := starts[0]
		chord := make([]countvec.Vector, len(starts))
		for i, d := range starts {
			chord[i] = words.DyadOnDegree(s, first, d-first)
		}
		out = append(out, Frame{GS: gs, Chord: chord})
	}

	return out
}

// coversOnce reports whether the chains of the given length and stride k
// from starts visit all n degrees.
func coversOnce(starts []int, k, length, n int) bool {
	seen := make([]bool, n)
	count := 0
	for _, f := range starts {
		for i := 0; i < length; i++ {
			d := (f + i*k) % n
			if !seen[d] {
				seen[d] = true
				count++
			}
		}
	}

	return count == n
}

// TryAllVariants returns TrySimple(s, k) followed by TryMultiple(s, p, k)
// for every prime p dividing len(s). Monochromatic scales get no multiple
// frames.
func TryAllVariants(s words.Word, k int) []Frame {
	out := TrySimple(s, k)
	if words.StepVariety(s) > 1 {
		for _, p := range numth.DistinctPrimeFactors(len(s)) {
			out = append(out, TryMultiple(s, p, k)...)
		}
	}

	return out
}

// Frames returns every guide frame of s for step classes 2 ≤ k ≤ ⌊n/2⌋,
// sorted by complexity, then by (GS, chord), without duplicates.
func Frames(s words.Word) []Frame {
	var out []Frame
	for k := 2; k <= len(s)/2; k++ {
		out = append(out, TryAllVariants(s, k)...)
	}

	return sortByComplexity(out)
}
