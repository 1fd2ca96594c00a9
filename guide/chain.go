package guide

import (
	"github.com/katalvlaran/ternary/countvec"
	"github.com/katalvlaran/ternary/numth"
	"github.com/katalvlaran/ternary/words"
)

// IntervalFunc sums a run of scale items into one interval. LetterInterval
// serves raw letter sequences and VectorInterval sequences of intervals.
type IntervalFunc[T any] func([]T) countvec.Vector

// LetterInterval counts the letters of a subword.
func LetterInterval(letters []int) countvec.Vector { return countvec.FromLetters(letters) }

// VectorInterval adds up a run of intervals.
func VectorInterval(vs []countvec.Vector) countvec.Vector { return countvec.Sum(vs) }

// StackedStepClass returns, for i in [0, len(s)), the interval of the k
// consecutive items of s starting at degree k·i (cyclically).
func StackedStepClass[T any](k int, s []T, interval IntervalFunc[T]) []countvec.Vector {
	out := make([]countvec.Vector, len(s))
	for i := range out {
		out[i] = interval(words.WordOnDegree(s, k*i, k))
	}

	return out
}

// GuidedChains returns one guided GS per rotation of chain whose last
// interval is distinct from all the others: the weak period of the first
// len(chain)-1 intervals. Chains shorter than 2 have none.
func GuidedChains(chain []countvec.Vector) [][]countvec.Vector {
	if len(chain) < 2 {
		return nil
	}
	last := len(chain) - 1
	var out [][]countvec.Vector
	for _, rot := range words.RotationsFunc(chain, countvec.Vector.Equal) {
		if !countvec.Contains(rot[:last], rot[last]) {
			out = append(out, words.WeakPeriodPatternFunc(rot[:last], countvec.Vector.Equal))
		}
	}

	return out
}

// GuidedGSList returns the guided GSes of s for every step class in
// [1, n−1] coprime to n = len(s), one-step GSes included.
func GuidedGSList(s words.Word) [][]countvec.Vector {
	var out [][]countvec.Vector
	for k := 1; k < len(s); k++ {
		if numth.GCD(k, len(s)) == 1 {
			out = append(out, GuidedChains(StackedStepClass(k, s, LetterInterval))...)
		}
	}

	return out
}

// GuidedGSListOfLen returns the guided GSes of s with exactly length
// intervals, for step classes in [1, ⌊n/2⌋] coprime to n.
func GuidedGSListOfLen(length int, s words.Word) [][]countvec.Vector {
	var out [][]countvec.Vector
	for k := 1; k <= len(s)/2; k++ {
		if numth.GCD(k, len(s)) != 1 {
			continue
		}
		for _, gs := range GuidedChains(StackedStepClass(k, s, LetterInterval)) {
			if len(gs) == length {
				out = append(out, gs)
			}
		}
	}

	return out
}

// subscaleGSList is GuidedGSList for a subscale already given as a chain of
// intervals. A two-interval subscale is generated by its first interval.
func subscaleGSList(sub []countvec.Vector) [][]countvec.Vector {
	if len(sub) == 2 {
		return [][]countvec.Vector{{sub[0]}}
	}
	var out [][]countvec.Vector
	for k := 1; k <= len(sub)/2; k++ {
		if numth.GCD(k, len(sub)) == 1 {
			out = append(out, GuidedChains(StackedStepClass(k, sub, VectorInterval))...)
		}
	}

	return out
}
