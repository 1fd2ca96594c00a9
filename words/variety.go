package words

import (
	"sort"

	"github.com/katalvlaran/ternary/countvec"
)

// Spectrum returns the distinct k-step intervals of w (as count vectors)
// in ascending Compare order.
func Spectrum(w Word, k int) []countvec.Vector {
	if len(w) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(w))
	var out []countvec.Vector
	for deg := range w {
		v := DyadOnDegree(w, deg, k)
		if _, dup := seen[v.Key()]; dup {
			continue
		}
		seen[v.Key()] = struct{}{}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })

	return out
}

// MaximumVariety is the largest number of distinct k-step intervals over
// k in [1, ⌊n/2⌋]. It is 0 for the empty word and 1 for a singleton.
// MOS words have maximum variety 2.
func MaximumVariety(w Word) int {
	if len(w) == 0 {
		return 0
	}
	result := 1
	for k := 1; k <= len(w)/2; k++ {
		result = max(result, len(Spectrum(w, k)))
	}

	return result
}

// MaximumVarietyIs reports MaximumVariety(w) == mv, stopping as soon as
// some step class exceeds mv.
func MaximumVarietyIs(w Word, mv int) bool {
	if len(w) == 0 {
		return mv == 0
	}
	result := 1
	for k := 1; k <= len(w)/2; k++ {
		result = max(result, len(Spectrum(w, k)))
		if result > mv {
			return false
		}
	}

	return result == mv
}

// IsStrictVariety reports whether every step class k in [1, ⌊n/2⌋] has the
// same number of distinct sizes.
func IsStrictVariety(w Word) bool {
	prev := 0
	for k := 1; k <= len(w)/2; k++ {
		size := len(Spectrum(w, k))
		if prev == 0 {
			prev = size
		} else if prev != size {
			return false
		}
	}

	return true
}

// BlockBalance is the largest spread, over k in [1, ⌊n/2⌋] and every letter
// x of w, between the most and fewest occurrences of x in a k-step subword.
// Words of length 0 or 1 return their length.
func BlockBalance(w Word) int {
	if len(w) <= 1 {
		return len(w)
	}
	letters := StepSet(w)
	result := 0
	for k := 1; k <= len(w)/2; k++ {
		spectrum := Spectrum(w, k)
		for _, x := range letters {
			lo, hi := spectrum[0].Get(x), spectrum[0].Get(x)
			for _, v := range spectrum[1:] {
				c := v.Get(x)
				lo = min(lo, c)
				hi = max(hi, c)
			}
			result = max(result, hi-lo)
		}
	}

	return result
}
