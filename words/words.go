package words

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/ternary/countvec"
)

// Word is a scale word: letters read cyclically.
type Word []int

// String renders the letters as decimal digits separated only when a
// letter exceeds 9, e.g. "0102010202" or "0.11.3".
func (w Word) String() string {
	wide := false
	for _, l := range w {
		if l > 9 || l < 0 {
			wide = true
			break
		}
	}
	var b strings.Builder
	for i, l := range w {
		if wide && i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(l))
	}

	return b.String()
}

// Clone returns an independent copy of w.
func (w Word) Clone() Word {
	if w == nil {
		return nil
	}
	out := make(Word, len(w))
	copy(out, w)

	return out
}

// RotateSlice returns s rotated left by k positions (k may be negative or
// exceed len(s)). The result never aliases s.
func RotateSlice[T any](s []T, k int) []T {
	n := len(s)
	out := make([]T, n)
	if n == 0 {
		return out
	}
	k %= n
	if k < 0 {
		k += n
	}
	copy(out, s[k:])
	copy(out[n-k:], s[:k])

	return out
}

// Rotate returns w rotated left by k positions: Rotate(w, 1) starts on w[1].
func Rotate(w Word, k int) Word { return RotateSlice(w, k) }

// Reverse returns w read backwards.
func Reverse(w Word) Word {
	out := make(Word, len(w))
	for i, l := range w {
		out[len(w)-1-i] = l
	}

	return out
}

// Booth returns the rotation index of the lexicographically least rotation
// of w, using Booth's failure-function algorithm. Booth(nil) = 0.
func Booth(w Word) int {
	n := len(w)
	if n == 0 {
		return 0
	}
	fail := make([]int, 2*n)
	for i := range fail {
		fail[i] = -1
	}
	least := 0
	for j := 1; j < 2*n; j++ {
		c := w[j%n]
		i := fail[j-least-1]
		for i != -1 && c != w[(least+i+1)%n] {
			if c < w[(least+i+1)%n] {
				least = j - i - 1
			}
			i = fail[i]
		}
		if i == -1 && c != w[least%n] {
			if c < w[least%n] {
				least = j
			}
			fail[j-least] = -1
		} else {
			fail[j-least] = i + 1
		}
	}

	return least
}

// Canonical returns the lexicographically least rotation of w.
func Canonical(w Word) Word { return Rotate(w, Booth(w)) }

// RotationallyEquivalent reports whether a is a rotation of b.
func RotationallyEquivalent(a, b Word) bool {
	if len(a) != len(b) {
		return false
	}

	return equalInts(Canonical(a), Canonical(b))
}

// Compare orders words lexicographically; a proper prefix sorts first.
func Compare(a, b Word) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return 0
}

// SortUnique sorts ws in place and removes duplicates.
func SortUnique(ws []Word) []Word {
	sort.Slice(ws, func(i, j int) bool { return Compare(ws[i], ws[j]) < 0 })
	out := ws[:0]
	for i, w := range ws {
		if i == 0 || Compare(w, ws[i-1]) != 0 {
			out = append(out, w)
		}
	}

	return out
}

// PeriodPatternFunc returns the shortest prefix p of s whose length divides
// len(s) and whose repetition equals s; s itself when no proper one exists.
func PeriodPatternFunc[T any](s []T, eq func(a, b T) bool) []T {
	n := len(s)
	for d := 1; d <= n/2; d++ {
		if n%d == 0 && repeats(s, d, eq) {
			return append([]T(nil), s[:d]...)
		}
	}

	return append([]T(nil), s...)
}

// WeakPeriodPatternFunc returns the shortest prefix p of s such that p
// repeated and truncated to len(s) equals s. Unlike PeriodPatternFunc, len(p)
// need not divide len(s).
func WeakPeriodPatternFunc[T any](s []T, eq func(a, b T) bool) []T {
	for l := 1; l < len(s); l++ {
		if repeats(s, l, eq) {
			return append([]T(nil), s[:l]...)
		}
	}

	return append([]T(nil), s...)
}

// RotationsFunc returns the distinct rotations of s: one per position of
// its period pattern.
func RotationsFunc[T any](s []T, eq func(a, b T) bool) [][]T {
	period := len(PeriodPatternFunc(s, eq))
	out := make([][]T, period)
	for i := 0; i < period; i++ {
		out[i] = RotateSlice(s, i)
	}

	return out
}

// PeriodPattern is PeriodPatternFunc for letters.
func PeriodPattern(w Word) Word { return PeriodPatternFunc(w, eqInt) }

// WeakPeriodPattern is WeakPeriodPatternFunc for letters.
func WeakPeriodPattern(w Word) Word { return WeakPeriodPatternFunc(w, eqInt) }

// Rotations is RotationsFunc for letters.
func Rotations(w Word) []Word {
	rs := RotationsFunc(w, eqInt)
	out := make([]Word, len(rs))
	for i, r := range rs {
		out[i] = r
	}

	return out
}

// WordOnDegree returns the cyclic subword of s of the given length starting
// at degree, wrapping around as many times as needed.
func WordOnDegree[T any](s []T, degree, length int) []T {
	n := len(s)
	if n == 0 || length <= 0 {
		return []T{}
	}
	start := degree % n
	if start < 0 {
		start += n
	}
	out := make([]T, length)
	for i := range out {
		out[i] = s[(start+i)%n]
	}

	return out
}

// DyadOnDegree is the count vector of WordOnDegree(w, degree, k): the
// k-step interval on that degree.
func DyadOnDegree(w Word, degree, k int) countvec.Vector {
	return countvec.FromLetters(WordOnDegree(w, degree, k))
}

// OffsetOfFunc returns the least i such that rotating b left by i gives a.
// ok is false when the slices are not rotations of each other.
func OffsetOfFunc[T any](a, b []T, eq func(x, y T) bool) (offset int, ok bool) {
	if len(a) != len(b) {
		return 0, false
	}
	n := len(a)
	for i := 0; i < n; i++ {
		match := true
		for j := 0; j < n; j++ {
			if !eq(b[(i+j)%n], a[j]) {
				match = false
				break
			}
		}
		if match {
			return i, true
		}
	}

	return 0, n == 0
}

// OffsetOf is OffsetOfFunc for words.
func OffsetOf(a, b Word) (int, bool) { return OffsetOfFunc(a, b, eqInt) }

// Signature counts the letters 0..arity-1 in w. Letters ≥ arity are ignored.
func Signature(w Word, arity int) []int {
	sig := make([]int, arity)
	for _, l := range w {
		if l >= 0 && l < arity {
			sig[l]++
		}
	}

	return sig
}

// StepSet returns the distinct letters of w in ascending order.
func StepSet(w Word) []int {
	seen := make(map[int]struct{}, 3)
	var out []int
	for _, l := range w {
		if _, ok := seen[l]; !ok {
			seen[l] = struct{}{}
			out = append(out, l)
		}
	}
	sort.Ints(out)

	return out
}

// StepVariety is the number of distinct letters in w.
func StepVariety(w Word) int { return len(StepSet(w)) }

func repeats[T any](s []T, l int, eq func(a, b T) bool) bool {
	for i := l; i < len(s); i++ {
		if !eq(s[i], s[i%l]) {
			return false
		}
	}

	return true
}

func eqInt(a, b int) bool { return a == b }

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
