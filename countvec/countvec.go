package countvec

import (
	"sort"
	"strconv"
	"strings"
)

// Term is one stored component of a Vector.
type Term struct {
	Letter int
	Count  int
}

// Vector is an immutable count vector. The zero value is the zero vector.
type Vector struct {
	terms []Term // ascending by Letter, Count != 0
}

// Zero returns the zero vector.
func Zero() Vector { return Vector{} }

// FromLetters returns the multiset of letters as a count vector.
func FromLetters(letters []int) Vector {
	if len(letters) == 0 {
		return Vector{}
	}
	counts := make(map[int]int, 4)
	for _, l := range letters {
		counts[l]++
	}

	return FromMap(counts)
}

// FromMap builds a vector from letter → count, dropping zero counts.
func FromMap(m map[int]int) Vector {
	terms := make([]Term, 0, len(m))
	for l, c := range m {
		if c != 0 {
			terms = append(terms, Term{Letter: l, Count: c})
		}
	}
	if len(terms) == 0 {
		return Vector{}
	}
	sort.Slice(terms, func(i, j int) bool { return terms[i].Letter < terms[j].Letter })

	return Vector{terms: terms}
}

// Sum adds up vs. Sum(nil) is the zero vector.
func Sum(vs []Vector) Vector {
	acc := Vector{}
	for _, v := range vs {
		acc = acc.Add(v)
	}

	return acc
}

// Add returns v + w.
func (v Vector) Add(w Vector) Vector {
	if len(w.terms) == 0 {
		return v
	}
	if len(v.terms) == 0 {
		return w
	}
	out := make([]Term, 0, len(v.terms)+len(w.terms))
	i, j := 0, 0
	for i < len(v.terms) && j < len(w.terms) {
		a, b := v.terms[i], w.terms[j]
		switch {
		case a.Letter < b.Letter:
			out = append(out, a)
			i++
		case a.Letter > b.Letter:
			out = append(out, b)
			j++
		default:
			if c := a.Count + b.Count; c != 0 {
				out = append(out, Term{Letter: a.Letter, Count: c})
			}
			i++
			j++
		}
	}
	out = append(out, v.terms[i:]...)
	out = append(out, w.terms[j:]...)
	if len(out) == 0 {
		return Vector{}
	}

	return Vector{terms: out}
}

// Neg returns −v.
func (v Vector) Neg() Vector { return v.Scale(-1) }

// Sub returns v − w.
func (v Vector) Sub(w Vector) Vector { return v.Add(w.Neg()) }

// Scale returns k·v. Scaling by 0 yields the zero vector.
func (v Vector) Scale(k int) Vector {
	if k == 0 || len(v.terms) == 0 {
		return Vector{}
	}
	out := make([]Term, len(v.terms))
	for i, t := range v.terms {
		out[i] = Term{Letter: t.Letter, Count: k * t.Count}
	}

	return Vector{terms: out}
}

// Get returns the count stored for letter, or 0.
func (v Vector) Get(letter int) int {
	i := sort.Search(len(v.terms), func(i int) bool { return v.terms[i].Letter >= letter })
	if i < len(v.terms) && v.terms[i].Letter == letter {
		return v.terms[i].Count
	}

	return 0
}

// Len is the taxicab length Σ|count|.
func (v Vector) Len() int {
	n := 0
	for _, t := range v.terms {
		if t.Count < 0 {
			n -= t.Count
		} else {
			n += t.Count
		}
	}

	return n
}

// Keys is the number of letters with a non-zero count.
func (v Vector) Keys() int { return len(v.terms) }

// IsZero reports whether v is the zero vector.
func (v Vector) IsZero() bool { return len(v.terms) == 0 }

// Terms returns a copy of the stored components, letters ascending.
func (v Vector) Terms() []Term {
	if len(v.terms) == 0 {
		return nil
	}
	out := make([]Term, len(v.terms))
	copy(out, v.terms)

	return out
}

// Equal reports whether v and w have identical components.
func (v Vector) Equal(w Vector) bool {
	if len(v.terms) != len(w.terms) {
		return false
	}
	for i := range v.terms {
		if v.terms[i] != w.terms[i] {
			return false
		}
	}

	return true
}

// Compare returns -1, 0 or +1 ordering v against w lexicographically by
// (letter, count) pairs.
func (v Vector) Compare(w Vector) int {
	n := min(len(v.terms), len(w.terms))
	for i := 0; i < n; i++ {
		a, b := v.terms[i], w.terms[i]
		if a.Letter != b.Letter {
			if a.Letter < b.Letter {
				return -1
			}
			return 1
		}
		if a.Count != b.Count {
			if a.Count < b.Count {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(v.terms) < len(w.terms):
		return -1
	case len(v.terms) > len(w.terms):
		return 1
	}

	return 0
}

// Array3 returns the counts of letters 0, 1 and 2.
func (v Vector) Array3() [3]int {
	return [3]int{v.Get(0), v.Get(1), v.Get(2)}
}

// Key returns a string that is equal for two vectors iff they are Equal,
// suitable as a map key.
func (v Vector) Key() string {
	var b strings.Builder
	for i, t := range v.terms {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(t.Letter))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(t.Count))
	}

	return b.String()
}

// String renders v as "{0:2,1:1}".
func (v Vector) String() string { return "{" + v.Key() + "}" }

// CompareSlices orders two vector sequences lexicographically using Compare.
func CompareSlices(a, b []Vector) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := a[i].Compare(b[i]); c != 0 {
			return c
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

// EqualSlices reports whether a and b hold Equal vectors in the same order.
func EqualSlices(a, b []Vector) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}

// Contains reports whether vs holds a vector Equal to v.
func Contains(vs []Vector, v Vector) bool {
	for _, w := range vs {
		if w.Equal(v) {
			return true
		}
	}

	return false
}
