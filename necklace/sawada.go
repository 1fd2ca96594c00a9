package necklace

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/ternary/words"
)

// All streams every necklace with the given content, each as the least
// rotation of its class, in a deterministic order. Contents with a negative
// entry, or no letters at all, yield nothing.
func All(content []int) iter.Seq[words.Word] {
	return func(yield func(words.Word) bool) {
		e, ok := newSawada(content)
		if !ok {
			return
		}
		e.yield = yield
		e.generate(1, 1, 1)
	}
}

// FixedContent collects All(content).
func FixedContent(content []int) ([]words.Word, error) {
	for i, c := range content {
		if c < 0 {
			return nil, fmt.Errorf("FixedContent: content[%d] = %d: %w", i, c, ErrNegativeMultiplicity)
		}
	}
	var out []words.Word
	for w := range All(content) {
		out = append(out, w)
	}

	return out, nil
}

// sawada holds the scratch state of one enumeration. a is the prenecklace
// being grown, runs[s] the length of the trailing run of the top letter
// starting at s, rem the letters still to place and avail the letters with
// rem > 0 in descending order.
type sawada struct {
	n, top  int
	a, runs []int
	rem     []int
	avail   []int
	rename  Perm
	relabel bool
	yield   func(words.Word) bool
}

func newSawada(content []int) (*sawada, bool) {
	n := 0
	for _, c := range content {
		if c < 0 {
			return nil, false
		}
		n += c
	}
	if n == 0 {
		return nil, false
	}
	rem, rename := SiftZeros(content)
	for len(rem) > 0 && rem[len(rem)-1] == 0 {
		rem = rem[:len(rem)-1]
	}
	arity := len(rem)
	e := &sawada{
		n:       n,
		top:     arity - 1,
		a:       make([]int, n),
		runs:    make([]int, n),
		rem:     rem,
		rename:  rename,
		relabel: !rename.IsIdentity(),
	}
	// the first letter is always 0
	e.rem[0]--
	for i := 1; i < n; i++ {
		e.a[i] = e.top
	}
	for j := e.top; j >= 0; j-- {
		if j > 0 || e.rem[0] > 0 {
			e.avail = append(e.avail, j)
		}
	}

	return e, true
}

// generate extends a[0..t) at position t with longest Lyndon prefix length
// p and top-letter run start s. It returns false once the consumer stops.
func (e *sawada) generate(t, p, s int) bool {
	if e.rem[e.top] == e.n-t {
		// only the top letter is left: the tail is forced
		if (e.rem[e.top] == e.runs[t-p] && e.n%p == 0) || e.rem[e.top] > e.runs[t-p] {
			return e.emit()
		}
		return true
	}
	// a word that starts with 0 must not end with 0
	if e.rem[0] == e.n-t {
		return true
	}
	if len(e.avail) == 0 {
		e.a[t] = e.top
		return true
	}
	j := e.avail[0]
	for j >= e.a[t-p] {
		e.runs[s] = t - s
		if e.rem[j] == 1 {
			e.avail = removeLetter(e.avail, j)
		}
		e.rem[j]--
		e.a[t] = j
		np, ns := p, s
		if j != e.a[t-p] {
			np = t + 1
		}
		if j != e.top {
			ns = t + 1
		}
		if !e.generate(t+1, np, ns) {
			return false
		}
		if e.rem[j] == 0 {
			e.avail = insertDescending(e.avail, j)
		}
		e.rem[j]++
		next, ok := nextBelow(e.avail, j)
		if !ok {
			break
		}
		j = next
	}
	e.a[t] = e.top

	return true
}

func (e *sawada) emit() bool {
	w := make(words.Word, e.n)
	for i, l := range e.a {
		w[i] = e.rename.pi[l]
	}
	if e.relabel {
		w = words.Canonical(w)
	}

	return e.yield(w)
}

func removeLetter(desc []int, x int) []int {
	for i, y := range desc {
		if y == x {
			return append(desc[:i], desc[i+1:]...)
		}
	}

	return desc
}

func insertDescending(desc []int, x int) []int {
	i := 0
	for i < len(desc) && desc[i] > x {
		i++
	}
	desc = append(desc, 0)
	copy(desc[i+1:], desc[i:])
	desc[i] = x

	return desc
}

func nextBelow(desc []int, x int) (int, bool) {
	for _, y := range desc {
		if y < x {
			return y, true
		}
	}

	return 0, false
}
