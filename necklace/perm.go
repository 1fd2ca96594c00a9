package necklace

import "fmt"

// Perm is a permutation of {0, ..., n-1}; pi[x] is the image of x.
// The zero value is the empty permutation.
type Perm struct {
	pi []int
}

// Identity returns the identity permutation on n points.
func Identity(n int) Perm {
	pi := make([]int, n)
	for i := range pi {
		pi[i] = i
	}

	return Perm{pi: pi}
}

// NewPerm validates images and returns the permutation x ↦ images[x].
func NewPerm(images []int) (Perm, error) {
	seen := make([]bool, len(images))
	for _, y := range images {
		if y < 0 || y >= len(images) || seen[y] {
			return Perm{}, fmt.Errorf("NewPerm(%v): %w", images, ErrPermImage)
		}
		seen[y] = true
	}
	pi := make([]int, len(images))
	copy(pi, images)

	return Perm{pi: pi}, nil
}

// Transposition returns the permutation on n points swapping i and j.
// Out-of-range indices give the identity.
func Transposition(n, i, j int) Perm {
	p := Identity(n)
	if i < 0 || j < 0 || i >= n || j >= n {
		return p
	}
	p.pi[i], p.pi[j] = p.pi[j], p.pi[i]

	return p
}

// Len returns the number of points p acts on.
func (p Perm) Len() int { return len(p.pi) }

// At returns the image of i.
func (p Perm) At(i int) (int, error) {
	if i < 0 || i >= len(p.pi) {
		return 0, fmt.Errorf("Perm.At(%d) on %d points: %w", i, len(p.pi), ErrPermIndex)
	}

	return p.pi[i], nil
}

// Images returns a copy of the image slice.
func (p Perm) Images() []int {
	out := make([]int, len(p.pi))
	copy(out, p.pi)

	return out
}

// IsIdentity reports whether p fixes every point.
func (p Perm) IsIdentity() bool {
	for i, y := range p.pi {
		if i != y {
			return false
		}
	}

	return true
}

// Compose returns p ∘ q, the permutation k ↦ p(q(k)).
func (p Perm) Compose(q Perm) (Perm, error) {
	if len(p.pi) != len(q.pi) {
		return Perm{}, fmt.Errorf("Compose(%d, %d points): %w", len(p.pi), len(q.pi), ErrPermLength)
	}
	pi := make([]int, len(q.pi))
	for k, y := range q.pi {
		pi[k] = p.pi[y]
	}

	return Perm{pi: pi}, nil
}

// Inverse returns p⁻¹.
func (p Perm) Inverse() Perm {
	pi := make([]int, len(p.pi))
	for x, y := range p.pi {
		pi[y] = x
	}

	return Perm{pi: pi}
}

// Conj returns h ∘ p ∘ h⁻¹: p acting on the points relabelled by h.
func (p Perm) Conj(h Perm) (Perm, error) {
	hp, err := h.Compose(p)
	if err != nil {
		return Perm{}, err
	}

	return hp.Compose(h.Inverse())
}

// String formats p as its image list.
func (p Perm) String() string { return fmt.Sprint(p.pi) }

// SiftZeros moves every zero entry of content to the tail by swapping the
// first zero from the front with the last non-zero from the back, repeatedly
// and moving inward. It returns the rearranged content and the product of
// the swaps, which is its own inverse.
func SiftZeros(content []int) ([]int, Perm) {
	v := make([]int, len(content))
	copy(v, content)
	perm := Identity(len(content))
	lo, hi := 0, len(v)-1
	for hi-lo >= 1 {
		i := lo
		for i < hi && v[i] != 0 {
			i++
		}
		j := hi
		for v[j] == 0 && j > lo {
			j--
		}
		if i >= j {
			break
		}
		v[i], v[j] = v[j], v[i]
		perm.pi[i], perm.pi[j] = perm.pi[j], perm.pi[i]
		lo, hi = i+1, j-1
	}

	return v, perm
}
