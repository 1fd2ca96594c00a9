package lattice

import (
	"fmt"

	"github.com/katalvlaran/ternary/countvec"
	"github.com/katalvlaran/ternary/guide"
	"github.com/katalvlaran/ternary/matrix"
	"github.com/katalvlaran/ternary/words"
)

// Basis is a pair of generators completing a step signature to a
// unimodular matrix.
type Basis struct {
	V, W matrix.Vec3
}

// Point is a pitch class in lattice coordinates.
type Point struct {
	X, Y int
}

// Sub returns p − q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// UnimodularBasis scans frames in order for a basis of sig. For a simple
// frame it tries pairs of GS intervals (i < j), then (chord, GS) pairs; for
// a multiple frame it tries (GS, chord) pairs. It returns the first pair
// found and the frame it came from.
func UnimodularBasis(frames []guide.Frame, sig [3]int) (Basis, guide.Frame, bool) {
	s := matrix.Vec3(sig)
	unit := func(v, w matrix.Vec3) bool {
		d := matrix.Det3(s, v, w)
		return d == 1 || d == -1
	}
	for _, f := range frames {
		gs := toVec3s(f.GS)
		chord := toVec3s(f.Chord)
		if len(chord) == 1 {
			for i := range gs {
				for j := i + 1; j < len(gs); j++ {
					if unit(gs[i], gs[j]) {
						return Basis{gs[i], gs[j]}, f, true
					}
				}
			}
			for _, v := range chord {
				for _, w := range gs {
					if unit(v, w) {
						return Basis{v, w}, f, true
					}
				}
			}
			continue
		}
		for _, v := range chord {
			for _, w := range gs {
				if unit(w, v) {
					return Basis{w, v}, f, true
				}
			}
		}
	}

	return Basis{}, guide.Frame{}, false
}

// PitchClasses maps the n cumulative step vectors of s through
// [σ | V | W]⁻¹ and drops the σ coordinate. The last point is always the
// origin.
func PitchClasses(s words.Word, b Basis) ([]Point, error) {
	sig := signature(s)
	inv, err := matrix.UnimodularInverse(sig, b.V, b.W)
	if err != nil {
		return nil, fmt.Errorf("PitchClasses(%v): %w: %w", s, ErrBasisMismatch, err)
	}
	out := make([]Point, len(s))
	var acc matrix.Vec3
	for i, l := range s {
		if l >= 0 && l < 3 {
			acc[l]++
		}
		c := matrix.MulVec(inv, acc)
		out[i] = Point{c[1], c[2]}
	}

	return out, nil
}

// Project runs the whole pipeline for s: guide frames, basis search and
// projection. ok is false when s has no unimodular basis.
func Project(s words.Word) (points []Point, basis Basis, frame guide.Frame, ok bool) {
	basis, frame, ok = UnimodularBasis(guide.Frames(s), [3]int(signature(s)))
	if !ok {
		return nil, Basis{}, guide.Frame{}, false
	}
	points, err := PitchClasses(s, basis)
	if err != nil {
		return nil, Basis{}, guide.Frame{}, false
	}

	return points, basis, frame, true
}

func signature(s words.Word) matrix.Vec3 {
	var v matrix.Vec3
	for _, l := range s {
		if l >= 0 && l < 3 {
			v[l]++
		}
	}

	return v
}

func toVec3s(vs []countvec.Vector) []matrix.Vec3 {
	out := make([]matrix.Vec3, len(vs))
	for i, v := range vs {
		out[i] = matrix.Vec3(v.Array3())
	}

	return out
}
