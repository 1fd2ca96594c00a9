// SPDX-License-Identifier: MIT
// Package matrix: exact 3×3 integer kernel.
//
// Purpose:
//   - Provide the determinant, unimodular inverse and matrix–vector product
//     on integer 3-vectors that lattice projection relies on.
//   - Never divide: inverses exist only for determinant ±1 and are built
//     from the adjugate.

package matrix

import (
	"fmt"
	"math"
)

// Vec3 is an integer column vector; for scale steps, the counts of letters
// 0, 1 and 2.
type Vec3 [3]int

// Mat3 is a 3×3 integer matrix stored as its three columns.
type Mat3 [3]Vec3

// Identity3 is the 3×3 identity matrix.
var Identity3 = Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// Det3 returns det[c0 | c1 | c2] by the rule of Sarrus.
//
// Inputs:
//   - c0, c1, c2: the matrix columns.
//
// Returns:
//   - int: the determinant. Entries up to a few thousand cannot overflow a
//     64-bit int; use Det3Checked when inputs are unbounded.
//
// Complexity:
//   - Time O(1), Space O(1).
func Det3(c0, c1, c2 Vec3) int {
	return c0[0]*c1[1]*c2[2] + c1[0]*c2[1]*c0[2] + c2[0]*c0[1]*c1[2] -
		c2[0]*c1[1]*c0[2] - c1[0]*c0[1]*c2[2] - c0[0]*c2[1]*c1[2]
}

// Det3Checked is Det3 with overflow detection on every product and sum.
//
// Errors:
//   - ErrOverflow if any intermediate value leaves the int range.
func Det3Checked(c0, c1, c2 Vec3) (int, error) {
	terms := [6][3]int{
		{c0[0], c1[1], c2[2]},
		{c1[0], c2[1], c0[2]},
		{c2[0], c0[1], c1[2]},
		{c2[0], c1[1], c0[2]},
		{c1[0], c0[1], c2[2]},
		{c0[0], c2[1], c1[2]},
	}
	det := 0
	for i, t := range terms {
		p, ok := mulChecked(t[0], t[1])
		if ok {
			p, ok = mulChecked(p, t[2])
		}
		if ok && i >= 3 {
			p, ok = negChecked(p)
		}
		if ok {
			det, ok = addChecked(det, p)
		}
		if !ok {
			return 0, fmt.Errorf("%s: %w", opDet3, ErrOverflow)
		}
	}

	return det, nil
}

// Det returns the determinant of m.
func (m Mat3) Det() int { return Det3(m[0], m[1], m[2]) }

// Adjugate returns the classical adjoint of [c0 | c1 | c2], so that
// M · adj(M) = det(M) · I.
func Adjugate(c0, c1, c2 Vec3) Mat3 {
	a, b, c := c0[0], c1[0], c2[0]
	d, e, f := c0[1], c1[1], c2[1]
	g, h, i := c0[2], c1[2], c2[2]

	return Mat3{
		{e*i - f*h, f*g - d*i, d*h - e*g},
		{c*h - b*i, a*i - c*g, b*g - a*h},
		{b*f - c*e, c*d - a*f, a*e - b*d},
	}
}

// UnimodularInverse returns the integer inverse of [c0 | c1 | c2].
//
// Implementation:
//   - Stage 1: compute the determinant and reject anything but ±1.
//   - Stage 2: return det · adj(M), which equals M⁻¹ when det² = 1.
//
// Errors:
//   - ErrNotUnimodular if det(M) ∉ {−1, +1}.
//
// Complexity:
//   - Time O(1), Space O(1).
func UnimodularInverse(c0, c1, c2 Vec3) (Mat3, error) {
	det := Det3(c0, c1, c2)
	if det != 1 && det != -1 {
		return Mat3{}, fmt.Errorf("%s: det = %d: %w", opUnimodularInverse, det, ErrNotUnimodular)
	}
	adj := Adjugate(c0, c1, c2)
	if det == -1 {
		for j := range adj {
			for k := range adj[j] {
				adj[j][k] = -adj[j][k]
			}
		}
	}

	return adj, nil
}

// MulVec returns m · v, i.e. Σ_i v[i] · m[i].
func MulVec(m Mat3, v Vec3) Vec3 {
	var out Vec3
	for i, col := range m {
		for j := range out {
			out[j] += col[j] * v[i]
		}
	}

	return out
}

// Mul returns the product a · b.
func Mul(a, b Mat3) Mat3 {
	var out Mat3
	for j, col := range b {
		out[j] = MulVec(a, col)
	}

	return out
}

const (
	opDet3              = "Det3Checked"
	opUnimodularInverse = "UnimodularInverse"
)

func mulChecked(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) || p/b != a {
		return 0, false
	}

	return p, true
}

func addChecked(a, b int) (int, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}

	return s, true
}

func negChecked(a int) (int, bool) {
	if a == math.MinInt {
		return 0, false
	}

	return -a, true
}
