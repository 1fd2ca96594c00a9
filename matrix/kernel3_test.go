// Package matrix_test contains unit tests for the 3×3 integer kernel.
package matrix_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/ternary/matrix"
)

func TestDet3(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name       string
		c0, c1, c2 matrix.Vec3
		want       int
	}{
		{"identity", matrix.Vec3{1, 0, 0}, matrix.Vec3{0, 1, 0}, matrix.Vec3{0, 0, 1}, 1},
		{"duplicate columns", matrix.Vec3{2, 1, 1}, matrix.Vec3{2, 1, 1}, matrix.Vec3{1, 0, 0}, 0},
		{"9L6m10s basis", matrix.Vec3{9, 6, 10}, matrix.Vec3{3, 2, 3}, matrix.Vec3{2, 1, 2}, -1},
		{"swapped basis", matrix.Vec3{9, 6, 10}, matrix.Vec3{2, 1, 2}, matrix.Vec3{3, 2, 3}, 1},
		{"diasem basis", matrix.Vec3{5, 2, 2}, matrix.Vec3{1, 1, 0}, matrix.Vec3{1, 0, 1}, 1},
		{"lower triangular", matrix.Vec3{1, 0, 0}, matrix.Vec3{2, 1, 0}, matrix.Vec3{3, 4, 1}, 1},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := matrix.Det3(tc.c0, tc.c1, tc.c2); got != tc.want {
				t.Fatalf("Det3 = %d, want %d", got, tc.want)
			}
			got, err := matrix.Det3Checked(tc.c0, tc.c1, tc.c2)
			if err != nil || got != tc.want {
				t.Fatalf("Det3Checked = (%d, %v), want (%d, nil)", got, err, tc.want)
			}
		})
	}
}

func TestDet3CheckedOverflow(t *testing.T) {
	t.Parallel()

	big := math.MaxInt / 2
	_, err := matrix.Det3Checked(matrix.Vec3{big, 0, 0}, matrix.Vec3{0, big, 0}, matrix.Vec3{0, 0, 1})
	if !errors.Is(err, matrix.ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
	_, err = matrix.Det3Checked(matrix.Vec3{256, 0, 0}, matrix.Vec3{0, 256, 0}, matrix.Vec3{0, 0, 256})
	if err != nil {
		t.Fatalf("256-sized entries must not overflow: %v", err)
	}
}

func TestUnimodularInverse(t *testing.T) {
	t.Parallel()

	inv, err := matrix.UnimodularInverse(matrix.Vec3{1, 0, 0}, matrix.Vec3{2, 1, 0}, matrix.Vec3{3, 4, 1})
	if err != nil {
		t.Fatalf("UnimodularInverse: %v", err)
	}
	want := matrix.Mat3{{1, 0, 0}, {-2, 1, 0}, {5, -4, 1}}
	if inv != want {
		t.Fatalf("inverse = %v, want %v", inv, want)
	}

	// determinant -1: the inverse is the negated adjugate
	m := matrix.Mat3{{9, 6, 10}, {3, 2, 3}, {2, 1, 2}}
	inv, err = matrix.UnimodularInverse(m[0], m[1], m[2])
	if err != nil {
		t.Fatalf("UnimodularInverse: %v", err)
	}
	if got := matrix.MulVec(inv, m[0]); got != (matrix.Vec3{1, 0, 0}) {
		t.Fatalf("M⁻¹·c0 = %v, want e0", got)
	}
	if got := matrix.Mul(m, inv); got != matrix.Identity3 {
		t.Fatalf("M·M⁻¹ = %v", got)
	}

	_, err = matrix.UnimodularInverse(matrix.Vec3{2, 0, 0}, matrix.Vec3{0, 1, 0}, matrix.Vec3{0, 0, 1})
	if !errors.Is(err, matrix.ErrNotUnimodular) {
		t.Fatalf("expected ErrNotUnimodular, got %v", err)
	}
}

// Random products of elementary matrices are unimodular; their inverses
// must multiply back to the identity on both sides.
func TestUnimodularInverseRandom(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		m := matrix.Identity3
		for step := 0; step < 6; step++ {
			e := matrix.Identity3
			i, j := rng.Intn(3), rng.Intn(3)
			if i == j {
				e[i][i] = -1
			} else {
				e[j][i] = rng.Intn(5) - 2
			}
			m = matrix.Mul(m, e)
		}
		inv, err := matrix.UnimodularInverse(m[0], m[1], m[2])
		if err != nil {
			t.Fatalf("trial %d: %v (det %d)", trial, err, m.Det())
		}
		if matrix.Mul(m, inv) != matrix.Identity3 || matrix.Mul(inv, m) != matrix.Identity3 {
			t.Fatalf("trial %d: %v is not the inverse of %v", trial, inv, m)
		}
	}
}

func TestMulVec(t *testing.T) {
	t.Parallel()

	m := matrix.Mat3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	if got := matrix.MulVec(m, matrix.Vec3{1, 0, 0}); got != (matrix.Vec3{1, 2, 3}) {
		t.Fatalf("MulVec picks columns: got %v", got)
	}
	if got := matrix.MulVec(m, matrix.Vec3{1, 1, 1}); got != (matrix.Vec3{12, 15, 18}) {
		t.Fatalf("MulVec sums columns: got %v", got)
	}
	adj := matrix.Adjugate(m[0], m[1], m[2])
	if got := matrix.Mul(m, adj); got != (matrix.Mat3{}) {
		t.Fatalf("singular M·adj(M) must be zero, got %v", got)
	}
}
