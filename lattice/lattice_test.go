package lattice_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/ternary/guide"
	"github.com/katalvlaran/ternary/lattice"
	"github.com/katalvlaran/ternary/matrix"
	"github.com/katalvlaran/ternary/words"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func w(s string) words.Word {
	out := make(words.Word, len(s))
	for i := range s {
		out[i] = int(s[i] - '0')
	}

	return out
}

func TestUnimodularBasisSimpleFrame(t *testing.T) {
	diasem := w("010201020")
	b, f, ok := lattice.UnimodularBasis(guide.Frames(diasem), [3]int{5, 2, 2})
	require.True(t, ok)
	assert.Equal(t, lattice.Basis{V: matrix.Vec3{1, 1, 0}, W: matrix.Vec3{1, 0, 1}}, b)
	assert.Equal(t, 1, f.Multiplicity())
	assert.Equal(t, 2, f.Complexity())
}

func TestUnimodularBasisMultipleFrame(t *testing.T) {
	blackdye := w("0102010202")
	b, f, ok := lattice.UnimodularBasis(guide.Frames(blackdye), [3]int{5, 2, 3})
	require.True(t, ok)
	assert.Equal(t, lattice.Basis{V: matrix.Vec3{2, 1, 1}, W: matrix.Vec3{1, 0, 0}}, b)
	assert.Equal(t, 2, f.Multiplicity())
}

func TestUnimodularBasisTwentyFive(t *testing.T) {
	s := w("0021201202012021020210212") // LLsmsLmsLsLmsLsmLsLsmLsms
	b, _, ok := lattice.UnimodularBasis(guide.Frames(s), [3]int{9, 6, 10})
	require.True(t, ok)
	assert.Contains(t, []matrix.Vec3{b.V, b.W}, matrix.Vec3{2, 1, 2})
	assert.Contains(t, []matrix.Vec3{b.V, b.W}, matrix.Vec3{3, 2, 3})
	det := matrix.Det3(matrix.Vec3{9, 6, 10}, b.V, b.W)
	assert.True(t, det == 1 || det == -1)
}

func TestUnimodularBasisNone(t *testing.T) {
	_, _, ok := lattice.UnimodularBasis(nil, [3]int{5, 2, 2})
	assert.False(t, ok)
	_, _, ok = lattice.UnimodularBasis(guide.Frames(w("0000")), [3]int{4, 0, 0})
	assert.False(t, ok)
}

func TestPitchClasses(t *testing.T) {
	diasem := w("010201020")
	pcs, err := lattice.PitchClasses(diasem, lattice.Basis{V: matrix.Vec3{1, 1, 0}, W: matrix.Vec3{1, 0, 1}})
	require.NoError(t, err)
	assert.Equal(t, []lattice.Point{
		{-2, -2}, {1, 0}, {-1, -2}, {1, 1}, {-1, -1}, {2, 1}, {0, -1}, {2, 2}, {0, 0},
	}, pcs)

	blackdye := w("0102010202")
	pcs, err = lattice.PitchClasses(blackdye, lattice.Basis{V: matrix.Vec3{2, 1, 1}, W: matrix.Vec3{1, 0, 0}})
	require.NoError(t, err)
	require.Len(t, pcs, 10)
	assert.Equal(t, lattice.Point{}, pcs[9], "the full scale returns to the origin")

	_, err = lattice.PitchClasses(diasem, lattice.Basis{V: matrix.Vec3{1, 0, 0}, W: matrix.Vec3{1, 0, 0}})
	assert.ErrorIs(t, err, lattice.ErrBasisMismatch)
	assert.ErrorIs(t, err, matrix.ErrNotUnimodular)
}

func TestQuasiParallelogramScenarios(t *testing.T) {
	for _, tc := range []struct {
		name string
		word string
		want lattice.Descriptor
	}{
		{"diasem", "010201020", lattice.Descriptor{Rows: 2, FullRow: 5, FirstRow: 5, LastRow: 4}},
		{"blackdye", "0102010202", lattice.Descriptor{Rows: 2, FullRow: 5, FirstRow: 5, LastRow: 5}},
		{"diamech", "10202010202", lattice.Descriptor{Rows: 4, FullRow: 3, FirstRow: 3, LastRow: 2}},
		{"diaslen", "20102020102", lattice.Descriptor{Rows: 5, FullRow: 3, FirstRow: 1, LastRow: 1}},
		{"9L6m10s", "0021201202012021020210212", lattice.Descriptor{Rows: 5, FullRow: 5, FirstRow: 5, LastRow: 5}},
		{"5L3m2s", "0101010102", lattice.Descriptor{Rows: 6, FullRow: 2, FirstRow: 1, LastRow: 1}},
		{"pinedye", "00101002", lattice.Descriptor{Rows: 4, FullRow: 3, FirstRow: 1, LastRow: 1}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := lattice.QuasiParallelogram(w(tc.word))
			require.True(t, ok)
			got.Traversal = 0
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestQuasiParallelogramNonexample(t *testing.T) {
	_, ok := lattice.QuasiParallelogram(w("000020100200012"))
	assert.False(t, ok)
	_, ok = lattice.QuasiParallelogram(words.Word{})
	assert.False(t, ok)
}

func TestClassify(t *testing.T) {
	rect := []lattice.Point{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	d, ok := lattice.Classify(rect)
	require.True(t, ok)
	assert.Equal(t, lattice.Descriptor{Rows: 2, FullRow: 3, FirstRow: 3, LastRow: 3, Traversal: lattice.RowsXAscending}, d)

	staircase := []lattice.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {1, 1}, {2, 1}, {3, 1}, {4, 1}, {2, 2}}
	d, ok = lattice.Classify(staircase)
	require.True(t, ok)
	assert.Equal(t, 3, d.Rows)
	assert.Equal(t, 4, d.FullRow)
	assert.Equal(t, 1, d.LastRow)

	_, ok = lattice.Classify([]lattice.Point{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {0, 2}, {0, 3}, {3, 3}})
	assert.False(t, ok)
	_, ok = lattice.Classify([]lattice.Point{{0, 0}, {5, 7}})
	assert.False(t, ok, "no unimodular pair among the differences")
	_, ok = lattice.Classify(nil)
	assert.False(t, ok)
}

func TestClassifyContext(t *testing.T) {
	rect := []lattice.Point{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	d, ok, err := lattice.ClassifyContext(context.Background(), rect)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, d.Rows)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, ok, err = lattice.ClassifyContext(ctx, rect)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)
}

func TestTraversalString(t *testing.T) {
	assert.Equal(t, "rows-x-ascending", lattice.RowsXAscending.String())
	assert.Equal(t, "rows-y-descending", lattice.RowsYDescending.String())
	assert.Equal(t, "unknown", lattice.Traversal(9).String())
}
