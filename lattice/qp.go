package lattice

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/ternary/words"
)

// Traversal names the row layout a quasi-parallelogram was recognised in.
type Traversal int

const (
	// RowsXAscending reads rows of constant y, filled from the left.
	RowsXAscending Traversal = iota
	// RowsXDescending reads rows of constant y, filled from the right.
	RowsXDescending
	// RowsYAscending reads rows of constant x, filled from the bottom.
	RowsYAscending
	// RowsYDescending reads rows of constant x, filled from the top.
	RowsYDescending
)

var traversalNames = [...]string{"rows-x-ascending", "rows-x-descending", "rows-y-ascending", "rows-y-descending"}

func (t Traversal) String() string {
	if t < 0 || int(t) >= len(traversalNames) {
		return "unknown"
	}

	return traversalNames[t]
}

// Descriptor summarises a quasi-parallelogram: Rows rows, every middle row
// FullRow points long, with FirstRow and LastRow points in the end rows.
type Descriptor struct {
	Rows      int       `json:"rows" yaml:"rows"`
	FullRow   int       `json:"full_row" yaml:"full_row"`
	FirstRow  int       `json:"first_row" yaml:"first_row"`
	LastRow   int       `json:"last_row" yaml:"last_row"`
	Traversal Traversal `json:"-" yaml:"-"`
}

// QuasiParallelogram projects s onto its lattice and classifies the
// result. ok is false when s has no unimodular basis or the projection is
// not a quasi-parallelogram.
func QuasiParallelogram(s words.Word) (Descriptor, bool) {
	points, _, _, ok := Project(s)
	if !ok {
		return Descriptor{}, false
	}

	return Classify(points)
}

// Classify reports whether points form a quasi-parallelogram.
//
// For every ordered pair (a, b) of pairwise differences with
// |a.X·b.Y − a.Y·b.X| = 1 the points are rewritten in the basis (a, b) and
// the four traversals are tried in order. The first success wins.
//
// Complexity: O(n⁴) basis candidates, each checked in O(n log n).
func Classify(points []Point) (Descriptor, bool) {
	d, ok, _ := ClassifyContext(context.Background(), points)

	return d, ok
}

// ClassifyContext is Classify bounded by ctx, which is checked once per
// candidate first basis vector. On cancellation it returns the context
// error wrapped.
func ClassifyContext(ctx context.Context, points []Point) (Descriptor, bool, error) {
	var diffs []Point
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			diffs = append(diffs, points[j].Sub(points[i]))
		}
	}
	moved := make([]Point, len(points))
	for _, a := range diffs {
		if err := ctx.Err(); err != nil {
			return Descriptor{}, false, fmt.Errorf("ClassifyContext(%d points): %w", len(points), err)
		}
		for _, b := range diffs {
			det := a.X*b.Y - a.Y*b.X
			if det != 1 && det != -1 {
				continue
			}
			for i, p := range points {
				moved[i] = Point{b.Y*p.X - b.X*p.Y, -a.Y*p.X + a.X*p.Y}
			}
			for t := RowsXAscending; t <= RowsYDescending; t++ {
				if d, ok := classifyRows(moved, t); ok {
					return d, true, nil
				}
			}
		}
	}

	return Descriptor{}, false, nil
}

// classifyRows checks one traversal. Rows are keyed by the coordinate that
// is constant along them; positions run along the other one.
func classifyRows(points []Point, t Traversal) (Descriptor, bool) {
	alongX := t == RowsXAscending || t == RowsXDescending
	descending := t == RowsXDescending || t == RowsYDescending
	pos, row := func(p Point) int { return p.X }, func(p Point) int { return p.Y }
	if !alongX {
		pos, row = row, pos
	}

	rows := make(map[int][]int)
	lo, hi := pos(points[0]), pos(points[0])
	rowMin, rowMax := row(points[0]), row(points[0])
	for _, p := range points {
		rows[row(p)] = append(rows[row(p)], pos(p))
		lo, hi = min(lo, pos(p)), max(hi, pos(p))
		rowMin, rowMax = min(rowMin, row(p)), max(rowMax, row(p))
	}
	for r := rowMin + 1; r < rowMax; r++ {
		xs := rows[r]
		if !isRun(xs) || len(xs) != hi-lo+1 || slices.Min(xs) != lo {
			return Descriptor{}, false
		}
	}
	first, last := rows[rowMin], rows[rowMax]
	if !isRun(first) || !isRun(last) {
		return Descriptor{}, false
	}
	if descending {
		if slices.Max(last) != hi || slices.Min(first) != lo {
			return Descriptor{}, false
		}
	} else if slices.Min(last) != lo || slices.Max(first) != hi {
		return Descriptor{}, false
	}

	count := rowMax - rowMin + 1
	d := Descriptor{Rows: count, FullRow: hi - lo + 1, FirstRow: len(first), LastRow: len(last), Traversal: t}
	switch count {
	case 1:
		d.FullRow, d.LastRow = len(first), len(first)
	case 2:
		d.FullRow = max(len(first), len(last))
	}

	return d, true
}

// isRun reports whether xs, in any order, is a run of consecutive distinct
// integers.
func isRun(xs []int) bool {
	if len(xs) == 0 {
		return false
	}
	s := slices.Clone(xs)
	slices.Sort(s)
	for i := 1; i < len(s); i++ {
		if s[i] != s[i-1]+1 {
			return false
		}
	}

	return true
}
