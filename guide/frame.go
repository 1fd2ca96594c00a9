package guide

import (
	"slices"
	"strings"

	"github.com/katalvlaran/ternary/countvec"
)

// Frame is a guide frame: the scale read as len(Chord) interleaved copies of
// the generator sequence GS, copy i starting Chord[i] above the root.
// Simple frames have Chord = [zero].
type Frame struct {
	GS    []countvec.Vector
	Chord []countvec.Vector
}

// NewSimple returns the simple frame generated by gs.
func NewSimple(gs []countvec.Vector) Frame {
	return Frame{GS: gs, Chord: []countvec.Vector{countvec.Zero()}}
}

// Multiplicity is the number of interleaved copies of the GS.
func (f Frame) Multiplicity() int { return len(f.Chord) }

// Complexity is |GS| · multiplicity; smaller is simpler.
func (f Frame) Complexity() int { return len(f.GS) * len(f.Chord) }

// Aggregate is the sum of the GS: the interval one pass of it spans.
func (f Frame) Aggregate() countvec.Vector { return countvec.Sum(f.GS) }

// Compare orders frames by GS, then by chord.
func (f Frame) Compare(g Frame) int {
	if c := countvec.CompareSlices(f.GS, g.GS); c != 0 {
		return c
	}

	return countvec.CompareSlices(f.Chord, g.Chord)
}

// Equal reports whether f and g have the same GS and chord.
func (f Frame) Equal(g Frame) bool { return f.Compare(g) == 0 }

// String renders f as "gs=[{0:1,1:1} {0:1,2:1}] chord=[{}]".
func (f Frame) String() string {
	var b strings.Builder
	b.WriteString("gs=")
	writeVectors(&b, f.GS)
	b.WriteString(" chord=")
	writeVectors(&b, f.Chord)

	return b.String()
}

func writeVectors(b *strings.Builder, vs []countvec.Vector) {
	b.WriteByte('[')
	for i, v := range vs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(v.String())
	}
	b.WriteByte(']')
}

// sortUnique sorts frames by Compare and drops duplicates.
func sortUnique(fs []Frame) []Frame {
	slices.SortFunc(fs, Frame.Compare)

	return slices.CompactFunc(fs, Frame.Equal)
}

// sortByComplexity sorts frames by complexity, then by Compare, and drops
// duplicates.
func sortByComplexity(fs []Frame) []Frame {
	slices.SortFunc(fs, func(a, b Frame) int {
		if c := a.Complexity() - b.Complexity(); c != 0 {
			return c
		}
		return a.Compare(b)
	})

	return slices.CompactFunc(fs, Frame.Equal)
}
