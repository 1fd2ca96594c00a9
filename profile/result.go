package profile

import (
	"github.com/katalvlaran/ternary/countvec"
	"github.com/katalvlaran/ternary/guide"
	"github.com/katalvlaran/ternary/lattice"
	"github.com/katalvlaran/ternary/words"
)

// Triple holds the counts of letters 0, 1 and 2 of a count vector.
type Triple [3]int

// Basis is a lattice basis in serialized form.
type Basis [2]Triple

// GuideResult is the serialized form of a guide frame.
type GuideResult struct {
	GS           []Triple `json:"gs" yaml:"gs"`
	Aggregate    Triple   `json:"aggregate" yaml:"aggregate"`
	OffsetChord  []Triple `json:"offset_chord" yaml:"offset_chord"`
	Multiplicity int      `json:"multiplicity" yaml:"multiplicity"`
	Complexity   int      `json:"complexity" yaml:"complexity"`
}

// NewGuideResult serializes f.
func NewGuideResult(f guide.Frame) GuideResult {
	return GuideResult{
		GS:           triples(f.GS),
		Aggregate:    Triple(f.Aggregate().Array3()),
		OffsetChord:  triples(f.Chord),
		Multiplicity: f.Multiplicity(),
		Complexity:   f.Complexity(),
	}
}

// ScaleProfile is one row of a signature analysis.
type ScaleProfile struct {
	Word         string       `json:"word" yaml:"word"`
	Scale        words.Word   `json:"-" yaml:"-"`
	Structure    *GuideResult `json:"structure,omitempty" yaml:"structure,omitempty"`
	LatticeBasis *Basis       `json:"lattice_basis,omitempty" yaml:"lattice_basis,omitempty"`
	MonotoneLM   bool         `json:"monotone_lm" yaml:"monotone_lm"`
	MonotoneMS   bool         `json:"monotone_ms" yaml:"monotone_ms"`
	MonotoneS0   bool         `json:"monotone_s0" yaml:"monotone_s0"`
	MaxVariety   int          `json:"max_variety" yaml:"max_variety"`
}

// WordProfile is the full analysis of a single word.
type WordProfile struct {
	CanonicalWord      string              `json:"canonical_word" yaml:"canonical_word"`
	ReversedCanonical  string              `json:"reversed_canonical" yaml:"reversed_canonical"`
	Signature          Triple              `json:"signature" yaml:"signature"`
	Chirality          words.Chirality     `json:"chirality" yaml:"chirality"`
	MonotoneLM         bool                `json:"monotone_lm" yaml:"monotone_lm"`
	MonotoneMS         bool                `json:"monotone_ms" yaml:"monotone_ms"`
	MonotoneS0         bool                `json:"monotone_s0" yaml:"monotone_s0"`
	MOSSubstLms        bool                `json:"mos_subst_L_ms" yaml:"mos_subst_L_ms"`
	MOSSubstMLs        bool                `json:"mos_subst_m_Ls" yaml:"mos_subst_m_Ls"`
	MOSSubstSLm        bool                `json:"mos_subst_s_Lm" yaml:"mos_subst_s_Lm"`
	MaxVariety         int                 `json:"max_variety" yaml:"max_variety"`
	Structure          *GuideResult        `json:"structure,omitempty" yaml:"structure,omitempty"`
	LatticeBasis       *Basis              `json:"lattice_basis,omitempty" yaml:"lattice_basis,omitempty"`
	QuasiParallelogram *lattice.Descriptor `json:"quasi_parallelogram,omitempty" yaml:"quasi_parallelogram,omitempty"`
}

func triples(vs []countvec.Vector) []Triple {
	out := make([]Triple, len(vs))
	for i, v := range vs {
		out[i] = Triple(v.Array3())
	}

	return out
}

func newBasis(b lattice.Basis) *Basis {
	return &Basis{Triple(b.V), Triple(b.W)}
}
