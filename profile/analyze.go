package profile

import (
	"context"
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/ternary/alphabet"
	"github.com/katalvlaran/ternary/guide"
	"github.com/katalvlaran/ternary/lattice"
	"github.com/katalvlaran/ternary/necklace"
	"github.com/katalvlaran/ternary/words"
)

// AnalyzeWord parses s with the alphabet tables and profiles it.
//
// Canonical forms are reported, but guide frames and the lattice shape are
// computed on the word as written. The empty string yields an empty,
// Achiral profile with no structure. Structure and LatticeBasis are set
// together: the structure is the frame the basis was found in.
func AnalyzeWord(s string) (WordProfile, error) {
	return AnalyzeWordContext(context.Background(), s)
}

// AnalyzeWordContext is AnalyzeWord bounded by ctx. The context is checked
// before the guide frame search and during the lattice classification.
func AnalyzeWordContext(ctx context.Context, s string) (WordProfile, error) {
	w, arity, err := parseTernary(s)
	if err != nil {
		return WordProfile{}, fmt.Errorf("AnalyzeWord(%q): %w", s, err)
	}
	if len(w) == 0 {
		return WordProfile{Chirality: words.Achiral}, nil
	}

	canon := words.Canonical(w)
	p := WordProfile{
		CanonicalWord:     formatWord(canon, arity),
		ReversedCanonical: formatWord(words.Canonical(words.Reverse(w)), arity),
		Signature:         Triple(signature(w)),
		Chirality:         words.ChiralityOf(w),
		MonotoneLM:        words.MonotoneLM(w),
		MonotoneMS:        words.MonotoneMS(w),
		MonotoneS0:        words.MonotoneS0(w),
		MOSSubstLms:       words.IsMOSSubstOnePerm(w, 0, 1, 2),
		MOSSubstMLs:       words.IsMOSSubstOnePerm(w, 1, 0, 2),
		MOSSubstSLm:       words.IsMOSSubstOnePerm(w, 2, 0, 1),
		MaxVariety:        words.MaximumVariety(w),
	}
	if err := ctx.Err(); err != nil {
		return WordProfile{}, fmt.Errorf("AnalyzeWord(%q): %w", s, err)
	}
	b, f, ok := lattice.UnimodularBasis(guide.Frames(w), signature(w))
	if !ok {
		return p, nil
	}
	gr := NewGuideResult(f)
	p.Structure, p.LatticeBasis = &gr, newBasis(b)
	d, ok, err := classify(ctx, w, b)
	if err != nil {
		return WordProfile{}, fmt.Errorf("AnalyzeWord(%q): %w", s, err)
	}
	if ok {
		p.QuasiParallelogram = &d
	}

	return p, nil
}

// AnalyzeScale profiles a scale given as letters 0, 1 and 2. The word is
// reported in its canonical rotation with the "Lms" table.
func AnalyzeScale(w words.Word) ScaleProfile {
	canon := words.Canonical(w)

	return analyzeScale(canon, guide.Frames(canon))
}

func analyzeScale(canon words.Word, frames []guide.Frame) ScaleProfile {
	p := ScaleProfile{
		Word:       formatWord(canon, 3),
		Scale:      canon,
		MaxVariety: words.MaximumVariety(canon),
	}
	if len(canon) == 0 {
		return p
	}
	p.MonotoneLM = words.MonotoneLM(canon)
	p.MonotoneMS = words.MonotoneMS(canon)
	p.MonotoneS0 = words.MonotoneS0(canon)
	if b, f, ok := lattice.UnimodularBasis(frames, signature(canon)); ok {
		gr := NewGuideResult(f)
		p.Structure, p.LatticeBasis = &gr, newBasis(b)
	}

	return p
}

// AnalyzeSignature enumerates the scales with step signature sig, keeps
// those passing the configured filters, and returns their profiles sorted
// stably by the complexity of each scale's simplest guide frame. Scales
// without a guide frame sort last.
//
// The context is checked between scales; on cancellation the context error
// is returned wrapped and no profiles are returned.
func AnalyzeSignature(ctx context.Context, sig [3]int, opts ...Option) ([]ScaleProfile, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateSignature(sig); err != nil {
		return nil, err
	}

	type ranked struct {
		profile ScaleProfile
		rank    int
	}
	var kept []ranked
	for s := range scales(sig, o.Mode) {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("AnalyzeSignature(%v): %w", sig, err)
		}
		frames := guide.Frames(s)
		ok := o.Filters.Match(s, frames)
		if o.OnScale != nil {
			o.OnScale(s, ok)
		}
		if !ok {
			continue
		}
		r := ranked{profile: analyzeScale(s, frames), rank: -1}
		if len(frames) > 0 {
			r.rank = frames[0].Complexity()
		}
		kept = append(kept, r)
		if o.Limit > 0 && len(kept) >= o.Limit {
			break
		}
	}

	slices.SortStableFunc(kept, func(a, b ranked) int {
		switch {
		case a.rank == b.rank:
			return 0
		case a.rank < 0:
			return 1
		case b.rank < 0:
			return -1
		}
		return a.rank - b.rank
	})
	out := make([]ScaleProfile, len(kept))
	for i, r := range kept {
		out[i] = r.profile
	}

	return out, nil
}

// QuasiParallelogram parses s and classifies its lattice projection. ok is
// false when the word has no unimodular basis or its projection is not a
// quasi-parallelogram.
func QuasiParallelogram(s string) (lattice.Descriptor, bool, error) {
	return QuasiParallelogramContext(context.Background(), s)
}

// QuasiParallelogramContext is QuasiParallelogram bounded by ctx.
func QuasiParallelogramContext(ctx context.Context, s string) (lattice.Descriptor, bool, error) {
	w, _, err := parseTernary(s)
	if err != nil {
		return lattice.Descriptor{}, false, fmt.Errorf("QuasiParallelogram(%q): %w", s, err)
	}
	if err := ctx.Err(); err != nil {
		return lattice.Descriptor{}, false, fmt.Errorf("QuasiParallelogram(%q): %w", s, err)
	}
	b, _, ok := lattice.UnimodularBasis(guide.Frames(w), signature(w))
	if !ok {
		return lattice.Descriptor{}, false, nil
	}
	d, ok, err := classify(ctx, w, b)
	if err != nil {
		return lattice.Descriptor{}, false, fmt.Errorf("QuasiParallelogram(%q): %w", s, err)
	}

	return d, ok, nil
}

// classify projects w with b and classifies the points. A basis that does
// not fit w counts as no shape.
func classify(ctx context.Context, w words.Word, b lattice.Basis) (lattice.Descriptor, bool, error) {
	points, err := lattice.PitchClasses(w, b)
	if err != nil {
		return lattice.Descriptor{}, false, nil
	}

	return lattice.ClassifyContext(ctx, points)
}

func scales(sig [3]int, m Mode) iter.Seq[words.Word] {
	if m == ModeMOSSubstitution {
		return slices.Values(words.MOSSubstitutionScales(sig))
	}

	return necklace.All(sig[:])
}

func validateSignature(sig [3]int) error {
	total := 0
	for _, c := range sig {
		if c < 0 {
			return fmt.Errorf("signature %v: negative count: %w", sig, ErrInvalidSignature)
		}
		total += c
	}
	if total > MaxScaleLen {
		return fmt.Errorf("signature %v: %d steps exceed %d: %w", sig, total, MaxScaleLen, ErrInvalidSignature)
	}

	return nil
}

// parseTernary decodes s and returns the arity its letters are displayed
// with (at least 2).
func parseTernary(s string) (words.Word, int, error) {
	if len(s) > MaxScaleLen {
		return nil, 0, ErrScaleTooLong
	}
	w, err := alphabet.Parse(s)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	arity, _ := alphabet.Detect(s)
	for _, l := range w {
		if l > 2 {
			return nil, 0, ErrNotTernary
		}
	}

	return w, max(arity, 2), nil
}

func formatWord(w words.Word, arity int) string {
	for _, l := range w {
		arity = max(arity, l+1)
	}
	s, err := alphabet.FormatWithArity(w, arity)
	if err != nil {
		return w.String()
	}

	return s
}

func signature(w words.Word) [3]int {
	return [3]int(words.Signature(w, 3))
}
