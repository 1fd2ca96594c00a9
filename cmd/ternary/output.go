package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ternary/profile"
)

// render writes v in the configured format. text is used for "text".
func (a *app) render(w io.Writer, v any, text func(io.Writer)) error {
	switch a.cfg.Output.Format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		text(w)
		return nil
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}

func writeWordProfile(w io.Writer, p profile.WordProfile) {
	fmt.Fprintf(w, "word:        %s\n", p.CanonicalWord)
	fmt.Fprintf(w, "reversed:    %s\n", p.ReversedCanonical)
	fmt.Fprintf(w, "signature:   %v\n", p.Signature)
	fmt.Fprintf(w, "chirality:   %s\n", p.Chirality)
	fmt.Fprintf(w, "max variety: %d\n", p.MaxVariety)
	fmt.Fprintf(w, "monotone:    L=m %v  m=s %v  s=0 %v\n", p.MonotoneLM, p.MonotoneMS, p.MonotoneS0)
	fmt.Fprintf(w, "mos subst:   L/ms %v  m/Ls %v  s/Lm %v\n", p.MOSSubstLms, p.MOSSubstMLs, p.MOSSubstSLm)
	if p.Structure != nil {
		writeStructure(w, p.Structure, p.LatticeBasis)
	}
	if p.QuasiParallelogram != nil {
		d := p.QuasiParallelogram
		fmt.Fprintf(w, "qp:          %d rows, %d per row, %d first, %d last\n", d.Rows, d.FullRow, d.FirstRow, d.LastRow)
	}
}

func writeScaleProfiles(w io.Writer, ps []profile.ScaleProfile) {
	for _, p := range ps {
		line := []string{p.Word, fmt.Sprintf("mv=%d", p.MaxVariety)}
		if p.Structure != nil {
			line = append(line,
				fmt.Sprintf("gs=%v", p.Structure.GS),
				fmt.Sprintf("chord=%v", p.Structure.OffsetChord),
				fmt.Sprintf("complexity=%d", p.Structure.Complexity),
				fmt.Sprintf("basis=%v", *p.LatticeBasis),
			)
		}
		fmt.Fprintln(w, strings.Join(line, "\t"))
	}
}

func writeStructure(w io.Writer, g *profile.GuideResult, b *profile.Basis) {
	fmt.Fprintf(w, "gs:          %v\n", g.GS)
	fmt.Fprintf(w, "chord:       %v\n", g.OffsetChord)
	fmt.Fprintf(w, "complexity:  %d (multiplicity %d)\n", g.Complexity, g.Multiplicity)
	if b != nil {
		fmt.Fprintf(w, "basis:       %v\n", *b)
	}
}
