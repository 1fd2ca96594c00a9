package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ternary/alphabet"
	"github.com/katalvlaran/ternary/necklace"
	"github.com/katalvlaran/ternary/profile"
)

// constraintFlags binds one exact/at-most constraint to two flags.
type constraintFlags struct {
	name  string
	value int
	exact bool
}

func (c *constraintFlags) register(cmd *cobra.Command, usage string) {
	cmd.Flags().IntVar(&c.value, c.name, 0, usage+" (0 = off)")
	cmd.Flags().BoolVar(&c.exact, c.name+"-exact", false, "require --"+c.name+" exactly instead of at most")
}

// apply overrides dst when either flag was given.
func (c *constraintFlags) apply(cmd *cobra.Command, dst *profile.Constraint) {
	if cmd.Flags().Changed(c.name) {
		dst.Value = c.value
	}
	if cmd.Flags().Changed(c.name + "-exact") {
		dst.Mode = profile.AtMost
		if c.exact {
			dst.Mode = profile.Exactly
		}
	}
}

func newSigCmd(a *app) *cobra.Command {
	var (
		lm, ms, s0 bool
		limit      int
		gsLength   = constraintFlags{name: "gs-length"}
		complexity = constraintFlags{name: "complexity"}
		maxVariety = constraintFlags{name: "max-variety"}
	)
	cmd := &cobra.Command{
		Use:   "sig L M S",
		Short: "Enumerate and profile every scale with a step signature",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := parseCounts(args)
			if err != nil {
				return err
			}
			f := a.cfg.Analysis.Filters
			flags := cmd.Flags()
			if flags.Changed("lm") {
				f.MonotoneLM = lm
			}
			if flags.Changed("ms") {
				f.MonotoneMS = ms
			}
			if flags.Changed("s0") {
				f.MonotoneS0 = s0
			}
			gsLength.apply(cmd, &f.GSLength)
			complexity.apply(cmd, &f.Complexity)
			maxVariety.apply(cmd, &f.MaxVariety)
			if err := f.Validate(); err != nil {
				return err
			}
			cfg := a.cfg
			cfg.Analysis.Filters = f
			if flags.Changed("limit") {
				cfg.Analysis.Limit = limit
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			analysis := cfg.Analysis

			ctx, cancel := a.budget(cmd.Context())
			defer cancel()
			sig := [3]int{counts[0], counts[1], counts[2]}
			profiles, err := profile.AnalyzeSignature(ctx, sig, analysis.ProfileOptions()...)
			if err != nil {
				return err
			}
			a.log.Info("signature analysed", "signature", sig, "mode", analysis.Mode.String(), "kept", len(profiles))
			if profiles == nil {
				profiles = []profile.ScaleProfile{}
			}

			return a.render(cmd.OutOrStdout(), profiles, func(w io.Writer) { writeScaleProfiles(w, profiles) })
		},
	}
	cmd.Flags().BoolVar(&lm, "lm", false, "keep only scales that stay MOS when L and m are identified")
	cmd.Flags().BoolVar(&ms, "ms", false, "keep only scales that stay MOS when m and s are identified")
	cmd.Flags().BoolVar(&s0, "s0", false, "keep only scales that stay MOS when s is deleted")
	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many matching scales (0 = all)")
	gsLength.register(cmd, "generator sequence length of the simplest guide frame")
	complexity.register(cmd, "complexity of the simplest guide frame")
	maxVariety.register(cmd, "maximum variety")

	return cmd
}

type necklacesResult struct {
	Content   []int    `json:"content" yaml:"content"`
	Total     string   `json:"total" yaml:"total"`
	Necklaces []string `json:"necklaces,omitempty" yaml:"necklaces,omitempty"`
}

func newNecklacesCmd(a *app) *cobra.Command {
	var (
		limit     int
		countOnly bool
	)
	cmd := &cobra.Command{
		Use:   "necklaces N0 [N1 ...]",
		Short: "List the necklaces with a fixed content",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := parseCounts(args)
			if err != nil {
				return err
			}
			res := necklacesResult{Content: content, Total: necklace.Count(content).String()}
			if !countOnly {
				ctx, cancel := a.budget(cmd.Context())
				defer cancel()
				for w := range necklace.All(content) {
					if err := ctx.Err(); err != nil {
						return err
					}
					if limit > 0 && len(res.Necklaces) == limit {
						break
					}
					s, err := alphabet.FormatWithArity(w, max(len(content), 2))
					if err != nil {
						return err
					}
					res.Necklaces = append(res.Necklaces, s)
				}
			}

			return a.render(cmd.OutOrStdout(), res, func(w io.Writer) {
				for _, n := range res.Necklaces {
					fmt.Fprintln(w, n)
				}
				fmt.Fprintf(w, "total %s\n", res.Total)
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "print at most this many necklaces (0 = all)")
	cmd.Flags().BoolVar(&countOnly, "count", false, "print only the closed-form total")

	return cmd
}

func parseCounts(args []string) ([]int, error) {
	out := make([]int, len(args))
	total := 0
	for i, s := range args {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("count %q: %w", s, profile.ErrInvalidSignature)
		}
		out[i] = n
		total += n
	}
	if total > profile.MaxScaleLen {
		return nil, fmt.Errorf("%d steps exceed %d: %w", total, profile.MaxScaleLen, profile.ErrInvalidSignature)
	}

	return out, nil
}
