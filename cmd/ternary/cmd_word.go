package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ternary/profile"
)

func newWordCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "word WORD",
		Short: "Profile one scale word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.budget(cmd.Context())
			defer cancel()
			p, err := profile.AnalyzeWordContext(ctx, args[0])
			if err != nil {
				return err
			}
			a.log.Debug("analysed word", "word", args[0], "canonical", p.CanonicalWord)

			return a.render(cmd.OutOrStdout(), p, func(w io.Writer) { writeWordProfile(w, p) })
		},
	}
}

type qpResult struct {
	Word      string `json:"word" yaml:"word"`
	Found     bool   `json:"found" yaml:"found"`
	Rows      int    `json:"rows,omitempty" yaml:"rows,omitempty"`
	FullRow   int    `json:"full_row,omitempty" yaml:"full_row,omitempty"`
	FirstRow  int    `json:"first_row,omitempty" yaml:"first_row,omitempty"`
	LastRow   int    `json:"last_row,omitempty" yaml:"last_row,omitempty"`
	Traversal string `json:"traversal,omitempty" yaml:"traversal,omitempty"`
}

func newQPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "qp WORD",
		Short: "Classify the lattice projection of a word as a quasi-parallelogram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.budget(cmd.Context())
			defer cancel()
			d, ok, err := profile.QuasiParallelogramContext(ctx, args[0])
			if err != nil {
				return err
			}
			res := qpResult{Word: args[0], Found: ok}
			if ok {
				res.Rows, res.FullRow, res.FirstRow, res.LastRow = d.Rows, d.FullRow, d.FirstRow, d.LastRow
				res.Traversal = d.Traversal.String()
			}

			return a.render(cmd.OutOrStdout(), res, func(w io.Writer) {
				if !ok {
					fmt.Fprintf(w, "%s: not a quasi-parallelogram\n", res.Word)
					return
				}
				fmt.Fprintf(w, "%s: %d rows, %d per row, %d first, %d last (%s)\n",
					res.Word, res.Rows, res.FullRow, res.FirstRow, res.LastRow, res.Traversal)
			})
		},
	}
}
