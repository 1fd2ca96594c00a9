package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ternary/profile"
)

// batchEntry is one line of batch output. Exactly one of Profile and Error
// is set.
type batchEntry struct {
	Input   string               `json:"input" yaml:"input"`
	Profile *profile.WordProfile `json:"profile,omitempty" yaml:"profile,omitempty"`
	Error   string               `json:"error,omitempty" yaml:"error,omitempty"`
}

func newBatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch [FILE...]",
		Short: "Profile many words, one per line, from files or stdin",
		Long: "batch reads scale words one per line (blank lines and lines starting with # are skipped) " +
			"and profiles them concurrently. Output keeps input order; a word that fails to parse is reported " +
			"in its entry and does not stop the batch.",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readWords(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			ctx, cancel := a.budget(cmd.Context())
			defer cancel()
			entries, err := analyzeBatch(ctx, inputs, a.cfg.Analysis.Workers)
			if err != nil {
				return err
			}
			a.log.Info("batch done", "words", len(entries), "workers", a.cfg.Analysis.Workers)

			return a.render(cmd.OutOrStdout(), entries, func(w io.Writer) {
				for _, e := range entries {
					if e.Error != "" {
						fmt.Fprintf(w, "%s\terror: %s\n", e.Input, e.Error)
						continue
					}
					p := e.Profile
					fmt.Fprintf(w, "%s\t%s\t%s\tmv=%d\n", e.Input, p.CanonicalWord, p.Chirality, p.MaxVariety)
				}
			})
		},
	}
}

// analyzeBatch profiles inputs on at most workers goroutines. Per-word
// errors land in the entries; only cancellation fails the batch.
func analyzeBatch(ctx context.Context, inputs []string, workers int) ([]batchEntry, error) {
	entries := make([]batchEntry, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entries[i].Input = in
			p, err := profile.AnalyzeWordContext(ctx, in)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				entries[i].Error = err.Error()
				return nil
			}
			entries[i].Profile = &p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return entries, nil
}

func readWords(stdin io.Reader, paths []string) ([]string, error) {
	if len(paths) == 0 {
		return scanWords(stdin)
	}
	var out []string
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		ws, err := scanWords(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		out = append(out, ws...)
	}

	return out, nil
}

func scanWords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}

	return out, sc.Err()
}
