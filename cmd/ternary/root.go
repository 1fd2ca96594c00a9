package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ternary/internal/config"
	"github.com/katalvlaran/ternary/internal/logging"
	"github.com/katalvlaran/ternary/profile"
)

// app is the state shared by every command of one invocation.
type app struct {
	configPath string
	format     string
	logLevel   string
	mode       string
	workers    int
	timeout    time.Duration

	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "ternary",
		Short:         "Analyse ternary scale words",
		Long:          "ternary profiles scale words over the steps L, m and s: canonical forms, MOS properties, guide frames, lattice bases and quasi-parallelogram shapes.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVarP(&a.format, "format", "o", "", "output format: json, yaml or text")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&a.mode, "mode", "", "enumeration mode: all_necklaces or mos_substitution")
	pf.IntVar(&a.workers, "workers", 0, "batch concurrency (1-64)")
	pf.DurationVar(&a.timeout, "timeout", 0, "time budget per command, 0 for none")

	root.AddCommand(
		newWordCmd(a),
		newQPCmd(a),
		newSigCmd(a),
		newNecklacesCmd(a),
		newBatchCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)

	return root
}

// setup loads the configuration, applies flag overrides and builds the
// logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = a.format
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("mode") {
		m, err := profile.ParseMode(a.mode)
		if err != nil {
			return err
		}
		cfg.Analysis.Mode = m
	}
	if flags.Changed("workers") {
		cfg.Analysis.Workers = a.workers
	}
	if flags.Changed("timeout") {
		cfg.Analysis.Timeout = a.timeout
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	log, err := logging.New(logging.Config{
		Level:   level,
		Format:  cfg.Log.Format,
		Service: "ternary",
		Writer:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	a.cfg, a.log = cfg, log

	return nil
}

// budget derives the per-command context.
func (a *app) budget(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.cfg.Analysis.Timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, a.cfg.Analysis.Timeout)
}
