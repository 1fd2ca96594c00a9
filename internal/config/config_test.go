package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/ternary/internal/config"
	"github.com/katalvlaran/ternary/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ternary.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, 4, cfg.Analysis.Workers)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeFile(t, `
log: {level: debug}
analysis:
  mode: mos_substitution
  timeout: 2m
  filters:
    monotone_lm: true
    complexity: {value: 4, mode: exactly}
output: {format: yaml}
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "auto", cfg.Log.Format, "unset keys keep their defaults")
	assert.Equal(t, profile.ModeMOSSubstitution, cfg.Analysis.Mode)
	assert.Equal(t, 2*time.Minute, cfg.Analysis.Timeout)
	assert.Equal(t, 4, cfg.Analysis.Workers)
	assert.True(t, cfg.Analysis.Filters.MonotoneLM)
	assert.Equal(t, profile.Constraint{Value: 4, Mode: profile.Exactly}, cfg.Analysis.Filters.Complexity)
	assert.Equal(t, "yaml", cfg.Output.Format)

	opts := profile.DefaultOptions()
	for _, o := range cfg.Analysis.ProfileOptions() {
		o(&opts)
	}
	assert.Equal(t, profile.ModeMOSSubstitution, opts.Mode)
	assert.Equal(t, cfg.Analysis.Filters, opts.Filters)
}

func TestLoadRejects(t *testing.T) {
	cases := map[string]string{
		"workers":    "analysis: {workers: 0}",
		"format":     "output: {format: xml}",
		"level":      "log: {level: chatty}",
		"addr":       "server: {addr: 'not an address'}",
		"constraint": "analysis: {filters: {max_variety: {value: -2}}}",
	}
	for name, body := range cases {
		_, err := config.Load(writeFile(t, body))
		assert.ErrorIs(t, err, config.ErrInvalidConfig, name)
	}

	_, err := config.Load(writeFile(t, "analysis: {mode: everything}"))
	assert.ErrorIs(t, err, profile.ErrBadMode)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
