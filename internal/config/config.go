// Package config loads the ternary binary's settings: a YAML file laid over
// Default, then validated with struct tags.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ternary/profile"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of the YAML document.
type Config struct {
	Log      Log      `yaml:"log"`
	Analysis Analysis `yaml:"analysis"`
	Server   Server   `yaml:"server"`
	Output   Output   `yaml:"output"`
}

// Log selects the logger level and handler.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn warning error"`
	Format string `yaml:"format" validate:"oneof=auto text json"`
}

// Analysis holds the defaults for signature enumeration and batch runs.
type Analysis struct {
	Mode    profile.Mode    `yaml:"mode"`
	Workers int             `yaml:"workers" validate:"min=1,max=64"`
	Timeout time.Duration   `yaml:"timeout" validate:"gte=0"`
	Limit   int             `yaml:"limit" validate:"gte=0"`
	Filters profile.Filters `yaml:"filters"`
}

// Server configures `ternary serve`.
type Server struct {
	Addr            string        `yaml:"addr" validate:"required,hostname_port"`
	Metrics         bool          `yaml:"metrics"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gte=0"`
}

// Output selects how commands print results.
type Output struct {
	Format string `yaml:"format" validate:"oneof=json yaml text"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Log: Log{Level: "info", Format: "auto"},
		Analysis: Analysis{
			Mode:    profile.ModeAllNecklaces,
			Workers: 4,
			Timeout: 30 * time.Second,
		},
		Server: Server{Addr: ":8080", Metrics: true, ShutdownTimeout: 5 * time.Second},
		Output: Output{Format: "json"},
	}
}

// Load reads path over Default and validates the result. An empty path
// returns the validated defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("Load(%q): %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("Load(%q): %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

var validate = validator.New()

// Validate checks the struct tags and the analysis filters.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Analysis.Filters.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// ProfileOptions turns the analysis section into profile options.
func (a Analysis) ProfileOptions() []profile.Option {
	return []profile.Option{
		profile.WithMode(a.Mode),
		profile.WithFilters(a.Filters),
		profile.WithLimit(a.Limit),
	}
}
