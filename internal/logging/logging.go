// Package logging builds the slog loggers used by the ternary binary and
// its HTTP server. Library packages never log.
//
// Records go to one writer (stderr by default). Format "auto" picks the
// text handler when the writer is a terminal and JSON otherwise. Every
// record carries the service name.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Output formats accepted by Config.Format.
const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownLevel indicates a level name ParseLevel does not recognise.
var ErrUnknownLevel = errors.New("logging: unknown level")

// ErrUnknownFormat indicates a format other than auto, text or json.
var ErrUnknownFormat = errors.New("logging: unknown format")

// Config configures New. The zero value logs Info and above to stderr,
// choosing the handler by terminal detection.
type Config struct {
	Level   slog.Level
	Format  string    // auto, text or json; empty means auto
	Service string    // attached to every record when set
	Writer  io.Writer // defaults to os.Stderr
}

// New returns a logger for cfg.
func New(cfg Config) (*slog.Logger, error) {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level}

	var h slog.Handler
	switch cfg.Format {
	case FormatText:
		h = slog.NewTextHandler(w, opts)
	case FormatJSON:
		h = slog.NewJSONHandler(w, opts)
	case FormatAuto, "":
		if isTerminal(w) {
			h = slog.NewTextHandler(w, opts)
		} else {
			h = slog.NewJSONHandler(w, opts)
		}
	default:
		return nil, fmt.Errorf("New(format %q): %w", cfg.Format, ErrUnknownFormat)
	}

	logger := slog.New(h)
	if cfg.Service != "" {
		logger = logger.With("service", cfg.Service)
	}

	return logger, nil
}

// ParseLevel maps debug, info, warn (or warning) and error, in any case,
// to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("ParseLevel(%q): %w", s, ErrUnknownLevel)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
