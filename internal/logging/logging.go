// Package logging builds the application's slog logger.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

// Options configures the logger.
type Options struct {
	// Writer receives log output. Defaults to os.Stderr.
	Writer io.Writer
	// Level is one of "debug", "info", "warn" or "error".
	Level string
	// Format is "text" or "json".
	Format string
	// Color enables tint's coloured handler for text output.
	Color bool
	// AddSource adds file:line to every record.
	AddSource bool
}

// ParseLevel converts a level name into a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// New returns a logger for the given options. An unknown level falls back
// to info and an unknown format to text; either is reported as an error
// alongside the usable logger.
func New(opts Options) (*slog.Logger, error) {
	if opts.Writer == nil {
		opts.Writer = os.Stderr
	}
	level, levelErr := ParseLevel(opts.Level)

	var handler slog.Handler
	switch strings.ToLower(opts.Format) {
	case "json":
		handler = slog.NewJSONHandler(opts.Writer, &slog.HandlerOptions{
			Level:     level,
			AddSource: opts.AddSource,
		})
	case "", "text":
		if opts.Color {
			handler = tint.NewHandler(opts.Writer, &tint.Options{
				Level:      level,
				AddSource:  opts.AddSource,
				TimeFormat: "15:04:05",
			})
		} else {
			handler = slog.NewTextHandler(opts.Writer, &slog.HandlerOptions{
				Level:     level,
				AddSource: opts.AddSource,
			})
		}
	default:
		handler = slog.NewTextHandler(opts.Writer, &slog.HandlerOptions{Level: level, AddSource: opts.AddSource})
		return slog.New(handler), errors.Join(levelErr, fmt.Errorf("unknown log format %q", opts.Format))
	}

	return slog.New(handler), levelErr
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
