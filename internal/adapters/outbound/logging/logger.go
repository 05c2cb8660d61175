// Package logging builds the process logger from LogConfig.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/slicegen/slicegen/internal/domain"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New creates a *slog.Logger based on cfg.
//
// Format "json" produces structured JSON output; anything else produces
// text with source info. Level is one of debug, info, warn, error
// (case-insensitive) and defaults to info. When cfg.File is set records go
// to a size-rotated file instead of stderr; the returned closer releases it.
func New(cfg domain.LogConfig, stderr io.Writer) (*slog.Logger, io.Closer) {
	var out io.Writer = stderr
	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		rotating := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB, // megabytes
			MaxBackups: cfg.MaxBackups,
		}
		out, closer = rotating, rotating
	}

	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !strings.EqualFold(cfg.Format, "json"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	return slog.New(handler), closer
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
