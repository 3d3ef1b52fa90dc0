package logging

import (
	"io"
	"log/slog"
	"os"
)

// Format selects how log records are rendered.
type Format string

const (
	// FormatText renders human-readable console lines.
	FormatText Format = "text"
	// FormatJSON renders one JSON object per record.
	FormatJSON Format = "json"
)

// LevelTrace sits below slog.LevelDebug for very chatty diagnostics, such
// as per-file scan events.
const LevelTrace = slog.LevelDebug - 4

// Config holds the knobs for building a logger.
type Config struct {
	// Level is the minimum level that gets through.
	Level slog.Level
	// Format picks the renderer; anything but FormatJSON means text.
	Format Format
	// Output receives the records, os.Stderr when nil.
	Output io.Writer
}

// New builds a logger from cfg.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level}

	if cfg.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(out, opts))
	}
	return slog.New(NewHandler(out, opts))
}

// Default returns the logger used when a caller does not supply one: warn
// level, text format, stderr. Keeping it at warn leaves stdout clean for
// report output.
func Default() *slog.Logger {
	return New(Config{Level: slog.LevelWarn})
}

// NewDiscard returns a logger that drops everything. Used for quiet mode.
func NewDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// LevelFromVerbosity maps a -v flag count to a log level: 0 is Warn, 1 is
// Info, 2 is Debug, 3 or more is Trace.
func LevelFromVerbosity(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelWarn
	case v == 1:
		return slog.LevelInfo
	case v == 2:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}
