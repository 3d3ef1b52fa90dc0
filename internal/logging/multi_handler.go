package logging

import (
	"context"
	"log/slog"
)

// MultiHandler fans each record out to a fixed set of handlers. The CLI uses
// it to keep colored console output while also appending JSON records to the
// file given with --log-file.
type MultiHandler struct {
	targets []slog.Handler
}

// NewMultiHandler builds a handler that forwards to all targets.
func NewMultiHandler(targets ...slog.Handler) *MultiHandler {
	return &MultiHandler{targets: targets}
}

// Enabled reports whether any target would accept a record at this level.
func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, target := range h.targets {
		if target.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle forwards the record to every enabled target. Delivery continues
// past failures; the first failure is returned.
func (h *MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, target := range h.targets {
		if !target.Enabled(ctx, r.Level) {
			continue
		}
		if err := target.Handle(ctx, r); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// WithAttrs applies the attributes to every target.
func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.remap(func(t slog.Handler) slog.Handler { return t.WithAttrs(attrs) })
}

// WithGroup applies the group to every target.
func (h *MultiHandler) WithGroup(name string) slog.Handler {
	return h.remap(func(t slog.Handler) slog.Handler { return t.WithGroup(name) })
}

func (h *MultiHandler) remap(fn func(slog.Handler) slog.Handler) slog.Handler {
	targets := make([]slog.Handler, len(h.targets))
	for i, target := range h.targets {
		targets[i] = fn(target)
	}
	return NewMultiHandler(targets...)
}
