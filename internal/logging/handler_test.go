package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestHandler_LineFormat(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	r := slog.NewRecord(time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC), slog.LevelInfo, "scan complete", 0)
	r.AddAttrs(slog.Int("packages", 3), slog.String("root", "skills"))
	if err := h.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	// A buffer is not a TTY, so the line carries no escape codes.
	want := "3:04PM INFO  scan complete packages=3 root=skills\n"
	if got := buf.String(); got != want {
		t.Errorf("line = %q, want %q", got, want)
	}
}

func TestHandler_TraceLabel(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &slog.HandlerOptions{Level: LevelTrace})

	r := slog.NewRecord(time.Time{}, LevelTrace, "visiting file", 0)
	if err := h.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	if got := buf.String(); !strings.HasPrefix(got, "TRACE") {
		t.Errorf("expected TRACE label, got %q", got)
	}
}

func TestHandler_NoTime(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil)

	r := slog.NewRecord(time.Time{}, slog.LevelInfo, "no timestamp", 0)
	if err := h.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	if got := buf.String(); got != "INFO  no timestamp\n" {
		t.Errorf("line = %q, want level first when the record has no time", got)
	}
}

func TestHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil)).With("run", "42")

	logger.Info("checking", "skill", "seo-audit")

	out := buf.String()
	if !strings.Contains(out, "run=42") {
		t.Errorf("expected bound attribute in output, got %q", out)
	}
	if !strings.Contains(out, "skill=seo-audit") {
		t.Errorf("expected record attribute in output, got %q", out)
	}
}

func TestHandler_GroupsQualifyKeys(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil)).With("run", "42").WithGroup("scan")

	logger.Info("done", "dir", "skills")

	out := buf.String()
	if !strings.Contains(out, "scan.dir=skills") {
		t.Errorf("expected group-qualified key, got %q", out)
	}
	// Attributes bound before the group keep their plain key.
	if !strings.Contains(out, " run=42") {
		t.Errorf("expected unqualified earlier attribute, got %q", out)
	}
}

func TestHandler_Enabled(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})

	ctx := context.Background()
	if h.Enabled(ctx, slog.LevelInfo) {
		t.Error("expected Info level to be disabled when min level is Warn")
	}
	if !h.Enabled(ctx, slog.LevelWarn) {
		t.Error("expected Warn level to be enabled")
	}
	if !h.Enabled(ctx, slog.LevelError) {
		t.Error("expected Error level to be enabled")
	}
}

func TestHandler_DefaultLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil)

	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("expected Debug to be disabled by default")
	}
	if !h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("expected Info to be enabled by default")
	}
}
