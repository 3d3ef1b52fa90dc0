package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatJSON, Output: &buf})

	logger.Info("scan complete", "packages", 4)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v\noutput: %s", err, buf.String())
	}
	if record["msg"] != "scan complete" {
		t.Errorf("msg = %v, want scan complete", record["msg"])
	}
	if record["packages"] != float64(4) {
		t.Errorf("packages = %v, want 4", record["packages"])
	}
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatText, Output: &buf})

	logger.Info("scan complete", "packages", 4)

	out := buf.String()
	if json.Valid(buf.Bytes()) {
		t.Errorf("text format must not be JSON: %q", out)
	}
	for _, want := range []string{"INFO", "scan complete", "packages=4"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestNew_UnknownFormatFallsBackToText(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: Format("yaml"), Output: &buf})

	logger.Info("hello")

	if json.Valid(buf.Bytes()) {
		t.Errorf("unknown format should render text, got %q", buf.String())
	}
}

func TestNew_NilOutputDefaultsToStderr(t *testing.T) {
	// Only the construction path is checked; writing would hit real stderr.
	if New(Config{Level: slog.LevelInfo}) == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestDefault_WarnThreshold(t *testing.T) {
	logger := Default()
	ctx := t.Context()
	if logger.Enabled(ctx, slog.LevelInfo) {
		t.Error("default logger should drop Info")
	}
	if !logger.Enabled(ctx, slog.LevelWarn) {
		t.Error("default logger should keep Warn")
	}
}

func TestNewDiscard_DropsEverything(t *testing.T) {
	logger := NewDiscard()
	logger.Debug("gone")
	logger.Info("gone")
	logger.Warn("gone")
	logger.Error("gone")
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name       string
		configured slog.Level
		logged     slog.Level
		want       bool
	}{
		{"info passes at info", slog.LevelInfo, slog.LevelInfo, true},
		{"debug dropped at info", slog.LevelInfo, slog.LevelDebug, false},
		{"error passes at warn", slog.LevelWarn, slog.LevelError, true},
		{"info dropped at warn", slog.LevelWarn, slog.LevelInfo, false},
		{"trace passes at trace", LevelTrace, LevelTrace, true},
		{"trace dropped at debug", slog.LevelDebug, LevelTrace, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(Config{Level: tt.configured, Output: &buf})

			logger.Log(t.Context(), tt.logged, "probe")

			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("output written = %v, want %v (configured %v, logged %v)",
					got, tt.want, tt.configured, tt.logged)
			}
		})
	}
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{-1, slog.LevelWarn},
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{3, LevelTrace},
		{7, LevelTrace},
	}
	for _, tt := range tests {
		if got := LevelFromVerbosity(tt.verbosity); got != tt.want {
			t.Errorf("LevelFromVerbosity(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestContextRoundTrip(t *testing.T) {
	logger := NewDiscard()
	ctx := NewContext(context.Background(), logger)

	if got := FromContext(ctx); got != logger {
		t.Error("FromContext should return the logger stored by NewContext")
	}
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	if got := FromContext(context.Background()); got != slog.Default() {
		t.Error("FromContext without a stored logger should return slog.Default")
	}
	if got := FromContext(nil); got != slog.Default() { //nolint:staticcheck
		t.Error("FromContext(nil) should return slog.Default")
	}
}

func TestMultiHandler_FansOut(t *testing.T) {
	var console, file bytes.Buffer
	h := NewMultiHandler(
		NewHandler(&console, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewJSONHandler(&file, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	logger := slog.New(h)

	logger.Debug("debug record")
	logger.Warn("warn record")

	if strings.Contains(console.String(), "debug record") {
		t.Error("warn-level console target should drop debug records")
	}
	if !strings.Contains(console.String(), "warn record") {
		t.Error("console target should receive warn records")
	}
	for _, want := range []string{"debug record", "warn record"} {
		if !strings.Contains(file.String(), want) {
			t.Errorf("file target missing %q", want)
		}
	}
}

func TestMultiHandler_EnabledWhenAnyTargetIs(t *testing.T) {
	var a, b bytes.Buffer
	h := NewMultiHandler(
		NewHandler(&a, &slog.HandlerOptions{Level: slog.LevelError}),
		NewHandler(&b, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)

	if !h.Enabled(t.Context(), slog.LevelInfo) {
		t.Error("expected Info enabled while one target accepts it")
	}
	if h.Enabled(t.Context(), slog.LevelDebug) {
		t.Error("expected Debug disabled when no target accepts it")
	}
}

func TestMultiHandler_WithAttrsReachesAllTargets(t *testing.T) {
	var a, b bytes.Buffer
	h := NewMultiHandler(NewHandler(&a, nil), NewHandler(&b, nil))
	logger := slog.New(h).With("run", "7")

	logger.Info("probe")

	for name, buf := range map[string]*bytes.Buffer{"first": &a, "second": &b} {
		if !strings.Contains(buf.String(), "run=7") {
			t.Errorf("%s target missing bound attribute: %q", name, buf.String())
		}
	}
}

func TestForTest_CapturesAllLevels(t *testing.T) {
	logger := ForTest(t)
	logger.Debug("debug level")
	logger.Info("info level", "test", t.Name())
	logger.Warn("warn level")
	logger.Error("error level")
}

func TestTestWriter_TrimsNewline(t *testing.T) {
	tw := &testWriter{t: t}

	for _, input := range []string{"with newline\n", "without newline", ""} {
		n, err := tw.Write([]byte(input))
		if err != nil {
			t.Fatalf("Write(%q): %v", input, err)
		}
		if n != len(input) {
			t.Errorf("Write(%q) = %d, want %d", input, n, len(input))
		}
	}
}
