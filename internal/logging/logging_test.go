package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultNonNil(t *testing.T) {
	if Logger() == nil {
		t.Fatal("default logger should not be nil")
	}
}

func TestSetLoggerOverrides(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	var buf bytes.Buffer
	custom := New(&buf, slog.LevelInfo)
	SetLogger(custom)

	if got := Logger(); got != custom {
		t.Fatalf("Logger() mismatch; want %p got %p", custom, got)
	}

	Logger().Info("test", "wallet_type", "EVM")
	if !strings.Contains(buf.String(), `"wallet_type":"EVM"`) {
		t.Fatalf("expected structured field in output, got %q", buf.String())
	}
}

func TestDiscardLoggingReplacesLogger(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	DiscardLogging()
	if Logger() == nil {
		t.Fatal("discard logger should still be non-nil")
	}
	if Logger() == prev {
		t.Fatal("discard logging should replace existing logger")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelWarn)
	l.Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got %q", buf.String())
	}
	l.Warn("kept")
	if buf.Len() == 0 {
		t.Fatal("warn should be written at warn level")
	}
}
