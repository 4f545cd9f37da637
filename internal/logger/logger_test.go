package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewJSONFormatInProduction(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{
		Writer:      &buf,
		Environment: "production",
	})

	log.Info("hello", "key", "value")

	out := buf.String()
	if !strings.Contains(out, `"msg":"hello"`) {
		t.Errorf("expected JSON output, got %q", out)
	}
}

func TestPrettyHandlerWritesMessageAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{
		Writer:      &buf,
		Environment: "development",
	})

	log.Info("resolved recommendation", "profile_id", 7, "items", 9)

	out := buf.String()
	if !strings.Contains(out, "resolved recommendation") {
		t.Errorf("missing message: %q", out)
	}
	if !strings.Contains(out, "profile_id=7") {
		t.Errorf("missing attr: %q", out)
	}
}

func TestPrettyHandlerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{
		Writer:      &buf,
		Environment: "development",
		Level:       slog.LevelWarn,
	})

	log.Debug("too quiet")
	log.Info("still too quiet")
	log.Warn("loud enough")

	out := buf.String()
	if strings.Contains(out, "too quiet") {
		t.Errorf("debug/info should be filtered: %q", out)
	}
	if !strings.Contains(out, "loud enough") {
		t.Errorf("warn should pass: %q", out)
	}
}

func TestWithAttrsCarriesContext(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{
		Writer:      &buf,
		Environment: "development",
	})

	log.With("request_id", "abc").Info("handled")

	if !strings.Contains(buf.String(), "request_id=abc") {
		t.Errorf("With attrs not carried: %q", buf.String())
	}
}
