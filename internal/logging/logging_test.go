package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/julienpequegnot/emolex/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, config.LogConfig{Level: "warn", Format: "json"})

	logger.Info("dropped")
	logger.Warn("kept", slog.String("emotion", "joy"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if rec["msg"] != "kept" || rec["emotion"] != "joy" {
		t.Errorf("unexpected record %v", rec)
	}
}

func TestTextLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, config.LogConfig{Level: "debug", Format: "text"})

	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("expected debug to be enabled")
	}
	logger.Debug("lexicon built")
	if !strings.Contains(buf.String(), "msg=\"lexicon built\"") {
		t.Errorf("unexpected text output %q", buf.String())
	}
}
