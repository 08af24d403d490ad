package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatText, Output: &buf})

	logger.Info("hello", "key", "value")

	out := buf.String()
	if !strings.Contains(out, "hello") || !strings.Contains(out, "key=value") {
		t.Errorf("text output = %q, want message and key=value", out)
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatJSON, Output: &buf})

	logger.Info("hello", "key", "value")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry["msg"] != "hello" || entry["key"] != "value" {
		t.Errorf("JSON entry = %v, want msg=hello key=value", entry)
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelWarn, Format: FormatText, Output: &buf})

	logger.Debug("quiet")
	logger.Info("quiet")
	if buf.Len() != 0 {
		t.Errorf("output below level = %q, want empty", buf.String())
	}

	logger.Warn("loud")
	if buf.Len() == 0 {
		t.Error("warn output is empty, want a log line")
	}
}

func TestNop(t *testing.T) {
	// Must not panic and must accept all levels.
	logger := Nop()
	logger.Debug("a")
	logger.Info("b")
	logger.Error("c")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat("json") != FormatJSON {
		t.Error(`ParseFormat("json") != FormatJSON`)
	}
	if ParseFormat("text") != FormatText {
		t.Error(`ParseFormat("text") != FormatText`)
	}
	if ParseFormat("") != FormatText {
		t.Error(`ParseFormat("") != FormatText`)
	}
}
