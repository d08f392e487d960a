package logging

import (
	"bytes"
	"encoding/json"
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
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"unknown", slog.LevelWarn},
		{"", slog.LevelWarn},
	}

	for _, tt := range tests {
		got := ParseLevel(tt.input)
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewHandlerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, true, slog.LevelInfo))

	logger.Info("scored pairs", "count", 21)

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("expected valid JSON output, got error: %v\noutput: %s", err, buf.String())
	}
	if m["msg"] != "scored pairs" {
		t.Errorf("expected msg 'scored pairs', got %q", m["msg"])
	}
	if m["count"] != float64(21) {
		t.Errorf("expected count 21, got %v", m["count"])
	}
}

func TestNewHandlerText(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, false, slog.LevelInfo))

	logger.Info("loaded ontology", "concepts", 6)

	out := buf.String()
	if !strings.Contains(out, "msg=\"loaded ontology\"") {
		t.Errorf("expected text output to contain msg, got: %s", out)
	}
	if !strings.Contains(out, "concepts=6") {
		t.Errorf("expected text output to contain concepts=6, got: %s", out)
	}
}

func TestNewHandlerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, false, slog.LevelWarn))

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn message missing: %s", out)
	}
}
