package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelWarn, "test")

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("below-level messages leaked: %q", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("at-level messages missing: %q", out)
	}
}

func TestFormatIncludesLevelAndPrefix(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelInfo, "slate")

	log.Info("saved %s", "file.txt")

	out := buf.String()
	if !strings.Contains(out, "[INFO] slate: saved file.txt") {
		t.Errorf("unexpected format: %q", out)
	}
}

func TestWithFieldSortsKeys(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelInfo, "").WithField("b", 2).WithField("a", 1)

	log.Info("msg")

	out := buf.String()
	if !strings.Contains(out, "{a=1, b=2}") {
		t.Errorf("fields not sorted: %q", out)
	}
}

func TestNopDiscards(t *testing.T) {
	log := Nop()
	log.Error("nothing happens")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"WARN", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelError, "")

	log.Info("hidden")
	log.SetLevel(LevelDebug)
	log.Info("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "visible") {
		t.Errorf("SetLevel not honored: %q", out)
	}
}
