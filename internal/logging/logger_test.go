package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tc := range cases {
		if got := parseLevel(tc.in); got != tc.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestConsoleHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, lvl))

	component := NewComponentLogger(logger, "composer")
	component.Info("video rendered", Args(String("output", "final.mp4"), Int("cues", 3))...)

	line := buf.String()
	if !strings.Contains(line, "[composer]") {
		t.Fatalf("expected component tag in %q", line)
	}
	if !strings.Contains(line, "video rendered") {
		t.Fatalf("expected message in %q", line)
	}
	if !strings.Contains(line, "output=final.mp4") || !strings.Contains(line, "cues=3") {
		t.Fatalf("expected attrs in %q", line)
	}
}

func TestConsoleHandlerFlattensGroups(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, lvl)).WithGroup("video")

	logger.Info("probe", Args(String("codec", "h264"))...)
	if !strings.Contains(buf.String(), "video.codec=h264") {
		t.Fatalf("expected grouped key in %q", buf.String())
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := NewNop()
	logger.Error("should not panic", Args(Error(nil))...)
}
