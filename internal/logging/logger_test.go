package logging_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"qimu/internal/logging"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
		{"DEBUG", slog.LevelDebug},
		{"loud", slog.LevelWarn},
	}
	for _, tc := range cases {
		if got := logging.ParseLevel(tc.in); got != tc.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewDuplicatesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "qimu.log")

	logger, err := logging.New(logging.Options{Level: "info", FilePath: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("samples discovered", "count", 3)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "samples discovered") {
		t.Fatalf("expected log line in file, got %q", string(data))
	}
	if !strings.Contains(string(data), "count=3") {
		t.Fatalf("expected attribute in file, got %q", string(data))
	}
}
