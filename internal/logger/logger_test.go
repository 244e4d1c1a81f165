package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("%q: got %v, want %v", in, got, want)
		}
	}
}

func TestNewFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", &buf)
	log.Info("hidden")
	log.Warn("shown", "key", "value")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "key=value") {
		t.Fatalf("got %q", out)
	}
}

func TestOpenWritesFile(t *testing.T) {
	dir := t.TempDir()
	log, closer, err := Open("info", dir, "logs/app.log")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	log.Info("menu loaded", "items", 3)
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(filepath.Join(dir, "logs", "app.log"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "items=3") {
		t.Fatalf("log file: %q", b)
	}
}
