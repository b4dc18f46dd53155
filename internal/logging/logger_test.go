package logging

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func setupLogger(t *testing.T, level Level) string {
	t.Helper()

	if err := Initialize(t.TempDir(), level); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	t.Cleanup(func() {
		_ = Close()
		defaultLogger = nil
	})

	path := GetLogPath()
	if path == "" {
		t.Fatalf("GetLogPath returned empty path")
	}
	return path
}

func readLog(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	return string(data)
}

func TestLevelFiltering(t *testing.T) {
	path := setupLogger(t, LevelWarn)

	Info("hidden %d", 1)
	Warn("shown %d", 2)
	WithError(errors.New("boom"), "export")
	WithError(nil, "ignored")

	content := readLog(t, path)
	if strings.Contains(content, "hidden") {
		t.Fatalf("info line should be filtered, got %q", content)
	}
	if !strings.Contains(content, "WARN: shown 2") {
		t.Fatalf("missing warn line, got %q", content)
	}
	if !strings.Contains(content, "ERROR: export: boom") {
		t.Fatalf("missing error line, got %q", content)
	}
	if strings.Contains(content, "ignored") {
		t.Fatalf("nil error should not be logged")
	}
}

func TestSetLevel(t *testing.T) {
	path := setupLogger(t, LevelError)

	SetLevel(LevelDebug)
	Debug("now visible")

	if !strings.Contains(readLog(t, path), "DEBUG: now visible") {
		t.Fatalf("debug line missing after SetLevel")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{"debug": LevelDebug, "WARN": LevelWarn, "error": LevelError, "": LevelInfo, "x": LevelInfo}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLoggingWithoutInitialize(t *testing.T) {
	defaultLogger = nil
	Info("dropped")
	if GetLogPath() != "" {
		t.Fatalf("GetLogPath should be empty before Initialize")
	}
}
