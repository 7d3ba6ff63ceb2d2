package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitAndLoggingToFile(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "nested", "llmcompare.log")

	if err := InitWithOptions(Options{Path: logPath}); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close()
	})

	LogEvent("hello %s", "world")
	Warnf("careful %d", 3)
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "hello world") {
		t.Fatalf("expected LogEvent content, got: %s", content)
	}
	if !strings.Contains(content, "WARN") || !strings.Contains(content, "careful 3") {
		t.Fatalf("expected warning content, got: %s", content)
	}
}

func TestDebugRespectsLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "debug.log")
	if err := InitWithOptions(Options{Path: logPath, Level: "info"}); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() {
		SetLevel("info")
		_ = Close()
	})

	Debugf("hidden")
	SetLevel("debug")
	if Level() != "debug" {
		t.Fatalf("expected debug level, got %s", Level())
	}
	Debugf("shown")
	SetLevel("not-a-level")
	if Level() != "debug" {
		t.Fatalf("unknown level should be ignored, got %s", Level())
	}
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Contains(string(data), "hidden") || !strings.Contains(string(data), "shown") {
		t.Fatalf("unexpected log content: %s", data)
	}
}

func TestLoggingBeforeInitIsSafe(t *testing.T) {
	_ = Close()
	LogEvent("dropped")
	Errorf("dropped too")
	if err := Close(); err != nil {
		t.Fatalf("Close without file: %v", err)
	}
}
