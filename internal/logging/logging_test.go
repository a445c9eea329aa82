package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, log.WarnLevel)

	logger.Info("hidden")
	logger.Warn("shown", "id", "42")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected info message to be filtered, got %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "id=42") {
		t.Errorf("expected warn message with key/value, got %q", out)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "todo.log")

	logger, closer, err := OpenFile(path, log.DebugLevel)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	logger.Debug("task added", "id", "abc")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "task added") || !strings.Contains(string(data), "id=abc") {
		t.Errorf("unexpected log contents: %q", data)
	}
}

func TestOpenFileEmptyPath(t *testing.T) {
	logger, closer, err := OpenFile("", log.InfoLevel)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	logger.Error("discarded")
	if err := closer.Close(); err != nil {
		t.Errorf("expected nil error from no-op closer, got %v", err)
	}
}
