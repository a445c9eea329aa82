// Package logging builds the application logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// New creates a leveled logger writing to w.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "todo",
	})
}

// NewNop returns a logger that discards everything.
func NewNop() *log.Logger {
	return log.New(io.Discard)
}

// OpenFile creates a logger appending to path. The returned closer must be
// called on exit. An empty path yields a no-op logger.
func OpenFile(path string, level log.Level) (*log.Logger, io.Closer, error) {
	if path == "" {
		return NewNop(), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := New(f, level)
	logger.SetFormatter(log.LogfmtFormatter)
	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
