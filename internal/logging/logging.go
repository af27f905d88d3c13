// Package logging routes the app's structured log output to a file, since
// the terminal belongs to the TUI.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// Setup installs a default logger writing to path at the given level
// ("debug", "info", "warn", "error"). An empty path discards output. The
// returned closer closes the log file.
func Setup(path, level string) (io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}

	if path == "" {
		log.SetDefault(newLogger(io.Discard, lvl))
		return nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.SetDefault(newLogger(io.Discard, lvl))
		return nopCloser{}, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetDefault(newLogger(io.Discard, lvl))
		return nopCloser{}, fmt.Errorf("could not open log file: %w", err)
	}

	log.SetDefault(newLogger(f, lvl))
	return f, nil
}

// Console installs a default logger writing to stderr, for the
// non-interactive subcommands
func Console(level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{Level: lvl}))
}

func newLogger(w io.Writer, lvl log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "rackbrowser",
	})
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
