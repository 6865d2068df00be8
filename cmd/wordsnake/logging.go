package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

const defaultLogFile = "~/.wordsnake/wordsnake.log"

// newLogger builds the program logger writing to w at the --log-level.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "wordsnake",
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.WarnLevel
		logger.Warn("unknown log level, using warn", "level", flagLogLevel)
	}
	logger.SetLevel(level)

	return logger
}

// stderrLogger is used by commands that do not take over the terminal.
func stderrLogger() *log.Logger {
	return newLogger(os.Stderr)
}

// openLogFile opens the --log-file for appending. While the game owns the
// terminal, logs cannot go to stderr; if the file is unusable they are
// dropped.
func openLogFile() (io.Writer, func()) {
	path, err := expandHome(flagLogFile)
	if err == nil {
		err = os.MkdirAll(filepath.Dir(path), 0o755)
	}
	if err != nil {
		return io.Discard, func() {}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
