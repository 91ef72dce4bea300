// Package logging sets up the zerolog logger shared by the payroll CLI.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "info"

// New returns a console logger writing to w at the given level.
// An empty level means DefaultLevel.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().
		Timestamp().
		Logger(), nil
}

// Stderr returns an info-level console logger on stderr.
func Stderr() zerolog.Logger {
	logger, _ := New(os.Stderr, DefaultLevel)
	return logger
}

// ParseLevel parses a zerolog level name, case-insensitively.
func ParseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		level = DefaultLevel
	}
	return zerolog.ParseLevel(strings.ToLower(level))
}
