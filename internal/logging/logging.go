// Package logging builds the charmbracelet/log loggers used by the CLI and
// the SSH server.
package logging

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// New returns a timestamped logger writing to w.
func New(w io.Writer, level log.Level, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// ParseLevel maps a --log-level value to a log level.
func ParseLevel(s string) (log.Level, error) {
	if s == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(s)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}
