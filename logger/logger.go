// Package logger builds the charmbracelet loggers used across worldclock.
// The terminal belongs to the UI while it runs, so logs go to a file or
// nowhere.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
)

// ErrInvalidLevel is returned for a log level charmbracelet/log does not
// know.
var ErrInvalidLevel = errors.New("invalid log level")

// DefaultLevel applies when no level is configured.
const DefaultLevel = "info"

// ParseLevel parses a case-insensitive level name. An empty name yields
// [DefaultLevel].
func ParseLevel(level string) (log.Level, error) {
	if strings.TrimSpace(level) == "" {
		level = DefaultLevel
	}
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return 0, errors.Mark(errors.Newf("%q: supported levels are debug, info, warn, error, fatal", level), ErrInvalidLevel)
	}
	return lvl, nil
}

// New returns a timestamped logger writing to w at the given level.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           lvl,
		Prefix:          "worldclock",
	}), nil
}

// Nop returns a logger that discards everything.
func Nop() *log.Logger {
	return log.New(io.Discard)
}

// Open returns the destination for log output. An empty path discards
// output; "-" selects stderr, which is only useful when the UI is not
// attached to it.
func Open(path string) (io.WriteCloser, error) {
	switch path {
	case "":
		return nopCloser{io.Discard}, nil
	case "-":
		return nopCloser{os.Stderr}, nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %q", path)
	}
	return f, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
