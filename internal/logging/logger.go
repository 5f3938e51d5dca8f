// Package logging configures the zerolog logger shared by all commands.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New creates a root logger writing to the given writer at the specified
// level. If w is nil, defaults to pretty console output on stderr.
func New(w io.Writer, level string) zerolog.Logger {
	if w == nil {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	zl := zerolog.New(w).With().Timestamp().Logger()
	return zl.Level(ParseLevel(level))
}

// Sub returns a child logger tagged with a subsystem name.
func Sub(l zerolog.Logger, subsystem string) zerolog.Logger {
	return l.With().Str("subsystem", subsystem).Logger()
}

// ParseLevel maps a level name to a zerolog level. Unknown names fall back
// to warn so scan output stays clean by default.
func ParseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "silent":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}
