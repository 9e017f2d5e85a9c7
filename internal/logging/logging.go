// Package logging configures the process-wide zerolog output.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds a logger at the given level, falling back to info for
// unknown level names. Pretty switches from JSON lines to the console
// writer. Output goes to stderr so reports on stdout stay clean.
func New(level string, pretty bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(lvl).With().Timestamp().Logger()
}
