package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Setup initializes a zerolog.Logger based on the requested format and level.
// format can be "text" (human-friendly console) or "json" (structured).
// An unknown level falls back to info.
func Setup(format, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if format == "text" {
		return zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger().Level(lvl)
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger().Level(lvl)
}

// Discard returns a logger that drops every event.
func Discard() zerolog.Logger {
	return zerolog.Nop()
}
