package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds the process logger. An unknown level falls back to info and a
// nil writer logs to stderr so answers on stdout stay clean.
func New(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	if w == nil {
		w = os.Stderr
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Caller().
		Logger()
}
