// Package logger builds the structured zerolog logger used by the album core
// and the storage drivers. HTTP access logs stay with fiber's logger middleware.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger in development and JSON lines otherwise.
func New(dev bool) zerolog.Logger {
	return NewWithWriter(os.Stderr, dev)
}

func NewWithWriter(w io.Writer, dev bool) zerolog.Logger {
	if dev {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	level := zerolog.InfoLevel
	if dev {
		level = zerolog.DebugLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
