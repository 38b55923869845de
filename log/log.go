// Package log provides the zerolog logger used by the tablex CLI.
package log

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger creates a console logger for the named component. Output goes
// to stderr so it never mixes with extraction results on stdout.
func NewLogger(component string) zerolog.Logger {
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(writer).With().Timestamp().Str("component", component).Logger()
}
