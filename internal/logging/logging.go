package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the operational logger. Production emits JSON, development
// a human readable console format.
func New(level string, production bool) zerolog.Logger {
	return NewWithWriter(os.Stderr, level, production)
}

// NewWithWriter is New with an explicit output.
func NewWithWriter(w io.Writer, level string, production bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	out := w
	if !production {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
