// Package logger wraps zerolog with the constructors the CLI needs: a file
// logger that keeps the terminal clean during interactive prompts, and a
// no-op logger for tests.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger embeds zerolog.Logger so the full zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

// New builds a JSON logger writing to the given file path, appending across
// runs. If the file cannot be opened, output falls back to stderr so log
// lines never interleave with the profile printed on stdout.
func New(path, level string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	out := os.Stderr
	if path != "" {
		if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
			out = f
		}
	}

	l := zerolog.New(out).Level(lvl).With().
		Str("role", "cli").
		Timestamp().
		Logger()

	return &Logger{l}
}

// Nop returns a logger that discards everything. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}
