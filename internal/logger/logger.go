// Package logger wraps zerolog for Folio.
//
// The terminal belongs to the Bubble Tea program, so log output always goes to
// a file. Code that has no log file (tests, one-shot commands writing to a
// pipe) uses Nop.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger. Embedding exposes the full
// zerolog API (Debug, Info, Warn, Error, ...) directly on *Logger.
type Logger struct {
	zerolog.Logger

	closer io.Closer
}

// New opens (or creates) the log file at path and returns a JSON logger that
// tags every entry with role, a timestamp and the calling function.
func New(role, path string) (*Logger, error) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &Logger{Logger: newZerolog(file, role), closer: file}, nil
}

// NewWriter builds a logger on an arbitrary writer. The caller owns w.
func NewWriter(role string, w io.Writer) *Logger {
	return &Logger{Logger: newZerolog(w, role)}
}

func newZerolog(w io.Writer, role string) zerolog.Logger {
	return zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()
}

// Nop returns a *Logger that discards all output.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// Component returns a child logger carrying a "component" field.
func (l *Logger) Component(name string) *Logger {
	if l == nil {
		return Nop()
	}
	return &Logger{Logger: l.With().Str("component", name).Logger()}
}

// Close releases the underlying log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
