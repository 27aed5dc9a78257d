// Package logger wraps slog with printf-style helpers.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Logger writes text-formatted slog records. The zero value is not usable;
// construct one with New or NewWithWriter.
type Logger struct {
	l *slog.Logger
}

// New returns an info-level logger writing to stderr.
func New() *Logger { return NewWithWriter(os.Stderr, false) }

// NewWithWriter writes text records to w. Debug records are emitted only
// when verbose is set.
func NewWithWriter(w io.Writer, verbose bool) *Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return &Logger{l: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))}
}

func (l *Logger) Debugf(format string, args ...any) {
	l.l.Debug(fmt.Sprintf(format, args...))
}
func (l *Logger) Infof(format string, args ...any) {
	l.l.Info(fmt.Sprintf(format, args...))
}
func (l *Logger) Errorf(format string, args ...any) {
	l.l.Error(fmt.Sprintf(format, args...))
}
