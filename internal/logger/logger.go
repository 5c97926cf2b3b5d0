package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pterm/pterm"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures where log records go
type Options struct {
	Dir        string
	MaxSizeMB  int
	MaxBackups int
	// Console mirrors records to stderr in color
	Console bool
}

// Logger writes JSON records to a daily, size-rotated file and optionally
// echoes them to the console.
type Logger struct {
	file    *pterm.Logger
	console *pterm.Logger
	closer  io.Closer
}

// New opens (or creates) <dir>/YYYY-MM-DD.log
func New(opts Options) (*Logger, error) {
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(opts.Dir, time.Now().Format("2006-01-02")+".log"),
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
	}

	l := &Logger{
		file: pterm.DefaultLogger.
			WithFormatter(pterm.LogFormatterJSON).
			WithWriter(rotator).
			WithLevel(pterm.LogLevelDebug).
			WithTime(true).
			WithTimeFormat("2006-01-02 15:04:05"),
		closer: rotator,
	}
	if opts.Console {
		l.console = pterm.DefaultLogger.
			WithWriter(os.Stderr).
			WithLevel(pterm.LogLevelDebug).
			WithTimeFormat("2006-01-02 15:04:05")
	}
	return l, nil
}

// NewWriter returns a logger that writes JSON records to w; used by tests
// and when the log directory is not writable.
func NewWriter(w io.Writer) *Logger {
	return &Logger{
		file: pterm.DefaultLogger.
			WithFormatter(pterm.LogFormatterJSON).
			WithWriter(w).
			WithLevel(pterm.LogLevelDebug),
	}
}

// Nop discards everything
func Nop() *Logger {
	return NewWriter(io.Discard)
}

// fields replaces error values with their text; the JSON formatter would
// otherwise marshal them as empty objects
func fields(kv []any) []any {
	out := make([]any, len(kv))
	for i, v := range kv {
		if err, ok := v.(error); ok && err != nil {
			out[i] = err.Error()
			continue
		}
		out[i] = v
	}
	return out
}

// Debug logs a debug record with key/value pairs
func (l *Logger) Debug(msg string, kv ...any) {
	l.file.Debug(msg, l.file.Args(fields(kv)...))
	if l.console != nil {
		l.console.Debug(msg, l.console.Args(fields(kv)...))
	}
}

// Info logs an informational record
func (l *Logger) Info(msg string, kv ...any) {
	l.file.Info(msg, l.file.Args(fields(kv)...))
	if l.console != nil {
		l.console.Info(msg, l.console.Args(fields(kv)...))
	}
}

// Warn logs a warning record
func (l *Logger) Warn(msg string, kv ...any) {
	l.file.Warn(msg, l.file.Args(fields(kv)...))
	if l.console != nil {
		l.console.Warn(msg, l.console.Args(fields(kv)...))
	}
}

// Error logs an error record
func (l *Logger) Error(msg string, kv ...any) {
	l.file.Error(msg, l.file.Args(fields(kv)...))
	if l.console != nil {
		l.console.Error(msg, l.console.Args(fields(kv)...))
	}
}

// Close flushes and closes the log file
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
