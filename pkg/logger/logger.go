// Package logger writes popkit's diagnostic log.
//
// Stdout belongs to the hook protocol and stderr is shown raw to the
// operator, so structured diagnostics go to a file under the popkit
// home instead. Verbosity is two switches rather than a numeric level:
// --debug turns on Info lines, --trace additionally turns on Debug
// lines. Errors are always written.
package logger

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Logger is the logging interface popkit components depend on.
// Messages take trailing key-value pairs; a dangling key is dropped.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)

	// With returns a logger that carries the given pairs on every entry.
	With(keysAndValues ...any) Logger
}

const logFileMode = 0o600

// FileLogger writes one line per entry:
//
//	2026-08-25T09:30:00Z INFO hook invoked event=PreToolUse
//
// Values containing whitespace or quotes are rendered with strconv.Quote.
type FileLogger struct {
	out   io.Writer
	base  []any
	debug bool
	trace bool
}

// NewFileLogger opens filePath for appending and logs to it.
func NewFileLogger(filePath string, debugMode, traceMode bool) (*FileLogger, error) {
	//nolint:gosec // path resolved under the popkit home
	out, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFileMode)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return NewFileLoggerWithWriter(out, debugMode, traceMode), nil
}

// NewFileLoggerWithWriter logs to an arbitrary writer.
func NewFileLoggerWithWriter(out io.Writer, debugMode, traceMode bool) *FileLogger {
	return &FileLogger{
		out:   out,
		debug: debugMode,
		trace: traceMode,
	}
}

// Debug is emitted only in trace mode.
func (l *FileLogger) Debug(msg string, keysAndValues ...any) {
	if l.trace {
		l.emit("DEBUG", msg, keysAndValues)
	}
}

// Info is emitted in debug or trace mode.
func (l *FileLogger) Info(msg string, keysAndValues ...any) {
	if l.debug || l.trace {
		l.emit("INFO", msg, keysAndValues)
	}
}

// Error is always emitted.
func (l *FileLogger) Error(msg string, keysAndValues ...any) {
	l.emit("ERROR", msg, keysAndValues)
}

// With returns a logger carrying additional base key-value pairs.
//
//nolint:ireturn // With returns the interface for chaining
func (l *FileLogger) With(keysAndValues ...any) Logger {
	base := make([]any, 0, len(l.base)+len(keysAndValues))
	base = append(base, l.base...)
	base = append(base, keysAndValues...)

	clone := *l
	clone.base = base

	return &clone
}

func (l *FileLogger) emit(level, msg string, kvs []any) {
	if l.out == nil {
		return
	}

	var b strings.Builder

	b.WriteString(time.Now().UTC().Format("2006-01-02T15:04:05Z"))
	b.WriteString(" ")
	b.WriteString(level)
	b.WriteString(" ")
	b.WriteString(msg)

	appendPairs(&b, l.base)
	appendPairs(&b, kvs)

	b.WriteString("\n")

	_, _ = io.WriteString(l.out, b.String())
}

// appendPairs renders pairs as " key=value". A trailing unpaired key
// is dropped.
func appendPairs(b *strings.Builder, kvs []any) {
	for i := 0; i+1 < len(kvs); i += 2 {
		value := fmt.Sprintf("%v", kvs[i+1])
		if strings.ContainsAny(value, " \t\n\"") {
			value = strconv.Quote(value)
		}

		fmt.Fprintf(b, " %v=%s", kvs[i], value)
	}
}

// NoOpLogger discards everything. Used where a component requires a
// logger but no log destination exists.
type NoOpLogger struct{}

// NewNoOpLogger creates a NoOpLogger.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

// Debug does nothing.
func (*NoOpLogger) Debug(string, ...any) {}

// Info does nothing.
func (*NoOpLogger) Info(string, ...any) {}

// Error does nothing.
func (*NoOpLogger) Error(string, ...any) {}

// With returns the same NoOpLogger.
//
//nolint:ireturn // With returns the interface for chaining
func (n *NoOpLogger) With(...any) Logger {
	return n
}
