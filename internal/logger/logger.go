// Package logger provides a simple logging interface for panicribbon components.
// It allows packages to log debug, info, warn, and error messages without
// being coupled to a specific logging implementation.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// DebugEnv enables debug output when set to any non-empty value.
const DebugEnv = "PANICRIBBON_DEBUG"

// TimestampFormat is the ISO-8601 local timestamp used in log file lines.
const TimestampFormat = "2006-01-02T15:04:05.000"

// Logger defines the interface for logging operations.
// All methods accept a format string and arguments, similar to fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

func debugEnabled() bool {
	return os.Getenv(DebugEnv) != ""
}

// consoleLogger writes leveled, styled lines to a terminal stream.
type consoleLogger struct {
	l *log.Logger
}

// NewConsole creates a logger that writes styled lines to w.
// Debug messages are only printed when PANICRIBBON_DEBUG is set.
func NewConsole(w io.Writer) Logger {
	l := log.NewWithOptions(w, log.Options{
		Level:           log.InfoLevel,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
	if debugEnabled() {
		l.SetLevel(log.DebugLevel)
	}
	return &consoleLogger{l: l}
}

func (c *consoleLogger) Debug(format string, args ...interface{}) { c.l.Debugf(format, args...) }
func (c *consoleLogger) Info(format string, args ...interface{})  { c.l.Infof(format, args...) }
func (c *consoleLogger) Warn(format string, args ...interface{})  { c.l.Warnf(format, args...) }
func (c *consoleLogger) Error(format string, args ...interface{}) { c.l.Errorf(format, args...) }

// FileLogger appends one "[<timestamp>] <message>" line per entry to a log
// file and forwards every entry to an optional mirror.
// Safe for concurrent use.
type FileLogger struct {
	mu     sync.Mutex
	w      io.Writer
	closer io.Closer
	closed bool
	mirror Logger
	now    func() time.Time
}

// OpenFile opens (creating if needed) path for appending.
// mirror may be nil.
func OpenFile(path string, mirror Logger) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	fl := NewWriter(f, mirror)
	fl.closer = f
	return fl, nil
}

// NewWriter creates a FileLogger over an arbitrary writer.
func NewWriter(w io.Writer, mirror Logger) *FileLogger {
	return &FileLogger{
		w:      w,
		mirror: mirror,
		now:    time.Now,
	}
}

// Close closes the underlying file, if any. Later entries still reach the
// mirror but are no longer written to the file.
func (f *FileLogger) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	if f.closer == nil {
		return nil
	}
	err := f.closer.Close()
	f.closer = nil
	return err
}

func (f *FileLogger) write(format string, args ...interface{}) {
	line := fmt.Sprintf("[%s] %s\n", f.now().Format(TimestampFormat), fmt.Sprintf(format, args...))

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	if _, err := io.WriteString(f.w, line); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to log file: %v\n", err)
	}
}

func (f *FileLogger) Debug(format string, args ...interface{}) {
	if !debugEnabled() {
		return
	}
	f.write(format, args...)
	if f.mirror != nil {
		f.mirror.Debug(format, args...)
	}
}

func (f *FileLogger) Info(format string, args ...interface{}) {
	f.write(format, args...)
	if f.mirror != nil {
		f.mirror.Info(format, args...)
	}
}

func (f *FileLogger) Warn(format string, args ...interface{}) {
	f.write(format, args...)
	if f.mirror != nil {
		f.mirror.Warn(format, args...)
	}
}

func (f *FileLogger) Error(format string, args ...interface{}) {
	f.write(format, args...)
	if f.mirror != nil {
		f.mirror.Error(format, args...)
	}
}

// noopLogger implements Logger but discards all messages.
type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(format string, args ...interface{}) {}
func (l *noopLogger) Info(format string, args ...interface{})  {}
func (l *noopLogger) Warn(format string, args ...interface{})  {}
func (l *noopLogger) Error(format string, args ...interface{}) {}

// LogMessage represents a captured log message.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures log messages for testing.
// Health checks log from their own goroutines, so it locks.
type BufferLogger struct {
	mu       sync.Mutex
	Messages []LogMessage
}

// NewBufferLogger creates a logger that captures messages for inspection.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{
		Messages: make([]LogMessage, 0),
	}
}

func (l *BufferLogger) add(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Messages = append(l.Messages, LogMessage{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Debug(format string, args ...interface{}) { l.add("debug", format, args...) }
func (l *BufferLogger) Info(format string, args ...interface{})  { l.add("info", format, args...) }
func (l *BufferLogger) Warn(format string, args ...interface{})  { l.add("warn", format, args...) }
func (l *BufferLogger) Error(format string, args ...interface{}) { l.add("error", format, args...) }

// Snapshot returns a copy of the captured messages.
func (l *BufferLogger) Snapshot() []LogMessage {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]LogMessage, len(l.Messages))
	copy(out, l.Messages)
	return out
}

// HasLevel returns true if any message was logged at the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	for _, m := range l.Snapshot() {
		if m.Level == level {
			return true
		}
	}
	return false
}

// Contains reports whether any captured message contains substr.
func (l *BufferLogger) Contains(substr string) bool {
	for _, m := range l.Snapshot() {
		if strings.Contains(m.Message, substr) {
			return true
		}
	}
	return false
}

// Clear removes all captured messages.
func (l *BufferLogger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Messages = l.Messages[:0]
}

