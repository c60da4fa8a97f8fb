// Package app ties the editor together: it owns the open document, the
// viewport, the renderer and the terminal backend, and runs the
// render, read, dispatch loop.
package app

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// LogLevelDebug is for detailed debugging information.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is for general informational messages.
	LogLevelInfo
	// LogLevelWarn is for warning messages.
	LogLevelWarn
	// LogLevelError is for error messages.
	LogLevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLogLevel parses a string into a LogLevel. Unknown names give info.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "debug":
		return LogLevelDebug
	case "info":
		return LogLevelInfo
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// Logger writes leveled log lines with attached fields.
//
// The terminal belongs to the editor while it runs, so the application only
// ever logs to a file or to NullLogger.
type Logger struct {
	mu       *sync.Mutex
	level    LogLevel
	output   io.Writer
	prefix   string
	fields   map[string]any
	disabled bool
	now      func() time.Time
}

// LoggerConfig configures the logger.
type LoggerConfig struct {
	// Level is the minimum log level to output.
	Level LogLevel
	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer
	// Prefix is prepended to all log messages.
	Prefix string
}

// DefaultLoggerConfig returns the default logger configuration.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:  LogLevelInfo,
		Output: os.Stderr,
		Prefix: "kilo",
	}
}

// NewLogger creates a new logger with the given configuration.
func NewLogger(cfg LoggerConfig) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	return &Logger{
		mu:     &sync.Mutex{},
		level:  cfg.Level,
		output: cfg.Output,
		prefix: cfg.Prefix,
		fields: make(map[string]any),
		now:    time.Now,
	}
}

// NewSessionLogger creates a logger tagged with a fresh session ID, so the
// lines of one editing session can be told apart in a shared log file.
func NewSessionLogger(cfg LoggerConfig) *Logger {
	return NewLogger(cfg).WithField("session", uuid.NewString())
}

// WithField returns a new logger with the given field added.
func (l *Logger) WithField(key string, value any) *Logger {
	return l.WithFields(map[string]any{key: value})
}

// WithFields returns a new logger with the given fields added.
// The new logger shares the output and its lock with l.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	newFields := make(map[string]any, len(l.fields)+len(fields))
	maps.Copy(newFields, l.fields)
	maps.Copy(newFields, fields)

	return &Logger{
		mu:       l.mu,
		level:    l.level,
		output:   l.output,
		prefix:   l.prefix,
		fields:   newFields,
		disabled: l.disabled,
		now:      l.now,
	}
}

// WithComponent returns a new logger with the component field set.
func (l *Logger) WithComponent(component string) *Logger {
	return l.WithField("component", component)
}

// Field returns the value of a field attached to the logger.
func (l *Logger) Field(key string) (any, bool) {
	v, ok := l.fields[key]
	return v, ok
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	l.log(LogLevelDebug, msg, args...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) {
	l.log(LogLevelInfo, msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.log(LogLevelWarn, msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) {
	l.log(LogLevelError, msg, args...)
}

// log writes a log message if the level is enabled. Fields are written in
// key order.
func (l *Logger) log(level LogLevel, msg string, args ...any) {
	if l.disabled || level < l.level {
		return
	}

	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	var sb strings.Builder
	sb.WriteString(l.now().Format("2006-01-02T15:04:05.000"))
	fmt.Fprintf(&sb, " [%s] ", level)
	if l.prefix != "" {
		sb.WriteString(l.prefix)
		sb.WriteString(": ")
	}
	sb.WriteString(msg)

	if len(l.fields) > 0 {
		sb.WriteString(" {")
		for i, k := range slices.Sorted(maps.Keys(l.fields)) {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%s=%v", k, l.fields[k])
		}
		sb.WriteString("}")
	}
	sb.WriteByte('\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.output, sb.String())
}

// NullLogger is a logger that discards all output.
var NullLogger = &Logger{mu: &sync.Mutex{}, disabled: true, now: time.Now}

// appLogger is the process-wide logger instance.
var (
	appLoggerMu sync.RWMutex
	appLogger   = NullLogger
)

// GetLogger returns the process-wide logger. It is NullLogger until
// SetLogger is called.
func GetLogger() *Logger {
	appLoggerMu.RLock()
	defer appLoggerMu.RUnlock()
	return appLogger
}

// SetLogger sets the process-wide logger. A nil logger restores NullLogger.
func SetLogger(l *Logger) {
	if l == nil {
		l = NullLogger
	}
	appLoggerMu.Lock()
	defer appLoggerMu.Unlock()
	appLogger = l
}

// Logger returns the application's logger instance.
func (app *Application) Logger() *Logger {
	if app.logger == nil {
		return GetLogger()
	}
	return app.logger
}

// openLogger builds the session logger. An empty path discards logs.
// The returned closer is nil when nothing needs closing.
func openLogger(level, path string) (*Logger, io.Closer, error) {
	if path == "" {
		return NullLogger, nil, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}

	logger := NewSessionLogger(LoggerConfig{
		Level:  ParseLogLevel(level),
		Output: f,
		Prefix: "kilo",
	})
	return logger, f, nil
}
