// Package util carries the ambient helpers: structured logging and path
// expansion.
package util

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Field is a key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// LogEntry is a single structured log record.
type LogEntry struct {
	Timestamp time.Time              `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// Output is a log destination.
type Output interface {
	Write(entry LogEntry) error
	Close() error
}

// Logger writes leveled, structured entries to one or more outputs.
type Logger struct {
	level   LogLevel
	outputs []Output
	mu      sync.Mutex
}

// NewLogger builds a logger at levelStr, writing to logFile and, when
// debugToConsole is set, to stderr as well.
func NewLogger(levelStr, logFile string, debugToConsole bool) *Logger {
	l := &Logger{level: parseLogLevel(levelStr)}

	if debugToConsole {
		l.outputs = append(l.outputs, NewConsoleOutput(os.Stderr, FormatText))
	}
	if logFile != "" {
		if out, err := NewFileOutput(logFile, FormatText); err == nil {
			l.outputs = append(l.outputs, out)
		} else {
			fmt.Fprintf(os.Stderr, "linestamp: log file unavailable: %v\n", err)
		}
	}
	return l
}

func parseLogLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l *Logger) log(level LogLevel, name, msg string, fields []Field) {
	if level < l.level {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now(),
		Level:     name,
		Message:   msg,
	}
	if len(fields) > 0 {
		entry.Fields = make(map[string]interface{}, len(fields))
		for _, f := range fields {
			entry.Fields[f.Key] = f.Value
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, out := range l.outputs {
		if err := out.Write(entry); err != nil {
			fmt.Fprintf(os.Stderr, "linestamp: log write failed: %v\n", err)
		}
	}
}

func (l *Logger) Debug(msg string, fields ...Field) { l.log(LevelDebug, "DEBUG", msg, fields) }
func (l *Logger) Info(msg string, fields ...Field)  { l.log(LevelInfo, "INFO", msg, fields) }
func (l *Logger) Warn(msg string, fields ...Field)  { l.log(LevelWarn, "WARN", msg, fields) }
func (l *Logger) Error(msg string, fields ...Field) { l.log(LevelError, "ERROR", msg, fields) }

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.log(LevelDebug, "DEBUG", fmt.Sprintf(format, args...), nil)
}
func (l *Logger) Infof(format string, args ...interface{}) {
	l.log(LevelInfo, "INFO", fmt.Sprintf(format, args...), nil)
}
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.log(LevelWarn, "WARN", fmt.Sprintf(format, args...), nil)
}
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.log(LevelError, "ERROR", fmt.Sprintf(format, args...), nil)
}

// Close flushes and closes all outputs.
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, out := range l.outputs {
		out.Close()
	}
}

var (
	globalLogger *Logger
	loggerOnce   sync.Once
)

// InitLogger initializes the process-wide logger once.
func InitLogger(logLevel, logFile string, debugToConsole bool) {
	loggerOnce.Do(func() {
		globalLogger = NewLogger(logLevel, logFile, debugToConsole)
	})
}

func LogDebug(msg string) {
	if globalLogger != nil {
		globalLogger.Debug(msg)
	}
}

func LogDebugf(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Debugf(format, args...)
	}
}

func LogInfo(msg string) {
	if globalLogger != nil {
		globalLogger.Info(msg)
	}
}

func LogInfof(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Infof(format, args...)
	}
}

func LogWarn(msg string) {
	if globalLogger != nil {
		globalLogger.Warn(msg)
	}
}

func LogWarnf(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Warnf(format, args...)
	}
}

func LogError(msg string) {
	if globalLogger != nil {
		globalLogger.Error(msg)
	}
}

func LogErrorf(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Errorf(format, args...)
	}
}
