// Package logging provides structured logging for greetlink.
// All log output goes to stderr: stdout is reserved for the program's
// fixed greeting lines and must never carry log entries.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger provides structured JSON logging with run-scoped fields.
type Logger struct {
	entry *logrus.Entry
}

var (
	// global logger instance
	global *Logger
	once   sync.Once
)

// New creates a Logger writing JSON entries to out at the given level.
// A non-empty runID is stamped onto every entry as "run_id".
func New(out io.Writer, level logrus.Level, runID string) *Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	l.SetFormatter(&logrus.JSONFormatter{})

	entry := logrus.NewEntry(l)
	if runID != "" {
		entry = entry.WithField("run_id", runID)
	}
	return &Logger{entry: entry}
}

// Init initializes the global logger. Subsequent calls are no-ops.
func Init(out io.Writer, level logrus.Level, runID string) {
	once.Do(func() {
		global = New(out, level, runID)
	})
}

// Get returns the global logger instance, initializing a default
// stderr logger if Init has not been called.
func Get() *Logger {
	if global == nil {
		Init(os.Stderr, logrus.InfoLevel, "")
	}
	return global
}

// Debug logs a debug message.
func (l *Logger) Debug(message string, context ...map[string]interface{}) {
	l.entry.WithFields(mergeContext(context...)).Debug(message)
}

// Info logs an info message.
func (l *Logger) Info(message string, context ...map[string]interface{}) {
	l.entry.WithFields(mergeContext(context...)).Info(message)
}

// Warn logs a warning message.
func (l *Logger) Warn(message string, context ...map[string]interface{}) {
	l.entry.WithFields(mergeContext(context...)).Warn(message)
}

// Error logs an error message.
func (l *Logger) Error(message string, err error, context ...map[string]interface{}) {
	entry := l.entry.WithFields(mergeContext(context...))
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Error(message)
}

// mergeContext merges multiple context maps into logrus fields.
func mergeContext(context ...map[string]interface{}) logrus.Fields {
	merged := logrus.Fields{}
	for _, c := range context {
		for k, v := range c {
			merged[k] = v
		}
	}
	return merged
}

// Convenience functions using the global logger

func Debug(message string, context ...map[string]interface{}) {
	Get().Debug(message, context...)
}

func Info(message string, context ...map[string]interface{}) {
	Get().Info(message, context...)
}

func Warn(message string, context ...map[string]interface{}) {
	Get().Warn(message, context...)
}

func Error(message string, err error, context ...map[string]interface{}) {
	Get().Error(message, err, context...)
}
