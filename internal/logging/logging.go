// Package logging provides the file-backed run logger shared by the
// questionnaire, the collaborator client, and the document generator.
// Log output never reaches stdout; the terminal belongs to the interview.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Level controls logging verbosity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger writes timestamped leveled lines tagged with a component name.
type Logger struct {
	component string
	logger    *log.Logger
	logFile   io.Closer
	level     Level
}

// Open creates a logger appending to <dir>/design.log. The log file is
// best-effort: any setup failure yields a logger that discards output
// rather than failing the run.
func Open(dir, level, component string) *Logger {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Discard(component)
	}
	logPath := filepath.Join(dir, "design.log")
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return Discard(component)
	}
	return newLogger(component, level, f, f)
}

// Discard returns a logger that drops everything.
func Discard(component string) *Logger {
	return newLogger(component, "error", io.Discard, nil)
}

// newLogger is the internal constructor that accepts an io.Writer for testing.
func newLogger(component, level string, w io.Writer, closer io.Closer) *Logger {
	return &Logger{
		component: component,
		logger:    log.New(w, "", 0),
		logFile:   closer,
		level:     ParseLevel(level),
	}
}

// WithComponent returns a logger writing to the same destination under a
// different component tag. Only the logger returned by Open holds the file
// handle; closing a derived logger is a no-op.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		component: component,
		logger:    l.logger,
		level:     l.level,
	}
}

// Close releases the log file handle.
func (l *Logger) Close() error {
	if l.logFile != nil {
		return l.logFile.Close()
	}
	return nil
}

func (l *Logger) Debugf(format string, args ...any) {
	l.log(LevelDebug, format, args...)
}

func (l *Logger) Infof(format string, args ...any) {
	l.log(LevelInfo, format, args...)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.log(LevelWarn, format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.log(LevelError, format, args...)
}

func (l *Logger) log(level Level, format string, args ...any) {
	if level < l.level {
		return
	}
	levelStr := "INFO"
	switch level {
	case LevelDebug:
		levelStr = "DEBUG"
	case LevelWarn:
		levelStr = "WARN"
	case LevelError:
		levelStr = "ERROR"
	}
	msg := fmt.Sprintf(format, args...)
	l.logger.Printf("%s %s %s: %s", time.Now().Format(time.RFC3339), levelStr, l.component, msg)
}
