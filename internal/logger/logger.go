// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Level orders log severities
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel maps a configuration value (debug, info, warn, error) to a Level
func ParseLevel(s string) (Level, error) {
	for level, name := range levelNames {
		if strings.EqualFold(s, name) {
			return level, nil
		}
	}
	if strings.EqualFold(s, "warning") {
		return LevelWarn, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Logger wraps the standard log package with optional file output and a minimum level.
// Log lines go to stderr so stdout stays free for command output.
type Logger struct {
	file   *os.File
	logger *log.Logger
	level  Level
	mu     sync.RWMutex
	closed bool
}

var (
	defaultLogger *Logger
	defaultMu     sync.Mutex
)

// New creates a logger writing to w
func New(w io.Writer, level Level) *Logger {
	return &Logger{
		logger: log.New(w, "", 0),
		level:  level,
	}
}

// NewLogger creates a logger writing to stderr and, when logFile is set, to that file too
func NewLogger(logFile string, level Level) (*Logger, error) {
	if logFile == "" {
		return New(os.Stderr, level), nil
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	l := New(io.MultiWriter(os.Stderr, file), level)
	l.file = file
	return l, nil
}

// Init replaces the default logger
func Init(logFile string, level Level) (*Logger, error) {
	l, err := NewLogger(logFile, level)
	if err != nil {
		return nil, err
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
	return l, nil
}

// GetDefault returns the default logger instance.
// If it was never initialized or has been closed, a stderr-only logger takes its place.
func GetDefault() *Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultLogger == nil || defaultLogger.isClosed() {
		defaultLogger = New(os.Stderr, LevelInfo)
	}
	return defaultLogger
}

func (l *Logger) isClosed() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.closed
}

func (l *Logger) logMessage(level Level, format string, v ...interface{}) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed || level < l.level {
		return
	}

	message := fmt.Sprintf(format, v...)
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	l.logger.Printf("[%s] [%s] %s", timestamp, level, message)
}

// Printf logs a message at INFO level
func (l *Logger) Printf(format string, v ...interface{}) {
	l.logMessage(LevelInfo, format, v...)
}

// Errorf logs a message at ERROR level
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.logMessage(LevelError, format, v...)
}

// Warnf logs a message at WARN level
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.logMessage(LevelWarn, format, v...)
}

// Debugf logs a message at DEBUG level
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.logMessage(LevelDebug, format, v...)
}

// Fatalf logs a message at ERROR level and exits
func (l *Logger) Fatalf(format string, v ...interface{}) {
	l.logMessage(LevelError, format, v...)
	os.Exit(1)
}

// Close closes the log file. Later messages are dropped.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true

	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Package-level convenience functions
func Printf(format string, v ...interface{}) {
	GetDefault().Printf(format, v...)
}

func Errorf(format string, v ...interface{}) {
	GetDefault().Errorf(format, v...)
}

func Warnf(format string, v ...interface{}) {
	GetDefault().Warnf(format, v...)
}

func Debugf(format string, v ...interface{}) {
	GetDefault().Debugf(format, v...)
}

func Fatalf(format string, v ...interface{}) {
	GetDefault().Fatalf(format, v...)
}
