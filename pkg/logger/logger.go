// Package logger provides a small leveled logging interface used across the service.
package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
)

// Logger defines the logging interface
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})
	Info(v ...interface{})
	Infof(format string, v ...interface{})
	Warn(v ...interface{})
	Warnf(format string, v ...interface{})
	Error(v ...interface{})
	Errorf(format string, v ...interface{})
	Fatal(v ...interface{})
	Fatalf(format string, v ...interface{})
}

// Level represents logging levels
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelPrefix = map[Level]string{
	LevelDebug: "[DEBUG] ",
	LevelInfo:  "[INFO] ",
	LevelWarn:  "[WARN] ",
	LevelError: "[ERROR] ",
}

type logger struct {
	level Level
	out   *log.Logger
	err   *log.Logger
	mu    sync.RWMutex
}

// New creates a logger whose minimum level is taken from LOG_LEVEL.
func New() Logger {
	return &logger{
		level: ParseLevel(os.Getenv("LOG_LEVEL")),
		out:   log.New(os.Stdout, "", log.LstdFlags),
		err:   log.New(os.Stderr, "", log.LstdFlags),
	}
}

// ParseLevel converts a string log level to a Level, defaulting to info.
func ParseLevel(levelStr string) Level {
	switch strings.ToLower(levelStr) {
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

func (l *logger) enabled(level Level) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return level >= l.level
}

func (l *logger) print(level Level, msg string) {
	if !l.enabled(level) {
		return
	}
	target := l.out
	if level >= LevelError {
		target = l.err
	}
	target.Output(3, levelPrefix[level]+msg)
}

func (l *logger) Debug(v ...interface{}) { l.print(LevelDebug, fmt.Sprint(v...)) }
func (l *logger) Debugf(format string, v ...interface{}) {
	l.print(LevelDebug, fmt.Sprintf(format, v...))
}

func (l *logger) Info(v ...interface{}) { l.print(LevelInfo, fmt.Sprint(v...)) }
func (l *logger) Infof(format string, v ...interface{}) {
	l.print(LevelInfo, fmt.Sprintf(format, v...))
}

func (l *logger) Warn(v ...interface{}) { l.print(LevelWarn, fmt.Sprint(v...)) }
func (l *logger) Warnf(format string, v ...interface{}) {
	l.print(LevelWarn, fmt.Sprintf(format, v...))
}

func (l *logger) Error(v ...interface{}) { l.print(LevelError, fmt.Sprint(v...)) }
func (l *logger) Errorf(format string, v ...interface{}) {
	l.print(LevelError, fmt.Sprintf(format, v...))
}

func (l *logger) Fatal(v ...interface{}) {
	l.print(LevelError, fmt.Sprint(v...))
	os.Exit(1)
}

func (l *logger) Fatalf(format string, v ...interface{}) {
	l.print(LevelError, fmt.Sprintf(format, v...))
	os.Exit(1)
}
