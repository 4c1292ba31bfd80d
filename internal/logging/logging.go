// Package logging provides the small leveled logger interface used across
// the rotator.
package logging

import (
	"log"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps a config string to a Level. Unknown values fall back to
// info.
func ParseLevel(s string) Level {
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

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// StdLogger writes printf-style records through the standard log package,
// filtered by a minimum level.
type StdLogger struct {
	Min Level
}

func (l StdLogger) Debug(msg string, args ...any) { l.emit(LevelDebug, "DEBUG: "+msg, args...) }
func (l StdLogger) Info(msg string, args ...any)  { l.emit(LevelInfo, "INFO: "+msg, args...) }
func (l StdLogger) Warn(msg string, args ...any)  { l.emit(LevelWarn, "WARN: "+msg, args...) }
func (l StdLogger) Error(msg string, args ...any) { l.emit(LevelError, "ERROR: "+msg, args...) }

func (l StdLogger) emit(lvl Level, msg string, args ...any) {
	if lvl < l.Min {
		return
	}
	log.Printf(msg, args...)
}

// Nop discards everything. Useful in tests.
type Nop struct{}

func (Nop) Debug(string, ...any) {}
func (Nop) Info(string, ...any)  {}
func (Nop) Warn(string, ...any)  {}
func (Nop) Error(string, ...any) {}
