// Package logx is a level filter over the standard logger.
package logx

import (
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a flag value to a Level. Unknown names fall back to INFO.
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "NONE":
		return LevelNone
	default:
		return LevelInfo
	}
}

var (
	std   = log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds)
	level atomic.Int32
)

func init() {
	level.Store(int32(LevelInfo))
}

func SetLevel(l Level)          { level.Store(int32(l)) }
func CurrentLevel() Level       { return Level(level.Load()) }
func SetOutput(w io.Writer)     { std.SetOutput(w) }
func enabled(l Level) bool      { return l >= CurrentLevel() && l != LevelNone }
func Debugf(f string, v ...any) { logf(LevelDebug, f, v...) }
func Infof(f string, v ...any)  { logf(LevelInfo, f, v...) }
func Warnf(f string, v ...any)  { logf(LevelWarn, f, v...) }
func Errorf(f string, v ...any) { logf(LevelError, f, v...) }

func logf(l Level, format string, v ...any) {
	if !enabled(l) {
		return
	}
	std.Printf(l.String()+": "+format, v...)
}
