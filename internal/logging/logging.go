package logging

import (
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level selects which messages are written.
// Messages below the active level are discarded.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelNone
)

var names = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warning": LevelWarning,
	"warn":    LevelWarning,
	"error":   LevelError,
	"none":    LevelNone,
}

// ParseLevel maps a level name (case insensitive) to a Level.
// Unknown names yield LevelNone and false.
func ParseLevel(s string) (Level, bool) {
	l, ok := names[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return LevelNone, false
	}
	return l, true
}

var (
	mx      sync.Mutex
	level   Level
	out     io.Writer = os.Stderr
	debug   *log.Logger
	info    *log.Logger
	warning *log.Logger
	error   *log.Logger
)

func init() {
	flags := log.Ldate | log.Ltime | log.LUTC
	debug = log.New(io.Discard, "D ", flags)
	info = log.New(io.Discard, "I ", flags)
	warning = log.New(io.Discard, "W ", flags)
	error = log.New(io.Discard, "E ", flags)

	SetLevel(LevelWarning)
}

// SetLevel activates all loggers at or above l.
func SetLevel(l Level) {
	mx.Lock()
	defer mx.Unlock()
	level = l
	apply()
}

// SetOutput redirects all active loggers to w.
func SetOutput(w io.Writer) {
	mx.Lock()
	defer mx.Unlock()
	out = w
	apply()
}

// CurrentLevel returns the active level.
func CurrentLevel() Level {
	mx.Lock()
	defer mx.Unlock()
	return level
}

func apply() {
	for i, lg := range []*log.Logger{debug, info, warning, error} {
		if Level(i) >= level {
			lg.SetOutput(out)
		} else {
			lg.SetOutput(io.Discard)
		}
	}
}

func Debug(msg string, v ...interface{}) {
	debug.Printf(msg, v...)
}

func Info(msg string, v ...interface{}) {
	info.Printf(msg, v...)
}

func Warning(msg string, v ...interface{}) {
	warning.Printf(msg, v...)
}

func Error(msg string, v ...interface{}) {
	error.Printf(msg, v...)
}
