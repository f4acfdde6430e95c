// Package logger configures the zerolog JSON logger shared by the API process.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// tsHook stamps every event with a "ts" field rendered in the configured location.
type tsHook struct {
	loc *time.Location
}

func (h tsHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	e.Str("ts", time.Now().In(h.loc).Format(time.RFC3339Nano))
}

// New builds a JSON logger writing one object per line to w.
// Unknown levels fall back to info.
func New(w io.Writer, level string, loc *time.Location) zerolog.Logger {
	if loc == nil {
		loc = time.UTC
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).Hook(tsHook{loc: loc})
}

// Init replaces the global logger. Development mode writes human-readable output to stderr.
func Init(env, level string, loc *time.Location) zerolog.Logger {
	var w io.Writer = os.Stdout
	if env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	l := New(w, level, loc)
	log.Logger = l
	return l
}
