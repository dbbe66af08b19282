package utils

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the application's structured logger.
type Logger struct {
	base zerolog.Logger
}

// NewLogger creates a zerolog-backed logger. LOG_LEVEL and LOG_FORMAT
// (json|console) are honored from the environment.
func NewLogger() *Logger {
	var out = zerolog.New(os.Stdout)
	if os.Getenv("LOG_FORMAT") == "console" {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"})
	}

	level := zerolog.InfoLevel
	if lvl, err := zerolog.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL"))); err == nil && lvl != zerolog.NoLevel {
		level = lvl
	}

	return &Logger{
		base: out.With().Timestamp().Str("service", "toolshare-server").Logger().Level(level),
	}
}

// Info logs an informational message with optional key/value fields.
func (l *Logger) Info(msg string, fields ...interface{}) {
	l.event(l.base.Info(), fields).Msg(msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string, err error, fields ...interface{}) {
	l.event(l.base.Error().Err(err), fields).Msg(msg)
}

// Fatal logs and exits.
func (l *Logger) Fatal(msg string, err error) {
	l.base.Fatal().Err(err).Msg(msg)
}

func (l *Logger) event(ev *zerolog.Event, fields []interface{}) *zerolog.Event {
	for i := 0; i+1 < len(fields); i += 2 {
		if key, ok := fields[i].(string); ok {
			ev = ev.Interface(key, fields[i+1])
		}
	}
	return ev
}
