package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// zerologAdapter backs the Logger interface with rs/zerolog. Output is
// structured JSON; setting APP_ENV=dev switches to the human-readable
// console writer for local play sessions.
type zerologAdapter struct {
	log zerolog.Logger
}

// NewZerologLogger returns a zerolog-backed Logger. Every line carries the
// component field so engine, API and adapter logs stay distinguishable in
// one stream.
func NewZerologLogger(component string) Logger {
	z := zerolog.New(os.Stdout)
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		z = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}
	return &zerologAdapter{log: z.With().Timestamp().Str("component", component).Logger()}
}

func (l *zerologAdapter) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l *zerologAdapter) Debugw(msg string, fields map[string]any) {
	ev := l.log.Debug()
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}

func (l *zerologAdapter) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *zerologAdapter) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *zerologAdapter) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}
