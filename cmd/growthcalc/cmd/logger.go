package cmd

import (
	"io"
	"time"

	"github.com/rpgo/growth-calculator/internal/calculation"
	"github.com/rs/zerolog"
)

// zerologLogger adapts zerolog to the calculation engine's Logger interface.
type zerologLogger struct {
	log zerolog.Logger
}

// newLogger writes human-readable log lines to w. Only warnings and errors are
// shown unless verbose is set.
func newLogger(w io.Writer, verbose bool) calculation.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	return &zerologLogger{
		log: zerolog.New(out).Level(level).With().Timestamp().Str("service", "calculation").Logger(),
	}
}

func (z *zerologLogger) Debugf(format string, args ...any) { z.log.Debug().Msgf(format, args...) }
func (z *zerologLogger) Infof(format string, args ...any)  { z.log.Info().Msgf(format, args...) }
func (z *zerologLogger) Warnf(format string, args ...any)  { z.log.Warn().Msgf(format, args...) }
func (z *zerologLogger) Errorf(format string, args ...any) { z.log.Error().Msgf(format, args...) }
