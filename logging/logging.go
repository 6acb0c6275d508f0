// Package logging builds the zerolog loggers shared by the flycam binaries.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options selects the level and destinations of a logger.
type Options struct {
	// Level is one of trace, debug, info, warn, error. Unknown values select info.
	Level string
	// Console receives colourised console output. Nil disables it.
	Console io.Writer
	// File receives uncoloured console output. Nil disables it.
	File io.Writer
}

// ParseLevel maps a configured level name to a zerolog level.
//
// Parameters:
//   - name: the level name, case-insensitive
//
// Returns:
//   - zerolog.Level: the level
//   - bool: false if the name was not recognised and info was chosen instead
func ParseLevel(name string) (zerolog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TRACE":
		return zerolog.TraceLevel, true
	case "DEBUG":
		return zerolog.DebugLevel, true
	case "INFO":
		return zerolog.InfoLevel, true
	case "WARN", "WARNING":
		return zerolog.WarnLevel, true
	case "ERROR":
		return zerolog.ErrorLevel, true
	default:
		return zerolog.InfoLevel, false
	}
}

// New builds a timestamped logger writing console-formatted lines to the configured outputs.
// With no outputs it returns a disabled logger.
//
// Parameters:
//   - opts: level and destinations
//
// Returns:
//   - zerolog.Logger: the logger
func New(opts Options) zerolog.Logger {
	var writers []io.Writer
	if opts.Console != nil {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        opts.Console,
			TimeFormat: time.RFC3339,
		})
	}
	if opts.File != nil {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        opts.File,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		})
	}
	if len(writers) == 0 {
		return zerolog.Nop()
	}

	level, known := ParseLevel(opts.Level)
	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().Timestamp().Logger()
	if !known {
		logger.Warn().Str("level", opts.Level).Msg("unknown log level, using info")
	}
	return logger
}

// OpenFile opens a log file for appending, creating it when needed.
//
// Parameters:
//   - path: the file path
//
// Returns:
//   - *os.File: the open file
//   - error: any error from opening the file
func OpenFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// Sampled returns a logger that lets through a burst of events per period and drops the rest.
// It keeps per-frame messages from flooding the output.
//
// Parameters:
//   - logger: the parent logger
//   - burst: events allowed per period
//   - period: the sampling period
//
// Returns:
//   - zerolog.Logger: the sampled logger
func Sampled(logger zerolog.Logger, burst uint32, period time.Duration) zerolog.Logger {
	return logger.Sample(&zerolog.BurstSampler{
		Burst:  burst,
		Period: period,
	})
}
