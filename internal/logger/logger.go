// Package logger builds the process [slog.Logger].
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type Options struct {
	Level  string // debug, info, warn or error; empty keeps the slog default
	File   string // append logs to file; empty or "-" for stderr
	Format string // text or json
}

func level(option string) (slog.Leveler, bool) {
	switch strings.ToLower(option) {
	case "":
		return nil, true
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return nil, false
	}
}

// New returns a logger for options and the closer of its output. Unusable
// options fall back to their defaults and the fallback is logged as a warning.
// Closing is a no-op unless the logger writes to a file.
func New(options *Options) (*slog.Logger, io.Closer) {
	return newTo(options, os.Stderr)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func newTo(options *Options, stderr io.Writer) (*slog.Logger, io.Closer) {
	level, ok := level(options.Level)
	if !ok {
		options.Level = ""
		logger, closer := newTo(options, stderr)
		logger.Warn("could not parse logger level")
		return logger, closer
	}
	opts := slog.HandlerOptions{Level: level}

	var output io.Writer
	var closer io.Closer = nopCloser{}
	switch options.File {
	case "", "-":
		output = stderr
	case os.DevNull:
		return slog.New(slog.DiscardHandler), closer
	default:
		f, err := os.OpenFile(options.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			options.File = ""
			logger, closer := newTo(options, stderr)
			logger.Warn("could not open logger file", "err", err)
			return logger, closer
		}
		output, closer = f, f
	}

	switch strings.ToLower(options.Format) {
	case "json":
		return slog.New(slog.NewJSONHandler(output, &opts)), closer
	case "text", "":
		return slog.New(slog.NewTextHandler(output, &opts)), closer
	default:
		options.Format = "text"
		logger := slog.New(slog.NewTextHandler(output, &opts))
		logger.Warn("could not parse logger format")
		return logger, closer
	}
}
