// Package logger builds the process zerolog logger and the per-request
// trace loggers used by the HTTP interception layer.
package logger

import (
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New constructs the process logger from level and format configuration.
// Format is either "json" or "console".
func New(level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Logger{}, err
	}

	sink, err := newSink(format, os.Stdout)
	if err != nil {
		return zerolog.Logger{}, err
	}

	zerolog.SetGlobalLevel(lvl)
	return sink.Level(lvl), nil
}

func newSink(format string, out io.Writer) (zerolog.Logger, error) {
	switch strings.ToLower(format) {
	case "json":
		return zerolog.New(out).With().Timestamp().Logger(), nil
	case "console":
		consoleWriter := zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
		return zerolog.New(consoleWriter).With().Timestamp().Logger(), nil
	default:
		return zerolog.Logger{}, errors.New("unsupported log format")
	}
}
