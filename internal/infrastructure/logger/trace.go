package logger

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const requestIDHeader = "X-Request-ID"

// Level is the severity of a trace line. Ordering: debug < info < error.
type Level int8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

// ParseLevel converts a configuration string into a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "debug", "DEBUG":
		return LevelDebug, nil
	case "info", "INFO":
		return LevelInfo, nil
	case "error", "ERROR":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// TraceFactory holds the process-wide trace configuration: the minimum
// severity threshold and the two sinks. It is constructed once at startup and
// injected wherever request-scoped logging is needed.
type TraceFactory struct {
	threshold Level
	out       io.Writer
	errOut    io.Writer
	format    string
}

// NewTraceFactory builds a factory writing debug/info lines to stdout and
// error lines to stderr.
func NewTraceFactory(threshold Level, format string) *TraceFactory {
	return NewTraceFactoryWithSinks(threshold, format, os.Stdout, os.Stderr)
}

// NewTraceFactoryWithSinks is the injection point for tests.
func NewTraceFactoryWithSinks(threshold Level, format string, out, errOut io.Writer) *TraceFactory {
	return &TraceFactory{
		threshold: threshold,
		out:       out,
		errOut:    errOut,
		format:    format,
	}
}

// Logger returns a TraceLogger bound to one request id.
func (f *TraceFactory) Logger(requestID string) *TraceLogger {
	outSink, err := newSink(f.format, f.out)
	if err != nil {
		outSink, _ = newSink("console", f.out)
	}
	errSink, err := newSink(f.format, f.errOut)
	if err != nil {
		errSink, _ = newSink("console", f.errOut)
	}
	return &TraceLogger{
		requestID: requestID,
		threshold: f.threshold,
		out:       outSink,
		errOut:    errSink,
	}
}

// TraceLogger emits leveled log lines prefixed with the request id. A line at
// severity S is emitted iff S >= the configured threshold; debug and info go
// to the out sink, error to the error sink.
type TraceLogger struct {
	requestID string
	threshold Level
	out       zerolog.Logger
	errOut    zerolog.Logger
}

func (t *TraceLogger) Debug(text string) {
	if t.threshold <= LevelDebug {
		t.out.Debug().Msg(t.line(text))
	}
}

func (t *TraceLogger) Info(text string) {
	if t.threshold <= LevelInfo {
		t.out.Info().Msg(t.line(text))
	}
}

func (t *TraceLogger) Error(text string) {
	if t.threshold <= LevelError {
		t.errOut.Error().Msg(t.line(text))
	}
}

// RequestID returns the correlation id this logger is bound to.
func (t *TraceLogger) RequestID() string {
	return t.requestID
}

func (t *TraceLogger) line(text string) string {
	return fmt.Sprintf("[request_id=%s] %s", t.requestID, text)
}

// RequestIDFromHeader returns the inbound X-Request-ID header verbatim when
// present, otherwise a freshly generated UUID.
func RequestIDFromHeader(r *http.Request) string {
	if id := r.Header.Get(requestIDHeader); id != "" {
		return id
	}
	return uuid.NewString()
}
