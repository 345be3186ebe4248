package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type LoggerType uint8

const (
	ConsoleLogger LoggerType = iota
	JSONLogger
)

// Options for New
type Options struct {
	// The zero value is zerolog.DebugLevel
	LogLevel zerolog.Level
	Type     LoggerType
	// Defaults to stderr, stdout carries packed output
	Out io.Writer
}

func ParseLogLevel(loglevel string) (zerolog.Level, error) {
	return zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(loglevel)))
}

func ParseLoggerType(s string) (LoggerType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "console":
		return ConsoleLogger, nil
	case "json":
		return JSONLogger, nil
	default:
		return 0, fmt.Errorf("unknown log format %q, must be console or json", s)
	}
}

// New builds the root logger.
func New(opts Options) zerolog.Logger {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	if opts.Type == ConsoleLogger {
		out = newConsoleWriter(out)
	}

	return zerolog.New(out).Level(opts.LogLevel).
		With().Timestamp().Logger()
}

// Component tags every entry of l with the subsystem name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

func newConsoleWriter(out io.Writer) zerolog.ConsoleWriter {
	cw := zerolog.ConsoleWriter{Out: out, NoColor: true, TimeFormat: time.RFC3339}

	cw.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("%-5s", i))
	}
	return cw
}
