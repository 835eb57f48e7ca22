// Package zlog adapts zerolog to the kratos log.Logger interface.
package zlog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/rs/zerolog"
)

var _ log.Logger = (*Logger)(nil)

// Logger writes kratos key/value pairs as zerolog fields.
type Logger struct {
	log zerolog.Logger
}

// Option configures a Logger.
type Option func(*options)

type options struct {
	level  string
	format string
	output io.Writer
}

// WithLevel sets the minimum level: debug, info, warn, error, fatal.
func WithLevel(level string) Option {
	return func(o *options) { o.level = level }
}

// WithFormat selects "json" (default) or "console" output.
func WithFormat(format string) Option {
	return func(o *options) { o.format = format }
}

// WithOutput sets the destination writer, os.Stdout by default.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.output = w }
}

// New returns a zerolog-backed kratos logger.
func New(opts ...Option) *Logger {
	o := options{level: "info", format: "json", output: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.MessageFieldName = "msg"

	out := o.output
	if o.format == "console" {
		out = zerolog.ConsoleWriter{Out: o.output, TimeFormat: "15:04:05"}
	}
	return &Logger{log: zerolog.New(out).Level(parseLevel(o.level))}
}

// Log implements log.Logger.
func (l *Logger) Log(level log.Level, keyvals ...interface{}) error {
	var event *zerolog.Event
	switch level {
	case log.LevelDebug:
		event = l.log.Debug()
	case log.LevelInfo:
		event = l.log.Info()
	case log.LevelWarn:
		event = l.log.Warn()
	case log.LevelError:
		event = l.log.Error()
	case log.LevelFatal:
		// zerolog's Fatal exits the process; kratos' helper does that itself.
		event = l.log.WithLevel(zerolog.FatalLevel)
	default:
		event = l.log.Info()
	}

	if len(keyvals)%2 != 0 {
		keyvals = append(keyvals, "KEYVALS UNPAIRED")
	}

	var msg string
	for i := 0; i < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			key = fmt.Sprint(keyvals[i])
		}
		if key == log.DefaultMessageKey {
			msg = fmt.Sprint(keyvals[i+1])
			continue
		}
		switch v := keyvals[i+1].(type) {
		case error:
			event = event.AnErr(key, v)
		case fmt.Stringer:
			event = event.Str(key, v.String())
		default:
			event = event.Interface(key, v)
		}
	}
	event.Msg(msg)
	return nil
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}
