// Package logger wraps zerolog behind a small printf-style interface.
package logger

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nhoxwy/pos-availability/pkg/correlation"
)

type Interface interface {
	Debug(message interface{}, args ...interface{})
	Info(message string, args ...interface{})
	Warn(message string, args ...interface{})
	Error(message interface{}, args ...interface{})
	Fatal(message interface{}, args ...interface{})
}

// Logger writes structured JSON logs to stdout.
type Logger struct {
	logger *zerolog.Logger
}

var _ Interface = (*Logger)(nil)

func New(level string) *Logger {
	var l zerolog.Level

	switch strings.ToLower(level) {
	case "error":
		l = zerolog.ErrorLevel
	case "warn":
		l = zerolog.WarnLevel
	case "info":
		l = zerolog.InfoLevel
	case "debug":
		l = zerolog.DebugLevel
	default:
		l = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(l)

	logger := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Logger()

	return &Logger{
		logger: &logger,
	}
}

func (l *Logger) Debug(message interface{}, args ...interface{}) {
	l.msg(l.logger.Debug(), message, args...)
}

func (l *Logger) Info(message string, args ...interface{}) {
	l.logEvent(l.logger.Info(), message, args...)
}

func (l *Logger) Warn(message string, args ...interface{}) {
	l.logEvent(l.logger.Warn(), message, args...)
}

func (l *Logger) Error(message interface{}, args ...interface{}) {
	l.msg(l.logger.Error(), message, args...)
}

func (l *Logger) Fatal(message interface{}, args ...interface{}) {
	l.msg(l.logger.Fatal(), message, args...)
	os.Exit(1)
}

// DebugCtx logs at debug level with the correlation ID from ctx attached.
func (l *Logger) DebugCtx(ctx context.Context, message string, args ...interface{}) {
	l.logEvent(l.withCorrelation(ctx, l.logger.Debug()), message, args...)
}

// InfoCtx logs at info level with the correlation ID from ctx attached.
func (l *Logger) InfoCtx(ctx context.Context, message string, args ...interface{}) {
	l.logEvent(l.withCorrelation(ctx, l.logger.Info()), message, args...)
}

// WarnCtx logs at warn level with the correlation ID from ctx attached.
func (l *Logger) WarnCtx(ctx context.Context, message string, args ...interface{}) {
	l.logEvent(l.withCorrelation(ctx, l.logger.Warn()), message, args...)
}

// ErrorCtx logs at error level with the correlation ID from ctx attached.
func (l *Logger) ErrorCtx(ctx context.Context, message string, args ...interface{}) {
	l.logEvent(l.withCorrelation(ctx, l.logger.Error()), message, args...)
}

func (l *Logger) withCorrelation(ctx context.Context, e *zerolog.Event) *zerolog.Event {
	if corrID := correlation.FromContext(ctx); corrID != "" {
		return e.Str("correlation_id", corrID)
	}
	return e
}

func (l *Logger) logEvent(e *zerolog.Event, message string, args ...interface{}) {
	if len(args) == 0 {
		e.Msg(message)
	} else {
		e.Msgf(message, args...)
	}
}

func (l *Logger) msg(e *zerolog.Event, message interface{}, args ...interface{}) {
	switch msg := message.(type) {
	case error:
		l.logEvent(e, msg.Error(), args...)
	case string:
		l.logEvent(e, msg, args...)
	default:
		l.logEvent(e, fmt.Sprintf("message %v has unknown type %[1]T", message), args...)
	}
}
