// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the bloglist server and client.
// Request-scoped loggers travel in the context; use FromContext or
// FromRequest to retrieve them.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// traceIDField is the field name request loggers are tagged with.
const traceIDField = "trace_id"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to stdout. Every entry carries
// role, time and the calling function name under "func".
func NewLogger(role string) *Logger {
	return newLogger(role, os.Stdout)
}

// NewCLILogger returns a human-readable logger on stderr, keeping stdout
// free for command output.
func NewCLILogger(role string) *Logger {
	return newLogger(role, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
}

func newLogger(role string, w io.Writer) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// SetLevel changes the global minimum level. Accepted values are the
// zerolog level names ("debug", "info", "warn", "error", ...). An empty
// string leaves the current level untouched.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)

	return nil
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithTraceID returns a child logger tagging every entry with traceID.
// The receiver is not modified.
func (l *Logger) WithTraceID(traceID string) *Logger {
	return &Logger{l.With().Str(traceIDField, traceID).Logger()}
}

// FromRequest returns the request-scoped logger attached to r's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx, or zerolog's default
// logger when none was attached.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
