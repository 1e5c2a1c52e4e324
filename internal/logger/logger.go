// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-keyhub Authors

// Package logger provides a thin wrapper around zerolog.Logger with
// convenience constructors and context-aware helpers used throughout
// go-keyhub.
//
// The Logger type embeds zerolog.Logger, so the full zerolog API (Debug,
// Info, Warn, Error, Fatal, ...) is available directly on *Logger.
// Application code passes *Logger by pointer and obtains request-scoped
// loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger. Embedding exposes the full
// zerolog API while letting the application add helpers without modifying
// the upstream type.
type Logger struct {
	zerolog.Logger
}

// New constructs a production *Logger for the given role label (e.g.
// "server", "sweeper", "client").
//
// Every entry carries a "role" field for filtering logs from different
// components and a timestamp. Output is JSON on stdout. The level defaults
// to Info and can be lowered with the KEYHUB_LOG_LEVEL environment variable
// ("debug", "info", "warn", "error").
func New(role string) *Logger {
	level := zerolog.InfoLevel
	if env := os.Getenv("KEYHUB_LOG_LEVEL"); env != "" {
		if parsed, err := zerolog.ParseLevel(env); err == nil {
			level = parsed
		}
	}

	l := zerolog.New(os.Stdout).Level(level).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{l}
}

// NewClient constructs a *Logger for the CLI client. Output goes to stderr
// so command output on stdout stays clean, and the level defaults to Warn.
// KEYHUB_LOG_LEVEL overrides the level the same way as in New.
func NewClient(role string) *Logger {
	level := zerolog.WarnLevel
	if env := os.Getenv("KEYHUB_LOG_LEVEL"); env != "" {
		if parsed, err := zerolog.ParseLevel(env); err == nil {
			level = parsed
		}
	}

	l := zerolog.New(os.Stderr).Level(level).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards all output. Intended for tests and
// other contexts where logging would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Child returns a new *Logger inheriting all fields of the receiver. The
// child can be enriched with additional context fields without affecting the
// parent.
func (l *Logger) Child() *Logger {
	return &Logger{l.With().Logger()}
}

// WithContext attaches the logger to ctx so downstream code can recover it
// with FromContext.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext extracts the zerolog.Logger stored in ctx and returns it as a
// *Logger. If no logger has been attached, zerolog falls back to its global
// logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// FromRequest extracts the logger attached to the request's context,
// typically by the request-logging middleware.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}
