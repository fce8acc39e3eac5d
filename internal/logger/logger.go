// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used by the capture
// client and the local depth stub server.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Request-scoped loggers are obtained via FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultClientLogFile is the file name used by [NewClientLogger] when no
// explicit path is configured. It is resolved next to the executable.
const DefaultClientLogFile = "depth-capture.log"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

func configureGlobals() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"
}

func newWithWriter(w io.Writer, role string) *Logger {
	configureGlobals()
	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewLogger constructs a JSON logger writing to os.Stdout, tagged with a
// "role" field, a timestamp and the calling function name ("func").
// It is used by the stub server.
func NewLogger(role string) *Logger {
	return newWithWriter(os.Stdout, role)
}

// NewClientLogger constructs a logger for the terminal client. The terminal
// is owned by the UI, so entries go to logPath (appended). A relative path is
// resolved next to the executable; an empty path falls back to
// [DefaultClientLogFile]. If the file cannot be opened, output is discarded
// rather than written over the UI.
func NewClientLogger(role, logPath string) *Logger {
	if strings.TrimSpace(logPath) == "" {
		logPath = DefaultClientLogFile
	}
	if !filepath.IsAbs(logPath) {
		if execPath, err := os.Executable(); err == nil {
			logPath = filepath.Join(filepath.Dir(execPath), logPath)
		}
	}

	var out io.Writer = io.Discard
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err == nil {
		out = logFile
	}

	return newWithWriter(out, role)
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithLevel returns a copy of the logger filtered at the given level name
// ("debug", "info", "warn", ...). Unknown or empty names keep the current
// level.
func (l *Logger) WithLevel(level string) *Logger {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		return l
	}
	return &Logger{l.Level(parsed)}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver and can be enriched without affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest extracts the request-scoped logger attached by the trace-id
// middleware.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx. When none is
// attached, zerolog's default context logger is returned, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
