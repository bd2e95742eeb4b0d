// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package log provides structured logging on top of log/slog.
package log

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
)

const (
	LevelTrace = slog.Level(-8)
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// Logger writes key/value pairs to a handler.
type Logger interface {
	// New returns a new Logger that has this logger's attributes plus the given attributes.
	New(ctx ...any) Logger

	// Handler returns the underlying handler.
	Handler() slog.Handler

	Trace(msg string, ctx ...any)
	Debug(msg string, ctx ...any)
	Info(msg string, ctx ...any)
	Warn(msg string, ctx ...any)
	Error(msg string, ctx ...any)
}

type logger struct {
	inner *slog.Logger
}

// NewLogger returns a Logger backed by the given handler.
func NewLogger(h slog.Handler) Logger {
	return &logger{slog.New(h)}
}

func (l *logger) New(ctx ...any) Logger {
	return &logger{l.inner.With(ctx...)}
}

func (l *logger) Handler() slog.Handler {
	return l.inner.Handler()
}

func (l *logger) write(level slog.Level, msg string, attrs ...any) {
	if !l.inner.Enabled(context.Background(), level) {
		return
	}
	r := slog.Record{}
	r.Level = level
	r.Message = msg
	r.Add(attrs...)
	l.inner.Handler().Handle(context.Background(), r)
}

func (l *logger) Trace(msg string, ctx ...any) { l.write(LevelTrace, msg, ctx...) }
func (l *logger) Debug(msg string, ctx ...any) { l.write(LevelDebug, msg, ctx...) }
func (l *logger) Info(msg string, ctx ...any)  { l.write(LevelInfo, msg, ctx...) }
func (l *logger) Warn(msg string, ctx ...any)  { l.write(LevelWarn, msg, ctx...) }
func (l *logger) Error(msg string, ctx ...any) { l.write(LevelError, msg, ctx...) }

type holder struct{ l Logger }

var root atomic.Value // holder

func init() {
	root.Store(holder{&logger{slog.New(DiscardHandler())}})
}

// SetDefault sets the default global logger.
func SetDefault(l Logger) {
	root.Store(holder{l})
}

// Root returns the root logger.
func Root() Logger {
	return root.Load().(holder).l
}

// WithContext returns a logger carrying the given attributes, derived from the
// root logger at call time of each write.
func WithContext(ctx ...any) Logger {
	return &contextLogger{ctx: ctx}
}

type contextLogger struct {
	ctx []any
}

func (c *contextLogger) resolve() Logger {
	return Root().New(c.ctx...)
}

func (c *contextLogger) New(ctx ...any) Logger {
	return &contextLogger{ctx: append(append([]any{}, c.ctx...), ctx...)}
}

func (c *contextLogger) Handler() slog.Handler { return c.resolve().Handler() }

func (c *contextLogger) Trace(msg string, ctx ...any) { c.resolve().Trace(msg, ctx...) }
func (c *contextLogger) Debug(msg string, ctx ...any) { c.resolve().Debug(msg, ctx...) }
func (c *contextLogger) Info(msg string, ctx ...any)  { c.resolve().Info(msg, ctx...) }
func (c *contextLogger) Warn(msg string, ctx ...any)  { c.resolve().Warn(msg, ctx...) }
func (c *contextLogger) Error(msg string, ctx ...any) { c.resolve().Error(msg, ctx...) }

// Convenience functions writing to the root logger.

func Trace(msg string, ctx ...any) { Root().Trace(msg, ctx...) }
func Debug(msg string, ctx ...any) { Root().Debug(msg, ctx...) }
func Info(msg string, ctx ...any)  { Root().Info(msg, ctx...) }
func Warn(msg string, ctx ...any)  { Root().Warn(msg, ctx...) }
func Error(msg string, ctx ...any) { Root().Error(msg, ctx...) }

// NewTerminalLogger returns a logger writing human readable records to stderr
// at the given level.
func NewTerminalLogger(level slog.Level, useColor bool) Logger {
	return NewLogger(NewTerminalHandlerWithLevel(os.Stderr, level, useColor))
}
