// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package logging holds the logger shared by rasm and its sub-packages.
//
// The root package installs a logger with rasm.SetLogger; everything else
// reads it through Logger. The default logger discards all records.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler silently discards all log records. Enabled reports false so
// callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// Logger returns the active logger. Safe for concurrent use.
func Logger() *slog.Logger { return loggerPtr.Load() }

// SetLogger replaces the active logger. A nil logger restores the silent default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}
