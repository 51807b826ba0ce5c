// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rasm

import (
	"log/slog"

	"github.com/gogpu/rasm/internal/logging"
)

// SetLogger configures the logger for rasm and all its sub-packages.
// By default, rasm produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by rasm:
//   - [slog.LevelDebug]: per-gesture and per-action diagnostics (dabs, dirty
//     rects, undo and redo)
//   - [slog.LevelInfo]: session lifecycle (canvas initialised, export written)
//   - [slog.LevelWarn]: rejected input (tracked pointer missing, gesture
//     restarted without an up event)
//
// Example:
//
//	// Enable debug-level logging for full diagnostics:
//	rasm.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.SetLogger(l)
}

// Logger returns the current logger used by rasm.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
