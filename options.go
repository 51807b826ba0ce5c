// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rasm

import (
	"image/color"

	"github.com/gogpu/rasm/brush"
)

// ContextOption configures a Context during creation.
// Use functional options to customize Context behavior.
//
// Example:
//
//	// Default brush and white background
//	rc := rasm.NewContext()
//
//	// Soft red brush on a transparent background
//	cfg := brush.DefaultConfig()
//	cfg.Hardness = 0.4
//	rc := rasm.NewContext(
//		rasm.WithBrushConfig(cfg),
//		rasm.WithBrushColor(rasm.Hex("#e74c3c")),
//		rasm.WithBackground(rasm.Transparent),
//	)
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	brushConfig  brush.Config
	brushColor   color.Color
	background   color.Color
	historyLimit int
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		brushConfig: brush.DefaultConfig(),
		brushColor:  DefaultBrushColor,
		background:  White,
	}
}

// WithBrushConfig sets the brush used by gestures. An invalid configuration
// is reported when the next gesture starts.
func WithBrushConfig(cfg brush.Config) ContextOption {
	return func(o *contextOptions) {
		o.brushConfig = cfg
	}
}

// WithBrushColor sets the brush colour. A nil colour is ignored.
func WithBrushColor(c color.Color) ContextOption {
	return func(o *contextOptions) {
		if c != nil {
			o.brushColor = c
		}
	}
}

// WithBackground sets the initial background colour. It is not an undoable
// action; use Context.SetBackgroundColor to change it later.
func WithBackground(c color.Color) ContextOption {
	return func(o *contextOptions) {
		if c != nil {
			o.background = c
		}
	}
}

// WithHistoryLimit caps the number of undoable actions. Zero, the default,
// keeps every action.
func WithHistoryLimit(n int) ContextOption {
	return func(o *contextOptions) {
		o.historyLimit = n
	}
}
