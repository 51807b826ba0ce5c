// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package rasm is a raster free-hand drawing canvas.
//
// # Overview
//
// A Context owns a single raster layer, a background colour and an
// undo/redo history. Pointer gestures are painted with a round brush into a
// private stroke surface and previewed on a result surface; only when the
// gesture ends is the touched region committed to the layer as one undoable
// action. Cancelled gestures leave no trace.
//
// # Quick Start
//
//	import "github.com/gogpu/rasm"
//
//	rc := rasm.NewContext(rasm.WithBrushColor(rasm.Hex("#c0392b")))
//	if err := rc.Init(512, 512); err != nil {
//		return err
//	}
//
//	// Feed pointer events in canvas coordinates.
//	_ = rc.HandleEvent(touch.Event{Action: touch.ActionDown,
//		Pointers: []touch.Pointer{{X: 10, Y: 10}}})
//	_ = rc.HandleEvent(touch.Event{Action: touch.ActionUp,
//		Pointers: []touch.Pointer{{X: 200, Y: 120}}})
//
//	_ = rc.SaveExport("drawing.png")
//
// # Architecture
//
// The library is organized into:
//   - Public API: Context, Matrix, RGBA, export encoders
//   - surface: the layer, stroke and result surfaces and their compositing
//   - brush: dab stamping along sampled polylines
//   - touch: gesture tracking and the commit at gesture end
//   - state: the closed set of canvas actions and the undo/redo log
//
// # Coordinate System
//
// Canvas coordinates have the origin at the top-left pixel corner, X
// increasing right and Y increasing down. A pixel (x, y) covers
// [x, x+1) × [y, y+1). Screen coordinates are mapped to canvas coordinates
// with the inverse of the Context's transformation.
//
// # Concurrency
//
// All Context methods are safe for concurrent use. Painting, commits and
// history changes take an exclusive lock; Render and Export share a read
// lock, so a frame never observes a partially painted dab.
package rasm

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
