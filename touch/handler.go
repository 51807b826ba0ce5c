// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package touch turns pointer events into brush strokes.
//
// A BrushHandler follows one pointer through one gesture. It replays every
// batched sample of that pointer in chronological order before looking at the
// newest one, drives a brush.Tool with them and, when the gesture ends,
// submits the painted region to a Committer as a single state.CommitRegion.
// Cancelled and zero-area gestures submit nothing.
//
// Hosts that already demultiplex their input call the Handler methods
// directly; others feed raw events to a Dispatcher.
package touch

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/gogpu/rasm/brush"
	"github.com/gogpu/rasm/internal/logging"
	"github.com/gogpu/rasm/state"
	"github.com/gogpu/rasm/surface"
)

// Errors returned by handlers.
var (
	// ErrNoPointers is returned for an event without pointers.
	ErrNoPointers = errors.New("touch: event has no pointers")

	// ErrPointerMissing is returned when the tracked pointer is absent from
	// an event of its gesture.
	ErrPointerMissing = errors.New("touch: tracked pointer missing")

	// ErrGestureActive is returned by a second HandleFirstTouch.
	ErrGestureActive = errors.New("touch: gesture already started")

	// ErrNoGesture is returned for events before HandleFirstTouch.
	ErrNoGesture = errors.New("touch: no gesture in progress")

	// ErrNoCommitter is returned by NewBrushHandler without a Committer.
	ErrNoCommitter = errors.New("touch: nil committer")
)

// Handler receives the events of a single gesture.
type Handler interface {
	// HandleFirstTouch starts the gesture with the first pointer of e.
	HandleFirstTouch(e Event) error

	// HandleTouch continues the gesture, ending it if the tracked pointer lifts.
	HandleTouch(e Event) error

	// HandleLastTouch ends the gesture whichever pointer triggered e.
	HandleLastTouch(e Event) error

	// Cancel abandons the gesture without committing anything.
	Cancel() error
}

// Committer applies actions to the canvas. *state.State implements it.
type Committer interface {
	Update(a state.Action) error
}

// Phase is the gesture phase of a BrushHandler.
type Phase uint8

const (
	Inactive Phase = iota
	Tracking
	Finishing
)

var phaseNames = [...]string{
	Inactive:  "Inactive",
	Tracking:  "Tracking",
	Finishing: "Finishing",
}

// String returns the phase name.
func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "Unknown"
}

// BrushHandler paints one gesture with a brush.
//
// After the gesture ends or is cancelled the handler ignores every further
// event; create a new handler for the next gesture.
type BrushHandler struct {
	set       *surface.Set
	committer Committer
	tool      *brush.Tool

	pointerID int
	phase     Phase
	ignoring  bool
	commit    *state.CommitRegion
}

var _ Handler = (*BrushHandler)(nil)

// NewBrushHandler creates a handler painting into set with colour c and the
// brush cfg, committing finished strokes through committer.
func NewBrushHandler(set *surface.Set, committer Committer, c color.Color, cfg brush.Config) (*BrushHandler, error) {
	if committer == nil {
		return nil, ErrNoCommitter
	}
	tool, err := brush.NewTool(set, c, cfg)
	if err != nil {
		return nil, err
	}
	return &BrushHandler{set: set, committer: committer, tool: tool}, nil
}

// Phase returns the gesture phase.
func (h *BrushHandler) Phase() Phase { return h.phase }

// Ignoring reports whether the gesture is over and events are discarded.
func (h *BrushHandler) Ignoring() bool { return h.ignoring }

// Tool returns the brush tool painting this gesture.
func (h *BrushHandler) Tool() *brush.Tool { return h.tool }

// Committed returns the action submitted at the end of the gesture, or nil.
func (h *BrushHandler) Committed() *state.CommitRegion { return h.commit }

// HandleFirstTouch tracks the first pointer of e and starts the stroke on its
// oldest sample, then replays the rest of its batch.
func (h *BrushHandler) HandleFirstTouch(e Event) error {
	if h.phase != Inactive || h.ignoring {
		return ErrGestureActive
	}
	if len(e.Pointers) == 0 {
		return ErrNoPointers
	}
	p := e.Pointers[0]
	samples := p.Samples()

	h.set.ClearStroke()
	if h.tool.Config().Eraser {
		h.set.SeedStrokeFromLayer()
	}
	if err := h.tool.StartDrawing(point(samples[0])); err != nil {
		return err
	}
	h.pointerID = p.ID
	h.phase = Tracking
	logging.Logger().Debug("touch: gesture started",
		"pointer", p.ID, "x", samples[0].X, "y", samples[0].Y)

	return h.replay(samples[1:])
}

// HandleTouch replays the tracked pointer's batch and then either continues
// the stroke to the newest sample or, if the pointer lifted, ends it there.
func (h *BrushHandler) HandleTouch(e Event) error {
	if h.ignoring {
		return nil
	}
	idx, err := h.tracked(e)
	if err != nil {
		return err
	}
	p := e.Pointers[idx]
	if err := h.replay(p.History); err != nil {
		return err
	}
	if e.IsUp(idx) {
		h.ignoring = true
		return h.end(p.Newest())
	}
	return h.tool.ContinueDrawing(point(p.Newest()))
}

// HandleLastTouch replays the tracked pointer's batch and ends the stroke at
// its newest sample. If the tracked pointer is missing the stroke is
// abandoned.
func (h *BrushHandler) HandleLastTouch(e Event) error {
	if h.ignoring {
		return nil
	}
	idx, err := h.tracked(e)
	if errors.Is(err, ErrPointerMissing) {
		h.abort()
		return err
	}
	if err != nil {
		return err
	}
	p := e.Pointers[idx]
	if err := h.replay(p.History); err != nil {
		return err
	}
	h.ignoring = true
	return h.end(p.Newest())
}

// Cancel abandons the gesture. Nothing is committed and the result surface
// is restored from the layer.
func (h *BrushHandler) Cancel() error {
	if h.ignoring {
		return nil
	}
	h.abort()
	return nil
}

// tracked returns the index of the tracked pointer in e.
func (h *BrushHandler) tracked(e Event) (int, error) {
	if h.phase != Tracking {
		return -1, ErrNoGesture
	}
	idx := e.FindPointer(h.pointerID)
	if idx < 0 {
		logging.Logger().Warn("touch: tracked pointer missing",
			"pointer", h.pointerID, "action", e.Action)
		return -1, fmt.Errorf("%w: id %d", ErrPointerMissing, h.pointerID)
	}
	return idx, nil
}

func (h *BrushHandler) replay(samples []Sample) error {
	for _, s := range samples {
		if err := h.tool.ContinueDrawing(point(s)); err != nil {
			return err
		}
	}
	return nil
}

// end finishes the stroke at s and commits its clamped boundary. A boundary
// with zero width or height commits nothing.
func (h *BrushHandler) end(s Sample) error {
	h.phase = Finishing
	defer func() { h.phase = Inactive }()

	if err := h.tool.EndDrawing(point(s)); err != nil {
		return err
	}
	r := h.tool.StrokeBoundary().Intersect(h.set.Bounds())
	if r.Empty() {
		logging.Logger().Debug("touch: degenerate stroke, nothing to commit",
			"boundary", h.tool.StrokeBoundary())
		return nil
	}
	a, err := state.NewCommitRegion(h.set.Result(), r, r)
	if err != nil {
		h.set.RestoreResult(r)
		return err
	}
	if err := h.committer.Update(a); err != nil {
		h.set.RestoreResult(r)
		return fmt.Errorf("touch: commit stroke: %w", err)
	}
	h.commit = a
	logging.Logger().Debug("touch: stroke committed", "rect", r, "dabs", h.tool.Dabs())
	return nil
}

// abort cancels a stroke in progress and drops its preview from the result.
func (h *BrushHandler) abort() {
	h.ignoring = true
	if h.phase != Tracking {
		return
	}
	_ = h.tool.Cancel() // cannot fail while Tracking
	h.phase = Inactive
	h.set.RestoreResult(h.set.Bounds())
	logging.Logger().Debug("touch: gesture cancelled", "pointer", h.pointerID)
}

func point(s Sample) brush.Point {
	return brush.Point{X: s.X, Y: s.Y}
}
