// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rasm

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/gogpu/rasm/brush"
	"github.com/gogpu/rasm/internal/logging"
	"github.com/gogpu/rasm/state"
	"github.com/gogpu/rasm/surface"
	"github.com/gogpu/rasm/touch"
)

// Context errors.
var (
	// ErrAlreadyInitialized is returned by a second Init or InitFromImage.
	ErrAlreadyInitialized = errors.New("rasm: context already initialized")

	// ErrNotInitialized is returned by operations used before Init.
	ErrNotInitialized = errors.New("rasm: context not initialized")

	// ErrNilColor is returned when a nil colour is passed.
	ErrNilColor = errors.New("rasm: nil colour")
)

// Context is a drawing canvas: one raster layer, a background colour, the
// undo/redo history and the brush used by new gestures.
//
// A Context is created empty and becomes usable after Init or
// InitFromImage, which may be called only once.
type Context struct {
	mu sync.RWMutex

	set        *surface.Set
	state      *state.State
	dispatcher *touch.Dispatcher
	gesture    *touch.BrushHandler // last gesture to start painting

	brushConfig  brush.Config
	brushColor   color.Color
	background   color.Color
	historyLimit int
	transform    Matrix
}

// NewContext creates an uninitialised Context.
//
//	rc := rasm.NewContext(rasm.WithHistoryLimit(100))
//	if err := rc.Init(1024, 768); err != nil {
//		log.Fatal(err)
//	}
func NewContext(opts ...ContextOption) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Context{
		brushConfig:  o.brushConfig,
		brushColor:   o.brushColor,
		background:   o.background,
		historyLimit: o.historyLimit,
		transform:    Identity(),
	}
}

// Init allocates a transparent canvas of the given size.
func (c *Context) Init(width, height int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.set != nil {
		return ErrAlreadyInitialized
	}
	set, err := surface.NewSet(width, height)
	if err != nil {
		return fmt.Errorf("rasm: init: %w", err)
	}
	return c.attach(set)
}

// InitFromImage allocates a canvas holding a copy of img as its layer.
func (c *Context) InitFromImage(img image.Image) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.set != nil {
		return ErrAlreadyInitialized
	}
	set, err := surface.NewSetFromImage(img)
	if err != nil {
		return fmt.Errorf("rasm: init: %w", err)
	}
	return c.attach(set)
}

func (c *Context) attach(set *surface.Set) error {
	st, err := state.New(set.Layer(),
		state.WithHistoryLimit(c.historyLimit),
		state.WithBackground(c.background))
	if err != nil {
		return fmt.Errorf("rasm: init: %w", err)
	}
	// Undo and redo rewrite the layer; the result surface follows it.
	st.AddListener(func(ch state.Change) {
		if !ch.Region.Empty() {
			set.RestoreResult(ch.Region)
		}
	})
	c.set = set
	c.state = st
	c.dispatcher = touch.NewDispatcher(c.newHandler)
	logging.Logger().Info("rasm: canvas initialized",
		"width", set.Width(), "height", set.Height())
	return nil
}

// IsInitialized reports whether Init or InitFromImage succeeded.
func (c *Context) IsInitialized() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.set != nil
}

// Width returns the canvas width, or 0 before Init.
func (c *Context) Width() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.set == nil {
		return 0
	}
	return c.set.Width()
}

// Height returns the canvas height, or 0 before Init.
func (c *Context) Height() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.set == nil {
		return 0
	}
	return c.set.Height()
}

// BrushConfig returns the brush configuration for new gestures.
func (c *Context) BrushConfig() brush.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.brushConfig
}

// SetBrushConfig validates and sets the brush for new gestures. A gesture in
// progress keeps the brush it started with.
func (c *Context) SetBrushConfig(cfg brush.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	c.brushConfig = cfg
	c.mu.Unlock()
	return nil
}

// BrushColor returns the brush colour for new gestures.
func (c *Context) BrushColor() color.Color {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.brushColor
}

// SetBrushColor sets the brush colour for new gestures.
func (c *Context) SetBrushColor(col color.Color) error {
	if col == nil {
		return ErrNilColor
	}
	c.mu.Lock()
	c.brushColor = col
	c.mu.Unlock()
	return nil
}

// BackgroundColor returns the current background colour.
func (c *Context) BackgroundColor() color.NRGBA {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.state == nil {
		return color.NRGBAModel.Convert(c.background).(color.NRGBA)
	}
	return c.state.Background()
}

// SetBackgroundColor changes the background colour as an undoable action.
func (c *Context) SetBackgroundColor(col color.Color) error {
	if col == nil {
		return ErrNilColor
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == nil {
		return ErrNotInitialized
	}
	return c.state.Update(state.ChangeBackground{
		Color: color.NRGBAModel.Convert(col).(color.NRGBA),
	})
}

// Clear erases the layer as an undoable action. A gesture in progress is
// cancelled first.
func (c *Context) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == nil {
		return ErrNotInitialized
	}
	c.cancelGesture()
	return c.state.Update(state.Clear{})
}

// Undo reverts the latest action, cancelling a gesture in progress. It
// returns false when there is nothing to undo or the Context is not
// initialised.
func (c *Context) Undo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == nil || !c.state.CanUndo() {
		return false
	}
	c.cancelGesture()
	return c.state.Undo()
}

// Redo re-applies the latest undone action, cancelling a gesture in
// progress. It returns false when there is nothing to redo or the Context is
// not initialised.
func (c *Context) Redo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == nil || !c.state.CanRedo() {
		return false
	}
	c.cancelGesture()
	return c.state.Redo()
}

// CanUndo reports whether Undo would change anything.
func (c *Context) CanUndo() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state != nil && c.state.CanUndo()
}

// CanRedo reports whether Redo would change anything.
func (c *Context) CanRedo() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state != nil && c.state.CanRedo()
}

// History returns the undo stack, oldest first.
func (c *Context) History() []state.Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.state == nil {
		return nil
	}
	return c.state.Entries()
}

// Transformation returns the canvas-to-screen transformation.
func (c *Context) Transformation() Matrix {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.transform
}

// SetTransformation sets the canvas-to-screen transformation.
func (c *Context) SetTransformation(m Matrix) {
	c.mu.Lock()
	c.transform = m
	c.mu.Unlock()
}

// ResetTransformation fits the canvas into a container of the given size,
// centred and preserving the aspect ratio.
func (c *Context) ResetTransformation(containerWidth, containerHeight int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.set == nil {
		return ErrNotInitialized
	}
	c.transform = RectToRect(
		float64(c.set.Width()), float64(c.set.Height()),
		float64(containerWidth), float64(containerHeight))
	return nil
}

// NewGestureHandler returns a handler for one gesture, painting with the
// current brush. Its methods take the Context's lock, so it may be driven
// from any goroutine.
//
// Only one gesture paints at a time: NewGestureHandler, and HandleFirstTouch
// on the returned handler, fail with touch.ErrGestureActive while another
// gesture is in progress.
func (c *Context) NewGestureHandler() (touch.Handler, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.set == nil {
		return nil, ErrNotInitialized
	}
	if c.gestureBusy() {
		return nil, touch.ErrGestureActive
	}
	h, err := touch.NewBrushHandler(c.set, c.state, c.brushColor, c.brushConfig)
	if err != nil {
		return nil, err
	}
	return &lockedHandler{c: c, h: h}, nil
}

// HandleEvent routes a pointer event in canvas coordinates to the current
// gesture, starting a new one on touch.ActionDown.
func (c *Context) HandleEvent(e touch.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.set == nil {
		return ErrNotInitialized
	}
	return c.dispatcher.Dispatch(e)
}

// HandleScreenEvent is like HandleEvent for an event in screen coordinates,
// which are mapped to the canvas with the inverse transformation.
func (c *Context) HandleScreenEvent(e touch.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.set == nil {
		return ErrNotInitialized
	}
	return c.dispatcher.Dispatch(mapEvent(e, c.transform.Invert()))
}

// GestureActive reports whether a gesture is in progress, whether fed
// through HandleEvent or through a handler from NewGestureHandler.
func (c *Context) GestureActive() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dispatcher != nil && c.gestureBusy()
}

// gestureBusy reports whether a gesture owns the stroke surface, either
// through the dispatcher or through a handler from NewGestureHandler.
// Must be called with c.mu held.
func (c *Context) gestureBusy() bool {
	return c.dispatcher.Active() ||
		(c.gesture != nil && c.gesture.Phase() == touch.Tracking)
}

// newHandler creates the handler for a dispatched gesture. The dispatcher
// has cancelled its own previous gesture by then, so a gesture still
// tracking belongs to a handler from NewGestureHandler.
// Must be called with c.mu held.
func (c *Context) newHandler() (touch.Handler, error) {
	if c.gesture != nil && c.gesture.Phase() == touch.Tracking {
		return nil, touch.ErrGestureActive
	}
	h, err := touch.NewBrushHandler(c.set, c.state, c.brushColor, c.brushConfig)
	if err != nil {
		return nil, err
	}
	c.gesture = h
	return h, nil
}

// cancelGesture drops a stroke in progress before the layer is rewritten
// under it. Must be called with c.mu held.
func (c *Context) cancelGesture() {
	if c.dispatcher.Active() {
		_ = c.dispatcher.Cancel()
		logging.Logger().Debug("rasm: dispatched gesture cancelled by history change")
	}
	if c.gesture != nil && c.gesture.Phase() == touch.Tracking {
		_ = c.gesture.Cancel()
		logging.Logger().Debug("rasm: gesture cancelled by history change")
	}
}

func mapEvent(e touch.Event, m Matrix) touch.Event {
	out := e
	out.Pointers = make([]touch.Pointer, len(e.Pointers))
	for i, p := range e.Pointers {
		q := m.TransformPoint(Point{X: p.X, Y: p.Y})
		mp := touch.Pointer{ID: p.ID, X: q.X, Y: q.Y}
		if len(p.History) > 0 {
			mp.History = make([]touch.Sample, len(p.History))
			for j, s := range p.History {
				q := m.TransformPoint(Point{X: s.X, Y: s.Y})
				mp.History[j] = touch.Sample{X: q.X, Y: q.Y}
			}
		}
		out.Pointers[i] = mp
	}
	return out
}

// lockedHandler serialises a gesture handler with the rest of the Context.
type lockedHandler struct {
	c *Context
	h *touch.BrushHandler
}

func (l *lockedHandler) HandleFirstTouch(e touch.Event) error {
	l.c.mu.Lock()
	defer l.c.mu.Unlock()
	if l.c.gesture != l.h && l.c.gestureBusy() {
		return touch.ErrGestureActive
	}
	l.c.gesture = l.h
	return l.h.HandleFirstTouch(e)
}

func (l *lockedHandler) HandleTouch(e touch.Event) error {
	l.c.mu.Lock()
	defer l.c.mu.Unlock()
	return l.h.HandleTouch(e)
}

func (l *lockedHandler) HandleLastTouch(e touch.Event) error {
	l.c.mu.Lock()
	defer l.c.mu.Unlock()
	return l.h.HandleLastTouch(e)
}

func (l *lockedHandler) Cancel() error {
	l.c.mu.Lock()
	defer l.c.mu.Unlock()
	return l.h.Cancel()
}
