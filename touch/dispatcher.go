// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package touch

import "github.com/gogpu/rasm/internal/logging"

// HandlerFactory creates the handler for a new gesture.
type HandlerFactory func() (Handler, error)

// Dispatcher routes a raw event stream to one Handler per gesture.
//
// ActionDown creates a handler and calls HandleFirstTouch, ActionUp calls
// HandleLastTouch, ActionCancel calls Cancel and every other action calls
// HandleTouch. Events arriving while no gesture is active are dropped.
type Dispatcher struct {
	newHandler HandlerFactory
	active     Handler
}

// NewDispatcher returns a dispatcher creating handlers with f.
func NewDispatcher(f HandlerFactory) *Dispatcher {
	return &Dispatcher{newHandler: f}
}

// Active reports whether a gesture is in progress.
func (d *Dispatcher) Active() bool { return d.active != nil }

// Cancel aborts the gesture in progress, if any. Events up to the next
// ActionDown are dropped afterwards.
func (d *Dispatcher) Cancel() error {
	h := d.active
	if h == nil {
		return nil
	}
	d.active = nil
	return h.Cancel()
}

// Dispatch delivers e to the current gesture's handler.
func (d *Dispatcher) Dispatch(e Event) error {
	switch e.Action {
	case ActionDown:
		if d.active != nil {
			logging.Logger().Warn("touch: gesture restarted without up, cancelling")
			_ = d.active.Cancel()
			d.active = nil
		}
		h, err := d.newHandler()
		if err != nil {
			return err
		}
		if err := h.HandleFirstTouch(e); err != nil {
			_ = h.Cancel()
			return err
		}
		d.active = h
		return nil

	case ActionUp:
		h := d.active
		if h == nil {
			return nil
		}
		d.active = nil
		return h.HandleLastTouch(e)

	case ActionCancel:
		return d.Cancel()

	default:
		if d.active == nil {
			return nil
		}
		return d.active.HandleTouch(e)
	}
}
