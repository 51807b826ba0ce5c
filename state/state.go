// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package state applies undoable actions to the drawing layer.
//
// State is the only sanctioned way to mutate the layer. Every Update captures
// what the action is about to overwrite (the destination pixels of a commit,
// the whole layer for a clear, the previous colour for a background change),
// applies the action and pushes it onto the undo stack. Undo restores the
// captured snapshot; Redo applies the action again.
//
// At any time the layer equals the initial layer with every action on the
// undo stack applied in order. With a history limit, the oldest entries are
// folded into the initial layer once the limit is exceeded.
package state

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"slices"

	"github.com/google/uuid"

	"github.com/gogpu/rasm/internal/logging"
	"github.com/gogpu/rasm/surface"
)

// Errors returned by State and NewCommitRegion.
var (
	// ErrNilLayer is returned by New when no layer is given.
	ErrNilLayer = errors.New("state: nil layer")

	// ErrInvalidRect is returned for empty or mismatched commit rectangles.
	ErrInvalidRect = errors.New("state: invalid rect")

	// ErrRectOutOfBounds is returned when a commit rectangle leaves its image.
	ErrRectOutOfBounds = errors.New("state: rect out of bounds")

	// ErrUnknownAction is returned for a nil action.
	ErrUnknownAction = errors.New("state: unknown action")
)

// DefaultBackground is the background colour of a new State: opaque white.
var DefaultBackground = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// ChangeKind says how the layer or background changed.
type ChangeKind uint8

const (
	Applied ChangeKind = iota
	Undone
	Redone
)

var changeKindNames = [...]string{
	Applied: "Applied",
	Undone:  "Undone",
	Redone:  "Redone",
}

// String returns the change kind name.
func (k ChangeKind) String() string {
	if int(k) < len(changeKindNames) {
		return changeKindNames[k]
	}
	return "Unknown"
}

// Change is delivered to listeners after every Update, Undo and Redo.
type Change struct {
	Kind   ChangeKind
	ID     uuid.UUID
	Action Action

	// Region is the part of the layer whose pixels changed. It is empty when
	// only the background changed.
	Region image.Rectangle
}

// Entry is one action on the undo or redo stack together with what it
// overwrote.
type Entry struct {
	ID     uuid.UUID
	Action Action

	before     *image.RGBA // layer pixels inside the action's region
	background color.NRGBA // background before the action
}

// Option configures a State.
type Option func(*options)

type options struct {
	limit      int
	background color.NRGBA
}

// WithHistoryLimit caps the undo stack at n entries. Zero means unlimited.
func WithHistoryLimit(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.limit = n
	}
}

// WithBackground sets the initial background colour.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.background = color.NRGBAModel.Convert(c).(color.NRGBA)
		}
	}
}

// State owns the layer and its undo and redo stacks.
//
// State is not safe for concurrent use.
type State struct {
	layer      *image.RGBA
	background color.NRGBA
	limit      int

	undo []Entry
	redo []Entry

	listeners []func(Change)
}

// New creates a State mutating layer in place.
func New(layer *image.RGBA, opts ...Option) (*State, error) {
	if layer == nil {
		return nil, ErrNilLayer
	}
	o := options{background: DefaultBackground}
	for _, opt := range opts {
		opt(&o)
	}
	return &State{
		layer:      layer,
		background: o.background,
		limit:      o.limit,
	}, nil
}

// Layer returns the layer. Callers must not modify it directly.
func (s *State) Layer() *image.RGBA { return s.layer }

// Background returns the current background colour.
func (s *State) Background() color.NRGBA { return s.background }

// CanUndo reports whether Undo would do anything.
func (s *State) CanUndo() bool { return len(s.undo) > 0 }

// CanRedo reports whether Redo would do anything.
func (s *State) CanRedo() bool { return len(s.redo) > 0 }

// UndoCount returns the number of entries on the undo stack.
func (s *State) UndoCount() int { return len(s.undo) }

// RedoCount returns the number of entries on the redo stack.
func (s *State) RedoCount() int { return len(s.redo) }

// Entries returns the undo stack, oldest first.
func (s *State) Entries() []Entry { return slices.Clone(s.undo) }

// AddListener registers fn to be called after every change.
func (s *State) AddListener(fn func(Change)) {
	s.listeners = append(s.listeners, fn)
}

// Update validates and applies a, pushes it onto the undo stack and clears
// the redo stack. An invalid action leaves the state untouched.
func (s *State) Update(a Action) error {
	r, err := s.region(a)
	if err != nil {
		return err
	}
	e := Entry{
		ID:         uuid.New(),
		Action:     a,
		background: s.background,
	}
	if !r.Empty() {
		e.before = surface.Snapshot(s.layer, r)
	}
	s.apply(a)

	s.undo = append(s.undo, e)
	if s.limit > 0 && len(s.undo) > s.limit {
		s.undo = slices.Delete(s.undo, 0, len(s.undo)-s.limit)
	}
	clear(s.redo)
	s.redo = s.redo[:0]

	logging.Logger().Debug("state: action applied",
		"id", e.ID, "kind", a.Kind(), "region", r,
		"undo", len(s.undo))
	s.notify(Change{Kind: Applied, ID: e.ID, Action: a, Region: r})
	return nil
}

// Undo reverts the most recent action. It returns false, doing nothing,
// when the undo stack is empty.
func (s *State) Undo() bool {
	if len(s.undo) == 0 {
		return false
	}
	e := s.undo[len(s.undo)-1]
	s.undo[len(s.undo)-1] = Entry{}
	s.undo = s.undo[:len(s.undo)-1]

	var r image.Rectangle
	if e.before != nil {
		r = e.before.Rect
		surface.CopyRect(s.layer, e.before, r)
	}
	s.background = e.background
	s.redo = append(s.redo, e)

	logging.Logger().Debug("state: action undone", "id", e.ID, "kind", e.Action.Kind())
	s.notify(Change{Kind: Undone, ID: e.ID, Action: e.Action, Region: r})
	return true
}

// Redo re-applies the most recently undone action. It returns false, doing
// nothing, when the redo stack is empty.
func (s *State) Redo() bool {
	if len(s.redo) == 0 {
		return false
	}
	e := s.redo[len(s.redo)-1]
	s.redo[len(s.redo)-1] = Entry{}
	s.redo = s.redo[:len(s.redo)-1]

	s.apply(e.Action)
	s.undo = append(s.undo, e)

	var r image.Rectangle
	if e.before != nil {
		r = e.before.Rect
	}
	logging.Logger().Debug("state: action redone", "id", e.ID, "kind", e.Action.Kind())
	s.notify(Change{Kind: Redone, ID: e.ID, Action: e.Action, Region: r})
	return true
}

// region validates a against the layer and returns the layer rectangle it
// will overwrite.
func (s *State) region(a Action) (image.Rectangle, error) {
	switch a := a.(type) {
	case Clear:
		return s.layer.Rect, nil
	case ChangeBackground:
		return image.Rectangle{}, nil
	case *CommitRegion:
		if a == nil {
			return image.Rectangle{}, fmt.Errorf("%w: nil commit", ErrUnknownAction)
		}
		if !a.dst.In(s.layer.Rect) {
			return image.Rectangle{}, fmt.Errorf("%w: dst %v outside layer %v",
				ErrRectOutOfBounds, a.dst, s.layer.Rect)
		}
		return a.dst, nil
	default:
		return image.Rectangle{}, fmt.Errorf("%w: %T", ErrUnknownAction, a)
	}
}

// apply performs a on the layer or background. a has been validated by region.
func (s *State) apply(a Action) {
	switch a := a.(type) {
	case Clear:
		clear(s.layer.Pix)
	case ChangeBackground:
		s.background = a.Color
	case *CommitRegion:
		a.apply(s.layer)
	}
}

func (s *State) notify(c Change) {
	for _, fn := range s.listeners {
		fn(c)
	}
}
