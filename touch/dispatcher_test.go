// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package touch

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/rasm/brush"
	"github.com/gogpu/rasm/state"
	"github.com/gogpu/rasm/surface"
)

// recorder logs the calls a dispatcher makes.
type recorder struct {
	name  string
	calls *[]string
}

func (r recorder) HandleFirstTouch(Event) error { return r.log("first") }
func (r recorder) HandleTouch(Event) error      { return r.log("touch") }
func (r recorder) HandleLastTouch(Event) error  { return r.log("last") }
func (r recorder) Cancel() error                { return r.log("cancel") }

func (r recorder) log(call string) error {
	*r.calls = append(*r.calls, r.name+"."+call)
	return nil
}

func TestDispatcherRouting(t *testing.T) {
	var calls []string
	n := 0
	d := NewDispatcher(func() (Handler, error) {
		n++
		return recorder{name: string(rune('a' + n - 1)), calls: &calls}, nil
	})

	actions := []Action{
		ActionMove, // idle, dropped
		ActionDown,
		ActionPointerDown,
		ActionMove,
		ActionPointerUp,
		ActionUp,
		ActionUp, // idle, dropped
		ActionDown,
		ActionDown, // restart cancels the previous gesture
		ActionCancel,
		ActionCancel, // idle, dropped
	}
	for _, a := range actions {
		if err := d.Dispatch(single(a, 0, 1, 1)); err != nil {
			t.Fatalf("Dispatch(%v) error = %v", a, err)
		}
	}

	want := []string{
		"a.first", "a.touch", "a.touch", "a.touch", "a.last",
		"b.first", "b.cancel",
		"c.first", "c.cancel",
	}
	if !slices.Equal(calls, want) {
		t.Errorf("calls = %v\nwant  %v", calls, want)
	}
	if d.Active() {
		t.Error("Active() = true after cancel")
	}
}

func TestDispatcherCancel(t *testing.T) {
	var calls []string
	d := NewDispatcher(func() (Handler, error) {
		return recorder{name: "a", calls: &calls}, nil
	})
	if err := d.Cancel(); err != nil {
		t.Fatalf("Cancel() while idle: error = %v", err)
	}
	_ = d.Dispatch(single(ActionDown, 0, 1, 1))
	if err := d.Cancel(); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if d.Active() {
		t.Error("Active() = true after Cancel")
	}
	_ = d.Dispatch(single(ActionMove, 0, 2, 2))
	_ = d.Dispatch(single(ActionUp, 0, 3, 3))

	want := []string{"a.first", "a.cancel"}
	if !slices.Equal(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
}

func TestDispatcherFactoryError(t *testing.T) {
	boom := errors.New("boom")
	d := NewDispatcher(func() (Handler, error) { return nil, boom })
	if err := d.Dispatch(single(ActionDown, 0, 1, 1)); !errors.Is(err, boom) {
		t.Errorf("Dispatch() error = %v, want factory error", err)
	}
	if d.Active() {
		t.Error("Active() = true after failed start")
	}
}

func TestDispatcherBrushGesture(t *testing.T) {
	set, _ := surface.NewSet(100, 100)
	st, _ := state.New(set.Layer())
	d := NewDispatcher(func() (Handler, error) {
		return NewBrushHandler(set, st, red, brush.DefaultConfig())
	})

	gesture := []Event{
		single(ActionDown, 0, 10, 50),
		single(ActionMove, 0, 50, 50, Sample{30, 50}),
		single(ActionUp, 0, 90, 50, Sample{70, 50}),
		single(ActionDown, 0, 10, 80),
		single(ActionMove, 0, 50, 80),
		{Action: ActionCancel},
	}
	for i, e := range gesture {
		if err := d.Dispatch(e); err != nil {
			t.Fatalf("event %d (%v): error = %v", i, e.Action, err)
		}
	}

	if got := st.UndoCount(); got != 1 {
		t.Errorf("UndoCount() = %d, want 1 (cancelled gesture must not commit)", got)
	}
	if a := set.Layer().RGBAAt(30, 80).A; a != 0 {
		t.Errorf("cancelled gesture reached the layer, alpha = %d", a)
	}
	if a := set.Layer().RGBAAt(30, 50).A; a != 255 {
		t.Errorf("committed gesture missing from the layer, alpha = %d", a)
	}
}
