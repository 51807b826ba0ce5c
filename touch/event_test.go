// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package touch

import (
	"slices"
	"testing"
)

func TestPointerSamplesChronological(t *testing.T) {
	p := Pointer{
		ID:      1,
		X:       30,
		Y:       3,
		History: []Sample{{10, 1}, {20, 2}},
	}
	want := []Sample{{10, 1}, {20, 2}, {30, 3}}
	if got := p.Samples(); !slices.Equal(got, want) {
		t.Errorf("Samples() = %v, want %v", got, want)
	}
	if got := p.Newest(); got != (Sample{30, 3}) {
		t.Errorf("Newest() = %v", got)
	}
}

func TestPointerSamplesDoesNotAliasHistory(t *testing.T) {
	h := make([]Sample, 1, 4)
	h[0] = Sample{1, 1}
	p := Pointer{X: 2, Y: 2, History: h}
	s := p.Samples()
	s[0] = Sample{9, 9}
	if p.History[0] != (Sample{1, 1}) {
		t.Error("Samples() shares storage with History")
	}
}

func TestEventFindPointer(t *testing.T) {
	e := Event{Pointers: []Pointer{{ID: 4}, {ID: 7}}}
	tests := []struct {
		id   int
		want int
	}{
		{4, 0},
		{7, 1},
		{5, -1},
	}
	for _, tt := range tests {
		if got := e.FindPointer(tt.id); got != tt.want {
			t.Errorf("FindPointer(%d) = %d, want %d", tt.id, got, tt.want)
		}
	}
}

func TestEventIsUp(t *testing.T) {
	tests := []struct {
		name string
		e    Event
		idx  int
		want bool
	}{
		{"up", Event{Action: ActionUp}, 0, true},
		{"pointer up same index", Event{Action: ActionPointerUp, ActionIndex: 1}, 1, true},
		{"pointer up other index", Event{Action: ActionPointerUp, ActionIndex: 0}, 1, false},
		{"move", Event{Action: ActionMove}, 0, false},
		{"pointer down", Event{Action: ActionPointerDown, ActionIndex: 0}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.IsUp(tt.idx); got != tt.want {
				t.Errorf("IsUp(%d) = %v, want %v", tt.idx, got, tt.want)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionDown, "Down"},
		{ActionPointerDown, "PointerDown"},
		{ActionMove, "Move"},
		{ActionPointerUp, "PointerUp"},
		{ActionUp, "Up"},
		{ActionCancel, "Cancel"},
		{Action(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, want %q", tt.a, got, tt.want)
		}
	}
}
