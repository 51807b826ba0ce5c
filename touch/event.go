// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package touch

// Action is the primary action of a pointer event.
type Action uint8

const (
	// ActionDown starts a gesture: the first pointer touched.
	ActionDown Action = iota
	// ActionPointerDown reports an additional pointer touching.
	ActionPointerDown
	// ActionMove carries new, possibly batched, positions.
	ActionMove
	// ActionPointerUp reports the pointer at ActionIndex lifting while
	// others remain down.
	ActionPointerUp
	// ActionUp ends the gesture: the last pointer lifted.
	ActionUp
	// ActionCancel aborts the gesture.
	ActionCancel
)

var actionNames = [...]string{
	ActionDown:        "Down",
	ActionPointerDown: "PointerDown",
	ActionMove:        "Move",
	ActionPointerUp:   "PointerUp",
	ActionUp:          "Up",
	ActionCancel:      "Cancel",
}

// String returns the action name.
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// Sample is one pointer position in surface pixel coordinates.
type Sample struct {
	X, Y float64
}

// Pointer is the state of one active pointer in an event.
type Pointer struct {
	// ID identifies the pointer for the whole gesture. Its index within
	// Event.Pointers may change from event to event.
	ID int

	// X and Y are the newest position.
	X, Y float64

	// History holds positions batched since the previous event, oldest
	// first. All of them precede X, Y in time.
	History []Sample
}

// Newest returns the most recent position.
func (p Pointer) Newest() Sample {
	return Sample{X: p.X, Y: p.Y}
}

// Samples returns the full batch in chronological order: History followed
// by the newest position.
func (p Pointer) Samples() []Sample {
	out := make([]Sample, 0, len(p.History)+1)
	out = append(out, p.History...)
	return append(out, p.Newest())
}

// Event is one pointer event delivered by the host. Coordinates are already
// mapped into surface space.
type Event struct {
	Action Action

	// ActionIndex is the index in Pointers of the pointer an
	// ActionPointerDown or ActionPointerUp refers to.
	ActionIndex int

	Pointers []Pointer
}

// FindPointer returns the index of the pointer with the given id, or -1.
func (e Event) FindPointer(id int) int {
	for i, p := range e.Pointers {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// IsUp reports whether the pointer at index idx lifts in this event.
func (e Event) IsUp(idx int) bool {
	return e.Action == ActionUp || (e.Action == ActionPointerUp && idx == e.ActionIndex)
}
