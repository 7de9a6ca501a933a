// Package input tracks the latest pointer or touch position over the canvas.
package input

import "gonum.org/v1/gonum/spatial/r2"

// Pointer is the current pointer state. When Present is false the
// coordinates are meaningless.
type Pointer struct {
	X, Y    float64
	Present bool
}

// Absent is the pointer state with no pointer over the canvas.
var Absent = Pointer{}

// At returns a present pointer at the given canvas coordinates.
func At(x, y float64) Pointer {
	return Pointer{X: x, Y: y, Present: true}
}

// Vec returns the pointer coordinates as a vector.
func (p Pointer) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// EventKind identifies an input event.
type EventKind uint8

const (
	PointerMove EventKind = iota
	PointerLeave
	TouchMove
	TouchEnd
)

func (k EventKind) String() string {
	switch k {
	case PointerMove:
		return "pointer_move"
	case PointerLeave:
		return "pointer_leave"
	case TouchMove:
		return "touch_move"
	case TouchEnd:
		return "touch_end"
	}
	return "unknown"
}

// Event is a device event in client (window) coordinates.
type Event struct {
	Kind             EventKind
	ClientX, ClientY float64
}

// Tracker holds the pointer state. Events overwrite it; nothing is queued.
type Tracker struct {
	pointer Pointer
	events  uint64
}

// NewTracker returns a tracker with no pointer.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Apply updates the state from an event. origin is the canvas top-left in
// client coordinates.
func (t *Tracker) Apply(ev Event, origin r2.Vec) {
	switch ev.Kind {
	case PointerMove, TouchMove:
		t.Move(ev.ClientX, ev.ClientY, origin)
	case PointerLeave, TouchEnd:
		t.Leave()
	}
}

// Move places the pointer at client coordinates translated into canvas space.
func (t *Tracker) Move(clientX, clientY float64, origin r2.Vec) {
	t.pointer = At(clientX-origin.X, clientY-origin.Y)
	t.events++
}

// Leave clears the pointer.
func (t *Tracker) Leave() {
	t.pointer = Absent
	t.events++
}

// Pointer returns the current state.
func (t *Tracker) Pointer() Pointer {
	return t.pointer
}

// Events returns the number of events applied so far.
func (t *Tracker) Events() uint64 {
	return t.events
}
