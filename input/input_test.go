package input

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestTrackerStartsAbsent(t *testing.T) {
	tr := NewTracker()
	if tr.Pointer().Present {
		t.Error("new tracker should have no pointer")
	}
}

func TestTrackerTranslatesToCanvasSpace(t *testing.T) {
	tr := NewTracker()
	origin := r2.Vec{X: 20, Y: 35}

	tr.Apply(Event{Kind: PointerMove, ClientX: 120, ClientY: 135}, origin)

	p := tr.Pointer()
	if !p.Present {
		t.Fatal("pointer should be present after move")
	}
	if p.X != 100 || p.Y != 100 {
		t.Errorf("pointer = (%v, %v), want (100, 100)", p.X, p.Y)
	}
}

func TestTrackerEventSequence(t *testing.T) {
	tests := []struct {
		name        string
		events      []Event
		wantPresent bool
		wantX       float64
		wantY       float64
	}{
		{
			name:        "move then leave",
			events:      []Event{{Kind: PointerMove, ClientX: 5, ClientY: 6}, {Kind: PointerLeave}},
			wantPresent: false,
		},
		{
			name:        "touch then end",
			events:      []Event{{Kind: TouchMove, ClientX: 5, ClientY: 6}, {Kind: TouchEnd}},
			wantPresent: false,
		},
		{
			name: "last writer wins",
			events: []Event{
				{Kind: PointerMove, ClientX: 1, ClientY: 1},
				{Kind: TouchMove, ClientX: 7, ClientY: 9},
			},
			wantPresent: true,
			wantX:       7,
			wantY:       9,
		},
		{
			name:        "leave then move",
			events:      []Event{{Kind: PointerLeave}, {Kind: PointerMove, ClientX: 3, ClientY: 4}},
			wantPresent: true,
			wantX:       3,
			wantY:       4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker()
			for _, ev := range tt.events {
				tr.Apply(ev, r2.Vec{})
			}
			p := tr.Pointer()
			if p.Present != tt.wantPresent {
				t.Fatalf("present = %v, want %v", p.Present, tt.wantPresent)
			}
			if p.Present && (p.X != tt.wantX || p.Y != tt.wantY) {
				t.Errorf("pointer = (%v, %v), want (%v, %v)", p.X, p.Y, tt.wantX, tt.wantY)
			}
			if tr.Events() != uint64(len(tt.events)) {
				t.Errorf("events = %d, want %d", tr.Events(), len(tt.events))
			}
		})
	}
}
