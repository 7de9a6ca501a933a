package game

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/heartfield/input"
)

func TestPointerPollerEvents(t *testing.T) {
	at := func(x, y float64) r2.Vec { return r2.Vec{X: x, Y: y} }

	tests := []struct {
		name    string
		samples []pointerSample
		want    [][]input.EventKind
	}{
		{
			name: "mouse moves then leaves",
			samples: []pointerSample{
				{CursorOnScreen: true, Mouse: at(10, 10), MouseMoved: true},
				{CursorOnScreen: true, Mouse: at(10, 10)},
				{CursorOnScreen: false},
				{CursorOnScreen: false},
			},
			want: [][]input.EventKind{
				{input.PointerMove},
				nil,
				{input.PointerLeave},
				nil,
			},
		},
		{
			name: "touch held then lifted",
			samples: []pointerSample{
				{Touches: 1, Touch: at(5, 5)},
				{Touches: 2, Touch: at(6, 5)},
				{},
				{},
			},
			want: [][]input.EventKind{
				{input.TouchMove},
				{input.TouchMove},
				{input.TouchEnd},
				nil,
			},
		},
		{
			name: "touch wins over mouse in the same frame",
			samples: []pointerSample{
				{CursorOnScreen: true, Mouse: at(1, 1), MouseMoved: true, Touches: 1, Touch: at(9, 9)},
			},
			want: [][]input.EventKind{
				{input.PointerMove, input.TouchMove},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p pointerPoller
			for i, s := range tt.samples {
				evs := p.events(s)
				if len(evs) != len(tt.want[i]) {
					t.Fatalf("frame %d: %d events, want %d", i, len(evs), len(tt.want[i]))
				}
				for j, ev := range evs {
					if ev.Kind != tt.want[i][j] {
						t.Errorf("frame %d event %d = %v, want %v", i, j, ev.Kind, tt.want[i][j])
					}
				}
			}
		})
	}
}

func TestPointerPollerFeedsTracker(t *testing.T) {
	var p pointerPoller
	tr := input.NewTracker()

	for _, ev := range p.events(pointerSample{CursorOnScreen: true, Mouse: r2.Vec{X: 1, Y: 1}, MouseMoved: true, Touches: 1, Touch: r2.Vec{X: 9, Y: 8}}) {
		tr.Apply(ev, r2.Vec{})
	}
	if ptr := tr.Pointer(); !ptr.Present || ptr.X != 9 || ptr.Y != 8 {
		t.Errorf("pointer = %+v, want touch at (9, 8)", ptr)
	}
}
