package game

import (
	"math"
	"testing"
	"time"

	"github.com/pthm-cable/heartfield/input"
)

func TestSweepEvents(t *testing.T) {
	s := NewSweep(4 * time.Second)

	ev, ok := s.Event(0, 100, 100, 10)
	if !ok || ev.Kind != input.PointerMove {
		t.Fatalf("t=0: got %v %v, want pointer move", ev.Kind, ok)
	}
	if math.Abs(ev.ClientX-200) > 1e-9 || math.Abs(ev.ClientY-100) > 1e-9 {
		t.Errorf("t=0: pointer = (%v, %v), want (200, 100)", ev.ClientX, ev.ClientY)
	}

	ev, ok = s.Event(3500*time.Millisecond, 100, 100, 10)
	if !ok || ev.Kind != input.PointerLeave {
		t.Fatalf("t=3.5s: got %v %v, want pointer leave", ev.Kind, ok)
	}
	if _, ok := s.Event(3900*time.Millisecond, 100, 100, 10); ok {
		t.Error("t=3.9s: leave should be reported once")
	}

	ev, ok = s.Event(4*time.Second, 100, 100, 10)
	if !ok || ev.Kind != input.PointerMove {
		t.Errorf("t=4s: got %v %v, want pointer move at start of next period", ev.Kind, ok)
	}
}
