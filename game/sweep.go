package game

import (
	"math"
	"time"

	"github.com/pthm-cable/heartfield/input"
)

// Sweep moves a synthetic pointer around the heart for headless runs. For the
// first three quarters of each period the pointer circles the center at the
// heart's lobe radius; for the last quarter it leaves so the field settles.
type Sweep struct {
	period time.Duration
	inside bool
}

// NewSweep creates a sweep with the given period.
func NewSweep(period time.Duration) *Sweep {
	if period <= 0 {
		period = 6 * time.Second
	}
	return &Sweep{period: period}
}

// Event returns the pointer event for time ts, or false if nothing changed.
// center and scale describe the heart being swept.
func (s *Sweep) Event(ts time.Duration, cx, cy, scale float64) (input.Event, bool) {
	phase := float64(ts%s.period) / float64(s.period)

	if phase >= 0.75 {
		if !s.inside {
			return input.Event{}, false
		}
		s.inside = false
		return input.Event{Kind: input.PointerLeave}, true
	}

	s.inside = true
	angle := phase / 0.75 * 2 * math.Pi
	r := 10 * scale
	return input.Event{
		Kind:    input.PointerMove,
		ClientX: cx + r*math.Cos(angle),
		ClientY: cy + r*math.Sin(angle),
	}, true
}

// applySweep feeds the sweep pointer into the tracker.
func (g *Game) applySweep(ts time.Duration) {
	if g.sweep == nil {
		return
	}
	c := g.adapter.Center()
	if ev, ok := g.sweep.Event(ts, c.X, c.Y, g.adapter.Tier().ParticleScale); ok {
		g.Pointer(ev)
	}
}
