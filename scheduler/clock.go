package scheduler

import "time"

// ManualClock is a Clock advanced explicitly by the caller.
type ManualClock struct {
	now time.Duration
}

// Now returns the current synthetic time.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now += d
}

// Set jumps the clock to ts.
func (c *ManualClock) Set(ts time.Duration) {
	c.now = ts
}

// SteppedHost is a Host that advances a ManualClock by a fixed step per
// frame and stops after a number of frames. Limit 0 runs forever.
type SteppedHost struct {
	Clock  *ManualClock
	Step   time.Duration
	Limit  uint64
	Before func() // called after each clock advance, may be nil

	frames uint64
}

// Now returns the clock's time.
func (h *SteppedHost) Now() time.Duration {
	return h.Clock.Now()
}

// Next advances the clock by one step.
func (h *SteppedHost) Next() bool {
	if h.Limit > 0 && h.frames >= h.Limit {
		return false
	}
	h.frames++
	h.Clock.Advance(h.Step)
	if h.Before != nil {
		h.Before()
	}
	return true
}

// Frames returns how many host frames have been produced.
func (h *SteppedHost) Frames() uint64 {
	return h.frames
}
