// Package telemetry collects windowed run statistics and frame timing, and
// writes them as CSV.
package telemetry

import "time"

// Collector accumulates frame events within fixed windows of host time and
// produces WindowStats.
type Collector struct {
	window      time.Duration
	windowStart time.Duration

	framesRan     int
	framesDropped int
	framesFailed  int
	regenerations int
	pointerFrames int
	repelled      int
}

// NewCollector creates a collector with windows of the given length.
func NewCollector(window time.Duration) *Collector {
	if window <= 0 {
		window = 10 * time.Second
	}
	return &Collector{window: window}
}

// RecordFrame records a frame whose work completed. pointerActive reports
// whether a pointer was present, repelled how many particles it pushed.
func (c *Collector) RecordFrame(pointerActive bool, repelled int) {
	c.framesRan++
	if pointerActive {
		c.pointerFrames++
	}
	c.repelled += repelled
}

// RecordDropped records a host frame skipped by the rate gate.
func (c *Collector) RecordDropped() {
	c.framesDropped++
}

// RecordFailed records a frame whose work panicked.
func (c *Collector) RecordFailed() {
	c.framesFailed++
}

// RecordRegeneration records a field regeneration.
func (c *Collector) RecordRegeneration() {
	c.regenerations++
}

// ShouldFlush reports whether the current window has elapsed at now.
func (c *Collector) ShouldFlush(now time.Duration) bool {
	return now-c.windowStart >= c.window
}

// FieldState is a snapshot of the field taken at flush time.
type FieldState struct {
	Tier          string
	Particles     int
	Displacements []float64 // distance of each particle from home
	Snapped       int       // cumulative non-finite steps sent home
}

// Flush produces the stats for the window ending at now and starts a new one.
func (c *Collector) Flush(now time.Duration, field FieldState) WindowStats {
	span := (now - c.windowStart).Seconds()

	var rate, pointerPct, repelledPerFrame float64
	if span > 0 {
		rate = float64(c.framesRan) / span
	}
	if c.framesRan > 0 {
		pointerPct = float64(c.pointerFrames) / float64(c.framesRan) * 100
		repelledPerFrame = float64(c.repelled) / float64(c.framesRan)
	}

	disp := ComputeDisplacementStats(field.Displacements)

	stats := WindowStats{
		WindowStart: c.windowStart.Seconds(),
		WindowEnd:   now.Seconds(),

		Tier:      field.Tier,
		Particles: field.Particles,

		FramesRan:     c.framesRan,
		FramesDropped: c.framesDropped,
		FramesFailed:  c.framesFailed,
		FrameRate:     rate,

		Regenerations:    c.regenerations,
		PointerFramePct:  pointerPct,
		Repelled:         c.repelled,
		RepelledPerFrame: repelledPerFrame,

		DispMean: disp.Mean,
		DispStd:  disp.Std,
		DispP50:  disp.P50,
		DispP90:  disp.P90,
		DispMax:  disp.Max,

		Snapped: field.Snapped,
	}

	c.windowStart = now
	c.framesRan = 0
	c.framesDropped = 0
	c.framesFailed = 0
	c.regenerations = 0
	c.pointerFrames = 0
	c.repelled = 0

	return stats
}

// Window returns the window length.
func (c *Collector) Window() time.Duration {
	return c.window
}
