// Package scheduler gates per-frame work to a fixed target rate.
package scheduler

import (
	"fmt"
	"log/slog"
	"time"
)

// DefaultRate is the target frame rate in frames per second.
const DefaultRate = 30

// IntervalForRate returns the minimum spacing between frames for rate fps.
// Non-positive rates fall back to DefaultRate.
func IntervalForRate(rate float64) time.Duration {
	if rate <= 0 {
		rate = DefaultRate
	}
	return time.Duration(float64(time.Second) / rate)
}

// Clock supplies monotonic timestamps measured from an arbitrary origin.
type Clock interface {
	Now() time.Duration
}

// Host drives the loop. Next waits for the next host frame and returns false
// once the host is shutting down.
type Host interface {
	Clock
	Next() bool
}

// Outcome is what happened to one tick.
type Outcome uint8

const (
	Ran     Outcome = iota // work executed
	Dropped                // tick arrived before the interval elapsed
	Failed                 // work panicked and was skipped
)

func (o Outcome) String() string {
	switch o {
	case Ran:
		return "ran"
	case Dropped:
		return "dropped"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Stats counts what the scheduler did with each tick.
type Stats struct {
	Ran     uint64 // work executed
	Dropped uint64 // tick arrived before the interval elapsed
	Failed  uint64 // work panicked and was skipped
}

// Total returns the number of ticks seen.
func (s Stats) Total() uint64 {
	return s.Ran + s.Dropped + s.Failed
}

// Scheduler runs work at most once per Interval of host time.
type Scheduler struct {
	interval time.Duration
	work     func(ts time.Duration)

	lastFrame time.Duration
	started   bool
	stats     Stats

	// OnTick, if set, is called after every tick with its outcome.
	OnTick func(ts time.Duration, o Outcome)
}

// New creates a scheduler that calls work at most once per interval.
// The first tick always runs so the field is drawn without waiting.
func New(interval time.Duration, work func(ts time.Duration)) *Scheduler {
	if interval <= 0 {
		interval = IntervalForRate(DefaultRate)
	}
	return &Scheduler{
		interval: interval,
		work:     work,
	}
}

// Tick offers the scheduler a host frame at timestamp ts. It returns true if
// the frame's work ran to completion. A dropped tick changes nothing.
func (s *Scheduler) Tick(ts time.Duration) bool {
	o := s.tick(ts)
	if s.OnTick != nil {
		s.OnTick(ts, o)
	}
	return o == Ran
}

func (s *Scheduler) tick(ts time.Duration) Outcome {
	if s.started && ts-s.lastFrame < s.interval {
		s.stats.Dropped++
		return Dropped
	}
	s.lastFrame = ts
	s.started = true

	if err := s.run(ts); err != nil {
		s.stats.Failed++
		slog.Error("frame failed", "ts", ts, "tick", s.stats.Total(), "error", err)
		return Failed
	}
	s.stats.Ran++
	return Ran
}

// run executes work, turning a panic into an error.
func (s *Scheduler) run(ts time.Duration) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("frame work panicked: %v", r)
		}
	}()
	s.work(ts)
	return nil
}

// Run ticks the scheduler once per host frame until the host stops.
func (s *Scheduler) Run(h Host) {
	for h.Next() {
		s.Tick(h.Now())
	}
}

// Interval returns the minimum spacing between frames.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Last returns the timestamp of the most recent frame that was not dropped.
func (s *Scheduler) Last() time.Duration {
	return s.lastFrame
}

// Stats returns the tick counters.
func (s *Scheduler) Stats() Stats {
	return s.stats
}
