package game

import (
	"time"

	"github.com/pthm-cable/heartfield/config"
	"github.com/pthm-cable/heartfield/scheduler"
)

// Options configures a new Game.
type Options struct {
	Config *config.Config // nil = config.Cfg()
	Seed   int64

	LogStats    bool
	StatsWindow time.Duration // 0 = config telemetry.stats_window
	OutputDir   string

	// Headless runs without a window, drawing into a Recorder.
	Headless bool
	// Width and Height size the headless viewport. 0 = config screen size.
	Width, Height int
	// Sweep drives a synthetic pointer across the heart in headless mode.
	Sweep bool

	// Clock overrides the host clock. nil = raylib time when windowed,
	// a ManualClock when headless.
	Clock scheduler.Clock
}

// DefaultOptions returns options for a windowed run with config defaults.
func DefaultOptions() Options {
	return Options{Seed: 1}
}
