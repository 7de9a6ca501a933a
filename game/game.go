// Package game wires the particle field, input, scheduler and renderer into
// a running heart field.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/heartfield/config"
	"github.com/pthm-cable/heartfield/input"
	"github.com/pthm-cable/heartfield/renderer"
	"github.com/pthm-cable/heartfield/scheduler"
	"github.com/pthm-cable/heartfield/systems"
	"github.com/pthm-cable/heartfield/telemetry"
	"github.com/pthm-cable/heartfield/ui"
	"github.com/pthm-cable/heartfield/viewport"
)

// Game holds the complete heart field state. All methods must be called from
// the goroutine that owns the raylib window (or any single goroutine when
// headless).
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	world   *ecs.World
	field   *systems.ParticleField
	physics *systems.PhysicsSystem

	adapter *viewport.Adapter
	tracker *input.Tracker
	poller  pointerPoller
	sweep   *Sweep

	sched *scheduler.Scheduler
	clock scheduler.Clock

	particles *renderer.ParticleRenderer
	target    renderer.Target
	canvas    *renderer.Canvas   // windowed only
	recorder  *renderer.Recorder // headless only
	hud       *ui.HUD

	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.WindowStats)

	headless     bool
	lastRepelled int
}

// NewGameWithOptions creates a game. Windowed games must be created after
// the raylib window is open.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	adapter, err := viewport.NewAdapter(viewport.TiersFromConfig(cfg.Tiers))
	if err != nil {
		return nil, fmt.Errorf("creating viewport adapter: %w", err)
	}

	statsWindow := cfg.Derived.StatsWindow
	if opts.StatsWindow > 0 {
		statsWindow = opts.StatsWindow
	}

	world := ecs.NewWorld()
	rng := rand.New(rand.NewSource(opts.Seed))

	g := &Game{
		cfg:           cfg,
		rng:           rng,
		world:         world,
		field:         systems.NewParticleField(world, rng, systems.FieldParamsFromConfig(cfg)),
		physics:       systems.NewPhysicsSystem(world, systems.PhysicsParamsFromConfig(cfg)),
		adapter:       adapter,
		tracker:       input.NewTracker(),
		particles:     renderer.NewParticleRenderer(),
		collector:     telemetry.NewCollector(statsWindow),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		logStats:      opts.LogStats,
		headless:      opts.Headless,
		clock:         opts.Clock,
	}

	g.sched = scheduler.New(cfg.Derived.FrameInterval, g.frame)
	g.sched.OnTick = g.afterTick

	width, height := opts.Width, opts.Height
	if opts.Headless {
		if width <= 0 {
			width = cfg.Screen.Width
		}
		if height <= 0 {
			height = cfg.Screen.Height
		}
		g.recorder = &renderer.Recorder{}
		g.target = g.recorder
		if g.clock == nil {
			g.clock = &scheduler.ManualClock{}
		}
		if opts.Sweep {
			g.sweep = NewSweep(cfg.Derived.SweepPeriod)
		}
	} else {
		width, height = rl.GetScreenWidth(), rl.GetScreenHeight()
		g.canvas = renderer.NewCanvas(width, height, color.RGBA{A: 255})
		g.target = g.canvas
		g.hud = ui.NewHUD(false)
		if g.clock == nil {
			g.clock = raylibClock{}
		}
	}

	g.outputManager, err = telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	if err := g.outputManager.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config", "error", err)
	}

	g.resize(width, height)

	slog.Info("heart field ready",
		"headless", g.headless,
		"width", width,
		"height", height,
		"tier", g.adapter.Tier().Name,
		"particles", g.field.Count(),
		"frame_interval", g.sched.Interval(),
	)

	return g, nil
}

// resize applies a viewport size. Every call regenerates the field around
// the center; the canvas is only reallocated when the size changed.
func (g *Game) resize(width, height int) {
	tier, changed := g.adapter.Resize(float64(width), float64(height))
	if changed && g.canvas != nil {
		g.canvas.Resize(width, height)
	}
	g.field.Regenerate(g.adapter.Center(), tier)
	g.collector.RecordRegeneration()

	slog.Info("viewport resized",
		"width", width,
		"height", height,
		"tier", tier.Name,
		"particles", tier.ParticleCount,
		"generation", g.field.Generations(),
	)
}

// frame is the scheduler's per-frame work: physics, then draw.
func (g *Game) frame(ts time.Duration) {
	g.perfCollector.StartFrame()

	g.perfCollector.StartPhase(telemetry.PhasePhysics)
	ptr := g.tracker.Pointer()
	g.lastRepelled = g.physics.Advance(ptr, g.adapter.Tier().InteractionRadius)

	g.perfCollector.StartPhase(telemetry.PhaseRender)
	g.particles.Render(g.target, g.field)

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.collector.RecordFrame(ptr.Present, g.lastRepelled)

	g.perfCollector.EndFrame()
}

// afterTick counts non-running ticks and flushes telemetry windows.
func (g *Game) afterTick(ts time.Duration, o scheduler.Outcome) {
	switch o {
	case scheduler.Dropped:
		g.collector.RecordDropped()
	case scheduler.Failed:
		g.collector.RecordFailed()
	}
	g.flushTelemetry(ts)
}

// Update polls input and offers the scheduler one host frame (windowed mode).
func (g *Game) Update() {
	g.handleInput()
	g.sched.Tick(g.clock.Now())
}

// Draw presents the canvas and the HUD (windowed mode).
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.canvas.Present()
	g.drawUI()

	rl.EndDrawing()
	g.perfCollector.RecordPresent()
}

// UpdateHeadless advances the synthetic clock by one host step, moves the
// sweep pointer if enabled, and offers the scheduler the frame.
func (g *Game) UpdateHeadless() error {
	clock, ok := g.clock.(*scheduler.ManualClock)
	if !ok {
		return errors.New("headless update needs a manual clock")
	}
	clock.Advance(g.cfg.Derived.HostStep)
	g.applySweep(clock.Now())
	g.sched.Tick(clock.Now())
	return nil
}

// RunHeadless runs host frames until maxTicks have been offered to the
// scheduler. maxTicks 0 runs forever.
func (g *Game) RunHeadless(maxTicks uint64) error {
	clock, ok := g.clock.(*scheduler.ManualClock)
	if !ok {
		return errors.New("headless run needs a manual clock")
	}
	host := &scheduler.SteppedHost{
		Clock:  clock,
		Step:   g.cfg.Derived.HostStep,
		Limit:  maxTicks,
		Before: func() { g.applySweep(clock.Now()) },
	}
	g.sched.Run(host)
	return nil
}

// Resize applies a viewport size change, as a window resize would.
func (g *Game) Resize(width, height int) {
	g.resize(width, height)
}

// Pointer applies a pointer event in window coordinates.
func (g *Game) Pointer(ev input.Event) {
	g.tracker.Apply(ev, g.canvasOrigin())
}

// canvasOrigin is the canvas position in window coordinates. The canvas
// covers the whole window.
func (g *Game) canvasOrigin() r2.Vec {
	return r2.Vec{}
}

// SetStatsCallback registers fn to receive every flushed stats window.
func (g *Game) SetStatsCallback(fn func(telemetry.WindowStats)) {
	g.statsCallback = fn
}

// Unload releases all resources and closes output files.
func (g *Game) Unload() {
	if g.canvas != nil {
		g.canvas.Unload()
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

// Ticks returns the number of host frames offered to the scheduler.
func (g *Game) Ticks() uint64 {
	return g.sched.Stats().Total()
}

// FrameStats returns the scheduler counters.
func (g *Game) FrameStats() scheduler.Stats {
	return g.sched.Stats()
}

// Field returns the particle field.
func (g *Game) Field() *systems.ParticleField {
	return g.field
}

// Tier returns the active viewport tier.
func (g *Game) Tier() viewport.Tier {
	return g.adapter.Tier()
}

// Recorder returns the headless draw target, or nil when windowed.
func (g *Game) Recorder() *renderer.Recorder {
	return g.recorder
}

// PointerState returns the tracked pointer.
func (g *Game) PointerState() input.Pointer {
	return g.tracker.Pointer()
}
