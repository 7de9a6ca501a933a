package game

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pthm-cable/heartfield/config"
	"github.com/pthm-cable/heartfield/input"
	"github.com/pthm-cable/heartfield/telemetry"
)

func newHeadless(t *testing.T, width, height int) *Game {
	t.Helper()
	g, err := NewGameWithOptions(Options{
		Config:   config.Defaults(),
		Seed:     7,
		Headless: true,
		Width:    width,
		Height:   height,
	})
	if err != nil {
		t.Fatalf("NewGameWithOptions: %v", err)
	}
	t.Cleanup(g.Unload)
	return g
}

func TestNewGameSelectsTierFromWidth(t *testing.T) {
	tests := []struct {
		width     int
		wantTier  string
		wantCount int
	}{
		{500, "small", 2000},
		{900, "medium", 4000},
		{1600, "large", 7000},
	}

	for _, tt := range tests {
		g := newHeadless(t, tt.width, 700)
		if g.Tier().Name != tt.wantTier {
			t.Errorf("width %d: tier = %s, want %s", tt.width, g.Tier().Name, tt.wantTier)
		}
		if g.Field().Count() != tt.wantCount {
			t.Errorf("width %d: particles = %d, want %d", tt.width, g.Field().Count(), tt.wantCount)
		}
	}
}

func TestRunHeadlessGatesToFrameRate(t *testing.T) {
	g := newHeadless(t, 500, 400)

	if err := g.RunHeadless(60); err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}

	st := g.FrameStats()
	if g.Ticks() != 60 {
		t.Errorf("ticks = %d, want 60", g.Ticks())
	}
	if st.Ran != 30 || st.Dropped != 30 {
		t.Errorf("ran/dropped = %d/%d, want 30/30", st.Ran, st.Dropped)
	}
	if g.Recorder().Frames != 30 {
		t.Errorf("frames drawn = %d, want 30", g.Recorder().Frames)
	}
	if len(g.Recorder().Circles) != 2000 {
		t.Errorf("circles in last frame = %d, want 2000", len(g.Recorder().Circles))
	}
}

func TestUpdateHeadlessMatchesRun(t *testing.T) {
	g := newHeadless(t, 500, 400)
	for i := 0; i < 10; i++ {
		if err := g.UpdateHeadless(); err != nil {
			t.Fatalf("UpdateHeadless: %v", err)
		}
	}
	if st := g.FrameStats(); st.Ran != 5 || st.Dropped != 5 {
		t.Errorf("ran/dropped = %d/%d, want 5/5", st.Ran, st.Dropped)
	}
}

func TestResizeRegenerates(t *testing.T) {
	g := newHeadless(t, 1600, 900)

	before := g.Field().Homes()
	g.Resize(1600, 900)
	if g.Field().Generations() != 2 {
		t.Errorf("same size: generations = %d, want 2", g.Field().Generations())
	}
	if g.Field().Count() != 7000 {
		t.Errorf("same size: count = %d, want 7000", g.Field().Count())
	}
	after := g.Field().Homes()
	if len(after) > 0 && len(before) > 0 && after[0] == before[0] {
		t.Error("same size resize kept the previous homes")
	}

	g.Resize(600, 900)
	if g.Field().Generations() != 3 {
		t.Errorf("generations = %d, want 3", g.Field().Generations())
	}
	if g.Tier().Name != "small" || g.Field().Count() != 2000 {
		t.Errorf("after resize tier=%s count=%d, want small/2000", g.Tier().Name, g.Field().Count())
	}
}

func TestPointerRepelsThenFieldSettles(t *testing.T) {
	g := newHeadless(t, 500, 400)

	g.Pointer(input.Event{Kind: input.PointerMove, ClientX: 250, ClientY: 200})
	if !g.PointerState().Present {
		t.Fatal("pointer should be present")
	}
	g.RunHeadless(2)
	if g.lastRepelled == 0 {
		t.Fatal("pointer at heart center should repel particles")
	}

	maxDisp := func() float64 {
		m := 0.0
		for _, d := range g.Field().Displacements() {
			if d > m {
				m = d
			}
		}
		return m
	}
	if maxDisp() == 0 {
		t.Fatal("expected displaced particles")
	}

	g.Pointer(input.Event{Kind: input.PointerLeave})
	g.RunHeadless(1200)
	if d := maxDisp(); d > 1e-3 {
		t.Errorf("max displacement after settling = %v, want ~0", d)
	}
}

func TestStatsCallbackPerWindow(t *testing.T) {
	g, err := NewGameWithOptions(Options{
		Config:      config.Defaults(),
		Seed:        3,
		Headless:    true,
		Width:       500,
		Height:      400,
		StatsWindow: time.Second,
	})
	if err != nil {
		t.Fatalf("NewGameWithOptions: %v", err)
	}
	defer g.Unload()

	var windows []telemetry.WindowStats
	g.SetStatsCallback(func(s telemetry.WindowStats) { windows = append(windows, s) })

	g.RunHeadless(120)

	if len(windows) != 2 {
		t.Fatalf("windows = %d, want 2", len(windows))
	}
	for i, w := range windows {
		if w.FramesRan != 30 {
			t.Errorf("window %d: frames ran = %d, want 30", i, w.FramesRan)
		}
		if w.Tier != "small" || w.Particles != 2000 {
			t.Errorf("window %d: field = %s/%d, want small/2000", i, w.Tier, w.Particles)
		}
	}
	if windows[0].Regenerations != 1 {
		t.Errorf("first window regenerations = %d, want 1", windows[0].Regenerations)
	}
}

func TestSweepRunWritesOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	g, err := NewGameWithOptions(Options{
		Config:      config.Defaults(),
		Seed:        5,
		Headless:    true,
		Width:       900,
		Height:      700,
		Sweep:       true,
		OutputDir:   dir,
		StatsWindow: 2 * time.Second,
	})
	if err != nil {
		t.Fatalf("NewGameWithOptions: %v", err)
	}

	var repelled int
	g.SetStatsCallback(func(s telemetry.WindowStats) { repelled += s.Repelled })

	g.RunHeadless(360)
	g.Unload()

	if repelled == 0 {
		t.Error("sweep pointer never repelled a particle")
	}
	for _, name := range []string{"telemetry.csv", "perf.csv", "config.yaml"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestInvalidTiersRejected(t *testing.T) {
	cfg := config.Defaults()
	cfg.Tiers[len(cfg.Tiers)-1].MaxWidth = 5000

	if _, err := NewGameWithOptions(Options{Config: cfg, Headless: true}); err == nil {
		t.Error("expected error for bounded last tier")
	}
}
