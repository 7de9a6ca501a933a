package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/heartfield/config"
	"github.com/pthm-cable/heartfield/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Uint64("max-ticks", 0, "Stop after N host frames (0 = unlimited)")
	width := flag.Int("width", 0, "Headless viewport width (0 = use config)")
	height := flag.Int("height", 0, "Headless viewport height (0 = use config)")
	sweep := flag.Bool("sweep", false, "Drive a synthetic pointer around the heart in headless mode")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	opts := game.Options{
		Config:      cfg,
		Seed:        rngSeed,
		LogStats:    *logStats,
		StatsWindow: time.Duration(*statsWindow * float64(time.Second)),
		OutputDir:   *outputDir,
		Headless:    *headless,
		Width:       *width,
		Height:      *height,
		Sweep:       *sweep,
	}

	if *headless {
		// Headless mode: synthetic clock, no raylib window
		g, err := game.NewGameWithOptions(opts)
		if err != nil {
			slog.Error("failed to create game", "error", err)
			os.Exit(1)
		}
		defer g.Unload()

		slog.Info("starting headless run",
			"seed", rngSeed,
			"max_ticks", *maxTicks,
			"sweep", *sweep,
		)

		if err := g.RunHeadless(*maxTicks); err != nil {
			slog.Error("headless run failed", "error", err)
			return
		}
		st := g.FrameStats()
		slog.Info("max ticks reached", "ticks", g.Ticks(), "ran", st.Ran, "dropped", st.Dropped, "failed", st.Failed)
		return
	}

	// Graphical mode
	if cfg.Screen.Resizable {
		rl.SetConfigFlags(rl.FlagWindowResizable)
	}
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		return
	}
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if *maxTicks > 0 && g.Ticks() >= *maxTicks {
			break
		}
	}
}
