// Heart snapshot tool - renders the particle field to a PNG file for inspection.
//
// Usage: go run ./cmd/heartshot -width 1024 -height 768 -pointer 512,384 -frames 10 -out heart.png
package main

import (
	"flag"
	"fmt"
	"image/color"
	"math/rand"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/heartfield/config"
	"github.com/pthm-cable/heartfield/input"
	"github.com/pthm-cable/heartfield/renderer"
	"github.com/pthm-cable/heartfield/systems"
	"github.com/pthm-cable/heartfield/viewport"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	outPath := flag.String("out", "heart.png", "Output PNG path")
	width := flag.Int("width", 1024, "Render width")
	height := flag.Int("height", 768, "Render height")
	seed := flag.Int64("seed", 1, "RNG seed")
	pointer := flag.String("pointer", "", "Pointer position as x,y (empty = no pointer)")
	frames := flag.Int("frames", 0, "Physics frames to run before the snapshot")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	ptr := input.Absent
	if *pointer != "" {
		var x, y float64
		if _, err := fmt.Sscanf(*pointer, "%g,%g", &x, &y); err != nil {
			fmt.Fprintf(os.Stderr, "Bad -pointer %q: %v\n", *pointer, err)
			os.Exit(1)
		}
		ptr = input.At(x, y)
	}

	adapter, err := viewport.NewAdapter(viewport.TiersFromConfig(cfg.Tiers))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bad tiers: %v\n", err)
		os.Exit(1)
	}
	tier, _ := adapter.Resize(float64(*width), float64(*height))

	world := ecs.NewWorld()
	field := systems.NewParticleField(world, rand.New(rand.NewSource(*seed)), systems.FieldParamsFromConfig(cfg))
	field.Regenerate(adapter.Center(), tier)

	physics := systems.NewPhysicsSystem(world, systems.PhysicsParamsFromConfig(cfg))
	repelled := 0
	for i := 0; i < *frames; i++ {
		repelled = physics.Advance(ptr, tier.InteractionRadius)
	}

	// Initialize raylib with hidden window
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(int32(*width), int32(*height), "Heart Snapshot")
	defer rl.CloseWindow()

	canvas := renderer.NewCanvas(*width, *height, color.RGBA{A: 255})
	defer canvas.Unload()

	renderer.NewParticleRenderer().Render(canvas, field)

	if err := canvas.Export(*outPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to export image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Heart rendered to: %s (%dx%d, tier %s, %d particles, %d repelled in last frame)\n",
		*outPath, *width, *height, tier.Name, field.Count(), repelled)
}
