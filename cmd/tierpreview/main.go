// Tier preview tool - interactive heart field with sliders for tier parameters.
//
// Usage: go run ./cmd/tierpreview
package main

import (
	"fmt"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
	gui "github.com/gen2brain/raylib-go/raygui"
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/heartfield/components"
	"github.com/pthm-cable/heartfield/config"
	"github.com/pthm-cable/heartfield/input"
	"github.com/pthm-cable/heartfield/systems"
	"github.com/pthm-cable/heartfield/viewport"
)

const (
	windowWidth  = 1040
	windowHeight = 720
	previewSize  = 620
	panelWidth   = windowWidth - previewSize - 30
)

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Tier Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	cfg := config.Defaults()
	tiers := viewport.TiersFromConfig(cfg.Tiers)

	viewWidth := float32(cfg.Screen.Width)
	tier := viewport.Select(tiers, float64(viewWidth))
	seed := int64(1)

	field, physics := newField(cfg, seed)

	preview := rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize}
	center := r2.Vec{X: float64(preview.X + preview.Width/2), Y: float64(preview.Y + preview.Height/2)}

	needsRegen := true
	for !rl.WindowShouldClose() {
		if needsRegen {
			field.Regenerate(center, tier)
			needsRegen = false
		}

		ptr := input.Absent
		mouse := rl.GetMousePosition()
		if rl.CheckCollisionPointRec(mouse, preview) {
			ptr = input.At(float64(mouse.X), float64(mouse.Y))
		}
		repelled := physics.Advance(ptr, tier.InteractionRadius)

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Draw preview
		rl.DrawRectangleRec(preview, rl.Black)
		rl.BeginScissorMode(int32(preview.X), int32(preview.Y), int32(preview.Width), int32(preview.Height))
		field.Each(func(pos *components.Position, _ *components.Home, body *components.Body, tint *components.Tint) {
			rl.DrawCircleV(
				rl.Vector2{X: float32(pos.X), Y: float32(pos.Y)},
				float32(body.Radius),
				rl.Color{R: tint.Color.R, G: tint.Color.G, B: tint.Color.B, A: tint.Color.A},
			)
		})
		if ptr.Present {
			rl.DrawCircleLines(int32(ptr.X), int32(ptr.Y), float32(tier.InteractionRadius), rl.Fade(rl.White, 0.3))
		}
		rl.EndScissorMode()
		rl.DrawRectangleLinesEx(preview, 1, rl.DarkGray)

		// Draw stats
		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Particles: %d  Repelled: %d  Generation: %d", field.Count(), repelled, field.Generations()), 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Heart: %.0f x %.0f px", 2*systems.HeartHalfWidth*tier.ParticleScale,
			(systems.HeartCusp+systems.HeartLobes)*tier.ParticleScale), 15, statsY+20, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Viewport Tier", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		// Viewport width slider
		rl.DrawText("Viewport width (selects tier)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newWidth := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"320", "2400",
			viewWidth, 320, 2400,
		)
		rl.DrawText(fmt.Sprintf("%.0f", viewWidth), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if int(newWidth) != int(viewWidth) {
			viewWidth = float32(int(newWidth))
			if sel := viewport.Select(tiers, float64(viewWidth)); sel.Name != tier.Name {
				tier = sel
				needsRegen = true
			}
		}
		panelY += 30
		rl.DrawText(fmt.Sprintf("Tier: %s", tier.Name), int32(panelX), int32(panelY), 18, rl.Maroon)
		panelY += 35

		// Separator
		rl.DrawLine(int32(panelX), int32(panelY), int32(panelX)+int32(panelWidth)-20, int32(panelY), rl.LightGray)
		panelY += 15

		// Particle count slider
		rl.DrawText("Particle count", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newCount := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"100", "10000",
			float32(tier.ParticleCount), 100, 10000,
		)
		rl.DrawText(fmt.Sprintf("%d", tier.ParticleCount), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if int(newCount) != tier.ParticleCount {
			tier.ParticleCount = int(newCount)
			needsRegen = true
		}
		panelY += 35

		// Particle scale slider
		rl.DrawText("Particle scale (heart size)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newScale := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"2", "18",
			float32(tier.ParticleScale), 2, 18,
		)
		rl.DrawText(fmt.Sprintf("%.1f", tier.ParticleScale), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if float64(newScale) != tier.ParticleScale {
			tier.ParticleScale = float64(newScale)
			needsRegen = true
		}
		panelY += 35

		// Interaction radius slider
		rl.DrawText("Interaction radius (px)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newRadius := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "250",
			float32(tier.InteractionRadius), 0, 250,
		)
		rl.DrawText(fmt.Sprintf("%.0f", tier.InteractionRadius), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		tier.InteractionRadius = float64(newRadius)
		panelY += 45

		// Buttons
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Regenerate") {
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			seed = int64(rl.GetRandomValue(0, 99999))
			field, physics = newField(cfg, seed)
			needsRegen = true
		}
		panelY += 40
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset Tier") {
			tier = viewport.Select(tiers, float64(viewWidth))
			needsRegen = true
		}
		panelY += 55

		// Output YAML
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		for _, line := range tierYAML(tier) {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		// Instructions
		rl.DrawText("Hover the preview to repel. Press C to copy YAML", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)

		if rl.IsKeyPressed(rl.KeyC) {
			var text string
			for _, line := range tierYAML(tier) {
				text += line + "\n"
			}
			rl.SetClipboardText(text)
		}

		rl.EndDrawing()
	}
}

// newField creates an empty field and its physics in a fresh world.
func newField(cfg *config.Config, seed int64) (*systems.ParticleField, *systems.PhysicsSystem) {
	world := ecs.NewWorld()
	field := systems.NewParticleField(world, rand.New(rand.NewSource(seed)), systems.FieldParamsFromConfig(cfg))
	return field, systems.NewPhysicsSystem(world, systems.PhysicsParamsFromConfig(cfg))
}

// tierYAML formats a tier as an entry of the tiers config list.
func tierYAML(t viewport.Tier) []string {
	return []string{
		fmt.Sprintf("- name: %s", t.Name),
		fmt.Sprintf("  max_width: %.0f", t.MaxWidth),
		fmt.Sprintf("  particle_count: %d", t.ParticleCount),
		fmt.Sprintf("  particle_scale: %g", t.ParticleScale),
		fmt.Sprintf("  interaction_radius: %g", t.InteractionRadius),
	}
}
