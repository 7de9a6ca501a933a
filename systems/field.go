package systems

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/heartfield/components"
	"github.com/pthm-cable/heartfield/config"
	"github.com/pthm-cable/heartfield/viewport"
)

// FieldParams controls particle appearance at generation time.
type FieldParams struct {
	BaseColor colorful.Color
	MinRadius float64
	MaxRadius float64
	MinAlpha  float64
	MaxAlpha  float64
}

// DefaultFieldParams returns opaque-to-half-transparent red particles of radius 1..3.
func DefaultFieldParams() FieldParams {
	return FieldParams{
		BaseColor: colorful.Color{R: 1, G: 0, B: 0},
		MinRadius: 1,
		MaxRadius: 3,
		MinAlpha:  0.5,
		MaxAlpha:  1.0,
	}
}

// FieldParamsFromConfig builds params from the particle config section.
func FieldParamsFromConfig(cfg *config.Config) FieldParams {
	return FieldParams{
		BaseColor: cfg.Derived.BaseColor,
		MinRadius: cfg.Particle.MinRadius,
		MaxRadius: cfg.Particle.MaxRadius,
		MinAlpha:  cfg.Particle.MinAlpha,
		MaxAlpha:  cfg.Particle.MaxAlpha,
	}
}

// ParticleField owns the heart particles. Each particle is an entity with
// Position, Home, Body and Tint components.
type ParticleField struct {
	world  *ecs.World
	mapper *ecs.Map4[components.Position, components.Home, components.Body, components.Tint]
	filter *ecs.Filter4[components.Position, components.Home, components.Body, components.Tint]

	rng    Rand
	params FieldParams

	count       int
	generations int
}

// NewParticleField creates an empty field in the given world.
func NewParticleField(world *ecs.World, rng Rand, params FieldParams) *ParticleField {
	return &ParticleField{
		world:  world,
		mapper: ecs.NewMap4[components.Position, components.Home, components.Body, components.Tint](world),
		filter: ecs.NewFilter4[components.Position, components.Home, components.Body, components.Tint](world),
		rng:    rng,
		params: params,
	}
}

// Regenerate replaces every particle with tier.ParticleCount fresh samples
// around center. The old set is gone before the first new particle exists.
func (f *ParticleField) Regenerate(center r2.Vec, tier viewport.Tier) {
	f.clear()

	for i := 0; i < tier.ParticleCount; i++ {
		p := SampleHeart(f.rng, center, tier.ParticleScale)

		pos := components.Position{X: p.X, Y: p.Y}
		home := components.Home{X: p.X, Y: p.Y}
		body := components.Body{Radius: f.uniform(f.params.MinRadius, f.params.MaxRadius)}
		tint := components.Tint{Color: f.randomTint()}

		f.mapper.NewEntity(&pos, &home, &body, &tint)
	}

	f.count = tier.ParticleCount
	f.generations++
}

// clear removes all particle entities.
func (f *ParticleField) clear() {
	// Collect first; the world is locked while a query is open
	stale := make([]ecs.Entity, 0, f.count)
	query := f.filter.Query()
	for query.Next() {
		stale = append(stale, query.Entity())
	}
	for _, e := range stale {
		f.world.RemoveEntity(e)
	}
	f.count = 0
}

// randomTint returns the base color with a random alpha.
func (f *ParticleField) randomTint() color.RGBA {
	r, g, b := f.params.BaseColor.Clamped().RGB255()
	alpha := f.uniform(f.params.MinAlpha, f.params.MaxAlpha)
	return color.RGBA{R: r, G: g, B: b, A: uint8(math.Round(alpha * 255))}
}

func (f *ParticleField) uniform(lo, hi float64) float64 {
	return lo + f.rng.Float64()*(hi-lo)
}

// Count returns the number of particles.
func (f *ParticleField) Count() int {
	return f.count
}

// Generations returns how many times the field has been regenerated.
func (f *ParticleField) Generations() int {
	return f.generations
}

// Each calls fn for every particle. fn may mutate Position but must not
// add or remove entities.
func (f *ParticleField) Each(fn func(pos *components.Position, home *components.Home, body *components.Body, tint *components.Tint)) {
	query := f.filter.Query()
	for query.Next() {
		fn(query.Get())
	}
}

// Homes returns the home position of every particle.
func (f *ParticleField) Homes() []r2.Vec {
	homes := make([]r2.Vec, 0, f.count)
	f.Each(func(_ *components.Position, home *components.Home, _ *components.Body, _ *components.Tint) {
		homes = append(homes, r2.Vec{X: home.X, Y: home.Y})
	})
	return homes
}

// Displacements returns each particle's distance from home.
func (f *ParticleField) Displacements() []float64 {
	out := make([]float64, 0, f.count)
	f.Each(func(pos *components.Position, home *components.Home, _ *components.Body, _ *components.Tint) {
		out = append(out, math.Hypot(pos.X-home.X, pos.Y-home.Y))
	})
	return out
}
