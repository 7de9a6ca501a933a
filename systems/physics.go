package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/heartfield/components"
	"github.com/pthm-cable/heartfield/config"
	"github.com/pthm-cable/heartfield/input"
)

// PhysicsParams holds the per-tick motion constants.
type PhysicsParams struct {
	EaseFactor        float64 // fraction of the offset from home closed per tick, in (0, 1)
	RepulsionStrength float64 // displacement per tick at zero distance from the pointer
}

// DefaultPhysicsParams returns ease 0.05 and repulsion 10.
func DefaultPhysicsParams() PhysicsParams {
	return PhysicsParams{EaseFactor: 0.05, RepulsionStrength: 10}
}

// PhysicsParamsFromConfig builds params from the physics config section.
func PhysicsParamsFromConfig(cfg *config.Config) PhysicsParams {
	return PhysicsParams{
		EaseFactor:        cfg.Physics.EaseFactor,
		RepulsionStrength: cfg.Physics.RepulsionStrength,
	}
}

// StepParticle advances one particle by one tick.
//
// Inside the interaction radius the particle is pushed straight away from the
// pointer by RepulsionStrength scaled with (radius-d)/radius. This is an
// impulse on position, repeated every tick while in range. Otherwise it closes
// EaseFactor of the gap to home. repelled reports which rule applied.
func StepParticle(pos, home r2.Vec, ptr input.Pointer, radius float64, p PhysicsParams) (next r2.Vec, repelled bool) {
	if ptr.Present && radius > 0 {
		away := r2.Sub(pos, ptr.Vec())
		d := r2.Norm(away)
		if d < radius {
			angle := math.Atan2(away.Y, away.X)
			force := (radius - d) / radius
			push := r2.Vec{
				X: math.Cos(angle) * force * p.RepulsionStrength,
				Y: math.Sin(angle) * force * p.RepulsionStrength,
			}
			return r2.Add(pos, push), true
		}
	}
	return r2.Add(pos, r2.Scale(p.EaseFactor, r2.Sub(home, pos))), false
}

// PhysicsSystem applies StepParticle to every particle in a world.
type PhysicsSystem struct {
	filter ecs.Filter2[components.Position, components.Home]
	params PhysicsParams

	snapped int
}

// NewPhysicsSystem creates a physics system over the world's particles.
func NewPhysicsSystem(w *ecs.World, params PhysicsParams) *PhysicsSystem {
	return &PhysicsSystem{
		filter: *ecs.NewFilter2[components.Position, components.Home](w),
		params: params,
	}
}

// Advance moves every particle one tick and returns how many were repelled.
// A non-finite result sends the particle home instead of being stored.
func (s *PhysicsSystem) Advance(ptr input.Pointer, interactionRadius float64) int {
	repelled := 0
	query := s.filter.Query()
	for query.Next() {
		pos, home := query.Get()

		h := r2.Vec{X: home.X, Y: home.Y}
		next, hit := StepParticle(r2.Vec{X: pos.X, Y: pos.Y}, h, ptr, interactionRadius, s.params)
		if !finite(next) {
			next = h
			s.snapped++
		}
		if hit {
			repelled++
		}

		pos.X = next.X
		pos.Y = next.Y
	}
	return repelled
}

// Snapped returns how many non-finite steps have been replaced by home.
func (s *PhysicsSystem) Snapped() int {
	return s.snapped
}

func finite(v r2.Vec) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
