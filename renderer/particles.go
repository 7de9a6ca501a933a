package renderer

import (
	"github.com/pthm-cable/heartfield/components"
	"github.com/pthm-cable/heartfield/systems"
)

// ParticleRenderer draws heart particles as filled circles.
type ParticleRenderer struct {
	drawn int
}

// NewParticleRenderer creates a new particle renderer.
func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{}
}

// Draw clears the surface and draws every particle at its current position.
func (r *ParticleRenderer) Draw(s Surface, field *systems.ParticleField) {
	s.Clear()

	n := 0
	field.Each(func(pos *components.Position, _ *components.Home, body *components.Body, tint *components.Tint) {
		s.FillCircle(pos.X, pos.Y, body.Radius, tint.Color)
		n++
	})
	r.drawn = n
}

// Render draws one complete frame into t. End is called even if drawing panics.
func (r *ParticleRenderer) Render(t Target, field *systems.ParticleField) {
	t.Begin()
	defer t.End()
	r.Draw(t, field)
}

// Drawn returns the number of particles drawn by the last frame.
func (r *ParticleRenderer) Drawn() int {
	return r.drawn
}
