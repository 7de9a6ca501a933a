package renderer

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/heartfield/systems"
	"github.com/pthm-cable/heartfield/viewport"
)

func newField(t *testing.T) *systems.ParticleField {
	t.Helper()
	f := systems.NewParticleField(ecs.NewWorld(), rand.New(rand.NewSource(1)), systems.DefaultFieldParams())
	f.Regenerate(r2.Vec{X: 400, Y: 300}, viewport.DefaultTiers()[0])
	return f
}

func TestRenderDrawsEveryParticle(t *testing.T) {
	field := newField(t)
	rec := &Recorder{}
	r := NewParticleRenderer()

	r.Render(rec, field)

	if rec.Frames != 1 || rec.Clears != 1 {
		t.Errorf("frames=%d clears=%d, want 1 and 1", rec.Frames, rec.Clears)
	}
	if rec.Open() {
		t.Error("frame left open after Render")
	}
	if len(rec.Circles) != field.Count() {
		t.Fatalf("circles = %d, want %d", len(rec.Circles), field.Count())
	}
	if r.Drawn() != field.Count() {
		t.Errorf("drawn = %d, want %d", r.Drawn(), field.Count())
	}
	for _, c := range rec.Circles {
		if c.Radius < 1 || c.Radius > 3 {
			t.Fatalf("radius %v outside [1, 3]", c.Radius)
		}
		if c.Color.R != 255 {
			t.Fatalf("color %v not red", c.Color)
		}
	}
}

func TestRenderClearsPreviousFrame(t *testing.T) {
	field := newField(t)
	rec := &Recorder{}
	r := NewParticleRenderer()

	r.Render(rec, field)
	r.Render(rec, field)

	if len(rec.Circles) != field.Count() {
		t.Errorf("circles = %d after two frames, want %d", len(rec.Circles), field.Count())
	}
	if rec.Frames != 2 {
		t.Errorf("frames = %d, want 2", rec.Frames)
	}
}

// panicSurface fails on the first circle.
type panicSurface struct {
	Recorder
}

func (p *panicSurface) FillCircle(float64, float64, float64, color.RGBA) {
	panic("draw failed")
}

func TestRenderClosesFrameOnPanic(t *testing.T) {
	field := newField(t)
	s := &panicSurface{}

	func() {
		defer func() { _ = recover() }()
		NewParticleRenderer().Render(s, field)
	}()

	if s.Open() {
		t.Error("frame left open after panic")
	}
}
