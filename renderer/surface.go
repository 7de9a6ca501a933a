// Package renderer draws the particle field onto a 2D surface.
package renderer

import "image/color"

// Surface is a 2D drawing surface with the two primitives the field needs.
type Surface interface {
	Clear()
	FillCircle(x, y, radius float64, c color.RGBA)
}

// Target is a Surface that must be opened before drawing and closed after.
type Target interface {
	Surface
	Begin()
	End()
}

// Circle is one recorded FillCircle call.
type Circle struct {
	X, Y, Radius float64
	Color        color.RGBA
}

// Recorder is a Target that keeps the circles of the current frame in memory.
// It backs headless runs and tests.
type Recorder struct {
	Circles []Circle

	Frames int // completed Begin/End pairs
	Clears int

	open bool
}

// Begin starts a frame.
func (r *Recorder) Begin() {
	r.open = true
}

// End finishes a frame.
func (r *Recorder) End() {
	if r.open {
		r.Frames++
	}
	r.open = false
}

// Clear drops the circles recorded so far.
func (r *Recorder) Clear() {
	r.Clears++
	r.Circles = r.Circles[:0]
}

// FillCircle records a circle.
func (r *Recorder) FillCircle(x, y, radius float64, c color.RGBA) {
	r.Circles = append(r.Circles, Circle{X: x, Y: y, Radius: radius, Color: c})
}

// Open reports whether a frame is in progress.
func (r *Recorder) Open() bool {
	return r.open
}
