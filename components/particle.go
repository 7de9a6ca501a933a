// Package components holds the ECS components of a heart particle.
package components

import "image/color"

// Position is a particle's current location in canvas coordinates.
type Position struct {
	X, Y float64
}

// Home is the location a particle was generated at. It is written once at
// creation and never mutated afterwards.
type Home struct {
	X, Y float64
}

// Body holds the drawn radius of a particle.
type Body struct {
	Radius float64
}

// Tint is the fill color of a particle. Alpha is straight, not premultiplied.
type Tint struct {
	Color color.RGBA
}
