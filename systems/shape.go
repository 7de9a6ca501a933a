// Package systems contains the particle field and the systems that run over it.
package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Rand is the random source used by samplers. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Heart curve extents in units of scale, for r = 1.
const (
	HeartHalfWidth = 16.0  // |dx| <= 16
	HeartCusp      = 17.0  // dy reaches +17 at t = pi, the bottom point
	HeartLobes     = 11.93 // dy reaches about -11.92 at the top of the lobes
)

// HeartOffset returns the offset from the heart center for curve parameter t
// and radial fraction r in [0, 1]. Canvas y grows downward, so the curve is
// flipped to point the cusp down.
func HeartOffset(t, r, scale float64) r2.Vec {
	s := math.Sin(t)
	dx := scale * 16 * s * s * s * r
	dy := -scale * (13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)) * r
	return r2.Vec{X: dx, Y: dy}
}

// SampleHeart draws one point inside the heart of the given scale around center.
// r is the square root of a uniform draw so samples are spread evenly by area
// rather than bunched at the middle.
func SampleHeart(rng Rand, center r2.Vec, scale float64) r2.Vec {
	t := rng.Float64() * 2 * math.Pi
	r := math.Sqrt(rng.Float64())
	return r2.Add(center, HeartOffset(t, r, scale))
}
