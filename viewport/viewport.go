// Package viewport tracks the drawing surface size and picks the particle
// tier that fits it.
package viewport

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/heartfield/config"
)

// ErrInvalidTier is returned for tier sets that would divide by zero or
// never match a width.
var ErrInvalidTier = errors.New("invalid tier")

// Tier bundles the viewport-dependent particle parameters.
type Tier struct {
	Name              string
	MaxWidth          float64 // exclusive upper bound on viewport width; 0 = unbounded
	ParticleCount     int
	ParticleScale     float64
	InteractionRadius float64
}

// DefaultTiers returns the small/medium/large tiers.
func DefaultTiers() []Tier {
	return []Tier{
		{Name: "small", MaxWidth: 768, ParticleCount: 2000, ParticleScale: 8, InteractionRadius: 50},
		{Name: "medium", MaxWidth: 1200, ParticleCount: 4000, ParticleScale: 10, InteractionRadius: 75},
		{Name: "large", MaxWidth: 0, ParticleCount: 7000, ParticleScale: 15, InteractionRadius: 100},
	}
}

// TiersFromConfig converts configured tiers.
func TiersFromConfig(cfgs []config.TierConfig) []Tier {
	tiers := make([]Tier, len(cfgs))
	for i, c := range cfgs {
		tiers[i] = Tier{
			Name:              c.Name,
			MaxWidth:          float64(c.MaxWidth),
			ParticleCount:     c.ParticleCount,
			ParticleScale:     c.ParticleScale,
			InteractionRadius: c.InteractionRadius,
		}
	}
	return tiers
}

// ValidateTiers checks that every tier is usable and that the last one is
// unbounded so every width selects something.
func ValidateTiers(tiers []Tier) error {
	if len(tiers) == 0 {
		return fmt.Errorf("empty tier list: %w", ErrInvalidTier)
	}
	for i, t := range tiers {
		if t.InteractionRadius <= 0 {
			return fmt.Errorf("tier %q: interaction radius %v: %w", t.Name, t.InteractionRadius, ErrInvalidTier)
		}
		if t.ParticleCount <= 0 || t.ParticleScale <= 0 {
			return fmt.Errorf("tier %q: count and scale must be positive: %w", t.Name, ErrInvalidTier)
		}
		if i > 0 && t.MaxWidth != 0 && t.MaxWidth <= tiers[i-1].MaxWidth {
			return fmt.Errorf("tier %q: thresholds must ascend: %w", t.Name, ErrInvalidTier)
		}
	}
	if tiers[len(tiers)-1].MaxWidth != 0 {
		return fmt.Errorf("last tier %q must be unbounded: %w", tiers[len(tiers)-1].Name, ErrInvalidTier)
	}
	return nil
}

// Select returns the first tier whose MaxWidth exceeds width.
func Select(tiers []Tier, width float64) Tier {
	for _, t := range tiers {
		if t.MaxWidth == 0 || width < t.MaxWidth {
			return t
		}
	}
	return tiers[len(tiers)-1]
}

// Adapter follows the viewport size and the tier derived from it.
type Adapter struct {
	tiers         []Tier
	width, height float64
	tier          Tier
	sized         bool
}

// NewAdapter creates an adapter over a validated tier list.
func NewAdapter(tiers []Tier) (*Adapter, error) {
	if err := ValidateTiers(tiers); err != nil {
		return nil, err
	}
	return &Adapter{tiers: tiers, tier: tiers[0]}, nil
}

// Resize records a new viewport size and reselects the tier.
// changed is false when the size equals the previous one; the first call
// always reports a change.
func (a *Adapter) Resize(width, height float64) (tier Tier, changed bool) {
	if a.sized && width == a.width && height == a.height {
		return a.tier, false
	}
	a.width = width
	a.height = height
	a.sized = true
	a.tier = Select(a.tiers, width)
	return a.tier, true
}

// Tier returns the current tier.
func (a *Adapter) Tier() Tier {
	return a.tier
}

// Size returns the current viewport dimensions.
func (a *Adapter) Size() (width, height float64) {
	return a.width, a.height
}

// Center returns the middle of the viewport, where the heart is placed.
func (a *Adapter) Center() r2.Vec {
	return r2.Vec{X: a.width / 2, Y: a.height / 2}
}
