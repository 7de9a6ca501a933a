package viewport

import (
	"errors"
	"testing"

	"github.com/pthm-cable/heartfield/config"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		width      float64
		wantName   string
		wantCount  int
		wantScale  float64
		wantRadius float64
	}{
		{500, "small", 2000, 8, 50},
		{767, "small", 2000, 8, 50},
		{768, "medium", 4000, 10, 75},
		{900, "medium", 4000, 10, 75},
		{1199, "medium", 4000, 10, 75},
		{1200, "large", 7000, 15, 100},
		{1600, "large", 7000, 15, 100},
	}

	tiers := DefaultTiers()
	for _, tt := range tests {
		got := Select(tiers, tt.width)
		if got.Name != tt.wantName || got.ParticleCount != tt.wantCount ||
			got.ParticleScale != tt.wantScale || got.InteractionRadius != tt.wantRadius {
			t.Errorf("Select(%v) = %+v, want %s (%d, %v, %v)",
				tt.width, got, tt.wantName, tt.wantCount, tt.wantScale, tt.wantRadius)
		}
	}
}

func TestTiersFromConfigMatchDefaults(t *testing.T) {
	tiers := TiersFromConfig(config.Defaults().Tiers)
	defaults := DefaultTiers()

	if len(tiers) != len(defaults) {
		t.Fatalf("got %d tiers, want %d", len(tiers), len(defaults))
	}
	for i := range tiers {
		if tiers[i] != defaults[i] {
			t.Errorf("tier %d = %+v, want %+v", i, tiers[i], defaults[i])
		}
	}
}

func TestNewAdapterRejectsZeroRadius(t *testing.T) {
	tiers := DefaultTiers()
	tiers[1].InteractionRadius = 0

	_, err := NewAdapter(tiers)
	if !errors.Is(err, ErrInvalidTier) {
		t.Errorf("expected ErrInvalidTier, got %v", err)
	}
}

func TestNewAdapterRejectsBoundedLastTier(t *testing.T) {
	tiers := DefaultTiers()
	tiers[2].MaxWidth = 4000

	if _, err := NewAdapter(tiers); !errors.Is(err, ErrInvalidTier) {
		t.Errorf("expected ErrInvalidTier, got %v", err)
	}
}

func TestAdapterResize(t *testing.T) {
	a, err := NewAdapter(DefaultTiers())
	if err != nil {
		t.Fatal(err)
	}

	tier, changed := a.Resize(900, 600)
	if !changed {
		t.Error("first resize should report a change")
	}
	if tier.Name != "medium" {
		t.Errorf("tier = %s, want medium", tier.Name)
	}

	c := a.Center()
	if c.X != 450 || c.Y != 300 {
		t.Errorf("center = (%v, %v), want (450, 300)", c.X, c.Y)
	}

	if _, changed := a.Resize(900, 600); changed {
		t.Error("same size should not report a change")
	}

	// Height-only change still counts; tier stays the same
	tier, changed = a.Resize(900, 700)
	if !changed || tier.Name != "medium" {
		t.Errorf("Resize(900, 700) = %s, %v; want medium, true", tier.Name, changed)
	}

	tier, _ = a.Resize(1600, 900)
	if tier.Name != "large" || a.Tier().Name != "large" {
		t.Errorf("tier after widening = %s, want large", tier.Name)
	}

	w, h := a.Size()
	if w != 1600 || h != 900 {
		t.Errorf("size = (%v, %v), want (1600, 900)", w, h)
	}
}
