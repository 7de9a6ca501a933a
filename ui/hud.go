package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds the values shown by the HUD.
type HUDData struct {
	Title string

	Tier              string
	Particles         int
	ParticleScale     float64
	InteractionRadius float64
	Generations       int

	Width, Height int

	HostFPS       int32
	FramesRan     uint64
	FramesDropped uint64
	FramesFailed  uint64

	PointerPresent bool
	PointerX       float64
	PointerY       float64
	Repelled       int // particles repelled in the last frame
}

// Row is one label/value line of the HUD.
type Row struct {
	Label string
	Value string
	Warn  bool
}

// Rows formats the HUD content.
func (d HUDData) Rows() []Row {
	pointer := "none"
	if d.PointerPresent {
		pointer = fmt.Sprintf("%.0f, %.0f", d.PointerX, d.PointerY)
	}
	return []Row{
		{Label: "Viewport", Value: fmt.Sprintf("%dx%d", d.Width, d.Height)},
		{Label: "Tier", Value: fmt.Sprintf("%s (scale %.0f, radius %.0f)", d.Tier, d.ParticleScale, d.InteractionRadius)},
		{Label: "Particles", Value: fmt.Sprintf("%d (gen %d)", d.Particles, d.Generations)},
		{Label: "FPS", Value: fmt.Sprintf("%d host", d.HostFPS)},
		{Label: "Frames", Value: fmt.Sprintf("%d ran, %d dropped", d.FramesRan, d.FramesDropped)},
		{Label: "Failed", Value: fmt.Sprintf("%d", d.FramesFailed), Warn: d.FramesFailed > 0},
		{Label: "Pointer", Value: pointer},
		{Label: "Repelled", Value: fmt.Sprintf("%d", d.Repelled)},
	}
}

// RepelledFraction returns the share of particles repelled in the last frame.
func (d HUDData) RepelledFraction() float32 {
	if d.Particles == 0 {
		return 0
	}
	return float32(d.Repelled) / float32(d.Particles)
}

// HUD renders the heads-up display panel.
type HUD struct {
	renderer *Renderer
	visible  bool
	width    int32
}

// NewHUD creates a new HUD.
func NewHUD(visible bool) *HUD {
	return &HUD{
		renderer: NewRenderer(),
		visible:  visible,
		width:    280,
	}
}

// Toggle switches HUD visibility and returns the new state.
func (h *HUD) Toggle() bool {
	h.visible = !h.visible
	return h.visible
}

// Visible reports whether the HUD is shown.
func (h *HUD) Visible() bool {
	return h.visible
}

// Draw renders the HUD in the top-left corner.
func (h *HUD) Draw(data HUDData) {
	if !h.visible {
		return
	}

	r := h.renderer
	rows := data.Rows()
	pad := r.Theme.Padding
	height := pad*2 + r.Theme.LineHeight + 4 + int32(len(rows))*r.Theme.LineHeight + r.Theme.LineHeight + 2

	r.DrawPanel(pad, pad, h.width, height)

	x := pad * 2
	y := r.DrawHeader(x, pad*2, data.Title)
	for _, row := range rows {
		y = r.DrawLabelValue(x, y, row.Label, row.Value, row.Warn)
	}
	r.DrawBar(x, y, "Disturbed", data.RepelledFraction(), h.width-pad*2)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	if !h.visible {
		return
	}
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
