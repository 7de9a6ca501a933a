package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/heartfield/ui"
)

const controlsLegend = "[H] HUD  [F11] fullscreen  [Esc] quit"

// hudData collects the values shown by the HUD.
func (g *Game) hudData() ui.HUDData {
	st := g.sched.Stats()
	ptr := g.tracker.Pointer()
	w, h := g.adapter.Size()
	tier := g.adapter.Tier()

	return ui.HUDData{
		Title:             g.cfg.Screen.Title,
		Tier:              tier.Name,
		Particles:         g.field.Count(),
		ParticleScale:     tier.ParticleScale,
		InteractionRadius: tier.InteractionRadius,
		Generations:       g.field.Generations(),
		Width:             int(w),
		Height:            int(h),
		FramesRan:         st.Ran,
		FramesDropped:     st.Dropped,
		FramesFailed:      st.Failed,
		PointerPresent:    ptr.Present,
		PointerX:          ptr.X,
		PointerY:          ptr.Y,
		Repelled:          g.lastRepelled,
	}
}

// drawUI renders the HUD over the field.
func (g *Game) drawUI() {
	if g.hud == nil {
		return
	}
	data := g.hudData()
	data.HostFPS = rl.GetFPS()

	g.hud.Draw(data)
	g.hud.DrawControls(int32(data.Height), controlsLegend)
}
