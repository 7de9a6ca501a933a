package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/heartfield/input"
)

// handleInput processes window, keyboard and pointer input for one host frame.
func (g *Game) handleInput() {
	// Window resize propagation
	g.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeyH) {
		g.hud.Toggle()
	}

	for _, ev := range g.poller.events(samplePointer()) {
		g.Pointer(ev)
	}
}

// handleResize checks for window resize and regenerates the field.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	g.resize(rl.GetScreenWidth(), rl.GetScreenHeight())
}

// pointerSample is the mouse and touch state read in one host frame.
type pointerSample struct {
	CursorOnScreen bool
	Mouse          r2.Vec
	MouseMoved     bool

	Touches int
	Touch   r2.Vec // first touch point, valid when Touches > 0
}

func samplePointer() pointerSample {
	m := rl.GetMousePosition()
	d := rl.GetMouseDelta()
	s := pointerSample{
		CursorOnScreen: rl.IsCursorOnScreen(),
		Mouse:          r2.Vec{X: float64(m.X), Y: float64(m.Y)},
		MouseMoved:     d.X != 0 || d.Y != 0,
		Touches:        int(rl.GetTouchPointCount()),
	}
	if s.Touches > 0 {
		t := rl.GetTouchPosition(0)
		s.Touch = r2.Vec{X: float64(t.X), Y: float64(t.Y)}
	}
	return s
}

// pointerPoller turns polled device state into the edge-triggered events a
// browser would deliver: move while moving, leave and touch end once.
type pointerPoller struct {
	cursorInside bool
	touching     bool
}

func (p *pointerPoller) events(s pointerSample) []input.Event {
	var evs []input.Event

	switch {
	case s.CursorOnScreen && s.MouseMoved:
		evs = append(evs, input.Event{Kind: input.PointerMove, ClientX: s.Mouse.X, ClientY: s.Mouse.Y})
	case !s.CursorOnScreen && p.cursorInside:
		evs = append(evs, input.Event{Kind: input.PointerLeave})
	}
	p.cursorInside = s.CursorOnScreen

	// Only the first touch point steers
	if s.Touches > 0 {
		evs = append(evs, input.Event{Kind: input.TouchMove, ClientX: s.Touch.X, ClientY: s.Touch.Y})
		p.touching = true
	} else if p.touching {
		evs = append(evs, input.Event{Kind: input.TouchEnd})
		p.touching = false
	}

	return evs
}
