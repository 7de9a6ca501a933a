package game

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// raylibClock reports time since the window was opened.
type raylibClock struct{}

func (raylibClock) Now() time.Duration {
	return time.Duration(rl.GetTime() * float64(time.Second))
}
