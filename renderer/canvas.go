package renderer

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Canvas is a Target backed by a raylib render texture. The texture keeps its
// contents between frames, so the window can be presented every host frame
// while the field is only redrawn when the scheduler lets a frame through.
//
// All methods must be called on the raylib thread after the window exists.
type Canvas struct {
	target     rl.RenderTexture2D
	width      int32
	height     int32
	background rl.Color

	initialized bool
}

// NewCanvas creates a canvas of the given size. The texture is allocated on
// first use.
func NewCanvas(width, height int, background color.RGBA) *Canvas {
	return &Canvas{
		width:      int32(width),
		height:     int32(height),
		background: rl.Color{R: background.R, G: background.G, B: background.B, A: background.A},
	}
}

// Init allocates the render texture.
func (c *Canvas) Init() {
	if c.initialized {
		return
	}
	c.target = rl.LoadRenderTexture(c.width, c.height)
	c.initialized = true
}

// Resize reallocates the texture for a new size. Previous contents are lost.
func (c *Canvas) Resize(width, height int) {
	if c.initialized && int32(width) == c.width && int32(height) == c.height {
		return
	}
	c.Unload()
	c.width = int32(width)
	c.height = int32(height)
	c.Init()
}

// Begin redirects drawing into the texture.
func (c *Canvas) Begin() {
	if !c.initialized {
		c.Init()
	}
	rl.BeginTextureMode(c.target)
}

// End restores drawing to the window.
func (c *Canvas) End() {
	rl.EndTextureMode()
}

// Clear fills the texture with the background color.
func (c *Canvas) Clear() {
	rl.ClearBackground(c.background)
}

// FillCircle draws a filled circle.
func (c *Canvas) FillCircle(x, y, radius float64, col color.RGBA) {
	rl.DrawCircleV(
		rl.Vector2{X: float32(x), Y: float32(y)},
		float32(radius),
		rl.Color{R: col.R, G: col.G, B: col.B, A: col.A},
	)
}

// Present draws the texture onto the window at the origin.
func (c *Canvas) Present() {
	if !c.initialized {
		return
	}
	// Render textures are stored upside down
	src := rl.Rectangle{
		X:      0,
		Y:      0,
		Width:  float32(c.width),
		Height: -float32(c.height),
	}
	rl.DrawTextureRec(c.target.Texture, src, rl.Vector2{}, rl.White)
}

// Export writes the texture contents to an image file.
func (c *Canvas) Export(path string) error {
	if !c.initialized {
		return fmt.Errorf("exporting canvas: not initialized")
	}
	img := rl.LoadImageFromTexture(c.target.Texture)
	defer rl.UnloadImage(img)
	rl.ImageFlipVertical(img)

	if !rl.ExportImage(*img, path) {
		return fmt.Errorf("exporting canvas to %s", path)
	}
	return nil
}

// Size returns the texture size in pixels.
func (c *Canvas) Size() (int, int) {
	return int(c.width), int(c.height)
}

// Unload frees the texture.
func (c *Canvas) Unload() {
	if c.initialized {
		rl.UnloadRenderTexture(c.target)
		c.initialized = false
	}
}
