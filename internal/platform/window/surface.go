// Package window hosts the brick breaker in a desktop window with Ebitengine.
// Unlike terminals, windows report real key releases, so key edges are posted
// to the loop driver as they happen.
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/bricks/internal/core"
)

// Background is the color cleared regions are filled with.
var Background = color.RGBA{R: 0x1c, G: 0x1c, B: 0x1c, A: 0xff}

// debugAscent lifts debug-font text so y acts as a baseline.
const debugAscent = 12

// ImageSurface draws onto an ebiten image in playfield pixels.
type ImageSurface struct {
	img *ebiten.Image
}

// NewImageSurface wraps img.
func NewImageSurface(img *ebiten.Image) *ImageSurface {
	return &ImageSurface{img: img}
}

// ClearRect fills the region with the background color.
func (s *ImageSurface) ClearRect(x, y, w, h float64) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), Background, false)
}

// FillRect draws a filled rectangle.
func (s *ImageSurface) FillRect(x, y, w, h float64, c core.Color) {
	if !c.Visible() {
		return
	}
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), c.RGBA(), false)
}

// FillCircle draws a filled, anti-aliased circle.
func (s *ImageSurface) FillCircle(cx, cy, r float64, c core.Color) {
	if !c.Visible() {
		return
	}
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c.RGBA(), true)
}

// DrawText draws text with the built-in debug font. The font family and size
// are not available there and are ignored; the debug font is always white.
func (s *ImageSurface) DrawText(x, y float64, text string, _ core.Font, c core.Color) {
	if !c.Visible() {
		return
	}
	ebitenutil.DebugPrintAt(s.img, text, int(x), int(y)-debugAscent)
}
