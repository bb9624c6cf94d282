package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// canvas draws onto the ebiten screen. Callers use logical pixels; the
// canvas scales them by the device pixel ratio set with SetTransform.
type canvas struct {
	screen        *ebiten.Image
	bufW, bufH    int
	width, height float64
	scale         float64
}

func newCanvas() *canvas {
	return &canvas{scale: 1}
}

// bind points the canvas at this frame's screen image.
func (c *canvas) bind(screen *ebiten.Image) { c.screen = screen }

func (c *canvas) Resize(bufferWidth, bufferHeight int, width, height float64) {
	c.bufW, c.bufH = bufferWidth, bufferHeight
	c.width, c.height = width, height
}

func (c *canvas) SetTransform(scale float64) { c.scale = scale }

func (c *canvas) ClearRect(x, y, width, height float64, bg color.Color) {
	if c.screen == nil {
		return
	}
	if c.covers(x, y, width, height) {
		c.screen.Fill(bg)
		return
	}
	vector.DrawFilledRect(c.screen, c.px(x), c.px(y), c.px(width), c.px(height), bg, false)
}

func (c *canvas) FillCircle(cx, cy, radius float64, clr color.Color) {
	if c.screen == nil {
		return
	}
	vector.DrawFilledCircle(c.screen, c.px(cx), c.px(cy), c.px(radius), clr, true)
}

func (c *canvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	if c.screen == nil {
		return
	}
	vector.StrokeLine(c.screen, c.px(x0), c.px(y0), c.px(x1), c.px(y1), c.px(width), clr, true)
}

// px converts a logical length or coordinate to buffer pixels.
func (c *canvas) px(v float64) float32 {
	return float32(v * c.scale)
}

func (c *canvas) covers(x, y, width, height float64) bool {
	return x <= 0 && y <= 0 && x+width >= c.width && y+height >= c.height
}
