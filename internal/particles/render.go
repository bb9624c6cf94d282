package particles

import (
	"image/color"
	"math"
)

// LinkDistance is the furthest two particles can be, in logical pixels, and
// still be joined by a line.
const LinkDistance = 135.0

// LinkWidth is the stroke width of a link in logical pixels.
const LinkWidth = 1.0

// Canvas is the drawing surface. Coordinates passed to the drawing calls are
// logical pixels; the canvas applies the scale set by SetTransform.
type Canvas interface {
	// Resize sets the backing buffer in physical pixels and the displayed
	// size in logical pixels.
	Resize(bufferWidth, bufferHeight int, width, height float64)
	SetTransform(scale float64)
	ClearRect(x, y, width, height float64, bg color.Color)
	FillCircle(cx, cy, radius float64, clr color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color)
}

// Render draws one frame of field onto c and returns the number of links drawn.
func Render(c Canvas, field []Particle, width, height float64, pal Palette) int {
	c.ClearRect(0, 0, width, height, pal.Background)

	for _, p := range field {
		c.FillCircle(p.X, p.Y, p.Radius, pal.Point)
	}

	links := 0
	for i := range field {
		p := field[i]
		for j := i + 1; j < len(field); j++ {
			q := field[j]
			alpha, ok := pal.LinkAlpha(math.Hypot(p.X-q.X, p.Y-q.Y))
			if !ok {
				continue
			}
			c.StrokeLine(p.X, p.Y, q.X, q.Y, LinkWidth, pal.LinkColor(alpha))
			links++
		}
	}
	return links
}
