package game

import "github.com/hajimehoshi/ebiten/v2"

// display reports the window's logical size and scale factor. ebiten hands
// us the outside size in LayoutF, so observe is the only place it changes.
type display struct {
	width, height float64
	dpr           float64
	scale         func() float64

	listeners []listener
	nextID    int
}

type listener struct {
	id int
	fn func()
}

func newDisplay(width, height float64, scale func() float64) *display {
	return &display{width: width, height: height, dpr: scale(), scale: scale}
}

// deviceScaleFactor returns the current monitor's scale, or 1 before ebiten
// knows which monitor the window is on.
func deviceScaleFactor() float64 {
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}

func (d *display) Viewport() (float64, float64) { return d.width, d.height }

func (d *display) DevicePixelRatio() float64 { return d.dpr }

func (d *display) OnResize(fn func()) func() {
	d.nextID++
	id := d.nextID
	d.listeners = append(d.listeners, listener{id: id, fn: fn})
	return func() {
		for i := range d.listeners {
			if d.listeners[i].id == id {
				d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
				return
			}
		}
	}
}

// observe records the outside size and notifies listeners when it or the
// scale factor changed. It reports whether anything changed.
func (d *display) observe(width, height float64) bool {
	dpr := d.scale()
	if width == d.width && height == d.height && dpr == d.dpr {
		return false
	}
	d.width, d.height, d.dpr = width, height, dpr

	// Listeners may detach themselves while being notified.
	snapshot := append([]listener(nil), d.listeners...)
	for _, l := range snapshot {
		l.fn()
	}
	return true
}
