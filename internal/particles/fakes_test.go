package particles

import (
	"image/color"
	"math/rand"

	"github.com/olivierh59500/particle-links/internal/frame"
)

type circle struct {
	x, y, r float64
	clr     color.Color
}

type line struct {
	x0, y0, x1, y1, width float64
	clr                   color.NRGBA
}

type recordCanvas struct {
	bufW, bufH    int
	width, height float64
	scale         float64
	resizes       int

	clears  int
	circles []circle
	lines   []line
	ops     []string
}

func (c *recordCanvas) Resize(bw, bh int, w, h float64) {
	c.bufW, c.bufH, c.width, c.height = bw, bh, w, h
	c.resizes++
}

func (c *recordCanvas) SetTransform(scale float64) { c.scale = scale }

func (c *recordCanvas) ClearRect(x, y, w, h float64, bg color.Color) {
	c.clears++
	c.ops = append(c.ops, "clear")
}

func (c *recordCanvas) FillCircle(cx, cy, r float64, clr color.Color) {
	c.circles = append(c.circles, circle{cx, cy, r, clr})
	c.ops = append(c.ops, "circle")
}

func (c *recordCanvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	c.lines = append(c.lines, line{x0, y0, x1, y1, width, color.NRGBAModel.Convert(clr).(color.NRGBA)})
	c.ops = append(c.ops, "line")
}

func (c *recordCanvas) draws() int { return c.clears + len(c.circles) + len(c.lines) }

type fakeDisplay struct {
	width, height, dpr float64
	listeners          map[int]func()
	next               int
}

func newFakeDisplay(w, h, dpr float64) *fakeDisplay {
	return &fakeDisplay{width: w, height: h, dpr: dpr, listeners: map[int]func(){}}
}

func (d *fakeDisplay) Viewport() (float64, float64) { return d.width, d.height }

func (d *fakeDisplay) DevicePixelRatio() float64 { return d.dpr }

func (d *fakeDisplay) OnResize(fn func()) func() {
	id := d.next
	d.next++
	d.listeners[id] = fn
	return func() { delete(d.listeners, id) }
}

func (d *fakeDisplay) resize(w, h, dpr float64) {
	d.width, d.height, d.dpr = w, h, dpr
	for _, fn := range d.listeners {
		fn()
	}
}

// leakyScheduler never cancels, so stale callbacks still fire.
type leakyScheduler struct {
	q *frame.Queue
}

func (s leakyScheduler) RequestFrame(fn func()) frame.ID { return s.q.RequestFrame(fn) }

func (s leakyScheduler) CancelFrame(frame.ID) {}

// seqRand replays a fixed sequence of values.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

type harness struct {
	display *fakeDisplay
	frames  *frame.Queue
	canvas  *recordCanvas
	manager *Manager
}

func newHarness(w, h, dpr float64, seed int64) *harness {
	hs := &harness{
		display: newFakeDisplay(w, h, dpr),
		frames:  frame.NewQueue(),
		canvas:  &recordCanvas{},
	}
	hs.manager = NewManager(Options{
		Display:   hs.display,
		Scheduler: hs.frames,
		Acquire:   func() Canvas { return hs.canvas },
		Rand:      rand.New(rand.NewSource(seed)),
	})
	return hs
}
