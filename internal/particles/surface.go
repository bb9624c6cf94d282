package particles

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/olivierh59500/particle-links/internal/frame"
)

// Display is the read-only view of the environment the surface lives in.
type Display interface {
	// Viewport returns the logical size of the drawing area.
	Viewport() (width, height float64)
	// DevicePixelRatio returns physical pixels per logical pixel. Values
	// that are not finite and positive are treated as 1.
	DevicePixelRatio() float64
	// OnResize registers fn to run whenever the viewport or pixel ratio
	// changes. The returned func detaches it.
	OnResize(fn func()) (detach func())
}

// Scheduler runs callbacks at the display's next paint opportunity.
type Scheduler interface {
	RequestFrame(fn func()) frame.ID
	CancelFrame(id frame.ID)
}

// State is the lifecycle state of a Manager.
type State int

const (
	StateUnmounted State = iota
	StateIdle            // mounted without a drawing surface
	StateSizing
	StateRunning
	StateResizing
	StateStopped
)

var stateNames = [...]string{"unmounted", "idle", "sizing", "running", "resizing", "stopped"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Size is the current surface geometry.
type Size struct {
	Width, Height float64 // logical pixels
	DPR           float64
}

// BufferWidth is the backing buffer width in physical pixels.
func (s Size) BufferWidth() int { return int(math.Round(s.Width * s.DPR)) }

// BufferHeight is the backing buffer height in physical pixels.
func (s Size) BufferHeight() int { return int(math.Round(s.Height * s.DPR)) }

// Options configures a Manager. Display and Scheduler are required.
type Options struct {
	Display   Display
	Scheduler Scheduler
	// Acquire returns the drawing surface, or nil when none is available.
	Acquire func() Canvas
	Rand    RandomSource
	Logger  *log.Logger
}

// Manager owns the particle field and drives it: it sizes the surface, runs
// one integrate-and-render step per scheduled frame, follows resizes and
// tears everything down again. A Manager is used from a single goroutine.
type Manager struct {
	display   Display
	scheduler Scheduler
	acquire   func() Canvas
	rng       RandomSource
	logger    *log.Logger

	state   State
	theme   Theme
	palette Palette
	canvas  Canvas
	size    Size
	field   []Particle

	// epoch changes on every mount and teardown; a frame callback carrying
	// an older epoch does nothing.
	epoch   uint64
	frameID frame.ID
	pending bool
	detach  func()

	frames uint64
	links  int
}

// NewManager returns an unmounted Manager.
func NewManager(opts Options) *Manager {
	m := &Manager{
		display:   opts.Display,
		scheduler: opts.Scheduler,
		acquire:   opts.Acquire,
		rng:       opts.Rand,
		logger:    opts.Logger,
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}
	return m
}

// Mount starts the visual with theme. A mounted Manager is torn down first.
// Without a drawing surface the Manager stays idle.
func (m *Manager) Mount(theme Theme) {
	m.Teardown()

	m.theme = theme
	m.palette = PaletteFor(theme)
	m.frames, m.links = 0, 0
	m.epoch++

	var c Canvas
	if m.acquire != nil {
		c = m.acquire()
	}
	if c == nil {
		m.state = StateIdle
		m.logger.Debug("surface unavailable", "theme", theme)
		return
	}
	m.canvas = c

	m.state = StateSizing
	m.applySize()
	m.field = NewField(m.size.Width, m.size.Height, m.rng)
	m.detach = m.display.OnResize(m.Resize)

	m.state = StateRunning
	m.logger.Debug("mount", "theme", theme, "particles", len(m.field),
		"width", m.size.Width, "height", m.size.Height, "dpr", m.size.DPR)
	m.schedule(m.epoch)
}

// SetTheme remounts with theme unless it is already mounted with it.
func (m *Manager) SetTheme(theme Theme) {
	if theme == m.theme && m.Mounted() {
		return
	}
	m.Mount(theme)
}

// Resize re-derives the surface size. Particles are left untouched.
func (m *Manager) Resize() {
	if m.state != StateRunning {
		return
	}
	m.state = StateResizing
	m.applySize()
	m.state = StateRunning
	m.logger.Debug("resize", "width", m.size.Width, "height", m.size.Height, "dpr", m.size.DPR)
}

// Teardown cancels the pending frame and detaches the resize listener. It is
// safe to call at any time, any number of times.
func (m *Manager) Teardown() {
	if m.pending {
		m.scheduler.CancelFrame(m.frameID)
		m.pending = false
	}
	if m.detach != nil {
		m.detach()
		m.detach = nil
	}
	if !m.Mounted() {
		return
	}
	m.epoch++
	m.canvas = nil
	m.state = StateStopped
	m.logger.Debug("teardown", "theme", m.theme, "frames", m.frames)
}

func (m *Manager) applySize() {
	w, h := m.display.Viewport()
	m.size = Size{
		Width:  nonNegative(w),
		Height: nonNegative(h),
		DPR:    pixelRatio(m.display.DevicePixelRatio()),
	}
	m.canvas.Resize(m.size.BufferWidth(), m.size.BufferHeight(), m.size.Width, m.size.Height)
	m.canvas.SetTransform(m.size.DPR)
}

func (m *Manager) schedule(epoch uint64) {
	m.frameID = m.scheduler.RequestFrame(func() { m.tick(epoch) })
	m.pending = true
}

func (m *Manager) tick(epoch uint64) {
	if epoch != m.epoch || m.state != StateRunning {
		return
	}
	m.pending = false

	Step(m.field, m.size.Width, m.size.Height)
	m.links = Render(m.canvas, m.field, m.size.Width, m.size.Height, m.palette)
	m.frames++

	m.schedule(epoch)
}

// Mounted reports whether the Manager is between Mount and Teardown.
func (m *Manager) Mounted() bool {
	switch m.state {
	case StateIdle, StateSizing, StateRunning, StateResizing:
		return true
	}
	return false
}

// State returns the lifecycle state.
func (m *Manager) State() State { return m.state }

// Theme returns the theme of the current or last mount.
func (m *Manager) Theme() Theme { return m.theme }

// Size returns the current surface geometry.
func (m *Manager) Size() Size { return m.size }

// Frames returns how many frames have been drawn since the last mount.
func (m *Manager) Frames() uint64 { return m.frames }

// Links returns the number of links drawn in the last frame.
func (m *Manager) Links() int { return m.links }

// Particles returns a copy of the particle field.
func (m *Manager) Particles() []Particle {
	out := make([]Particle, len(m.field))
	copy(out, m.field)
	return out
}

func pixelRatio(dpr float64) float64 {
	if dpr > 0 && !math.IsInf(dpr, 1) {
		return dpr
	}
	return 1
}

func nonNegative(v float64) float64 {
	if v > 0 && !math.IsInf(v, 1) {
		return v
	}
	return 0
}
