package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olivierh59500/particle-links/internal/config"
	"github.com/olivierh59500/particle-links/internal/frame"
	"github.com/olivierh59500/particle-links/internal/particles"
)

// Game hosts the particle field in an ebiten window
type Game struct {
	manager *particles.Manager
	display *display
	canvas  *canvas
	frames  *frame.Queue
	logger  *log.Logger

	theme   particles.Theme
	showFPS bool
}

// New creates the game and mounts the particle field with the configured theme
func New(cfg config.Config, logger *log.Logger) *Game {
	return newGame(cfg, logger, deviceScaleFactor)
}

func newGame(cfg config.Config, logger *log.Logger, scale func() float64) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		display: newDisplay(float64(cfg.WindowWidth), float64(cfg.WindowHeight), scale),
		canvas:  newCanvas(),
		frames:  frame.NewQueue(),
		logger:  logger,
		theme:   cfg.Theme,
		showFPS: cfg.ShowFPS,
	}
	g.manager = particles.NewManager(particles.Options{
		Display:   g.display,
		Scheduler: g.frames,
		Acquire:   func() particles.Canvas { return g.canvas },
		Rand:      rand.New(rand.NewSource(seed)),
		Logger:    logger,
	})
	g.manager.Mount(g.theme)

	logger.Info("particle field mounted", "theme", g.theme, "seed", seed,
		"particles", len(g.manager.Particles()))
	return g
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.manager.Teardown()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.ToggleTheme()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.showFPS = !g.showFPS
	}
	return nil
}

// Draw is called each frame by Ebitengine. Frame callbacks run here so the
// field advances once per painted frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.bind(screen)
	g.frames.Flush()

	if g.showFPS && screen != nil {
		ebitenutil.DebugPrintAt(screen, g.status(), 8, 8)
	}
}

// Layout satisfies ebiten.Game; ebiten calls LayoutF when it is present
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.LayoutF(float64(outsideWidth), float64(outsideHeight))
	return int(w), int(h)
}

// LayoutF follows the window size and returns the backing buffer size, which
// is the logical size times the device scale factor
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	g.display.observe(outsideWidth, outsideHeight)
	if g.canvas.bufW <= 0 || g.canvas.bufH <= 0 {
		return outsideWidth, outsideHeight
	}
	return float64(g.canvas.bufW), float64(g.canvas.bufH)
}

// ToggleTheme flips between the dark and light palettes, restarting the field
func (g *Game) ToggleTheme() {
	g.theme = g.theme.Toggle()
	g.manager.SetTheme(g.theme)
	g.logger.Info("theme changed", "theme", g.theme)
}

// Theme returns the active theme
func (g *Game) Theme() particles.Theme { return g.theme }

func (g *Game) status() string {
	size := g.manager.Size()
	return fmt.Sprintf("FPS %.0f  TPS %.0f  %s\nparticles %d  links %d  %.0fx%.0f @%gx",
		ebiten.ActualFPS(), ebiten.ActualTPS(), g.theme,
		len(g.manager.Particles()), g.manager.Links(), size.Width, size.Height, size.DPR)
}
