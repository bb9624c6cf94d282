package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/particle-links/internal/config"
	"github.com/olivierh59500/particle-links/internal/game"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "particle-links",
	})
	logger.SetStyles(logStyles())

	cfg, err := config.LoadFromEnv()
	if err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}
	logger.SetLevel(cfg.LogLevel)

	g := game.New(cfg, logger)

	// Set up Ebitengine window
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("Particle Links - T: theme, F: fps, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game loop stopped", "err", err)
	}
}

// logStyles colours the level badges with the link palette.
func logStyles() *log.Styles {
	styles := log.DefaultStyles()
	badge := func(label, fg string) lipgloss.Style {
		return lipgloss.NewStyle().SetString(label).Bold(true).MaxWidth(4).Foreground(lipgloss.Color(fg))
	}
	styles.Levels[log.DebugLevel] = badge("DEBU", "#FFB703")
	styles.Levels[log.InfoLevel] = badge("INFO", "#FFD84D")
	styles.Levels[log.WarnLevel] = badge("WARN", "#FF4FA3")
	styles.Levels[log.ErrorLevel] = badge("ERRO", "#FF4F4F")
	styles.Levels[log.FatalLevel] = badge("FATA", "#FF4F4F")
	return styles
}
