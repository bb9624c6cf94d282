package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/olivierh59500/particle-links/internal/particles"
)

const (
	defaultWindowWidth  = 1200
	defaultWindowHeight = 800
	defaultTPS          = 60
	defaultTheme        = particles.ThemeDark
	defaultLogLevel     = log.InfoLevel
)

// Config captures startup settings for the particle-links window.
type Config struct {
	Theme        particles.Theme
	WindowWidth  int
	WindowHeight int
	TPS          int
	Seed         int64 // 0 seeds from the clock
	LogLevel     log.Level
	ShowFPS      bool
}

// LoadFromEnv loads runtime configuration from environment variables.
func LoadFromEnv() (Config, error) {
	theme := defaultTheme
	if raw, ok := os.LookupEnv("PARTICLES_THEME"); ok {
		parsed, err := particles.ParseTheme(raw)
		if err != nil {
			return Config{}, fmt.Errorf("PARTICLES_THEME: %w", err)
		}
		theme = parsed
	}

	width, err := readInt("PARTICLES_WINDOW_WIDTH", defaultWindowWidth, 320, 7680)
	if err != nil {
		return Config{}, err
	}

	height, err := readInt("PARTICLES_WINDOW_HEIGHT", defaultWindowHeight, 240, 4320)
	if err != nil {
		return Config{}, err
	}

	tps, err := readInt("PARTICLES_TPS", defaultTPS, 1, 240)
	if err != nil {
		return Config{}, err
	}

	seed, err := readInt64("PARTICLES_SEED", 0)
	if err != nil {
		return Config{}, err
	}

	level := defaultLogLevel
	if raw, ok := os.LookupEnv("PARTICLES_LOG_LEVEL"); ok {
		level, err = log.ParseLevel(strings.TrimSpace(raw))
		if err != nil {
			return Config{}, fmt.Errorf("PARTICLES_LOG_LEVEL must be one of debug, info, warn, error: %w", err)
		}
	}

	showFPS, err := readBool("PARTICLES_SHOW_FPS", false)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Theme:        theme,
		WindowWidth:  width,
		WindowHeight: height,
		TPS:          tps,
		Seed:         seed,
		LogLevel:     level,
		ShowFPS:      showFPS,
	}, nil
}

func readInt(key string, fallback, min, max int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	if parsed < min || parsed > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}

	return parsed, nil
}

func readInt64(key string, fallback int64) (int64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}

	return parsed, nil
}

func readBool(key string, fallback bool) (bool, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}

	return parsed, nil
}
