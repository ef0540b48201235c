package main

import (
	"fmt"
	"image"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arkanoid/internal/assets"
	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
)

// newLogger creates the process logger writing to w at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arkanoid",
		Level:           level,
	}), nil
}

// runtimeConfig builds the platform settings from the global flags.
// A zero seed is replaced with a time-based one.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// loadConfig loads the game configuration and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagBackground != "" {
		cfg.Assets.Background = flagBackground
	}
	return cfg, nil
}

// loadBackground loads the configured background at screen size.
func loadBackground(cfg config.Config, logger *log.Logger) (image.Image, error) {
	img, err := assets.LoadBackground(cfg.Assets.Background, cfg.Screen.Width, cfg.Screen.Height)
	if err != nil {
		return nil, err
	}
	logger.Debug("background loaded", "path", cfg.Assets.Background)
	return img, nil
}

// openLogFile opens path for appending, or returns io.Discard when path is empty.
func openLogFile(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
