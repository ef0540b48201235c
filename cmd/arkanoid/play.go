package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arkanoid/internal/arkanoid"
	"github.com/vovakirdan/arkanoid/internal/platform/window"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a desktop window",
	Long: `Open a 600x800 window and play.

Controls:
  Left click  - Press "Repeat Game" after the round ends
  Esc/Q       - Quit

Examples:
  arkanoid play
  arkanoid play --seed 42 --log-level debug
  arkanoid play --background ./img/space.png`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		logger.Error("cannot load config", "err", err)
		return err
	}
	bg, err := loadBackground(cfg, logger)
	if err != nil {
		logger.Error("cannot load background", "err", err)
		return err
	}

	rc := runtimeConfig()
	logger.Debug("starting", "seed", rc.Seed, "fps", rc.TickRate)

	game := arkanoid.New(cfg, arkanoid.NewSimpleRNG(rc.Seed), logger)
	w, err := window.New(game, bg, logger)
	if err != nil {
		return err
	}
	return window.Run(w, rc.TickRate)
}
