package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arkanoid/internal/arkanoid"
	"github.com/vovakirdan/arkanoid/internal/platform/tui"
)

var flagLogFile string

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play in the terminal",
	Long: `Play in the terminal. The playfield is scaled to the terminal size and
the background is drawn as shading.

Controls:
  Left click  - Press "Repeat Game" after the round ends
  Ctrl+S      - Save a text screenshot to ~/.arkanoid/screenshots
  ?           - Toggle help
  Q/Esc       - Quit

Logs would corrupt the screen, so they are discarded unless --log-file is set.

Examples:
  arkanoid term
  arkanoid term --log-file arkanoid.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runTerm,
}

func init() {
	termCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runTerm(cmd *cobra.Command, args []string) error {
	out, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer out.Close()

	logger, err := newLogger(out)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	bg, err := loadBackground(cfg, logger)
	if err != nil {
		return err
	}

	// Get terminal size; the first resize message corrects it
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := runtimeConfig()
	logger.Debug("starting", "seed", rc.Seed, "fps", rc.TickRate, "width", width, "height", height)

	game := arkanoid.New(cfg, arkanoid.NewSimpleRNG(rc.Seed), logger)
	return tui.Run(game, bg, rc, width, height, logger)
}
