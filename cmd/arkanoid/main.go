// arkanoid is a Breakout-style game: a ball bounces off an auto-moving
// paddle into a space-invader shaped brick field.
//
// Usage:
//
//	arkanoid play            - Play in a desktop window
//	arkanoid term            - Play in the terminal
//	arkanoid sim             - Run headless simulations and print the results
//	arkanoid config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Load a custom YAML config
//	--background <path>  - Override the background image
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagBackground string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid",
	Short: "Arkanoid - break the invader with an auto-moving paddle",
	Long: `Arkanoid is a Breakout-style game. The paddle moves on its own; the
ball scores more for every brick it breaks in a row before touching the
paddle again. When the round ends, click "Repeat Game" to play again.

Available commands:
  play     - Play in a desktop window (default)
  term     - Play in the terminal, with mouse support
  sim      - Run headless deterministic simulations
  config   - Print the default configuration

Examples:
  arkanoid
  arkanoid play --seed 42
  arkanoid term --fps 30
  arkanoid sim --steps 20000 --runs 10
  arkanoid config > configs/arkanoid.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagBackground, "background", "", "Background image (overrides the config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
