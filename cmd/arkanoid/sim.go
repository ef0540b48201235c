package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arkanoid/internal/arkanoid"
	"github.com/vovakirdan/arkanoid/internal/platform/tui"
)

var (
	flagSteps int
	flagRuns  int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless simulations",
	Long: `Play rounds without a screen or input and print the results.
Run i uses seed+i, so the same --seed always gives the same table.

Examples:
  arkanoid sim --seed 1
  arkanoid sim --steps 50000 --runs 20`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSteps, "steps", 10000, "Maximum frames per run")
	simCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of runs")
}

func runSim(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	if flagSteps < 0 || flagRuns < 1 {
		return errors.New("--steps must be >= 0 and --runs >= 1")
	}

	cfg, err := loadConfig()
	if err != nil {
		logger.Error("cannot load config", "err", err)
		return err
	}

	seed := runtimeConfig().Seed
	results := make([]arkanoid.SimResult, 0, flagRuns)
	for i := range flagRuns {
		r := arkanoid.Simulate(cfg, seed+int64(i), flagSteps)
		logger.Debug("run finished", "seed", r.Seed, "ticks", r.Ticks, "outcome", r.Outcome, "hash", r.Hash)
		results = append(results, r)
	}

	fmt.Fprint(cmd.OutOrStdout(), tui.RenderResults(results))
	return nil
}
