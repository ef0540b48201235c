package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arkanoid/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in YAML configuration. Save it to
~/.arkanoid/configs/arkanoid.yaml or ./configs/arkanoid.yaml to customize
the game; keys left out keep their default values.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
