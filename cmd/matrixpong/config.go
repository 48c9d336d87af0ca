package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/matrix-pong/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration as YAML after the search order and the
global flags have been applied.

Search order:
  --config <path>
  ~/.matrixpong/config.yaml
  ./configs/matrixpong.yaml
  built-in defaults

Examples:
  matrixpong config > ~/.matrixpong/config.yaml
  matrixpong config --speed fast`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	fmt.Printf("# source: %s\n", cfg.Source)
	return config.Write(os.Stdout, cfg)
}
