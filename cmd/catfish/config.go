package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/catfish/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective tunables as YAML",
	Long: `Print the tunables a run would use after resolving --config, the user
config at ~/.catfish/configs/chase.yaml and the --difficulty preset. The
output is a valid --config file.

Examples:
  catfish config > chase.yaml
  catfish config --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tunables YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadChaseConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
