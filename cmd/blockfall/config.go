package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/blockfall/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration a game would start with, after the config
search and the --difficulty preset are applied. The output is valid YAML
and can be saved as a starting point for --config.

Search order:
  --config <path>
  ~/.arcade/configs/blocks.yaml
  ./configs/blocks.yaml
  built-in defaults

Examples:
  blockfall config
  blockfall config --difficulty hard > ~/.arcade/configs/blocks.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, err := config.LoadBlocks(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyBlocksPreset(&cfg, preset)

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}
