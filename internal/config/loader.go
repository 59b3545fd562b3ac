package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBlocks loads the game configuration.
// Search order: customPath -> ~/.arcade/configs/blocks.yaml -> ./configs/blocks.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. A custom path that is missing, malformed or invalid is an error;
// the implicit locations are skipped silently when unusable.
func LoadBlocks(customPath string) (BlocksConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultBlocksConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decodeBlocks(data)
		if err != nil {
			return DefaultBlocksConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("blocks.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decodeBlocks(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "blocks.yaml")); err == nil {
		if cfg, err := decodeBlocks(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := decodeBlocks(defaultBlocksYAML)
	if err != nil {
		return DefaultBlocksConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeBlocks unmarshals data on top of the defaults and validates it.
func decodeBlocks(data []byte) (BlocksConfig, error) {
	cfg := DefaultBlocksConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyBlocksPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config unchanged.
func ApplyBlocksPreset(cfg *BlocksConfig, preset DifficultyPreset) {
	switch {
	case preset == "":
		return
	case IsFixedPreset(preset):
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.InitialLevel = 0
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Hard games also drop faster at max level. The multiplier is raised
	// so the lower floor is reachable.
	if preset == DifficultyHard && cfg.Gravity.MinIntervalMs > hardMinIntervalMs {
		cfg.Gravity.MinIntervalMs = hardMinIntervalMs
		if base := cfg.Gravity.IntervalMs; base > 0 {
			need := 1 - float64(hardMinIntervalMs)/float64(base)
			cfg.Difficulty.Scaling.SpeedMultiplier = max(cfg.Difficulty.Scaling.SpeedMultiplier, need)
		}
	}
}

const hardMinIntervalMs = 60
