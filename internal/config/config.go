// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a loaded configuration cannot be played.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Minimum board dimensions. Every catalog piece must fit at spawn.
const (
	MinBoardWidth  = 4
	MinBoardHeight = 4
)

// BlocksConfig contains all configuration for the falling-block game.
type BlocksConfig struct {
	Board      BlocksBoard      `yaml:"board"`
	Gravity    BlocksGravity    `yaml:"gravity"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BlocksBoard defines the well dimensions in cells.
type BlocksBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BlocksGravity defines how fast pieces fall.
type BlocksGravity struct {
	IntervalMs    int `yaml:"interval_ms"`     // Milliseconds per row at level 0
	MinIntervalMs int `yaml:"min_interval_ms"` // Floor reached at max difficulty
}

// Validate checks that the configuration describes a playable game.
func (c BlocksConfig) Validate() error {
	if c.Board.Width < MinBoardWidth || c.Board.Height < MinBoardHeight {
		return fmt.Errorf("%w: board %dx%d is smaller than %dx%d",
			ErrInvalidConfig, c.Board.Width, c.Board.Height, MinBoardWidth, MinBoardHeight)
	}
	if c.Gravity.IntervalMs <= 0 {
		return fmt.Errorf("%w: gravity interval must be positive, got %d", ErrInvalidConfig, c.Gravity.IntervalMs)
	}
	if c.Gravity.MinIntervalMs <= 0 || c.Gravity.MinIntervalMs > c.Gravity.IntervalMs {
		return fmt.Errorf("%w: min gravity interval must be in (0, %d], got %d",
			ErrInvalidConfig, c.Gravity.IntervalMs, c.Gravity.MinIntervalMs)
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score, or seconds of play, at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	// SpeedMultiplier is the fraction of the gravity interval removed at
	// max difficulty (0.8 turns 500ms into 100ms).
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ErrUnknownPreset is returned by ParsePreset for unrecognized names.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// Presets lists the presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset validates a preset name. An empty name yields an empty preset,
// which leaves the loaded configuration untouched.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
