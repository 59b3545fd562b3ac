package config

import "math"

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// GravityInterval returns the milliseconds between gravity ticks for the
// current level. The interval shrinks from baseMs by up to SpeedMultiplier
// of itself and never drops below minMs.
func (d *DifficultyManager) GravityInterval(baseMs, minMs int, score int, ticks int) int {
	level := d.Level(score, ticks)
	mult := clampF(d.cfg.Scaling.SpeedMultiplier, 0.0, 1.0)
	result := int(math.Round(float64(baseMs) * (1.0 - level*mult)))
	if result < minMs {
		result = minMs
	}
	return result
}

// DisplayLevel maps the continuous level onto 1..10 for the HUD.
func (d *DifficultyManager) DisplayLevel(score int, ticks int) int {
	return 1 + int(d.Level(score, ticks)*9)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
