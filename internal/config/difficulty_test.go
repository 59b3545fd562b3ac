package config

import "testing"

func TestGravityIntervalDisabled(t *testing.T) {
	cfg := DefaultBlocksConfig()
	dm := NewDifficultyManager(cfg.Difficulty)

	for _, score := range []int{0, 1000, 100000} {
		got := dm.GravityInterval(cfg.Gravity.IntervalMs, cfg.Gravity.MinIntervalMs, score, 0)
		if got != 500 {
			t.Errorf("GravityInterval(score=%d) = %d, expected constant 500", score, got)
		}
	}
}

func TestGravityIntervalScoreProgression(t *testing.T) {
	cfg := DefaultBlocksConfig()
	ApplyBlocksPreset(&cfg, DifficultyEasy)
	dm := NewDifficultyManager(cfg.Difficulty)

	tests := []struct {
		score    int
		expected int
	}{
		{0, 500},
		{2500, 300},  // half way: 500 * (1 - 0.5*0.8)
		{5000, 100},  // max level
		{50000, 100}, // clamped past max
	}

	prev := 1 << 30
	for _, tc := range tests {
		got := dm.GravityInterval(cfg.Gravity.IntervalMs, cfg.Gravity.MinIntervalMs, tc.score, 0)
		if got != tc.expected {
			t.Errorf("GravityInterval(score=%d) = %d, expected %d", tc.score, got, tc.expected)
		}
		if got > prev {
			t.Errorf("interval grew from %d to %d as score rose", prev, got)
		}
		prev = got
	}
}

func TestGravityIntervalFloor(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 1.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	})

	if got := dm.GravityInterval(500, 120, 0, 0); got != 120 {
		t.Errorf("GravityInterval() = %d, expected floor 120", got)
	}
}

func TestLevelTimeProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
	})

	if got := dm.Level(0, 50); got != 0.5 {
		t.Errorf("Level(ticks=50) = %f, expected 0.5", got)
	}
	if got := dm.DisplayLevel(0, 100); got != 10 {
		t.Errorf("DisplayLevel at max = %d, expected 10", got)
	}
	if got := dm.DisplayLevel(0, 0); got != 1 {
		t.Errorf("DisplayLevel at start = %d, expected 1", got)
	}
}
