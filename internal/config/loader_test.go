package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME and the working directory at empty temp dirs so the
// implicit config locations are absent.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestLoadBlocksEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := LoadBlocks("")
	if err != nil {
		t.Fatalf("LoadBlocks() failed: %v", err)
	}

	if cfg != DefaultBlocksConfig() {
		t.Errorf("embedded YAML and DefaultBlocksConfig() disagree:\n%+v\n%+v", cfg, DefaultBlocksConfig())
	}
	if cfg.Gravity.IntervalMs != 500 {
		t.Errorf("default gravity = %dms, expected 500ms", cfg.Gravity.IntervalMs)
	}
}

func TestLoadBlocksCustomPathPartialOverride(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "blocks.yaml")
	data := []byte("board:\n  width: 12\ngravity:\n  interval_ms: 300\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBlocks(path)
	if err != nil {
		t.Fatalf("LoadBlocks(%q) failed: %v", path, err)
	}
	if cfg.Board.Width != 12 {
		t.Errorf("Board.Width = %d, expected 12", cfg.Board.Width)
	}
	if cfg.Board.Height != 20 {
		t.Errorf("Board.Height = %d, expected default 20", cfg.Board.Height)
	}
	if cfg.Gravity.IntervalMs != 300 {
		t.Errorf("Gravity.IntervalMs = %d, expected 300", cfg.Gravity.IntervalMs)
	}
}

func TestLoadBlocksCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	if _, err := LoadBlocks(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, expected os.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBlocks(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	tiny := filepath.Join(dir, "tiny.yaml")
	if err := os.WriteFile(tiny, []byte("board:\n  width: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBlocks(tiny); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("tiny board error = %v, expected ErrInvalidConfig", err)
	}
}

func TestLoadBlocksLocalDirectory(t *testing.T) {
	isolate(t)

	if err := os.Mkdir("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "blocks.yaml"), []byte("board:\n  height: 24\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBlocks("")
	if err != nil {
		t.Fatalf("LoadBlocks() failed: %v", err)
	}
	if cfg.Board.Height != 24 {
		t.Errorf("Board.Height = %d, expected 24 from ./configs", cfg.Board.Height)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BlocksConfig)
		valid  bool
	}{
		{"defaults", func(*BlocksConfig) {}, true},
		{"narrow board", func(c *BlocksConfig) { c.Board.Width = 3 }, false},
		{"short board", func(c *BlocksConfig) { c.Board.Height = 0 }, false},
		{"zero interval", func(c *BlocksConfig) { c.Gravity.IntervalMs = 0 }, false},
		{"min above base", func(c *BlocksConfig) { c.Gravity.MinIntervalMs = 900 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBlocksConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", name, err)
		}
	}
	if _, err := ParsePreset("nightmare"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("ParsePreset(nightmare) = %v, expected ErrUnknownPreset", err)
	}
}

func TestApplyBlocksPreset(t *testing.T) {
	cfg := DefaultBlocksConfig()
	ApplyBlocksPreset(&cfg, "")
	if cfg != DefaultBlocksConfig() {
		t.Error("empty preset should leave config unchanged")
	}

	ApplyBlocksPreset(&cfg, DifficultyNormal)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.3 {
		t.Errorf("normal preset = %+v, expected enabled at 0.3", cfg.Difficulty)
	}

	ApplyBlocksPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	hard := DefaultBlocksConfig()
	ApplyBlocksPreset(&hard, DifficultyHard)
	if hard.Gravity.MinIntervalMs != 60 {
		t.Errorf("hard preset MinIntervalMs = %d, expected 60", hard.Gravity.MinIntervalMs)
	}
}

func TestHardPresetReachesFloor(t *testing.T) {
	cfg := DefaultBlocksConfig()
	cfg.Difficulty.Progression = ProgressionConfig{Type: "score", MaxAt: 1000}
	ApplyBlocksPreset(&cfg, DifficultyHard)

	dm := NewDifficultyManager(cfg.Difficulty)
	tests := []struct {
		score    int
		expected int
	}{
		{0, 192},
		{1000, 60},
		{50000, 60},
	}
	for _, tc := range tests {
		got := dm.GravityInterval(cfg.Gravity.IntervalMs, cfg.Gravity.MinIntervalMs, tc.score, 0)
		if got != tc.expected {
			t.Errorf("hard GravityInterval(score=%d) = %d, expected %d", tc.score, got, tc.expected)
		}
	}
}
