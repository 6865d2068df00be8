package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := parse(defaultWordSnakeYAML)
	if err != nil {
		t.Fatalf("embedded YAML should parse: %v", err)
	}
	if cfg != DefaultWordSnakeConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultWordSnakeConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "grid:\n  width: 30\n  height: 20\nsnake:\n  lives: 7\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWordSnake(path)
	if err != nil {
		t.Fatalf("LoadWordSnake() failed: %v", err)
	}

	if cfg.Grid.Width != 30 || cfg.Grid.Height != 20 {
		t.Errorf("grid = %dx%d, expected 30x20", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Snake.Lives != 7 {
		t.Errorf("lives = %d, expected 7", cfg.Snake.Lives)
	}
	// Keys missing from the file keep their defaults
	if cfg.Scoring.Correct != 10 || cfg.Snake.InitialLength != 3 {
		t.Errorf("partial file should keep defaults, got %+v", cfg)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := LoadWordSnake(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestLoadCustomPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  width: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadWordSnake(path)
	if err == nil || !strings.Contains(err.Error(), "grid must be at least") {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*WordSnakeConfig)
		wantErr bool
	}{
		{"defaults", func(*WordSnakeConfig) {}, false},
		{"zero lives", func(c *WordSnakeConfig) { c.Snake.Lives = 0 }, true},
		{"long snake", func(c *WordSnakeConfig) { c.Snake.InitialLength = 11 }, true},
		{"max below base", func(c *WordSnakeConfig) { c.Words.MaxDistractors = 1 }, true},
		{"no attempts", func(c *WordSnakeConfig) { c.Words.PlacementAttempts = 0 }, true},
		{"zero speed", func(c *WordSnakeConfig) { c.Speed.BaseMovesPerSecond = 0 }, true},
		{"zero level step", func(c *WordSnakeConfig) { c.Scoring.PointsPerLevel = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultWordSnakeConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	easy := DefaultWordSnakeConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Snake.Lives != 5 || easy.Speed.BaseMovesPerSecond != 2 {
		t.Errorf("easy preset = %+v", easy)
	}

	hard := DefaultWordSnakeConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Snake.Lives != 2 || hard.Speed.BaseMovesPerSecond != 5 || hard.Words.MaxDistractors != 8 {
		t.Errorf("hard preset = %+v", hard)
	}

	normal := DefaultWordSnakeConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if normal != DefaultWordSnakeConfig() {
		t.Error("normal preset should not change the config")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("fixed") != "" || ParsePreset("") != "" {
		t.Error("unknown presets should map to empty")
	}
}
