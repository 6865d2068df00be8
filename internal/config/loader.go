package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadWordSnake loads the game configuration.
// Search order: customPath -> ~/.wordsnake/config.yaml -> ./configs/wordsnake.yaml -> embedded default
func LoadWordSnake(customPath string) (WordSnakeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return WordSnakeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return WordSnakeConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "wordsnake.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultWordSnakeYAML)
	if err != nil {
		return DefaultWordSnakeConfig(), nil
	}
	return cfg, nil
}

// parse decodes YAML on top of the built-in defaults so partial files
// only override the keys they mention, then validates the result.
func parse(data []byte) (WordSnakeConfig, error) {
	cfg := DefaultWordSnakeConfig()
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
	return filepath.Join(home, ".wordsnake", filename)
}

// Validate checks that the configuration describes a playable game.
func (c WordSnakeConfig) Validate() error {
	var errs []error

	if c.Grid.Width < 5 || c.Grid.Height < 5 {
		errs = append(errs, fmt.Errorf("grid must be at least 5x5, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Snake.InitialLength < 1 || c.Snake.InitialLength > c.Grid.Width/2 {
		errs = append(errs, fmt.Errorf("snake.initial_length must be in [1, %d], got %d", c.Grid.Width/2, c.Snake.InitialLength))
	}
	if c.Snake.Lives < 1 {
		errs = append(errs, fmt.Errorf("snake.lives must be positive, got %d", c.Snake.Lives))
	}
	if c.Scoring.PointsPerLevel < 1 {
		errs = append(errs, fmt.Errorf("scoring.points_per_level must be positive, got %d", c.Scoring.PointsPerLevel))
	}
	if c.Words.BaseDistractors < 0 || c.Words.MaxDistractors < c.Words.BaseDistractors {
		errs = append(errs, fmt.Errorf("words: need 0 <= base_distractors <= max_distractors, got %d and %d",
			c.Words.BaseDistractors, c.Words.MaxDistractors))
	}
	if c.Words.PlacementAttempts < 1 {
		errs = append(errs, fmt.Errorf("words.placement_attempts must be positive, got %d", c.Words.PlacementAttempts))
	}
	if c.Speed.BaseMovesPerSecond < 1 || c.Speed.MaxMovesPerSecond < c.Speed.BaseMovesPerSecond || c.Speed.MovesPerLevel < 0 {
		errs = append(errs, fmt.Errorf("speed: need 1 <= base_moves_per_second <= max_moves_per_second and moves_per_level >= 0"))
	}

	return errors.Join(errs...)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *WordSnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Snake.Lives = 5
		cfg.Speed.BaseMovesPerSecond = 2
	case DifficultyHard:
		cfg.Snake.Lives = 2
		cfg.Speed.BaseMovesPerSecond = 5
		cfg.Words.MaxDistractors = max(cfg.Words.MaxDistractors, 8)
	}
	if cfg.Speed.MaxMovesPerSecond < cfg.Speed.BaseMovesPerSecond {
		cfg.Speed.MaxMovesPerSecond = cfg.Speed.BaseMovesPerSecond
	}
}
