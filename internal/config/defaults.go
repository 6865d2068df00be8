package config

import (
	_ "embed"
)

//go:embed defaults/wordsnake.yaml
var defaultWordSnakeYAML []byte

// DefaultWordSnakeConfig returns the built-in configuration.
// Used when the embedded YAML cannot be parsed.
func DefaultWordSnakeConfig() WordSnakeConfig {
	return WordSnakeConfig{
		Grid: GridConfig{
			Width:  20,
			Height: 15,
		},
		Snake: SnakeConfig{
			InitialLength: 3,
			Lives:         3,
		},
		Scoring: ScoringConfig{
			Correct:        10,
			Wrong:          -5,
			PointsPerLevel: 50,
		},
		Words: WordsConfig{
			BaseDistractors:   2,
			MaxDistractors:    6,
			PlacementAttempts: 200,
		},
		Speed: SpeedConfig{
			BaseMovesPerSecond: 3,
			MovesPerLevel:      2,
			MaxMovesPerSecond:  15,
		},
	}
}
