// Package config provides YAML-based game configuration loading and
// difficulty presets for wordsnake.
package config

// WordSnakeConfig contains all configuration for the word snake game.
type WordSnakeConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Snake   SnakeConfig   `yaml:"snake"`
	Scoring ScoringConfig `yaml:"scoring"`
	Words   WordsConfig   `yaml:"words"`
	Speed   SpeedConfig   `yaml:"speed"`
}

// GridConfig defines the playfield size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeConfig defines the starting snake and the life budget.
type SnakeConfig struct {
	InitialLength int `yaml:"initial_length"`
	Lives         int `yaml:"lives"`
}

// ScoringConfig defines score deltas and level thresholds.
type ScoringConfig struct {
	Correct        int `yaml:"correct"`          // Added when the matching word is eaten
	Wrong          int `yaml:"wrong"`            // Added (negative) when a distractor is eaten
	PointsPerLevel int `yaml:"points_per_level"` // Score needed per level step
}

// WordsConfig defines how many words appear on the grid.
type WordsConfig struct {
	BaseDistractors   int `yaml:"base_distractors"`   // Distractors = base + level
	MaxDistractors    int `yaml:"max_distractors"`    // Upper bound on distractors
	PlacementAttempts int `yaml:"placement_attempts"` // Random tries per word before giving up
}

// SpeedConfig defines how fast the snake moves per level.
type SpeedConfig struct {
	BaseMovesPerSecond int `yaml:"base_moves_per_second"`
	MovesPerLevel      int `yaml:"moves_per_level"`
	MaxMovesPerSecond  int `yaml:"max_moves_per_second"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset.
// Unknown or empty values map to the empty preset, which changes nothing.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
