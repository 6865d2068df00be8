package wordsnake

import (
	"github.com/vovakirdan/wordsnake/internal/config"
	"github.com/vovakirdan/wordsnake/internal/core"
)

// LevelForScore returns the 1-based level for a score.
// Negative scores stay on level 1.
func LevelForScore(score, pointsPerLevel int) int {
	if pointsPerLevel <= 0 {
		return 1
	}
	return 1 + max(0, score)/pointsPerLevel
}

// DistractorCount returns how many distractor words a round places at level.
func DistractorCount(cfg config.WordsConfig, level int) int {
	return min(cfg.BaseDistractors+level, cfg.MaxDistractors)
}

// MovesPerSecond returns the snake speed at level.
func MovesPerSecond(cfg config.SpeedConfig, level int) int {
	speed := cfg.BaseMovesPerSecond + cfg.MovesPerLevel*(level-1)
	return core.Clamp(speed, 1, max(1, cfg.MaxMovesPerSecond))
}
