// wordsnake is a terminal vocabulary game: steer the snake onto the Korean
// word that matches the English prompt.
//
// Usage:
//
//	wordsnake                - Play
//	wordsnake scores         - Show high scores or hardest words
//	wordsnake board          - Interactive scoreboard
//	wordsnake vocab          - Show the vocabulary in use
//
// Global flags:
//
//	--config <path>      - Game config YAML
//	--vocab <path>       - Vocabulary CSV (default: vocab.csv)
//	--difficulty <name>  - Preset: easy, normal, hard
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.wordsnake/scores.db)
//	--log-level <level>  - debug, info, warn, error (default: warn)
//	--log-file <path>    - Log file used while playing
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordsnake/internal/storage"
	"github.com/vovakirdan/wordsnake/internal/vocab"
)

var (
	// Global flags
	flagConfig     string
	flagVocab      string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordsnake",
	Short: "Word Snake - learn Korean words by eating them",
	Long: `Word Snake is a terminal snake game for vocabulary practice.
An English word is shown at the top; steer the snake onto the matching
Korean word. Eating a wrong word costs points and a life.

Controls:
  Arrows/WASD  - Steer
  P            - Pause
  R            - Restart (after game over)
  Q/Esc        - Quit

Vocabulary is read from a CSV file with "korean" and "english" columns.
Without one, a bundled word list is used.

Examples:
  wordsnake
  wordsnake --vocab ./words.csv --difficulty easy
  wordsnake scores --words
  wordsnake board`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagVocab, "vocab", vocab.DefaultPath, "Path to vocabulary CSV")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", defaultLogFile, "Log file used while playing")

	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(vocabCmd)
}
