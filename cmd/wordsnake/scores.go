package main

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordsnake/internal/storage"
)

var (
	flagLimit int
	flagWords bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores, or with --words the vocabulary
you miss most often.

Examples:
  wordsnake scores
  wordsnake scores --limit 20
  wordsnake scores --words`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rows to show")
	scoresCmd.Flags().BoolVar(&flagWords, "words", false, "Show hardest words instead of scores")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagWords {
		err = printHardestWords(store)
	} else {
		err = printTopScores(store)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}
	return nil
}

func printTopScores(store *storage.Store) error {
	scores, err := store.TopScores(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Word Snake")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'wordsnake' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-5s  %-5s  %-8s  %s\n", "Rank", "Score", "Level", "Words", "Mistakes", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-5s  %-8s  %s\n", "----", "-----", "-----", "-----", "--------", "----")

	for i, e := range scores {
		fmt.Printf("  %-4d  %-6d  %-5d  %-5d  %-8d  %s\n",
			i+1, e.Score, e.Level, e.WordsEaten, e.Mistakes, e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	high, err := store.HighScore()
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", high)
	}
	return nil
}

func printHardestWords(store *storage.Store) error {
	words, err := store.HardestWords(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("Hardest Words - Word Snake")
	fmt.Println()

	if len(words) == 0 {
		fmt.Println("No missed words yet.")
		return nil
	}

	fmt.Printf("  %s  %s  %-6s  %-5s  %s\n",
		runewidth.FillRight("Korean", 12), runewidth.FillRight("English", 16), "Missed", "Found", "Accuracy")
	for _, w := range words {
		fmt.Printf("  %s  %s  %-6d  %-5d  %.0f%%\n",
			runewidth.FillRight(w.Korean, 12), runewidth.FillRight(w.English, 16),
			w.Missed, w.Correct, w.Accuracy()*100)
	}
	return nil
}
