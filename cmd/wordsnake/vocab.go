package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordsnake/internal/vocab"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Show the vocabulary in use",
	Long: `Print the word pairs the game would play with and any rows of
the vocabulary CSV that were skipped.

Examples:
  wordsnake vocab
  wordsnake vocab --vocab ./words.csv`,
	Args: cobra.NoArgs,
	Run:  runVocab,
}

func runVocab(cmd *cobra.Command, args []string) {
	logger := stderrLogger()

	pairs, warnings, err := vocab.LoadFile(flagVocab)
	for _, w := range warnings {
		fmt.Printf("warning: %s: %v\n", flagVocab, w)
	}

	source := flagVocab
	switch {
	case errors.Is(err, os.ErrNotExist):
		source = "bundled list (no " + flagVocab + ")"
		pairs = vocab.Builtin()
	case err != nil:
		logger.Warn("cannot load vocabulary", "path", flagVocab, "error", err)
		source = "bundled list"
		pairs = vocab.Builtin()
	case len(pairs) == 0:
		source = "bundled list (" + flagVocab + " has no usable rows)"
		pairs = vocab.Builtin()
	}
	pairs = vocab.Dedupe(pairs)

	fmt.Printf("Vocabulary: %s, %d pairs\n\n", source, len(pairs))
	fmt.Printf("  %s  %s\n", runewidth.FillRight("Korean", 12), "English")
	fmt.Printf("  %s  %s\n", runewidth.FillRight("------", 12), "-------")
	for _, p := range pairs {
		fmt.Printf("  %s  %s\n", runewidth.FillRight(p.Korean, 12), p.English)
	}
}
