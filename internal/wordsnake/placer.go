package wordsnake

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/wordsnake/internal/vocab"
)

// ErrPlacementExhausted is returned when words could not be fitted on the
// grid within the attempt budget. The grid is too crowded; retry with
// fewer words.
var ErrPlacementExhausted = errors.New("wordsnake: word placement exhausted")

// Lang tells which side of a vocabulary pair a token shows.
type Lang string

const (
	LangKorean  Lang = "korean"
	LangEnglish Lang = "english"
)

// WordToken is a word lying on the grid.
type WordToken struct {
	Text    string
	Cell    Cell
	Correct bool
	Lang    Lang
}

// Grid is the playfield size in cells.
type Grid struct {
	Width  int
	Height int
}

// Place puts the Korean word of correct and one token per distractor on
// distinct random free cells. Distractors alternate between the Korean
// word (even index) and the English word (odd index) of their pair.
// Cells in occupied are never used. Each word gets up to maxAttempts random
// tries. Place keeps no state; all randomness comes from rng.
func Place(rng *rand.Rand, grid Grid, correct vocab.Pair, distractors []vocab.Pair, occupied []Cell, maxAttempts int) ([]WordToken, error) {
	taken := make(map[Cell]bool, len(occupied)+len(distractors)+1)
	for _, c := range occupied {
		taken[c] = true
	}

	words := make([]WordToken, 0, len(distractors)+1)
	words = append(words, WordToken{Text: correct.Korean, Correct: true, Lang: LangKorean})
	for i, d := range distractors {
		if i%2 == 0 {
			words = append(words, WordToken{Text: d.Korean, Lang: LangKorean})
		} else {
			words = append(words, WordToken{Text: d.English, Lang: LangEnglish})
		}
	}

	free := grid.Width*grid.Height - len(taken)
	if len(words) > free {
		return nil, fmt.Errorf("%w: %d words for %d free cells", ErrPlacementExhausted, len(words), free)
	}

	for i := range words {
		placed := false
		for range maxAttempts {
			c := Cell{X: rng.Intn(grid.Width), Y: rng.Intn(grid.Height)}
			if taken[c] {
				continue
			}
			taken[c] = true
			words[i].Cell = c
			placed = true
			break
		}
		if !placed {
			return nil, fmt.Errorf("%w: %q after %d attempts", ErrPlacementExhausted, words[i].Text, maxAttempts)
		}
	}

	return words, nil
}
