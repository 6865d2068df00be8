package wordsnake

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/wordsnake/internal/vocab"
)

var testPairs = []vocab.Pair{
	{Korean: "사람", English: "person"},
	{Korean: "물", English: "water"},
	{Korean: "밥", English: "rice"},
	{Korean: "집", English: "house"},
	{Korean: "학교", English: "school"},
	{Korean: "책", English: "book"},
	{Korean: "고양이", English: "cat"},
	{Korean: "개", English: "dog"},
}

func TestPlaceTokens(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	grid := Grid{Width: 20, Height: 15}
	occupied := []Cell{{10, 7}, {9, 7}, {8, 7}}

	tokens, err := Place(rng, grid, testPairs[0], testPairs[1:5], occupied, 200)
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	if len(tokens) != 5 {
		t.Fatalf("len(tokens) = %d, expected 5", len(tokens))
	}

	first := tokens[0]
	if !first.Correct || first.Text != "사람" || first.Lang != LangKorean {
		t.Errorf("first token = %+v, expected correct Korean word", first)
	}

	wantText := []string{"물", "rice", "집", "school"}
	wantLang := []Lang{LangKorean, LangEnglish, LangKorean, LangEnglish}
	for i, tok := range tokens[1:] {
		if tok.Correct {
			t.Errorf("distractor %d marked correct", i)
		}
		if tok.Text != wantText[i] || tok.Lang != wantLang[i] {
			t.Errorf("distractor %d = %q (%s), expected %q (%s)", i, tok.Text, tok.Lang, wantText[i], wantLang[i])
		}
	}

	seen := make(map[Cell]bool)
	for _, tok := range tokens {
		if !tok.Cell.In(grid.Width, grid.Height) {
			t.Errorf("token %q outside the grid at %v", tok.Text, tok.Cell)
		}
		if slices.Contains(occupied, tok.Cell) {
			t.Errorf("token %q placed on the snake at %v", tok.Text, tok.Cell)
		}
		if seen[tok.Cell] {
			t.Errorf("two tokens share cell %v", tok.Cell)
		}
		seen[tok.Cell] = true
	}
}

func TestPlaceDeterministic(t *testing.T) {
	grid := Grid{Width: 20, Height: 15}

	a, errA := Place(rand.New(rand.NewSource(99)), grid, testPairs[0], testPairs[1:], nil, 200)
	b, errB := Place(rand.New(rand.NewSource(99)), grid, testPairs[0], testPairs[1:], nil, 200)
	if errA != nil || errB != nil {
		t.Fatalf("Place() errors = %v, %v", errA, errB)
	}
	if !slices.Equal(a, b) {
		t.Errorf("same seed gave different layouts:\n%v\n%v", a, b)
	}
}

func TestPlaceFillsLastFreeCell(t *testing.T) {
	grid := Grid{Width: 2, Height: 1}
	rng := rand.New(rand.NewSource(3))

	tokens, err := Place(rng, grid, testPairs[0], nil, []Cell{{0, 0}}, 1000)
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	if tokens[0].Cell != (Cell{X: 1, Y: 0}) {
		t.Errorf("token at %v, expected the only free cell (1,0)", tokens[0].Cell)
	}
}

func TestPlaceExhausted(t *testing.T) {
	tests := []struct {
		name     string
		grid     Grid
		occupied []Cell
		attempts int
	}{
		{
			name:     "more words than free cells",
			grid:     Grid{Width: 2, Height: 2},
			occupied: []Cell{{0, 0}, {1, 0}},
			attempts: 200,
		},
		{
			name:     "no attempts",
			grid:     Grid{Width: 20, Height: 15},
			attempts: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			_, err := Place(rng, tt.grid, testPairs[0], testPairs[1:4], tt.occupied, tt.attempts)
			if !errors.Is(err, ErrPlacementExhausted) {
				t.Errorf("Place() error = %v, expected ErrPlacementExhausted", err)
			}
		})
	}
}
