package wordsnake

import "slices"

// Snapshot is a read-only copy of everything a renderer or a test needs
// to know about a session.
type Snapshot struct {
	Tick       uint64
	Round      int
	State      State
	Score      int
	Lives      int
	Level      int
	Prompt     string // English word to find; empty while the first round is unplaced
	Tokens     []WordToken
	Snake      []Cell // Head first
	Heading    Direction
	Width      int
	Height     int
	WordsEaten int
	Mistakes   int
	Pending    bool // A placement is waiting to be retried
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:       s.tick,
		Round:      s.round,
		State:      s.state,
		Score:      s.score,
		Lives:      s.lives,
		Level:      s.level,
		Prompt:     s.prompt.English,
		Tokens:     slices.Clone(s.tokens),
		Snake:      s.body.Cells(),
		Heading:    s.body.Heading(),
		Width:      s.cfg.Grid.Width,
		Height:     s.cfg.Grid.Height,
		WordsEaten: s.wordsEaten,
		Mistakes:   s.mistakes,
		Pending:    s.pending != nil,
	}
}

// CorrectToken returns the token matching the prompt, if it is on the grid.
func (sn Snapshot) CorrectToken() (WordToken, bool) {
	for _, t := range sn.Tokens {
		if t.Correct {
			return t, true
		}
	}
	return WordToken{}, false
}
