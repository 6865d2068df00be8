package wordsnake

import (
	"io"
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordsnake/internal/config"
	"github.com/vovakirdan/wordsnake/internal/vocab"
)

// State is the session's run state.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Outcome is what happened on a tick.
type Outcome int

const (
	OutcomeNone    Outcome = iota
	OutcomeCorrect         // Ate the word matching the prompt
	OutcomeWrong           // Ate a distractor
	OutcomeWall            // Ran off the grid
	OutcomeSelf            // Ran into its own body
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeCorrect:
		return "correct"
	case OutcomeWrong:
		return "wrong"
	case OutcomeWall:
		return "wall"
	case OutcomeSelf:
		return "self"
	default:
		return "unknown"
	}
}

// Input is the player input sampled at the start of a tick.
type Input struct {
	Direction   Direction
	Turn        bool // Direction is only applied when set
	TogglePause bool
	Restart     bool // Honored only after game over
}

// TickResult reports what a tick did.
type TickResult struct {
	Moved   bool
	Outcome Outcome
	Prompt  vocab.Pair // Prompt in effect when a word was eaten
	Token   WordToken  // The eaten token, if any
	State   State
}

// Session owns all state of one game: the snake, the current prompt and
// its word tokens, score, lives, level and the run state.
type Session struct {
	cfg    config.WordSnakeConfig
	rng    *rand.Rand
	logger *log.Logger
	pairs  []vocab.Pair

	body   *Body
	prompt vocab.Pair
	tokens []WordToken

	// A prompt waiting for its words to be placed. The previous words stay
	// on the grid until placement succeeds.
	pending           *vocab.Pair
	pendingNewRound   bool
	placementFailures int

	score      int
	lives      int
	level      int
	state      State
	tick       uint64
	round      int
	wordsEaten int
	mistakes   int
}

// NewSession creates a running session. An empty pairs list falls back to
// the bundled vocabulary. All randomness is drawn from rng.
func NewSession(cfg config.WordSnakeConfig, pairs []vocab.Pair, rng *rand.Rand, logger *log.Logger) *Session {
	if len(pairs) == 0 {
		pairs = vocab.Builtin()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		cfg:    cfg,
		rng:    rng,
		logger: logger,
		pairs:  slices.Clone(vocab.Dedupe(pairs)),
	}
	rng.Shuffle(len(s.pairs), func(i, j int) {
		s.pairs[i], s.pairs[j] = s.pairs[j], s.pairs[i]
	})

	s.Restart()
	return s
}

// Restart resets score, lives, level and the snake, then starts a new round.
func (s *Session) Restart() {
	s.score = 0
	s.lives = s.cfg.Snake.Lives
	s.level = 1
	s.state = StateRunning
	s.tick = 0
	s.round = 0
	s.wordsEaten = 0
	s.mistakes = 0
	s.tokens = nil
	s.pending = nil
	s.placementFailures = 0
	s.prompt = vocab.Pair{}

	w, h := s.cfg.Grid.Width, s.cfg.Grid.Height
	s.body = NewBody(Cell{X: w / 2, Y: h / 2}, s.cfg.Snake.InitialLength, DirRight, w, h)

	s.startRound()
}

// TogglePause switches between running and paused. It does nothing after
// game over.
func (s *Session) TogglePause() {
	switch s.state {
	case StateRunning:
		s.state = StatePaused
	case StatePaused:
		s.state = StateRunning
	}
}

// Tick advances the game by one snake move.
func (s *Session) Tick(in Input) TickResult {
	s.tick++

	if in.Restart && s.state == StateGameOver {
		s.Restart()
		return TickResult{State: s.state}
	}
	if in.TogglePause {
		s.TogglePause()
	}
	if s.state != StateRunning {
		return TickResult{State: s.state}
	}

	// Retry a placement that failed on an earlier tick
	if s.pending != nil {
		s.tryPlace()
	}

	dir := s.body.Heading()
	if in.Turn {
		dir = in.Direction
	}

	mv := s.body.Move(dir)
	res := TickResult{Moved: true}

	switch {
	case mv.OutOfBounds:
		s.state = StateGameOver
		res.Outcome = OutcomeWall
	case mv.SelfCollision:
		s.state = StateGameOver
		res.Outcome = OutcomeSelf
	default:
		s.eat(mv.NewHead, &res)
	}

	res.State = s.state
	return res
}

// eat resolves the head landing on a word token.
func (s *Session) eat(head Cell, res *TickResult) {
	idx := slices.IndexFunc(s.tokens, func(t WordToken) bool { return t.Cell == head })
	if idx < 0 {
		return
	}

	tok := s.tokens[idx]
	s.tokens = slices.Delete(s.tokens, idx, idx+1)
	res.Token = tok
	res.Prompt = s.prompt

	if tok.Correct {
		res.Outcome = OutcomeCorrect
		s.addScore(s.cfg.Scoring.Correct)
		s.body.Grow()
		s.wordsEaten++
		s.startRound()
		return
	}

	res.Outcome = OutcomeWrong
	s.addScore(s.cfg.Scoring.Wrong)
	s.lives--
	s.mistakes++
	if s.lives <= 0 {
		s.lives = 0
		s.state = StateGameOver
		return
	}

	// Same prompt, fresh layout. A new round still waiting for placement
	// keeps its prompt.
	if s.pending == nil || !s.pendingNewRound {
		prompt := s.prompt
		s.pending = &prompt
		s.pendingNewRound = false
	}
	s.placementFailures = 0
	s.tryPlace()
}

// addScore applies a score delta and recomputes the level.
func (s *Session) addScore(delta int) {
	s.score += delta
	s.level = LevelForScore(s.score, s.cfg.Scoring.PointsPerLevel)
}

// startRound picks a new prompt and places its words.
func (s *Session) startRound() {
	next := s.nextPrompt()
	s.pending = &next
	s.pendingNewRound = true
	s.placementFailures = 0
	s.tryPlace()
}

// nextPrompt picks a random pair, avoiding the current prompt when the
// vocabulary allows it.
func (s *Session) nextPrompt() vocab.Pair {
	candidates := make([]vocab.Pair, 0, len(s.pairs))
	for _, p := range s.pairs {
		if p != s.prompt {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		candidates = s.pairs
	}
	return candidates[s.rng.Intn(len(candidates))]
}

// tryPlace lays out the pending prompt's words. On failure the previous
// layout is kept and the next attempt asks for one distractor fewer.
func (s *Session) tryPlace() bool {
	target := *s.pending
	n := max(0, DistractorCount(s.cfg.Words, s.level)-s.placementFailures)
	distractors := s.pickDistractors(target, n)

	grid := Grid{Width: s.cfg.Grid.Width, Height: s.cfg.Grid.Height}
	tokens, err := Place(s.rng, grid, target, distractors, s.body.Cells(), s.cfg.Words.PlacementAttempts)
	if err != nil {
		s.placementFailures++
		s.logger.Debug("word placement failed, retrying next tick",
			"round", s.round, "attempt", s.placementFailures, "words", len(distractors)+1, "error", err)
		return false
	}

	s.prompt = target
	s.tokens = tokens
	s.pending = nil
	s.placementFailures = 0
	if s.pendingNewRound {
		s.round++
		s.pendingNewRound = false
	}
	return true
}

// pickDistractors draws up to n pairs that share no word with target.
func (s *Session) pickDistractors(target vocab.Pair, n int) []vocab.Pair {
	if n == 0 {
		return nil
	}
	out := make([]vocab.Pair, 0, n)
	for _, i := range s.rng.Perm(len(s.pairs)) {
		p := s.pairs[i]
		if p.Korean == target.Korean || p.English == target.English {
			continue
		}
		out = append(out, p)
		if len(out) == n {
			break
		}
	}
	return out
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Level returns the current level.
func (s *Session) Level() int { return s.level }

// State returns the run state.
func (s *Session) State() State { return s.state }

// Prompt returns the pair whose English word is currently shown.
func (s *Session) Prompt() vocab.Pair { return s.prompt }
