package wordsnake

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/wordsnake/internal/config"
	"github.com/vovakirdan/wordsnake/internal/core"
	"github.com/vovakirdan/wordsnake/internal/vocab"
)

// Summary is the final tally of a finished game.
type Summary struct {
	Score      int
	Level      int
	WordsEaten int
	Mistakes   int
}

// Recorder persists answers and finished games.
type Recorder interface {
	RecordAnswer(sessionID string, prompt vocab.Pair, correct bool) error
	RecordGame(sessionID string, summary Summary) error
}

// Game drives a Session from platform frames. The platform ticks at a fixed
// frame rate; the snake moves every few frames depending on the level.
type Game struct {
	cfg      config.WordSnakeConfig
	pairs    []vocab.Pair
	logger   *log.Logger
	recorder Recorder

	session   *Session
	sessionID string
	recorded  bool // Summary of the current game was handed to the recorder

	tickRate int
	frames   int // Frames since the last move

	// Latest direction pressed since the last move
	turn    Direction
	hasTurn bool

	screenW  int
	screenH  int
	tooSmall bool
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used by the game and its sessions.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithRecorder stores answers and results through r.
func WithRecorder(r Recorder) Option {
	return func(g *Game) {
		g.recorder = r
	}
}

// New creates a game over the given vocabulary. Call Reset before Step.
func New(cfg config.WordSnakeConfig, pairs []vocab.Pair, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		pairs:  pairs,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "wordsnake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Word Snake"
}

// Reset starts a fresh session seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	rng := rand.New(rand.NewSource(cfg.Seed))
	g.session = NewSession(g.cfg, g.pairs, rng, g.logger)
	g.begin()
}

// begin resets per-game bookkeeping for a new session run.
func (g *Game) begin() {
	g.sessionID = uuid.NewString()
	g.recorded = false
	g.frames = 0
	g.hasTurn = false
	g.logger.Debug("game started", "session", g.sessionID, "prompt", g.session.Prompt().English)
}

// Resize adapts to a new screen size without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	reqW, reqH := g.requiredSize()
	g.tooSmall = w < reqW || h < reqH
}

// Step advances one platform frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.session.State() == StateGameOver {
		g.session.Restart()
		g.begin()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.session.TogglePause()
	}

	if g.tooSmall || g.session.State() != StateRunning {
		return core.StepResult{State: g.State()}
	}

	// Direction keys are latched, not queued: the last one before a move wins.
	// A reversal is dropped on press so an earlier turn in the same move survives.
	if d, ok := toDirection(in.Direction()); ok && !g.reverses(d) {
		g.turn = d
		g.hasTurn = true
	}

	g.frames++
	if g.frames < g.framesPerMove() {
		return core.StepResult{State: g.State()}
	}
	g.frames = 0

	res := g.session.Tick(Input{Direction: g.turn, Turn: g.hasTurn})
	g.hasTurn = false
	g.record(res)

	return core.StepResult{State: g.State(), Moved: res.Moved}
}

// reverses reports whether d would turn the snake back onto its neck.
func (g *Game) reverses(d Direction) bool {
	body := g.session.body
	return body.Len() > 1 && d == body.Heading().Opposite()
}

// framesPerMove converts the level's speed to platform frames.
func (g *Game) framesPerMove() int {
	return max(1, g.tickRate/MovesPerSecond(g.cfg.Speed, g.session.Level()))
}

// record hands answers and the final result to the recorder.
func (g *Game) record(res TickResult) {
	switch res.Outcome {
	case OutcomeCorrect, OutcomeWrong:
		g.logger.Debug("word eaten", "prompt", res.Prompt.English, "word", res.Token.Text, "outcome", res.Outcome)
		if g.recorder != nil {
			if err := g.recorder.RecordAnswer(g.sessionID, res.Prompt, res.Outcome == OutcomeCorrect); err != nil {
				g.logger.Warn("cannot record answer", "error", err)
			}
		}
	}

	if res.State != StateGameOver || g.recorded {
		return
	}
	g.recorded = true

	summary := g.Summary()
	g.logger.Info("game over", "session", g.sessionID, "score", summary.Score, "level", summary.Level, "cause", res.Outcome)
	if g.recorder != nil {
		if err := g.recorder.RecordGame(g.sessionID, summary); err != nil {
			g.logger.Warn("cannot record game", "error", err)
		}
	}
}

// Summary returns the tally of the current session.
func (g *Game) Summary() Summary {
	return Summary{
		Score:      g.session.score,
		Level:      g.session.level,
		WordsEaten: g.session.wordsEaten,
		Mistakes:   g.session.mistakes,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		Lives:    g.session.Lives(),
		Level:    g.session.Level(),
		GameOver: g.session.State() == StateGameOver,
		Paused:   g.session.State() == StatePaused,
	}
}

// Snapshot returns the session snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}

// SessionID returns the identifier of the current session run.
func (g *Game) SessionID() string {
	return g.sessionID
}

func toDirection(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return DirRight, false
	}
}
