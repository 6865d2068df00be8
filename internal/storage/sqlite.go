// Package storage provides SQLite-based persistence for finished games and
// per-word answer statistics.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/wordsnake/internal/vocab"
	"github.com/vovakirdan/wordsnake/internal/wordsnake"
)

// DefaultPath is where scores live unless --db says otherwise.
const DefaultPath = "~/.wordsnake/scores.db"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents one finished game.
type ScoreEntry struct {
	ID         int64
	SessionID  string
	Score      int
	Level      int
	WordsEaten int
	Mistakes   int
	CreatedAt  time.Time
}

// WordStat is the answer history of one vocabulary pair.
type WordStat struct {
	Korean  string
	English string
	Correct int
	Missed  int
}

// Accuracy returns the share of correct answers in [0, 1].
func (w WordStat) Accuracy() float64 {
	total := w.Correct + w.Missed
	if total == 0 {
		return 0
	}
	return float64(w.Correct) / float64(total)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			words_eaten INTEGER NOT NULL DEFAULT 0,
			mistakes INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC);

		CREATE TABLE IF NOT EXISTS answers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			korean TEXT NOT NULL,
			english TEXT NOT NULL,
			correct INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_answers_pair ON answers(korean, english);
		CREATE INDEX IF NOT EXISTS idx_answers_session ON answers(session_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(e ScoreEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO scores (session_id, score, level, words_eaten, mistakes)
		 VALUES (?, ?, ?, ?, ?)`,
		e.SessionID, e.Score, e.Level, e.WordsEaten, e.Mistakes,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N games ordered by score descending.
// Ties go to the earlier game.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, score, level, words_eaten, mistakes, created_at
		 FROM scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Score, &e.Level, &e.WordsEaten, &e.Mistakes, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest recorded score.
// Returns 0 if no scores exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM scores").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// RecordAnswer stores one eaten word: whether the player found the Korean
// word for the prompt or ate a distractor instead.
func (s *Store) RecordAnswer(sessionID string, prompt vocab.Pair, correct bool) error {
	_, err := s.db.Exec(
		"INSERT INTO answers (session_id, korean, english, correct) VALUES (?, ?, ?, ?)",
		sessionID, prompt.Korean, prompt.English, correct,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record answer: %w", err)
	}
	return nil
}

// HardestWords returns the pairs the player misses most, then those with
// the lowest accuracy. Pairs that were never missed are left out.
func (s *Store) HardestWords(limit int) ([]WordStat, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT korean, english,
		        SUM(correct) AS hits,
		        COUNT(*) - SUM(correct) AS misses
		 FROM answers
		 GROUP BY korean, english
		 HAVING COUNT(*) - SUM(correct) > 0
		 ORDER BY COUNT(*) - SUM(correct) DESC, CAST(SUM(correct) AS REAL) / COUNT(*) ASC, korean ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query word stats: %w", err)
	}
	defer rows.Close()

	var stats []WordStat
	for rows.Next() {
		var w WordStat
		if err := rows.Scan(&w.Korean, &w.English, &w.Correct, &w.Missed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		stats = append(stats, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearScores deletes all games and answers.
func (s *Store) ClearScores() error {
	if _, err := s.db.Exec("DELETE FROM scores; DELETE FROM answers;"); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// RecordGame implements wordsnake.Recorder.
func (s *Store) RecordGame(sessionID string, summary wordsnake.Summary) error {
	_, err := s.SaveScore(ScoreEntry{
		SessionID:  sessionID,
		Score:      summary.Score,
		Level:      summary.Level,
		WordsEaten: summary.WordsEaten,
		Mistakes:   summary.Mistakes,
	})
	return err
}

// Ensure Store implements Recorder
var _ wordsnake.Recorder = (*Store)(nil)

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
