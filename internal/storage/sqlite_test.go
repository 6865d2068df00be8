package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/wordsnake/internal/vocab"
	"github.com/vovakirdan/wordsnake/internal/wordsnake"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore(ScoreEntry{SessionID: "a", Score: 40}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore()
	if err != nil || high != 40 {
		t.Errorf("HighScore() = %d, %v; expected 40", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	entries := []ScoreEntry{
		{SessionID: "s1", Score: 100, Level: 3, WordsEaten: 10, Mistakes: 0},
		{SessionID: "s2", Score: -15, Level: 1, WordsEaten: 0, Mistakes: 3},
		{SessionID: "s3", Score: 200, Level: 5, WordsEaten: 21, Mistakes: 2},
	}
	for _, e := range entries {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{200, 100, -15}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
	}

	top := scores[0]
	if top.SessionID != "s3" || top.Level != 5 || top.WordsEaten != 21 || top.Mistakes != 2 {
		t.Errorf("top entry = %+v", top)
	}
	if top.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore(ScoreEntry{SessionID: "s", Score: (i + 1) * 100})
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limits fall back to ten
	if all, _ := store.TopScores(0); len(all) != 5 {
		t.Errorf("TopScores(0) returned %d entries, expected 5", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 when empty, got %d", high)
	}

	store.SaveScore(ScoreEntry{SessionID: "a", Score: 100})
	store.SaveScore(ScoreEntry{SessionID: "b", Score: 300})
	store.SaveScore(ScoreEntry{SessionID: "c", Score: 200})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreHardestWords(t *testing.T) {
	store := openTestStore(t)

	water := vocab.Pair{Korean: "물", English: "water"}
	rice := vocab.Pair{Korean: "밥", English: "rice"}
	house := vocab.Pair{Korean: "집", English: "house"}

	answers := []struct {
		pair    vocab.Pair
		correct bool
	}{
		{water, false},
		{water, false},
		{water, true},
		{rice, false},
		{rice, false},
		{house, true},
		{house, true},
	}
	for _, a := range answers {
		if err := store.RecordAnswer("s1", a.pair, a.correct); err != nil {
			t.Fatalf("RecordAnswer() failed: %v", err)
		}
	}

	stats, err := store.HardestWords(10)
	if err != nil {
		t.Fatalf("HardestWords() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected 2 missed words, got %d: %+v", len(stats), stats)
	}

	// Same misses, rice has the lower accuracy
	if stats[0].Korean != "밥" || stats[0].Missed != 2 || stats[0].Correct != 0 {
		t.Errorf("stats[0] = %+v, expected rice with 2 misses", stats[0])
	}
	if stats[1].Korean != "물" || stats[1].Missed != 2 || stats[1].Correct != 1 {
		t.Errorf("stats[1] = %+v, expected water with 2 misses and 1 hit", stats[1])
	}
	if acc := stats[1].Accuracy(); acc < 0.33 || acc > 0.34 {
		t.Errorf("Accuracy() = %f, expected 1/3", acc)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreEntry{SessionID: "a", Score: 100})
	store.RecordAnswer("a", vocab.Pair{Korean: "물", English: "water"}, false)

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores(10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if stats, _ := store.HardestWords(10); len(stats) != 0 {
		t.Errorf("Expected 0 word stats after clear, got %d", len(stats))
	}
}

func TestStoreRecordGame(t *testing.T) {
	store := openTestStore(t)

	var rec wordsnake.Recorder = store
	summary := wordsnake.Summary{Score: 60, Level: 2, WordsEaten: 7, Mistakes: 2}
	if err := rec.RecordGame("session-1", summary); err != nil {
		t.Fatalf("RecordGame() failed: %v", err)
	}

	scores, err := store.TopScores(1)
	if err != nil || len(scores) != 1 {
		t.Fatalf("TopScores() = %v, %v", scores, err)
	}
	got := scores[0]
	if got.SessionID != "session-1" || got.Score != 60 || got.Level != 2 || got.WordsEaten != 7 || got.Mistakes != 2 {
		t.Errorf("stored entry = %+v", got)
	}
}
