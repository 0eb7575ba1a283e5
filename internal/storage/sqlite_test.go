package storage

import (
	"os"
	"path/filepath"
	"testing"
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
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	results := []Result{
		{Score: 100, Level: 1, Lines: 1},
		{Score: 50, Level: 1, Lines: 0},
		{Score: 2400, Level: 3, Lines: 21},
	}
	for _, r := range results {
		if _, err := store.SaveScore("tetris", r); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", Result{Score: 9000}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	top := scores[0]
	if top.Score != 2400 || top.Level != 3 || top.Lines != 21 {
		t.Errorf("Top entry = %+v, expected 2400/3/21", top)
	}
	if scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if top.GameID != "tetris" {
		t.Errorf("GameID = %q, expected tetris", top.GameID)
	}
	if top.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreSaveClampsLevel(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("tetris", Result{Score: 10}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, _ := store.TopScores("tetris", 1)
	if len(scores) != 1 || scores[0].Level != 1 {
		t.Errorf("Expected level 1 for a zero level, got %v", scores)
	}
}

func TestStoreTopScoresOrdering(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("tetris", Result{Score: (i + 1) * 100, Level: 1, Lines: i + 1})
	}
	// Same score as the best, fewer lines: ranks below it.
	store.SaveScore("tetris", Result{Score: 500, Level: 1, Lines: 2})

	scores, err := store.TopScores("tetris", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 500 || scores[0].Lines != 5 {
		t.Errorf("First = %+v, expected 500 with 5 lines", scores[0])
	}
	if scores[1].Score != 500 || scores[1].Lines != 2 {
		t.Errorf("Second = %+v, expected 500 with 2 lines", scores[1])
	}
	if scores[2].Score != 400 {
		t.Errorf("Third = %+v, expected 400", scores[2])
	}
}

func TestStoreTopScoresDefaultLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 15; i++ {
		store.SaveScore("tetris", Result{Score: i})
	}

	scores, err := store.TopScores("tetris", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("tetris", Result{Score: 100})
	store.SaveScore("tetris", Result{Score: 300})
	store.SaveScore("tetris", Result{Score: 200})

	high, err = store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("tetris", Result{Score: 100})
	store.SaveScore("tetris", Result{Score: 200})
	store.SaveScore("other", Result{Score: 300})

	if err := store.ClearScores("tetris"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("tetris", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Errorf("Other game's scores should not be affected by clear")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Empty stats = %+v", empty)
	}

	store.SaveScore("tetris", Result{Score: 100, Level: 1, Lines: 1})
	store.SaveScore("tetris", Result{Score: 1300, Level: 2, Lines: 12})

	stats, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 1300 {
		t.Errorf("HighScore = %d, expected 1300", stats.HighScore)
	}
	if stats.BestLevel != 2 {
		t.Errorf("BestLevel = %d, expected 2", stats.BestLevel)
	}
	if stats.TotalLines != 13 {
		t.Errorf("TotalLines = %d, expected 13", stats.TotalLines)
	}
	if stats.AvgScore != 700 {
		t.Errorf("AvgScore = %v, expected 700", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
