package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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

func testResult(score int, outcome string) Result {
	return Result{
		Player:       "tester",
		Score:        score,
		Outcome:      outcome,
		Length:       score + 1,
		Rows:         21,
		Cols:         21,
		Speed:        2,
		WinFoodCount: 50,
		Ticks:        uint64(score * 10),
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsResults(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveResult(testResult(7, "loss")); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 7 {
		t.Errorf("Expected high score 7 after reopen, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{10, 5, 20} {
		if _, err := store.SaveResult(testResult(score, "loss")); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	results, err := store.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	// Should be sorted descending
	if results[0].Score != 20 {
		t.Errorf("Expected highest score to be 20, got %d", results[0].Score)
	}
	if results[1].Score != 10 {
		t.Errorf("Expected second score to be 10, got %d", results[1].Score)
	}
	if results[2].Score != 5 {
		t.Errorf("Expected third score to be 5, got %d", results[2].Score)
	}

	top := results[0]
	if top.Player != "tester" || top.Outcome != "loss" {
		t.Errorf("Unexpected player/outcome: %q/%q", top.Player, top.Outcome)
	}
	if top.Length != 21 || top.Rows != 21 || top.Cols != 21 || top.Speed != 2 || top.WinFoodCount != 50 {
		t.Errorf("Round fields not stored: %+v", top)
	}
	if top.Ticks != 200 {
		t.Errorf("Expected 200 ticks, got %d", top.Ticks)
	}
	if top.RunID == uuid.Nil {
		t.Error("A run ID should be assigned when none is given")
	}
}

func TestStoreRunID(t *testing.T) {
	store := openTestStore(t)

	r := testResult(3, "win")
	r.RunID = uuid.New()
	if _, err := store.SaveResult(r); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	got, err := store.ResultByRunID(r.RunID)
	if err != nil {
		t.Fatalf("ResultByRunID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected stored result, got nil")
	}
	if got.RunID != r.RunID || got.Score != 3 || got.Outcome != "win" {
		t.Errorf("Got %+v, expected run %s with score 3", got, r.RunID)
	}

	// The same run cannot be stored twice
	if _, err := store.SaveResult(r); err == nil {
		t.Error("Expected error saving a duplicate run ID")
	}

	missing, err := store.ResultByRunID(uuid.New())
	if err != nil {
		t.Fatalf("ResultByRunID() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for unknown run, got %+v", missing)
	}
}

func TestStoreTopResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 20; i++ {
		if _, err := store.SaveResult(testResult(i, "loss")); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	results, err := store.TopResults(5)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 5 {
		t.Errorf("Expected 5 results, got %d", len(results))
	}
	if results[0].Score != 20 {
		t.Errorf("Expected top score 20, got %d", results[0].Score)
	}

	// Non-positive limit falls back to 10
	results, err = store.TopResults(0)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(results))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty store, got %d", high)
	}

	for _, score := range []int{4, 12, 9} {
		if _, err := store.SaveResult(testResult(score, "loss")); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 12 {
		t.Errorf("Expected high score 12, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 0 || stats.Wins != 0 || stats.HighScore != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	for _, r := range []Result{testResult(2, "loss"), testResult(50, "win"), testResult(8, "loss")} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 3 {
		t.Errorf("Expected 3 rounds, got %d", stats.Rounds)
	}
	if stats.Wins != 1 {
		t.Errorf("Expected 1 win, got %d", stats.Wins)
	}
	if stats.HighScore != 50 {
		t.Errorf("Expected high score 50, got %d", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("Expected average 20, got %f", stats.AvgScore)
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{1, 2} {
		if _, err := store.SaveResult(testResult(score, "loss")); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	results, err := store.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected 0 results after clear, got %d", len(results))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
