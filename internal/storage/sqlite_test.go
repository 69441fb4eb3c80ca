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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

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

	for _, r := range []struct {
		game        string
		buns, moves int
	}{
		{"bakery", 10, 40},
		{"bakery", 5, 30},
		{"bakery", 20, 80},
		{"bakery_large", 50, 200},
	} {
		if _, err := store.SaveResult(r.game, r.buns, r.moves, 120, "00000000000000ff"); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	results, err := store.TopResults("bakery", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	// Sorted by buns descending
	if results[0].Buns != 20 || results[1].Buns != 10 || results[2].Buns != 5 {
		t.Errorf("Results not in expected order: %v", results)
	}
	if results[0].Seed != "00000000000000ff" {
		t.Errorf("Seed should round-trip, got %q", results[0].Seed)
	}

	large, err := store.TopResults("bakery_large", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(large) != 1 {
		t.Errorf("Expected 1 bakery_large result, got %d", len(large))
	}
}

func TestStoreTopResultsTieBreak(t *testing.T) {
	store := openTestStore(t)

	// Same bun count, fewer moves wins.
	store.SaveResult("bakery", 10, 60, 100, "")
	store.SaveResult("bakery", 10, 30, 100, "")
	store.SaveResult("bakery", 10, 45, 100, "")

	results, err := store.TopResults("bakery", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if results[0].Moves != 30 || results[1].Moves != 45 || results[2].Moves != 60 {
		t.Errorf("Ties should rank by fewer moves: %v", results)
	}
}

func TestStoreTopResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveResult("bakery", (i+1)*10, 20, 60, "")
	}

	results, err := store.TopResults("bakery", 3)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 results with limit, got %d", len(results))
	}

	if results[0].Buns != 50 || results[1].Buns != 40 || results[2].Buns != 30 {
		t.Errorf("Results not in expected order: %v", results)
	}
}

func TestStoreBestBuns(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestBuns("bakery")
	if err != nil {
		t.Fatalf("BestBuns() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for an empty game, got %d", best)
	}

	store.SaveResult("bakery", 10, 20, 60, "")
	store.SaveResult("bakery", 30, 20, 60, "")
	store.SaveResult("bakery", 20, 20, 60, "")

	best, err = store.BestBuns("bakery")
	if err != nil {
		t.Fatalf("BestBuns() failed: %v", err)
	}
	if best != 30 {
		t.Errorf("Expected best of 30, got %d", best)
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult("bakery", 10, 20, 60, "")
	store.SaveResult("bakery", 20, 20, 60, "")
	store.SaveResult("bakery_large", 30, 20, 60, "")

	if err := store.ClearResults("bakery"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	classic, _ := store.TopResults("bakery", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 bakery results after clear, got %d", len(classic))
	}

	large, _ := store.TopResults("bakery_large", 10)
	if len(large) != 1 {
		t.Errorf("bakery_large results should not be affected by clearing bakery")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult("bakery", 10, 40, 60, "")
	store.SaveResult("bakery", 20, 60, 90, "")

	stats, err := store.GetGameStats("bakery")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 2 {
		t.Errorf("Expected 2 games, got %d", stats.GamesCount)
	}
	if stats.BestBuns != 20 {
		t.Errorf("Expected best of 20, got %d", stats.BestBuns)
	}
	if stats.TotalBuns != 30 {
		t.Errorf("Expected 30 total buns, got %d", stats.TotalBuns)
	}
	if stats.TotalMoves != 100 {
		t.Errorf("Expected 100 total moves, got %d", stats.TotalMoves)
	}
}

func TestStoreAllResults(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveResult("bakery", i, i*2, 60, "")
	}

	results, err := store.AllResults("bakery")
	if err != nil {
		t.Fatalf("AllResults() failed: %v", err)
	}

	if len(results) != 20 {
		t.Errorf("Expected 20 results, got %d", len(results))
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
