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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieveRuns(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []struct {
		variant string
		score   int
	}{
		{"classic", 100},
		{"classic", 50},
		{"classic", 200},
		{"pixel", 500},
	} {
		if _, err := store.SaveRun(r.variant, r.score, r.score+1, 42); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns("classic", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Should be sorted descending
	if runs[0].Score != 200 || runs[1].Score != 100 || runs[2].Score != 50 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
	if runs[0].Ticks != 201 || runs[0].Seed != 42 || runs[0].Variant != "classic" {
		t.Errorf("Run fields not stored: %+v", runs[0])
	}

	pixel, err := store.TopRuns("pixel", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(pixel) != 1 {
		t.Errorf("Expected 1 pixel run, got %d", len(pixel))
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun("classic", (i+1)*100, 0, 0)
	}

	runs, err := store.TopRuns("classic", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{30, 10, 20} {
		store.SaveRun("sprites", score, 0, 0)
	}

	runs, err := store.RecentRuns("sprites", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].Score != 20 || runs[1].Score != 10 {
		t.Errorf("Expected newest first [20 10], got %v", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty variant, got %d", high)
	}

	store.SaveRun("classic", 100, 0, 0)
	store.SaveRun("classic", 300, 0, 0)

	if high, _ = store.HighScore("classic"); high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	// A stored high score wins when higher than any recorded run
	if err := store.SetHighScore("classic", 450); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	if err := store.SetHighScore("classic", 400); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	if high, _ = store.HighScore("classic"); high != 400 {
		t.Errorf("Expected overwritten high score 400, got %d", high)
	}
}

func TestVariantHighScoreAdapter(t *testing.T) {
	store := openTestStore(t)
	hs := store.HighScores("pixel")

	if score, err := hs.Load(); err != nil || score != 0 {
		t.Errorf("Load() = %d, %v", score, err)
	}
	if err := hs.Save(1234); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if score, _ := hs.Load(); score != 1234 {
		t.Errorf("Load() = %d after Save(1234)", score)
	}
	if score, _ := store.HighScores("classic").Load(); score != 0 {
		t.Errorf("variants should not share high scores, got %d", score)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("classic", 100, 0, 0)
	store.SaveRun("classic", 200, 0, 0)
	store.SetHighScore("classic", 900)
	store.SaveRun("pixel", 300, 0, 0)

	if err := store.ClearRuns("classic"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	classic, _ := store.AllRuns("classic")
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic runs after clear, got %d", len(classic))
	}
	if high, _ := store.HighScore("classic"); high != 0 {
		t.Errorf("Expected cleared high score, got %d", high)
	}

	pixel, _ := store.AllRuns("pixel")
	if len(pixel) != 1 {
		t.Errorf("Pixel runs should not be affected by clearing classic")
	}
}

func TestStoreAllRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveRun("classic", i*10, i, 0)
	}

	runs, err := store.AllRuns("classic")
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(runs) != 20 {
		t.Errorf("Expected 20 runs, got %d", len(runs))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetVariantStats("classic")
	if err != nil {
		t.Fatalf("GetVariantStats() failed: %v", err)
	}
	if empty.RunsCount != 0 || empty.HighScore != 0 {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveRun("classic", 100, 110, 0)
	store.SaveRun("classic", 300, 310, 0)
	store.SaveRun("pixel", 50, 60, 0)

	stats, err := store.GetVariantStats("classic")
	if err != nil {
		t.Fatalf("GetVariantStats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.TotalTicks != 420 {
		t.Errorf("Unexpected stats: %+v", stats)
	}

	all, err := store.GetAllVariantsStats()
	if err != nil {
		t.Fatalf("GetAllVariantsStats() failed: %v", err)
	}
	if len(all) != 2 || all["pixel"].HighScore != 50 {
		t.Errorf("Unexpected all-variant stats: %v", all)
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
