package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
)

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

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("wordsearch", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("wordsearch", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("wordsearch", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("wordsearch_zen", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for the campaign
	scores, err := store.TopScores("wordsearch", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for zen
	zenScores, err := store.TopScores("wordsearch_zen", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(zenScores) != 1 {
		t.Errorf("Expected 1 zen score, got %d", len(zenScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("wordsearch")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("wordsearch", 100)
	store.SaveScore("wordsearch", 300)
	store.SaveScore("wordsearch", 200)

	high, err = store.HighScore("wordsearch")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("wordsearch", 100)
	store.SaveScore("wordsearch", 200)
	store.SaveScore("wordsearch_zen", 300)

	// Clear only campaign scores
	err = store.ClearScores("wordsearch")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Campaign should be empty
	campaignScores, _ := store.TopScores("wordsearch", 10)
	if len(campaignScores) != 0 {
		t.Errorf("Expected 0 campaign scores after clear, got %d", len(campaignScores))
	}

	// Zen should still have scores
	zenScores, _ := store.TopScores("wordsearch_zen", 10)
	if len(zenScores) != 1 {
		t.Errorf("Zen scores should not be affected by clearing the campaign")
	}
}

func TestStoreAllScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Add many scores
	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
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

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreLevelResults(t *testing.T) {
	store := openTestStore(t)

	runA := NewRunID()
	runB := NewRunID()
	if runA == runB || len(runA) != 36 {
		t.Fatalf("run IDs should be distinct UUIDs, got %q and %q", runA, runB)
	}

	results := []LevelResult{
		{RunID: runA, GameID: "wordsearch", Level: 1, Category: "U.S. States", Stars: 2, Found: 4, Total: 12},
		{RunID: runA, GameID: "wordsearch", Level: 0, Category: "Simple Words", Stars: 5, Found: 12, Total: 12},
		{RunID: runB, GameID: "wordsearch", Level: 1, Category: "U.S. States", Stars: 4, Found: 9, Total: 12},
		{RunID: runB, GameID: "wordsearch_zen", Level: 0, Category: "Simple Words", Stars: 1, Found: 1, Total: 12},
	}
	for _, r := range results {
		if _, err := store.SaveLevelResult(r); err != nil {
			t.Fatalf("SaveLevelResult() failed: %v", err)
		}
	}

	run, err := store.RunResults(runA)
	if err != nil {
		t.Fatalf("RunResults() failed: %v", err)
	}
	if len(run) != 2 || run[0].Level != 0 || run[1].Level != 1 {
		t.Fatalf("RunResults() = %+v, expected levels 0 and 1", run)
	}
	if run[0].Category != "Simple Words" || run[0].Stars != 5 || run[0].Found != 12 {
		t.Errorf("first result = %+v", run[0])
	}

	best, err := store.BestStars("wordsearch")
	if err != nil {
		t.Fatalf("BestStars() failed: %v", err)
	}
	if len(best) != 2 || best[0] != 5 || best[1] != 4 {
		t.Errorf("BestStars() = %v, expected map[0:5 1:4]", best)
	}
}

func TestStoreLevelResultNeedsRunID(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveLevelResult(LevelResult{GameID: "wordsearch"}); err == nil {
		t.Error("SaveLevelResult() without a run ID should fail")
	}
}

func TestStoreProgress(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.LoadProgress("missing"); err != nil || ok {
		t.Errorf("LoadProgress(missing) = ok %v, err %v", ok, err)
	}

	if err := store.SaveProgress("k", "one"); err != nil {
		t.Fatalf("SaveProgress() failed: %v", err)
	}
	if err := store.SaveProgress("k", "two"); err != nil {
		t.Fatalf("SaveProgress() overwrite failed: %v", err)
	}
	v, ok, err := store.LoadProgress("k")
	if err != nil || !ok || v != "two" {
		t.Errorf("LoadProgress(k) = %q, %v, %v", v, ok, err)
	}
}

func TestStoreStars(t *testing.T) {
	store := openTestStore(t)

	stars, err := store.LoadStars("wordsearch")
	if err != nil || stars != nil {
		t.Errorf("LoadStars() on empty store = %v, %v", stars, err)
	}

	if err := store.SaveStars("wordsearch", []int{5, 3, 0}); err != nil {
		t.Fatalf("SaveStars() failed: %v", err)
	}
	stars, err = store.LoadStars("wordsearch")
	if err != nil {
		t.Fatalf("LoadStars() failed: %v", err)
	}
	if len(stars) != 3 || stars[0] != 5 || stars[1] != 3 || stars[2] != 0 {
		t.Errorf("LoadStars() = %v", stars)
	}

	if err := store.SaveProgress(StarsKey("broken"), "not json"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.LoadStars("broken"); err == nil {
		t.Error("LoadStars() should reject corrupt data")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("wordsearch", 20)
	store.SaveScore("wordsearch", 10)
	run := NewRunID()
	store.SaveLevelResult(LevelResult{RunID: run, GameID: "wordsearch", Level: 0, Stars: 5, Found: 12, Total: 12})
	store.SaveLevelResult(LevelResult{RunID: run, GameID: "wordsearch", Level: 1, Stars: 2, Found: 3, Total: 12})

	stats, err := store.GetGameStats("wordsearch")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 20 || stats.TotalScore != 30 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 15 || stats.AvgStars != 3.5 {
		t.Errorf("averages = %v and %v, expected 15 and 3.5", stats.AvgScore, stats.AvgStars)
	}

	empty, err := store.GetGameStats("wordsearch_daily")
	if err != nil {
		t.Fatalf("GetGameStats(empty) failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 1 || all["wordsearch"] == nil {
		t.Errorf("GetAllGamesStats() = %v", all)
	}
}

func TestStoreClearScoresClearsLevels(t *testing.T) {
	store := openTestStore(t)
	store.SaveLevelResult(LevelResult{RunID: NewRunID(), GameID: "wordsearch", Level: 0, Stars: 3})

	if err := store.ClearScores("wordsearch"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	best, _ := store.BestStars("wordsearch")
	if len(best) != 0 {
		t.Errorf("BestStars() after clear = %v", best)
	}
}

func TestStoreRaiseStars(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		level, stars int
		want         []int
	}{
		{2, 3, []int{0, 0, 3}},
		{2, 1, []int{0, 0, 3}},
		{0, 4, []int{4, 0, 3}},
		{2, 5, []int{4, 0, 5}},
	}
	for _, tt := range tests {
		got, err := store.RaiseStars("wordsearch", tt.level, tt.stars)
		if err != nil {
			t.Fatalf("RaiseStars(%d, %d) failed: %v", tt.level, tt.stars, err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("RaiseStars(%d, %d) = %v, expected %v", tt.level, tt.stars, got, tt.want)
		}
	}

	stored, err := store.LoadStars("wordsearch")
	if err != nil || !reflect.DeepEqual(stored, []int{4, 0, 5}) {
		t.Errorf("LoadStars() = %v, %v", stored, err)
	}

	if _, err := store.RaiseStars("wordsearch", -1, 2); err == nil {
		t.Error("RaiseStars() with a negative level should fail")
	}
}

func TestStoreConcurrentWriters(t *testing.T) {
	store := openTestStore(t)

	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers*2)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(level int) {
			defer wg.Done()
			_, err := store.SaveLevelResult(LevelResult{
				RunID: NewRunID(), GameID: "wordsearch", Level: level, Stars: 5, Found: 12, Total: 12,
			})
			errs <- err
			_, err = store.RaiseStars("wordsearch", level, 5)
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("concurrent write failed: %v", err)
		}
	}

	stars, err := store.LoadStars("wordsearch")
	if err != nil {
		t.Fatal(err)
	}
	want := []int{5, 5, 5, 5, 5, 5, 5, 5}
	if !reflect.DeepEqual(stars, want) {
		t.Errorf("stars = %v, expected %v", stars, want)
	}
	best, err := store.BestStars("wordsearch")
	if err != nil || len(best) != writers {
		t.Errorf("BestStars() = %v, %v; expected %d levels", best, err, writers)
	}
}
