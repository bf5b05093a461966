package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/gemswap/internal/match3"
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

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SetBestScore("classic", 420); err != nil {
		t.Fatalf("SetBestScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	best, err := store.BestScore("classic")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 420 {
		t.Errorf("best after reopen = %d, want 420", best)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, rec := range []GameRecord{
		{Variant: "classic", Player: "alice", Score: 100, Moves: 4},
		{Variant: "classic", Player: "bob", Score: 50, Moves: 2},
		{Variant: "classic", Player: "alice", Score: 200, Moves: 9},
		{Variant: "grand", Player: "carol", Score: 500, Moves: 12},
	} {
		if _, err := store.SaveGame(rec); err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
	}

	scores, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}
	if scores[0].Player != "alice" || scores[0].Moves != 9 {
		t.Errorf("top record = %+v", scores[0])
	}

	grand, err := store.TopScores("grand", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(grand) != 1 {
		t.Errorf("Expected 1 grand score, got %d", len(grand))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveGame(GameRecord{Variant: "mini", Score: (i + 1) * 100})
	}

	scores, err := store.TopScores("mini", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
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

	store.SaveGame(GameRecord{Variant: "classic", Score: 100})
	store.SaveGame(GameRecord{Variant: "classic", Score: 300})
	store.SaveGame(GameRecord{Variant: "classic", Score: 200})

	high, err = store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreBestScoreNeverDecreases(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("classic")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("missing key = %d, want 0", best)
	}

	for _, v := range []int{120, 90, 300, 299} {
		if err := store.SetBestScore("classic", v); err != nil {
			t.Fatalf("SetBestScore(%d) failed: %v", v, err)
		}
	}

	best, _ = store.BestScore("classic")
	if best != 300 {
		t.Errorf("best = %d, want 300", best)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveGame(GameRecord{Variant: "classic", Score: 100})
	store.SaveGame(GameRecord{Variant: "classic", Score: 200})
	store.SaveGame(GameRecord{Variant: "mini", Score: 300})
	store.SetBestScore("classic", 200)
	store.SetBestScore("mini", 300)

	if err := store.ClearScores("classic"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classic, _ := store.TopScores("classic", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(classic))
	}
	if best, _ := store.BestScore("classic"); best != 0 {
		t.Errorf("classic best after clear = %d, want 0", best)
	}

	mini, _ := store.TopScores("mini", 10)
	if len(mini) != 1 {
		t.Error("mini scores should not be affected by clearing classic")
	}
	if best, _ := store.BestScore("mini"); best != 300 {
		t.Errorf("mini best = %d, want 300", best)
	}
}

func TestStoreVariantStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveGame(GameRecord{Variant: "classic", Score: 100, Moves: 3})
	store.SaveGame(GameRecord{Variant: "classic", Score: 300, Moves: 7})
	store.SaveGame(GameRecord{Variant: "grand", Score: 50, Moves: 1})
	store.SetBestScore("classic", 340)

	stats, err := store.GetVariantStats("classic")
	if err != nil {
		t.Fatalf("GetVariantStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalMoves != 10 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("avg = %v, want 200", stats.AvgScore)
	}
	if stats.BestScore != 340 {
		t.Errorf("best = %d, want 340", stats.BestScore)
	}

	empty, err := store.GetVariantStats("mini")
	if err != nil {
		t.Fatalf("GetVariantStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	all, err := store.GetAllVariantStats()
	if err != nil {
		t.Fatalf("GetAllVariantStats() failed: %v", err)
	}
	if len(all) != 2 || all["grand"].HighScore != 50 || all["classic"].BestScore != 340 {
		t.Errorf("all stats = %v", all)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
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

func TestBestScoreKeyDrivesSession(t *testing.T) {
	store := openTestStore(t)
	store.SetBestScore("classic", 15)

	seed := int64(5)
	cfg := match3.DefaultConfig()
	cfg.Seed = &seed

	s, err := match3.NewSession(NewBestScoreKey(store, "classic"), cfg)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	if s.BestScore() != 15 {
		t.Fatalf("session best = %d, want 15 from store", s.BestScore())
	}

	a, b, ok := s.HintMove()
	if !ok {
		t.Fatal("fresh board has no move")
	}
	s.SelectTile(a)
	if _, err := s.SelectTile(b); err != nil {
		t.Fatalf("SelectTile() failed: %v", err)
	}

	stored, _ := store.BestScore("classic")
	if stored != s.BestScore() || stored < 30 {
		t.Errorf("stored best = %d, session best = %d", stored, s.BestScore())
	}
}

func TestMemoryBest(t *testing.T) {
	var m MemoryBest
	m.Save(50)
	m.Save(20)
	if best, _ := m.Load(); best != 50 {
		t.Errorf("Load() = %d, want 50", best)
	}
}
