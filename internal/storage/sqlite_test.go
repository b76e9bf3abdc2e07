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

func saveScore(t *testing.T, store *Store, gameID string, score int) {
	t.Helper()
	if _, err := store.SaveResult(ScoreEntry{GameID: gameID, Score: score}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{73, 50, 100} {
		saveScore(t, store, "ten", score)
	}
	saveScore(t, store, "ten_5x5", 42)

	scores, err := store.TopScores("ten", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 100 || scores[1].Score != 73 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}

	other, err := store.TopScores("ten_5x5", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 ten_5x5 score, got %d", len(other))
	}
}

func TestStoreSaveResult(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveResult(ScoreEntry{GameID: "ten", Score: 100, Moves: 412, Won: true}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	scores, err := store.TopScores("ten", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 score, got %d", len(scores))
	}
	got := scores[0]
	if got.Score != 100 || got.Moves != 412 || !got.Won {
		t.Errorf("stored entry = %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		saveScore(t, store, "ten", (i+1)*10)
	}

	scores, err := store.TopScores("ten", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 50 || scores[1].Score != 40 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("ten")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	saveScore(t, store, "ten", 31)
	saveScore(t, store, "ten", 87)
	saveScore(t, store, "ten", 64)

	high, err = store.HighScore("ten")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 87 {
		t.Errorf("Expected high score of 87, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	saveScore(t, store, "ten", 10)
	saveScore(t, store, "ten", 20)
	saveScore(t, store, "ten_6x6", 30)

	if err := store.ClearScores("ten"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("ten", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 ten scores after clear, got %d", len(scores))
	}

	other, _ := store.TopScores("ten_6x6", 10)
	if len(other) != 1 {
		t.Error("ten_6x6 scores should not be affected by clearing ten")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		saveScore(t, store, "ten", i*5)
	}

	scores, err := store.AllScores("ten")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("ten")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveResult(ScoreEntry{GameID: "ten", Score: 100, Won: true})
	store.SaveResult(ScoreEntry{GameID: "ten", Score: 50})
	store.SaveResult(ScoreEntry{GameID: "ten_5x5", Score: 20})

	stats, err := store.GetGameStats("ten")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.Wins != 1 || stats.HighScore != 100 || stats.TotalScore != 150 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 75 {
		t.Errorf("AvgScore = %v, want 75", stats.AvgScore)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}
	if all["ten_5x5"].HighScore != 20 {
		t.Errorf("ten_5x5 high score = %d, want 20", all["ten_5x5"].HighScore)
	}
}

func TestStoreSaveAndLoadBoard(t *testing.T) {
	store := openTestStore(t)
	grid := "0 -1 -1 1\n-1 -1 -1 -1\n-1 -1 -1 -1\n-1 -1 -1 -1\n"

	id, err := store.SaveBoard("opening", 4, 10, grid)
	if err != nil {
		t.Fatalf("SaveBoard() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("board ID %q is not a UUID: %v", id, err)
	}

	b, err := store.LoadBoard("opening")
	if err != nil {
		t.Fatalf("LoadBoard() failed: %v", err)
	}
	if b == nil {
		t.Fatal("LoadBoard() returned nil for a saved board")
	}
	if b.ID != id || b.Size != 4 || b.Score != 10 || b.Grid != grid {
		t.Errorf("loaded board = %+v", b)
	}

	missing, err := store.LoadBoard("nope")
	if err != nil {
		t.Fatalf("LoadBoard() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("LoadBoard() for unknown name = %+v, want nil", missing)
	}
}

func TestStoreSaveBoardReplaces(t *testing.T) {
	store := openTestStore(t)

	id1, err := store.SaveBoard("slot", 4, 10, "a")
	if err != nil {
		t.Fatalf("SaveBoard() failed: %v", err)
	}
	id2, err := store.SaveBoard("slot", 5, 55, "b")
	if err != nil {
		t.Fatalf("SaveBoard() failed: %v", err)
	}
	if id1 != id2 {
		t.Errorf("replacing a board changed its ID: %s -> %s", id1, id2)
	}

	b, _ := store.LoadBoard("slot")
	if b.Size != 5 || b.Score != 55 || b.Grid != "b" {
		t.Errorf("board not replaced: %+v", b)
	}

	if _, err := store.SaveBoard("", 4, 0, "x"); err == nil {
		t.Error("SaveBoard() should reject an empty name")
	}
}

func TestStoreListAndDeleteBoards(t *testing.T) {
	store := openTestStore(t)

	store.SaveBoard("zeta", 4, 0, "z")
	store.SaveBoard("alpha", 5, 0, "a")
	store.SaveBoard("mid", 6, 0, "m")

	boards, err := store.ListBoards()
	if err != nil {
		t.Fatalf("ListBoards() failed: %v", err)
	}
	if len(boards) != 3 {
		t.Fatalf("Expected 3 boards, got %d", len(boards))
	}
	if boards[0].Name != "alpha" || boards[1].Name != "mid" || boards[2].Name != "zeta" {
		t.Errorf("boards not sorted by name: %v", boards)
	}

	removed, err := store.DeleteBoard("mid")
	if err != nil {
		t.Fatalf("DeleteBoard() failed: %v", err)
	}
	if !removed {
		t.Error("DeleteBoard() should report removal")
	}

	removed, err = store.DeleteBoard("mid")
	if err != nil {
		t.Fatalf("DeleteBoard() failed: %v", err)
	}
	if removed {
		t.Error("second DeleteBoard() should report nothing removed")
	}

	boards, _ = store.ListBoards()
	if len(boards) != 2 {
		t.Errorf("Expected 2 boards after delete, got %d", len(boards))
	}
}
