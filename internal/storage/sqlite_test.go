package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/jetpack-arcade/internal/core"
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

func record(name, player string, score int) core.ScoreRecord {
	return core.ScoreRecord{Name: name, Score: score, Date: "14/03/2026 09:26", PlayerID: player}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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

func TestStoreTopScoresOnePerPlayer(t *testing.T) {
	store := openTestStore(t)

	saves := []core.ScoreRecord{
		record("Ana", "p1", 100),
		record("Bo", "p2", 300),
		record("Ana", "p1", 250),
		record("Cy", "p3", 250),
		record("Bo", "p2", 50),
	}
	for _, r := range saves {
		if _, err := store.SaveScoreRecord("classic", r); err != nil {
			t.Fatalf("SaveScoreRecord() failed: %v", err)
		}
	}
	// Different mode
	if _, err := store.SaveScoreRecord("ace", record("Dee", "p4", 900)); err != nil {
		t.Fatalf("SaveScoreRecord() failed: %v", err)
	}

	scores, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	want := []struct {
		player string
		score  int
	}{
		{"p2", 300},
		{"p1", 250},
		{"p3", 250},
	}
	if len(scores) != len(want) {
		t.Fatalf("Expected %d scores, got %d", len(want), len(scores))
	}
	for i, w := range want {
		if scores[i].PlayerID != w.player || scores[i].Score != w.score {
			t.Errorf("scores[%d] = %s/%d, want %s/%d", i, scores[i].PlayerID, scores[i].Score, w.player, w.score)
		}
	}
	if scores[0].Date != "14/03/2026 09:26" || scores[0].Name != "Bo" {
		t.Errorf("record fields not round-tripped: %+v", scores[0])
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 20; i++ {
		player := string(rune('a' + i))
		if _, err := store.SaveScoreRecord("classic", record("P", player, i*10)); err != nil {
			t.Fatalf("SaveScoreRecord() failed: %v", err)
		}
	}

	scores, err := store.TopScores("classic", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Fatalf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[4].Score != 160 {
		t.Errorf("Unexpected range: first %d, last %d", scores[0].Score, scores[4].Score)
	}
}

func TestStoreRejectsInvalidRecords(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		name string
		rec  core.ScoreRecord
	}{
		{"zero score", record("Ana", "p1", 0)},
		{"negative score", record("Ana", "p1", -5)},
		{"blank name", record("   ", "p1", 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.SaveScoreRecord("classic", tt.rec)
			if !errors.Is(err, core.ErrInvalidRecord) {
				t.Errorf("expected ErrInvalidRecord, got %v", err)
			}
		})
	}

	scores, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("invalid records were stored: %v", scores)
	}
}

func TestBoardImplementsScoreStore(t *testing.T) {
	store := openTestStore(t)
	var board core.ScoreStore = store.Board("cadet")

	if err := board.SaveScoreRecord(record("Ana", "p1", 42)); err != nil {
		t.Fatalf("SaveScoreRecord() failed: %v", err)
	}

	top, err := board.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 1 || top[0].Score != 42 {
		t.Errorf("unexpected board contents: %v", top)
	}

	other, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 0 {
		t.Error("board leaked records into another mode")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScoreRecord("classic", record("Ana", "p1", 100))
	store.SaveScoreRecord("ace", record("Ana", "p1", 200))

	if err := store.ClearScores("classic"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("classic", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	scores, _ = store.TopScores("ace", 10)
	if len(scores) != 1 {
		t.Errorf("Clearing one mode should keep the others, got %d", len(scores))
	}
}

func TestStoreModeStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScoreRecord("classic", record("Ana", "p1", 100))
	store.SaveScoreRecord("classic", record("Ana", "p1", 300))
	store.SaveScoreRecord("classic", record("Bo", "p2", 200))

	stats, err := store.AllModeStats()
	if err != nil {
		t.Fatalf("AllModeStats() failed: %v", err)
	}
	s, ok := stats["classic"]
	if !ok {
		t.Fatal("missing stats for classic")
	}
	if s.RunsCount != 3 || s.Pilots != 2 || s.HighScore != 300 || s.TotalScore != 600 || s.AvgScore != 200 {
		t.Errorf("unexpected stats: %+v", s)
	}
	if _, ok := stats["ace"]; ok {
		t.Error("unplayed modes should not appear")
	}
}

func TestStorePilot(t *testing.T) {
	store := openTestStore(t)

	first, err := store.LoadPilot("Pilot")
	if err != nil {
		t.Fatalf("LoadPilot() failed: %v", err)
	}
	if first.Name != "Pilot" || first.ID == "" {
		t.Fatalf("unexpected default pilot: %+v", first)
	}

	if err := store.SavePilotName("  Maverick "); err != nil {
		t.Fatalf("SavePilotName() failed: %v", err)
	}
	if err := store.SavePilotName(" "); err == nil {
		t.Error("blank pilot name should be rejected")
	}

	second, err := store.LoadPilot("Pilot")
	if err != nil {
		t.Fatalf("LoadPilot() failed: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("pilot ID changed between loads: %s -> %s", first.ID, second.ID)
	}
	if second.Name != "Maverick" {
		t.Errorf("pilot name = %q, want Maverick", second.Name)
	}

	if err := store.ClearPilotName(); err != nil {
		t.Fatalf("ClearPilotName() failed: %v", err)
	}
	third, err := store.LoadPilot("Recruit")
	if err != nil {
		t.Fatalf("LoadPilot() failed: %v", err)
	}
	if third.Name != "Recruit" || third.ID != first.ID {
		t.Errorf("after clearing: %+v, want Recruit with ID %s", third, first.ID)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.jetpack/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".jetpack", "scores.db")); err != nil {
		t.Errorf("Database not created under home: %v", err)
	}
}
