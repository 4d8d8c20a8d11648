package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"HomerunOdds/internal/model"
)

func snapshotFixture(date string) *model.DailySnapshot {
	return &model.DailySnapshot{
		Date:        date,
		GeneratedAt: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		Games: []model.Game{{
			GameID:   "game-1",
			AwayTeam: "New York Yankees",
			HomeTeam: "Boston Red Sox",
			Status:   model.StatusLive,
			Players: []model.PlayerLine{{
				PlayerName:      "Aaron Judge",
				Line:            0.5,
				LineDisplay:     "To Hit HR",
				SportsbookCount: 2,
				Sportsbooks:     []string{"FanDuel", "DraftKings"},
				OverOdds: &model.OutcomeConsensus{
					Consensus: 330,
					IndividualBooks: []model.Quote{
						{Sportsbook: "FanDuel", Odds: 320},
						{Sportsbook: "DraftKings", Odds: 340},
					},
				},
				Status: model.StatusLive,
			}},
		}},
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daily_cache.json")
	s := NewFileStore(path)
	ctx := context.Background()

	if err := s.Save(ctx, snapshotFixture("2025-06-02")); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load(ctx, "2025-06-02")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("expected snapshot, got absent")
	}
	if got.Games[0].Players[0].OverOdds.Consensus != 330 {
		t.Errorf("consensus = %d, want 330", got.Games[0].Players[0].OverOdds.Consensus)
	}
}

func TestFileStore_AbsentFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "missing.json"))
	got, err := s.Load(context.Background(), "2025-06-02")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != nil {
		t.Error("missing file must load as absent, not as a snapshot")
	}
}

func TestFileStore_StaleDateFilteredOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daily_cache.json")
	s := NewFileStore(path)
	ctx := context.Background()

	if err := s.Save(ctx, snapshotFixture("2025-06-02")); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load(ctx, "2025-06-03")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != nil {
		t.Error("a snapshot from yesterday must never be returned for today")
	}
}

func TestFileStore_CorruptFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daily_cache.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileStore(path).Load(context.Background(), "2025-06-02"); err == nil {
		t.Error("corrupt snapshot must surface an error, not be swallowed")
	}
}

func TestFileStore_InterruptedWriteLeavesSnapshotReadable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "daily_cache.json")
	s := NewFileStore(path)
	ctx := context.Background()

	if err := s.Save(ctx, snapshotFixture("2025-06-02")); err != nil {
		t.Fatalf("save: %v", err)
	}
	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	// A write killed before the rename leaves only a partial temp file.
	if err := os.WriteFile(filepath.Join(dir, "daily_cache.json.tmp123"), []byte(`{"date":"2025-0`), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := s.Load(ctx, "2025-06-02")
	if err != nil {
		t.Fatalf("load after simulated crash: %v", err)
	}
	if got == nil {
		t.Fatal("previous snapshot must still be readable")
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(after) != string(want) {
		t.Error("snapshot file changed despite no completed save")
	}
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daily_cache.json")
	s := NewFileStore(path)
	ctx := context.Background()

	if err := s.Save(ctx, snapshotFixture("2025-06-02")); err != nil {
		t.Fatalf("save: %v", err)
	}
	replacement := snapshotFixture("2025-06-02")
	replacement.Games = nil
	if err := s.Save(ctx, replacement); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := s.Load(ctx, "2025-06-02")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Games) != 0 {
		t.Error("save must overwrite unconditionally")
	}
}
