package aggregator

import (
	"testing"
	"time"

	"HomerunOdds/internal/model"
	"HomerunOdds/internal/provider"
)

const marketKey = "batter_home_runs"

var eastern, _ = time.LoadLocation("America/New_York")

func rawFixture() []provider.RawGame {
	commence := time.Date(2025, 6, 2, 23, 5, 0, 0, time.UTC)
	return []provider.RawGame{
		{
			ID:           "game-1",
			AwayTeam:     "New York Yankees",
			HomeTeam:     "Boston Red Sox",
			CommenceTime: commence,
			Bookmakers: []provider.RawBookmaker{
				{
					Key: "fanduel", Title: "FanDuel",
					Markets: []provider.RawMarket{{
						Key: marketKey,
						Outcomes: []provider.RawOutcome{
							{Name: "Over", Description: "Aaron Judge", Price: 320, Point: 0.5},
							{Name: "Under", Description: "Aaron Judge", Price: -450, Point: 0.5},
							{Name: "Over", Description: "Rafael Devers", Price: 500},
						},
					}},
				},
				{
					Key: "draftkings", Title: "DraftKings",
					Markets: []provider.RawMarket{{
						Key: marketKey,
						Outcomes: []provider.RawOutcome{
							{Name: "Over", Description: "Aaron Judge", Price: 340, Point: 0.5},
						},
					}},
				},
			},
		},
		{
			ID:       "game-2",
			AwayTeam: "Chicago Cubs",
			HomeTeam: "St. Louis Cardinals",
			Bookmakers: []provider.RawBookmaker{
				{Key: "fanduel", Title: "FanDuel", Markets: []provider.RawMarket{
					{Key: "totals", Outcomes: []provider.RawOutcome{{Name: "Over", Price: -110, Point: 8.5}}},
				}},
			},
		},
	}
}

func TestBuild_GroupsQuotesByPlayerLine(t *testing.T) {
	agg := New(marketKey, eastern)
	now := time.Date(2025, 6, 2, 14, 0, 0, 0, eastern)

	snap := agg.Build(rawFixture(), now)

	if snap.Date != "2025-06-02" {
		t.Errorf("snapshot date = %q, want 2025-06-02", snap.Date)
	}
	if len(snap.Games) != 1 {
		t.Fatalf("got %d games, want 1 (game-2 has no home run market)", len(snap.Games))
	}

	g := snap.Games[0]
	if g.Status != model.StatusLive {
		t.Errorf("candidate game status = %q, want live", g.Status)
	}
	if len(g.Players) != 2 {
		t.Fatalf("got %d players, want 2", len(g.Players))
	}

	// Sorted by name: Judge before Devers? "Aaron Judge" < "Rafael Devers".
	judge := g.Players[0]
	if judge.PlayerName != "Aaron Judge" {
		t.Fatalf("first player = %q, want Aaron Judge", judge.PlayerName)
	}
	if judge.SportsbookCount != 2 {
		t.Errorf("Judge sportsbook count = %d, want 2", judge.SportsbookCount)
	}
	if judge.OverOdds == nil || judge.OverOdds.BookCount() != 2 {
		t.Fatalf("Judge over consensus should aggregate 2 books")
	}
	if judge.UnderOdds == nil || judge.UnderOdds.Consensus != -450 {
		t.Errorf("Judge under consensus should be the single book's -450 unchanged")
	}
	if judge.LineDisplay != "To Hit HR" {
		t.Errorf("line display = %q, want To Hit HR", judge.LineDisplay)
	}

	devers := g.Players[1]
	if devers.OverOdds == nil || devers.OverOdds.Consensus != 500 {
		t.Errorf("Devers over consensus should be 500")
	}
	if devers.UnderOdds != nil {
		t.Errorf("Devers has no under quotes, consensus must be absent")
	}
	if devers.Line != 0.5 {
		t.Errorf("missing point should default to 0.5, got %g", devers.Line)
	}
}

func TestBuild_DropsUnpriceablePlayers(t *testing.T) {
	agg := New(marketKey, eastern)
	games := []provider.RawGame{{
		ID: "game-3", AwayTeam: "A", HomeTeam: "B",
		Bookmakers: []provider.RawBookmaker{{
			Key: "fanduel", Title: "FanDuel",
			Markets: []provider.RawMarket{{
				Key: marketKey,
				Outcomes: []provider.RawOutcome{
					{Name: "Over", Description: "Broken Quote", Price: 50, Point: 0.5},
					{Name: "Over", Description: "Good Player", Price: 410, Point: 0.5},
				},
			}},
		}},
	}}

	snap := agg.Build(games, time.Now())
	if len(snap.Games) != 1 || len(snap.Games[0].Players) != 1 {
		t.Fatalf("expected exactly the one priceable player to survive")
	}
	if snap.Games[0].Players[0].PlayerName != "Good Player" {
		t.Errorf("surviving player = %q", snap.Games[0].Players[0].PlayerName)
	}
}

func TestBuild_EmptyResponse(t *testing.T) {
	agg := New(marketKey, eastern)
	snap := agg.Build(nil, time.Now())
	if len(snap.Games) != 0 {
		t.Errorf("empty provider response should yield zero games")
	}
}

func TestSamePlayer_ExactMatchOnly(t *testing.T) {
	if !SamePlayer("Aaron Judge", "Aaron Judge") {
		t.Error("identical names must match")
	}
	if SamePlayer("Aaron Judge", "A. Judge") {
		t.Error("differing spellings are distinct players today")
	}
}
