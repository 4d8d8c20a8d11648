package provider

import (
	"context"
	"time"
)

// RawOutcome is one priced outcome inside a bookmaker market.
// Description carries the player name for player-prop markets.
type RawOutcome struct {
	Name        string  `json:"name"` // "Over" / "Under"
	Description string  `json:"description"`
	Price       int     `json:"price"`
	Point       float64 `json:"point,omitempty"`
}

// RawMarket is one market offered by a bookmaker.
type RawMarket struct {
	Key      string       `json:"key"`
	Outcomes []RawOutcome `json:"outcomes"`
}

// RawBookmaker is one bookmaker's markets for a game.
type RawBookmaker struct {
	Key     string      `json:"key"`
	Title   string      `json:"title"`
	Markets []RawMarket `json:"markets"`
}

// RawGame is one game object as returned by the odds provider.
type RawGame struct {
	ID           string         `json:"id"`
	HomeTeam     string         `json:"home_team"`
	AwayTeam     string         `json:"away_team"`
	CommenceTime time.Time      `json:"commence_time"`
	Bookmakers   []RawBookmaker `json:"bookmakers"`
}

// Fetcher defines the interface for fetching raw market quotes.
type Fetcher interface {
	// FetchEvents returns the games commencing on the given calendar day.
	// An empty slice means no games; errors are surfaced unchanged and
	// abort the caller's cycle.
	FetchEvents(ctx context.Context, day time.Time) ([]RawGame, error)
	Name() string
}
