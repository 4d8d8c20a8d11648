package model

import "time"

// Status distinguishes data observed in the most recent fetch from data
// carried forward from an earlier cycle the same day.
type Status string

const (
	StatusLive   Status = "live"
	StatusCached Status = "cached"
)

// PlayerLine holds the consensus odds for one player at one line value.
// Either side may be absent when no book quotes it.
type PlayerLine struct {
	PlayerName      string            `json:"player_name"`
	Line            float64           `json:"line"`
	LineDisplay     string            `json:"line_display"`
	SportsbookCount int               `json:"sportsbook_count"`
	Sportsbooks     []string          `json:"sportsbooks"`
	OverOdds        *OutcomeConsensus `json:"over_odds,omitempty"`
	UnderOdds       *OutcomeConsensus `json:"under_odds,omitempty"`
	Status          Status            `json:"status"`
	LastUpdated     time.Time         `json:"last_updated"`
}

// Game groups the player lines for one matchup.
type Game struct {
	GameID       string       `json:"game_id"`
	AwayTeam     string       `json:"away_team"`
	HomeTeam     string       `json:"home_team"`
	CommenceTime time.Time    `json:"commence_time"`
	Status       Status       `json:"status"`
	LastUpdated  time.Time    `json:"last_updated"`
	Players      []PlayerLine `json:"players"`
}

// DailySnapshot is the day-scoped view of all games. Date is the calendar
// date in the reference timezone ("baseball day") and is what the store
// checks for staleness.
type DailySnapshot struct {
	Date        string    `json:"date"`
	GeneratedAt time.Time `json:"generated_at"`
	Games       []Game    `json:"games"`
}

// Game returns the game with the given identifier, or nil.
func (s *DailySnapshot) Game(id string) *Game {
	for i := range s.Games {
		if s.Games[i].GameID == id {
			return &s.Games[i]
		}
	}
	return nil
}

// CountByStatus returns how many games carry the given status.
func (s *DailySnapshot) CountByStatus(status Status) int {
	n := 0
	for i := range s.Games {
		if s.Games[i].Status == status {
			n++
		}
	}
	return n
}
