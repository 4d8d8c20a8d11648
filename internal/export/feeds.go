package export

import (
	"math"
	"sort"
	"time"

	"HomerunOdds/internal/model"
	"HomerunOdds/internal/oddsmath"
)

// Metadata describes one exported feed.
type Metadata struct {
	GeneratedAt time.Time `json:"generated_at"`
	Date        string    `json:"date"`
	Timezone    string    `json:"timezone"`
	Sport       string    `json:"sport"`
	Market      string    `json:"market"`
	Format      string    `json:"format"`
	Description string    `json:"description"`
	UseCase     string    `json:"use_case"`
}

// Summary carries the headline counts shared by every feed.
type Summary struct {
	TotalGames     int `json:"total_games"`
	GamesWithProps int `json:"games_with_props"`
	TotalPlayers   int `json:"total_players"`
	LiveGames      int `json:"live_games"`
	CachedGames    int `json:"cached_games"`
	TotalEntries   int `json:"total_entries,omitempty"`
	HighValueBets  int `json:"high_value_bets,omitempty"`
}

// FullFeed is the complete dataset with every book and line.
type FullFeed struct {
	Metadata Metadata     `json:"metadata"`
	Summary  Summary      `json:"summary"`
	Games    []model.Game `json:"games"`
}

// SummaryPlayer is a player entry with the odds stripped out.
type SummaryPlayer struct {
	PlayerName      string `json:"player_name"`
	LineDisplay     string `json:"line_display"`
	SportsbookCount int    `json:"sportsbook_count"`
}

// SummaryGame is a game entry with player counts but no odds.
type SummaryGame struct {
	GameID       string          `json:"game_id"`
	AwayTeam     string          `json:"away_team"`
	HomeTeam     string          `json:"home_team"`
	CommenceTime time.Time       `json:"commence_time"`
	PlayerCount  int             `json:"player_count"`
	Status       model.Status    `json:"status"`
	LastUpdated  *time.Time      `json:"last_updated,omitempty"`
	Players      []SummaryPlayer `json:"players"`
}

// SummaryFeed is the lightweight overview feed.
type SummaryFeed struct {
	Metadata Metadata      `json:"metadata"`
	Summary  Summary       `json:"summary"`
	Games    []SummaryGame `json:"games"`
}

// GameContext is the game info attached to player-centric entries.
type GameContext struct {
	GameID       string       `json:"game_id"`
	AwayTeam     string       `json:"away_team"`
	HomeTeam     string       `json:"home_team"`
	CommenceTime time.Time    `json:"commence_time"`
	Status       model.Status `json:"status"`
	LastUpdated  *time.Time   `json:"last_updated,omitempty"`
}

// PlayerEntry is one player line with its game context.
type PlayerEntry struct {
	model.PlayerLine
	GameContext GameContext `json:"game_context"`
}

// PlayersFeed flattens every player line across games.
type PlayersFeed struct {
	Metadata Metadata      `json:"metadata"`
	Summary  Summary       `json:"summary"`
	Players  []PlayerEntry `json:"players"`
}

// OddsPair holds a yes/no pair of American odds.
type OddsPair struct {
	Yes int `json:"yes"`
	No  int `json:"no"`
}

// ProbPair holds a yes/no pair of implied probabilities.
type ProbPair struct {
	Yes float64 `json:"yes"`
	No  float64 `json:"no"`
}

// BestPair holds the single best book price per side.
type BestPair struct {
	Yes model.Quote `json:"yes"`
	No  model.Quote `json:"no"`
}

// BestOddsPlayer ranks one player line for line shopping.
type BestOddsPlayer struct {
	PlayerName         string       `json:"player_name"`
	LineDisplay        string       `json:"line_display"`
	GameInfo           string       `json:"game_info"`
	GameTime           time.Time    `json:"game_time"`
	Status             model.Status `json:"status"`
	ConsensusOdds      OddsPair     `json:"consensus_odds"`
	ImpliedProbability ProbPair     `json:"implied_probability"`
	BestOdds           BestPair     `json:"best_odds"`
	SportsbookCount    int          `json:"sportsbook_count"`
	ValueScore         int          `json:"value_score"`
	LastUpdated        *time.Time   `json:"last_updated,omitempty"`
}

// BestOddsFeed ranks players by value score for odds comparison.
type BestOddsFeed struct {
	Metadata Metadata         `json:"metadata"`
	Summary  Summary          `json:"summary"`
	Players  []BestOddsPlayer `json:"players"`
}

func (e *Exporter) metadata(snap *model.DailySnapshot, format, description, useCase string) Metadata {
	return Metadata{
		GeneratedAt: snap.GeneratedAt,
		Date:        snap.Date,
		Timezone:    e.TimezoneName,
		Sport:       e.Sport,
		Market:      e.Market,
		Format:      format,
		Description: description,
		UseCase:     useCase,
	}
}

func baseSummary(snap *model.DailySnapshot) Summary {
	total := 0
	for _, g := range snap.Games {
		total += len(g.Players)
	}
	return Summary{
		TotalGames:     len(snap.Games),
		GamesWithProps: len(snap.Games),
		TotalPlayers:   total,
		LiveGames:      snap.CountByStatus(model.StatusLive),
		CachedGames:    snap.CountByStatus(model.StatusCached),
	}
}

// cachedTimestamp returns the game's last-updated time only for cached
// games; live entries are as fresh as the feed itself.
func cachedTimestamp(g *model.Game) *time.Time {
	if g.Status != model.StatusCached {
		return nil
	}
	t := g.LastUpdated
	return &t
}

// BuildFull assembles the complete dataset.
func (e *Exporter) BuildFull(snap *model.DailySnapshot) FullFeed {
	return FullFeed{
		Metadata: e.metadata(snap, "full_dataset",
			"Complete home run props with all sportsbooks and lines",
			"Full data analysis, comprehensive dashboards"),
		Summary: baseSummary(snap),
		Games:   snap.Games,
	}
}

// BuildSummary assembles the lightweight overview.
func (e *Exporter) BuildSummary(snap *model.DailySnapshot) SummaryFeed {
	feed := SummaryFeed{
		Metadata: e.metadata(snap, "summary",
			"Lightweight summary with game info and player counts",
			"Quick overview, mobile apps, initial page loads"),
		Summary: baseSummary(snap),
	}
	for i := range snap.Games {
		g := &snap.Games[i]
		sg := SummaryGame{
			GameID:       g.GameID,
			AwayTeam:     g.AwayTeam,
			HomeTeam:     g.HomeTeam,
			CommenceTime: g.CommenceTime,
			PlayerCount:  len(g.Players),
			Status:       g.Status,
			LastUpdated:  cachedTimestamp(g),
		}
		for _, p := range g.Players {
			sg.Players = append(sg.Players, SummaryPlayer{
				PlayerName:      p.PlayerName,
				LineDisplay:     p.LineDisplay,
				SportsbookCount: p.SportsbookCount,
			})
		}
		feed.Games = append(feed.Games, sg)
	}
	return feed
}

// BuildPlayers assembles the player-centric flat list.
func (e *Exporter) BuildPlayers(snap *model.DailySnapshot) PlayersFeed {
	feed := PlayersFeed{
		Metadata: e.metadata(snap, "players",
			"All player props with game context",
			"Player comparison, fantasy applications, player-specific analysis"),
		Summary: baseSummary(snap),
	}
	for i := range snap.Games {
		g := &snap.Games[i]
		ctx := GameContext{
			GameID:       g.GameID,
			AwayTeam:     g.AwayTeam,
			HomeTeam:     g.HomeTeam,
			CommenceTime: g.CommenceTime,
			Status:       g.Status,
			LastUpdated:  cachedTimestamp(g),
		}
		for _, p := range g.Players {
			feed.Players = append(feed.Players, PlayerEntry{PlayerLine: p, GameContext: ctx})
		}
	}
	sort.SliceStable(feed.Players, func(i, j int) bool {
		return feed.Players[i].PlayerName < feed.Players[j].PlayerName
	})
	feed.Summary.TotalEntries = len(feed.Players)
	return feed
}

// BuildBestOdds assembles the value-ranked feed. Only players priced on
// both sides are rankable.
func (e *Exporter) BuildBestOdds(snap *model.DailySnapshot) BestOddsFeed {
	feed := BestOddsFeed{
		Metadata: e.metadata(snap, "best_odds",
			"Best odds and value bets ranked by favorability",
			"Value betting, line shopping, odds comparison"),
		Summary: baseSummary(snap),
	}
	for i := range snap.Games {
		g := &snap.Games[i]
		for _, p := range g.Players {
			if p.OverOdds == nil || p.UnderOdds == nil {
				continue
			}
			yes, no := p.OverOdds.Consensus, p.UnderOdds.Consensus
			yesProb, err := oddsmath.ToProbability(yes)
			if err != nil {
				continue
			}
			noProb, err := oddsmath.ToProbability(no)
			if err != nil {
				continue
			}
			entry := BestOddsPlayer{
				PlayerName:  p.PlayerName,
				LineDisplay: p.LineDisplay,
				GameInfo:    g.AwayTeam + " @ " + g.HomeTeam,
				GameTime:    g.CommenceTime,
				Status:      g.Status,
				ConsensusOdds: OddsPair{Yes: yes, No: no},
				ImpliedProbability: ProbPair{
					Yes: math.Round(yesProb*1000) / 1000,
					No:  math.Round(noProb*1000) / 1000,
				},
				BestOdds: BestPair{
					Yes: bestBook(p.OverOdds),
					No:  bestBook(p.UnderOdds),
				},
				SportsbookCount: p.SportsbookCount,
				ValueScore:      valueScore(yes, no),
				LastUpdated:     cachedTimestamp(g),
			}
			feed.Players = append(feed.Players, entry)
		}
	}
	sort.SliceStable(feed.Players, func(i, j int) bool {
		if feed.Players[i].ValueScore != feed.Players[j].ValueScore {
			return feed.Players[i].ValueScore > feed.Players[j].ValueScore
		}
		return feed.Players[i].PlayerName < feed.Players[j].PlayerName
	})
	feed.Summary.TotalEntries = len(feed.Players)
	for _, p := range feed.Players {
		if p.ValueScore > 200 {
			feed.Summary.HighValueBets++
		}
	}
	return feed
}

// bestBook picks the highest (most bettor-favorable) individual price.
func bestBook(oc *model.OutcomeConsensus) model.Quote {
	if len(oc.IndividualBooks) == 0 {
		return model.Quote{Sportsbook: "Consensus", Odds: oc.Consensus}
	}
	best := oc.IndividualBooks[0]
	for _, q := range oc.IndividualBooks[1:] {
		if q.Odds > best.Odds {
			best = q
		}
	}
	return best
}

// valueScore flags long-odds lines worth shopping: the magnitude of
// whichever consensus side pays better than +150, zero otherwise.
func valueScore(yes, no int) int {
	if yes > 150 {
		return abs(yes)
	}
	if no > 150 {
		return abs(no)
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
