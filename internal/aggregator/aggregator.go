package aggregator

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"HomerunOdds/internal/model"
	"HomerunOdds/internal/oddsmath"
	"HomerunOdds/internal/provider"
)

// Aggregator reduces a raw provider response to a candidate DailySnapshot.
// This is the only place untrusted external shape enters the core.
type Aggregator struct {
	MarketKey string
	Location  *time.Location
}

// New creates an Aggregator for one prop market, with calendar dates taken
// in the given reference timezone.
func New(marketKey string, loc *time.Location) *Aggregator {
	return &Aggregator{MarketKey: marketKey, Location: loc}
}

// collected accumulates per-book quotes for one player/line while walking
// the bookmaker tree.
type collected struct {
	player string
	line   float64
	yes    []model.Quote
	no     []model.Quote
	books  []string
}

func (c *collected) addBook(title string) {
	for _, b := range c.books {
		if b == title {
			return
		}
	}
	c.books = append(c.books, title)
}

// Build groups the raw quotes into games, players and lines, computing the
// consensus price per outcome side. Every game in the result is live.
func (a *Aggregator) Build(games []provider.RawGame, now time.Time) *model.DailySnapshot {
	snap := &model.DailySnapshot{
		Date:        now.In(a.Location).Format("2006-01-02"),
		GeneratedAt: now.In(a.Location),
	}

	for _, raw := range games {
		g := a.buildGame(raw, now)
		if g == nil {
			continue
		}
		snap.Games = append(snap.Games, *g)
	}
	return snap
}

func (a *Aggregator) buildGame(raw provider.RawGame, now time.Time) *model.Game {
	props := map[string]*collected{}
	var order []string

	for _, bk := range raw.Bookmakers {
		for _, market := range bk.Markets {
			if market.Key != a.MarketKey {
				continue
			}
			for _, outcome := range market.Outcomes {
				side, err := parseSide(outcome.Name)
				if err != nil {
					log.Printf("[WARN] game %s: %v", raw.ID, err)
					continue
				}
				line := outcome.Point
				if line == 0 {
					line = 0.5 // provider omits the point for plain "to hit a HR"
				}
				key := playerKey(outcome.Description, line)
				c := props[key]
				if c == nil {
					c = &collected{player: outcome.Description, line: line}
					props[key] = c
					order = append(order, key)
				}
				c.addBook(bk.Title)
				q := model.Quote{Sportsbook: bk.Title, Odds: outcome.Price, Side: side, Line: line}
				if side == model.SideYes {
					c.yes = append(c.yes, q)
				} else {
					c.no = append(c.no, q)
				}
			}
		}
	}

	if len(order) == 0 {
		return nil // game carries no quotes for this market
	}

	game := &model.Game{
		GameID:       raw.ID,
		AwayTeam:     raw.AwayTeam,
		HomeTeam:     raw.HomeTeam,
		CommenceTime: raw.CommenceTime.In(a.Location),
		Status:       model.StatusLive,
		LastUpdated:  now.In(a.Location),
	}

	for _, key := range order {
		c := props[key]
		pl, ok := buildPlayerLine(c, now.In(a.Location))
		if !ok {
			// both sides empty or unpriceable: dropped, not an error
			log.Printf("[WARN] game %s: dropping %s, no usable quotes", raw.ID, c.player)
			continue
		}
		game.Players = append(game.Players, pl)
	}
	if len(game.Players) == 0 {
		return nil
	}

	sort.Slice(game.Players, func(i, j int) bool {
		if game.Players[i].PlayerName != game.Players[j].PlayerName {
			return game.Players[i].PlayerName < game.Players[j].PlayerName
		}
		return game.Players[i].Line < game.Players[j].Line
	})
	return game
}

func buildPlayerLine(c *collected, now time.Time) (model.PlayerLine, bool) {
	pl := model.PlayerLine{
		PlayerName:      c.player,
		Line:            c.line,
		LineDisplay:     lineDisplay(c.line),
		SportsbookCount: len(c.books),
		Sportsbooks:     c.books,
		Status:          model.StatusLive,
		LastUpdated:     now,
	}

	if len(c.yes) > 0 {
		if oc, err := oddsmath.Consensus(c.yes); err == nil {
			pl.OverOdds = &oc
		} else if !errors.Is(err, oddsmath.ErrNoQuotes) {
			log.Printf("[WARN] yes consensus for %s: %v", c.player, err)
		}
	}
	if len(c.no) > 0 {
		if oc, err := oddsmath.Consensus(c.no); err == nil {
			pl.UnderOdds = &oc
		} else if !errors.Is(err, oddsmath.ErrNoQuotes) {
			log.Printf("[WARN] no consensus for %s: %v", c.player, err)
		}
	}

	if pl.OverOdds == nil && pl.UnderOdds == nil {
		return model.PlayerLine{}, false
	}
	return pl, true
}

func parseSide(name string) (model.Side, error) {
	switch name {
	case "Over", "Yes":
		return model.SideYes, nil
	case "Under", "No":
		return model.SideNo, nil
	}
	return "", fmt.Errorf("unknown outcome side %q", name)
}

func lineDisplay(line float64) string {
	if line == 0.5 {
		return "To Hit HR"
	}
	return fmt.Sprintf("%g", line)
}
