package merge

import (
	"context"
	"fmt"
	"log"
	"time"

	"HomerunOdds/internal/model"
	"HomerunOdds/internal/store"
)

// Engine reconciles a freshly aggregated candidate against the snapshot
// persisted earlier the same day. Games the provider stopped publishing
// (started games) are carried forward as cached; games still publishing
// replace their prior entry wholesale. The clock is injected so day
// boundaries are deterministic in tests; the engine never reads the system
// clock directly.
type Engine struct {
	Store    store.Store
	Location *time.Location
	Now      func() time.Time
}

// NewEngine creates a merge engine over the given store. now may be nil,
// in which case time.Now is used.
func NewEngine(s store.Store, loc *time.Location, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{Store: s, Location: loc, Now: now}
}

// Run executes one merge cycle. The candidate must be all-live (candidates
// never contain cached data). The merged snapshot is returned even when
// persisting it fails, so the cycle's consumers still see fresh data; the
// caller must log that divergence, and the next cycle will merge against
// the last snapshot that did persist.
func (e *Engine) Run(ctx context.Context, candidate *model.DailySnapshot) (*model.DailySnapshot, error) {
	now := e.Now().In(e.Location)
	today := now.Format("2006-01-02")

	previous, err := e.Store.Load(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("load previous snapshot: %w", err)
	}

	merged := &model.DailySnapshot{Date: today, GeneratedAt: now}

	// Live data always wins for a shared identifier; presence in the
	// candidate is the sole determinant, no timestamp comparison.
	for _, g := range candidate.Games {
		markLive(&g, now)
		merged.Games = append(merged.Games, g)
	}

	if previous != nil {
		for _, g := range previous.Games {
			if candidate.Game(g.GameID) != nil {
				continue
			}
			// Market closed: keep the prior odds untouched, only the
			// status flips. The timestamp stays whatever it carried,
			// possibly already cached from an earlier cycle.
			markCached(&g)
			merged.Games = append(merged.Games, g)
		}
	}

	if err := e.Store.Save(ctx, merged); err != nil {
		log.Printf("[ERROR] merged snapshot not persisted, next cycle merges against stale state: %v", err)
		return merged, fmt.Errorf("persist snapshot: %w", err)
	}
	return merged, nil
}

func markLive(g *model.Game, now time.Time) {
	g.Status = model.StatusLive
	g.LastUpdated = now
	for i := range g.Players {
		g.Players[i].Status = model.StatusLive
		g.Players[i].LastUpdated = now
	}
}

func markCached(g *model.Game) {
	g.Status = model.StatusCached
	for i := range g.Players {
		g.Players[i].Status = model.StatusCached
	}
}
