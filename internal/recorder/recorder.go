package recorder

import "HomerunOdds/internal/model"

// CycleEvent summarizes one completed merge cycle.
type CycleEvent struct {
	Date         string
	TotalGames   int
	LiveGames    int
	CachedGames  int
	TotalPlayers int
	Persisted    bool
	Note         string
}

// Recorder persists per-cycle history for later analysis.
type Recorder interface {
	RecordCycle(evt *CycleEvent) error
	RecordOdds(snap *model.DailySnapshot) error
	Close() error
}

// NewCycleEvent derives a CycleEvent from a merged snapshot.
func NewCycleEvent(snap *model.DailySnapshot, persisted bool, note string) *CycleEvent {
	total := 0
	for _, g := range snap.Games {
		total += len(g.Players)
	}
	return &CycleEvent{
		Date:         snap.Date,
		TotalGames:   len(snap.Games),
		LiveGames:    snap.CountByStatus(model.StatusLive),
		CachedGames:  snap.CountByStatus(model.StatusCached),
		TotalPlayers: total,
		Persisted:    persisted,
		Note:         note,
	}
}
