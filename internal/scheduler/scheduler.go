package scheduler

import (
	"context"
	"fmt"
	"log"

	"HomerunOdds/internal/aggregator"
	"HomerunOdds/internal/export"
	"HomerunOdds/internal/merge"
	"HomerunOdds/internal/model"
	"HomerunOdds/internal/notifier"
	"HomerunOdds/internal/provider"
	"HomerunOdds/internal/recorder"
	"HomerunOdds/internal/report"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the fetch → aggregate → merge → export cycle on a cron
// cadence. Cycles are strictly sequential: one runs to completion before
// the next fires.
type Scheduler struct {
	Cron       *cron.Cron
	Fetcher    provider.Fetcher
	Aggregator *aggregator.Aggregator
	Merger     *merge.Engine
	Exporter   *export.Exporter
	Recorder   recorder.Recorder
	Notifier   *notifier.TelegramNotifier
	Ctx        context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, f provider.Fetcher, agg *aggregator.Aggregator, m *merge.Engine, exp *export.Exporter, rec recorder.Recorder, tn *notifier.TelegramNotifier) *Scheduler {
	return &Scheduler{
		Cron:       cron.New(cron.WithSeconds()),
		Fetcher:    f,
		Aggregator: agg,
		Merger:     m,
		Exporter:   exp,
		Recorder:   rec,
		Notifier:   tn,
		Ctx:        ctx,
	}
}

// RegisterAll registers the update task.
func (s *Scheduler) RegisterAll(updateCron string) error {
	if _, err := s.Cron.AddFunc(updateCron, s.updateTask); err != nil {
		return fmt.Errorf("register update task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunUpdateNow executes the update task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunUpdateNow() {
	s.updateTask()
}

func (s *Scheduler) updateTask() {
	log.Println("[INFO] running update cycle")
	now := s.Merger.Now().In(s.Merger.Location)

	games, err := s.Fetcher.FetchEvents(s.Ctx, now)
	if err != nil {
		// Cycle is over; the last persisted snapshot stays the served state.
		log.Printf("[ERROR] fetch events: %v", err)
		s.trySend(fmt.Sprintf("❌ Odds fetch failed, feed unchanged: %v", err))
		return
	}
	log.Printf("[INFO] provider returned %d games", len(games))

	candidate := s.Aggregator.Build(games, now)

	merged, err := s.Merger.Run(s.Ctx, candidate)
	if merged == nil {
		log.Printf("[ERROR] merge cycle: %v", err)
		s.trySend(fmt.Sprintf("❌ Merge cycle failed: %v", err))
		return
	}
	persisted := true
	note := ""
	if err != nil {
		// Merged data is still good for this cycle's exports; the next
		// cycle merges against the last snapshot that did persist.
		persisted = false
		note = err.Error()
		log.Printf("[ERROR] %v", err)
	}

	if err := s.Exporter.WriteAll(merged); err != nil {
		log.Printf("[ERROR] export feeds: %v", err)
	}

	if err := s.Recorder.RecordCycle(recorder.NewCycleEvent(merged, persisted, note)); err != nil {
		log.Printf("[ERROR] record cycle: %v", err)
	}
	if err := s.Recorder.RecordOdds(merged); err != nil {
		log.Printf("[ERROR] record odds: %v", err)
	}

	live := merged.CountByStatus(model.StatusLive)
	cached := merged.CountByStatus(model.StatusCached)
	log.Printf("[INFO] cycle complete: %d games (%d live, %d cached)", len(merged.Games), live, cached)

	fmt.Println(report.FormatGames(report.PrimaryLines(merged)))

	s.trySend(report.FormatCycleReport(merged))
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
