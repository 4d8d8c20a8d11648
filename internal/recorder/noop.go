package recorder

import "HomerunOdds/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordCycle(_ *CycleEvent) error         { return nil }
func (n *NoopRecorder) RecordOdds(_ *model.DailySnapshot) error { return nil }
func (n *NoopRecorder) Close() error                            { return nil }
