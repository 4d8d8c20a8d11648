package store

import (
	"context"

	"HomerunOdds/internal/model"
)

// Store is the durable slot for exactly one DailySnapshot, addressed by
// calendar date. Load returns (nil, nil) when no snapshot exists for the
// date or when the stored snapshot is from another day; stale snapshots
// are never returned, which is what resets the cache at midnight without
// an explicit delete step. Save overwrites unconditionally and must be
// atomic with respect to partial-write failures.
type Store interface {
	Load(ctx context.Context, date string) (*model.DailySnapshot, error)
	Save(ctx context.Context, snap *model.DailySnapshot) error
}
