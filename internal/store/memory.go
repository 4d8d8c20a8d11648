package store

import (
	"context"
	"encoding/json"

	"HomerunOdds/internal/model"
)

// MemoryStore is an in-memory Store for tests. SaveErr, when set, makes
// every Save fail without touching the held snapshot.
type MemoryStore struct {
	SaveErr error
	snap    *model.DailySnapshot
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Load(_ context.Context, date string) (*model.DailySnapshot, error) {
	if s.snap == nil || s.snap.Date != date {
		return nil, nil
	}
	return deepCopy(s.snap)
}

func (s *MemoryStore) Save(_ context.Context, snap *model.DailySnapshot) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	copied, err := deepCopy(snap)
	if err != nil {
		return err
	}
	s.snap = copied
	return nil
}

// deepCopy decouples the stored snapshot from later caller mutations, the
// same isolation a real store gives through serialization.
func deepCopy(snap *model.DailySnapshot) (*model.DailySnapshot, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, err
	}
	var out model.DailySnapshot
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
