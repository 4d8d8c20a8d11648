package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"HomerunOdds/internal/model"
)

// SnapshotTTL bounds how long a snapshot can outlive its day. Staleness is
// still decided by the date check on Load; the TTL only keeps dead keys
// from accumulating.
const SnapshotTTL = 48 * time.Hour

// RedisStore keeps the daily snapshot under a single Redis key. A SET of
// the whole value is atomic, which gives the same commit-or-discard
// guarantee the file store gets from rename.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a Redis-backed store.
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

func (s *RedisStore) Load(ctx context.Context, date string) (*model.DailySnapshot, error) {
	data, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var snap model.DailySnapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	if snap.Date != date {
		return nil, nil
	}
	return &snap, nil
}

func (s *RedisStore) Save(ctx context.Context, snap *model.DailySnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.key, data, SnapshotTTL).Err(); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
