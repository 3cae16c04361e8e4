package disclaimer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"advocate_site/internal/services"
)

const redisKeyPrefix = "disclaimer:seen:"

// RedisStore keeps acknowledgements in Redis. Entries expire after the
// retention period, so no pruning job is needed.
type RedisStore struct {
	cache     *services.RedisCache
	retention time.Duration
	now       func() time.Time
}

func NewRedisStore(cache *services.RedisCache, retention time.Duration) *RedisStore {
	return &RedisStore{cache: cache, retention: retention, now: time.Now}
}

func (s *RedisStore) HasSeen(ctx context.Context, visitorID string) (bool, error) {
	_, ok, err := s.AcknowledgedAt(ctx, visitorID)
	return ok, err
}

// AcknowledgedAt returns when the visitor first acknowledged the notice
func (s *RedisStore) AcknowledgedAt(ctx context.Context, visitorID string) (time.Time, bool, error) {
	var at time.Time
	err := s.cache.Get(ctx, redisKeyPrefix+visitorID, &at)
	if errors.Is(err, services.ErrCacheMiss) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("redis get: %w", err)
	}
	return at, true, nil
}

// MarkSeen records the first acknowledgement; later calls keep the original time
func (s *RedisStore) MarkSeen(ctx context.Context, visitorID string) error {
	if _, err := s.cache.SetNX(ctx, redisKeyPrefix+visitorID, s.now().UTC(), s.retention); err != nil {
		return fmt.Errorf("redis setnx: %w", err)
	}
	return nil
}
