package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/citywatch/alert_dispatch_system/internal/models"
	"github.com/citywatch/alert_dispatch_system/internal/service"
)

// LocationStore keeps the most recent GPS fix per responder in Redis.
// Each write overwrites the previous fix; fixes expire when the tracking
// feed goes quiet so stale responders drop out of dispatch.
type LocationStore struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewLocationStore(client *redis.Client, ttl time.Duration) service.LocationStore {
	return &LocationStore{redisClient: client, ttl: ttl}
}

func fixKey(partition string, responderID uuid.UUID) string {
	return fmt.Sprintf("%s:responder_loc:%s", partition, responderID)
}

// SaveFix stores the latest fix for a responder, replacing any older one.
func (s *LocationStore) SaveFix(ctx context.Context, partition string, fix *models.ResponderLocationFix) error {
	val, err := json.Marshal(fix)
	if err != nil {
		return fmt.Errorf("failed to marshal location fix: %w", err)
	}
	if err := s.redisClient.Set(ctx, fixKey(partition, fix.ResponderID), val, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save location fix: %w", err)
	}
	return nil
}

// LatestFixes bulk-reads the current fix for each responder. Responders
// without a known fix are simply absent from the result.
func (s *LocationStore) LatestFixes(ctx context.Context, partition string, responderIDs []uuid.UUID) (map[uuid.UUID]*models.ResponderLocationFix, error) {
	if len(responderIDs) == 0 {
		return map[uuid.UUID]*models.ResponderLocationFix{}, nil
	}

	keys := make([]string, len(responderIDs))
	for i, id := range responderIDs {
		keys[i] = fixKey(partition, id)
	}

	vals, err := s.redisClient.MGet(ctx, keys...).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to read location fixes: %w", err)
	}

	fixes := make(map[uuid.UUID]*models.ResponderLocationFix, len(responderIDs))
	for i, val := range vals {
		raw, ok := val.(string)
		if !ok {
			continue
		}
		fix := &models.ResponderLocationFix{}
		if err := json.Unmarshal([]byte(raw), fix); err != nil {
			return nil, fmt.Errorf("failed to unmarshal location fix: %w", err)
		}
		fixes[responderIDs[i]] = fix
	}
	return fixes, nil
}
