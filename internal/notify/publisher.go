// Package notify fans events out to a tenant-scoped pub/sub channel that
// the presentation layer (dashboards, mobile apps) subscribes to.
package notify

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Event names published by the pipeline.
const (
	EventCriticalAlert   = "CRITICAL_ALERT"
	EventCrowdSurgeAlert = "CROWD_SURGE_ALERT"
	EventIncidentUpdated = "INCIDENT_UPDATED"
)

// Event is one named notification scoped to a single tenant partition.
type Event struct {
	Name       string         `json:"event"`
	Partition  string         `json:"-"`
	Payload    map[string]any `json:"payload"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// Publisher delivers events to the tenant's subscribers. Delivery is
// best-effort; callers must not let a failed publish fail the pipeline.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher publishes events over Redis pub/sub, one channel per
// tenant partition so subscribers never see another tenant's events.
type RedisPublisher struct {
	redisClient *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{redisClient: client}
}

// ChannelFor returns the pub/sub channel name for a tenant partition.
func ChannelFor(partition string) string {
	return fmt.Sprintf("alerts:events:%s", partition)
}

func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.redisClient.Publish(ctx, ChannelFor(event.Partition), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event to Redis: %w", err)
	}
	return nil
}
