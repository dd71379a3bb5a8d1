package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/birdchime/appointment-api/internal/domain/appointment"
)

const (
	slotKeyPrefix = "slots:"
	slotTTL       = 60 * time.Second
)

// AvailabilityCache keeps recent slot-grid responses in redis. A nil
// *AvailabilityCache is a valid no-op cache, used when REDIS_URL is unset.
type AvailabilityCache struct {
	client *redis.Client
}

func NewAvailabilityCache(redisURL string) *AvailabilityCache {
	if redisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, availability cache disabled: %v", err)
		return nil
	}

	return &AvailabilityCache{client: redis.NewClient(opts)}
}

func key(rangeStart, rangeEnd time.Time) string {
	return slotKeyPrefix +
		rangeStart.UTC().Format(time.RFC3339) + "/" +
		rangeEnd.UTC().Format(time.RFC3339)
}

func (c *AvailabilityCache) Get(
	ctx context.Context,
	rangeStart time.Time,
	rangeEnd time.Time,
) ([]domain.TimeSlot, bool) {

	if c == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, key(rangeStart, rangeEnd)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []domain.TimeSlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *AvailabilityCache) Set(
	ctx context.Context,
	rangeStart time.Time,
	rangeEnd time.Time,
	slots []domain.TimeSlot,
) {

	if c == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key(rangeStart, rangeEnd), raw, slotTTL).Err(); err != nil {
		log.Printf("availability cache set failed: %v", err)
	}
}

// Flush drops every cached range. Called after any create or delete, since
// each write can change availability in an unknown set of ranges.
func (c *AvailabilityCache) Flush(ctx context.Context) {
	if c == nil {
		return
	}

	keys, err := c.client.Keys(ctx, slotKeyPrefix+"*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("availability cache flush failed: %v", err)
	}
}
