package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tipton-reservations/internal/logger"
	"tipton-reservations/internal/models"

	"github.com/go-redis/redis/v8"
)

// RedisListingCache keeps room-type availability listings in Redis with a
// short TTL so browse traffic does not hammer the bookings table. Misses and
// Redis failures both fall through to the database.
type RedisListingCache struct {
	Client *redis.Client
	TTL    time.Duration
	Logger *logger.Logger
}

func NewRedisListingCache(client *redis.Client, ttl time.Duration, log *logger.Logger) *RedisListingCache {
	return &RedisListingCache{Client: client, TTL: ttl, Logger: log}
}

func (c *RedisListingCache) GetListing(ctx context.Context, key string) ([]models.RoomTypeAvailability, bool) {
	val, err := c.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.Logger.Warn("CACHE", fmt.Sprintf("availability cache read failed for %s: %v", key, err))
		return nil, false
	}

	var listing []models.RoomTypeAvailability
	if err := json.Unmarshal([]byte(val), &listing); err != nil {
		c.Logger.Warn("CACHE", fmt.Sprintf("availability cache entry for %s is corrupt: %v", key, err))
		return nil, false
	}
	return listing, true
}

func (c *RedisListingCache) SetListing(ctx context.Context, key string, listing []models.RoomTypeAvailability) {
	data, err := json.Marshal(listing)
	if err != nil {
		c.Logger.Warn("CACHE", fmt.Sprintf("failed to marshal availability listing for %s: %v", key, err))
		return
	}
	if err := c.Client.Set(ctx, key, data, c.TTL).Err(); err != nil {
		c.Logger.Warn("CACHE", fmt.Sprintf("availability cache write failed for %s: %v", key, err))
	}
}
