// Package cache is an optional Redis-backed cache for search responses.
// Search results are a pure function of the static catalog and the
// request, so caching them is safe. A nil *Cache disables caching
// everywhere; callers degrade gracefully when Redis is unreachable.
package cache

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/skyfare/flight-booking-backend/internal/models"
)

const searchTTL = 60 * time.Second

// Cache wraps a Redis client for search-result caching
type Cache struct {
	client *redis.Client
}

// New connects to Redis at addr and returns a Cache, or nil if the server
// cannot be reached within a short timeout.
func New(addr string) *Cache {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}

	return &Cache{client: client}
}

// SearchKey builds a stable cache key from the search request
func SearchKey(p models.SearchParams) string {
	raw, _ := json.Marshal(p)
	sum := sha1.Sum(raw)
	return fmt.Sprintf("search:%x", sum)
}

// GetSearch returns the cached result set for key, if present
func (c *Cache) GetSearch(ctx context.Context, key string) ([]models.Flight, bool) {
	if c == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var flights []models.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, false
	}
	return flights, true
}

// SetSearch stores a result set under key with a short TTL
func (c *Cache) SetSearch(ctx context.Context, key string, flights []models.Flight) {
	if c == nil {
		return
	}

	data, err := json.Marshal(flights)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, data, searchTTL)
}
