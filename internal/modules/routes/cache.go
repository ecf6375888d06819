// README: Redis distance cache keyed by route pair.
package routes

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCacheTTL = 24 * time.Hour

type cachedRoute struct {
	DistanceKM float64 `json:"distance_km"`
	TimeHours  float64 `json:"time_hours"`
}

type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCache(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb, ttl: defaultCacheTTL}
}

func cacheKey(origin, destination string) string {
	return fmt.Sprintf("route:%s:%s", origin, destination)
}

// Get returns the cached distance and duration for a pair, reporting whether
// a usable entry existed. Redis errors degrade to a miss.
func (c *Cache) Get(ctx context.Context, origin, destination string) (float64, float64, bool) {
	raw, err := c.rdb.Get(ctx, cacheKey(origin, destination)).Bytes()
	if err != nil {
		return 0, 0, false
	}
	var entry cachedRoute
	if err := json.Unmarshal(raw, &entry); err != nil || entry.DistanceKM <= 0 {
		return 0, 0, false
	}
	return entry.DistanceKM, entry.TimeHours, true
}

func (c *Cache) Set(ctx context.Context, origin, destination string, distanceKM, timeHours float64) {
	raw, err := json.Marshal(cachedRoute{DistanceKM: distanceKM, TimeHours: timeHours})
	if err != nil {
		return
	}
	c.rdb.Set(ctx, cacheKey(origin, destination), raw, c.ttl)
}
