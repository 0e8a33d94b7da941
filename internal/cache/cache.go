package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Uoerim/UniSphere-sub001/internal/logger"
	"github.com/Uoerim/UniSphere-sub001/internal/metrics"
)

const (
	RoomsActiveKey = "catalog:rooms:active"

	defaultTTL = 5 * time.Minute
)

// TimeslotDayKey returns the cache key for one weekday's timeslot list.
func TimeslotDayKey(dayOfWeek int) string {
	return fmt.Sprintf("catalog:timeslots:day:%d", dayOfWeek)
}

// Cache is a small JSON cache for the room and timeslot catalogs. A nil
// *Cache is valid and behaves as a permanent miss, so callers need no
// branching when Redis is not configured.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(addr string) *Cache {
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	return &Cache{rdb: rdb, ttl: defaultTTL}
}

// NewWithClient wraps an existing client. Used by tests with redismock.
func NewWithClient(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb, ttl: defaultTTL}
}

func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil {
		return false
	}

	payload, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Debugf("cache get %s: %v", key, err)
		}
		metrics.RecordCatalogCache("miss")
		return false
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		logger.Debugf("cache decode %s: %v", key, err)
		metrics.RecordCatalogCache("miss")
		return false
	}

	metrics.RecordCatalogCache("hit")
	return true
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		logger.Debugf("cache encode %s: %v", key, err)
		return
	}

	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		logger.Debugf("cache set %s: %v", key, err)
	}
}

// InvalidateCatalog drops every catalog key. Called on any room or
// timeslot write so stale lists never outlive a catalog change.
func (c *Cache) InvalidateCatalog(ctx context.Context) {
	if c == nil {
		return
	}

	keys := make([]string, 0, 8)
	keys = append(keys, RoomsActiveKey)
	for day := 0; day < 7; day++ {
		keys = append(keys, TimeslotDayKey(day))
	}

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		logger.Debugf("cache invalidate: %v", err)
	}
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
