package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/lshigami/skillgate/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const keyPrefix = "skillgate:pool"

// PoolCache stores raw generated question pools per skill so repeated
// assessments for the same skill do not regenerate them. A PoolCache without
// a redis client is a valid no-op cache.
type PoolCache struct {
	client *redis.Client
	ttl    time.Duration

	warnedUnavailable atomic.Bool
}

func NewPoolCache(cfg *config.Config) *PoolCache {
	ttl := cfg.Redis.PoolCacheTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	addr := strings.TrimSpace(cfg.Redis.Addr)
	if addr == "" {
		log.Info().Msg("REDIS_ADDR is not set. Question pool cache disabled.")
		return &PoolCache{ttl: ttl}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", addr).Msg("Redis unavailable, bypassing question pool cache")
		_ = client.Close()
		return &PoolCache{ttl: ttl}
	}

	log.Info().Str("addr", addr).Dur("ttl", ttl).Msg("Question pool cache enabled")
	return &PoolCache{client: client, ttl: ttl}
}

func (c *PoolCache) enabled() bool {
	return c != nil && c.client != nil
}

func poolKey(skill string, count int) string {
	return fmt.Sprintf("%s:%s:%d", keyPrefix, strings.ToLower(strings.TrimSpace(skill)), count)
}

// Get returns the cached pool for skill, or false on a miss or any failure.
func (c *PoolCache) Get(ctx context.Context, skill string, count int) ([]string, bool) {
	if !c.enabled() {
		return nil, false
	}
	b, err := c.client.Get(ctx, poolKey(skill, count)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.warnOnce(err)
		}
		return nil, false
	}
	var pool []string
	if err := json.Unmarshal(b, &pool); err != nil || len(pool) == 0 {
		return nil, false
	}
	return pool, true
}

// Set stores a pool. Failures are logged and otherwise ignored.
func (c *PoolCache) Set(ctx context.Context, skill string, count int, pool []string) {
	if !c.enabled() || len(pool) == 0 {
		return
	}
	b, err := json.Marshal(pool)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, poolKey(skill, count), b, c.ttl).Err(); err != nil {
		c.warnOnce(err)
	}
}

func (c *PoolCache) Close() error {
	if !c.enabled() {
		return nil
	}
	return c.client.Close()
}

func (c *PoolCache) warnOnce(err error) {
	if c.warnedUnavailable.CompareAndSwap(false, true) {
		log.Warn().Err(err).Msg("Redis unavailable, bypassing question pool cache")
	}
}
