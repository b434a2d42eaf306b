// Package cache puts Redis in front of the chart of accounts lookup.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	portsrepo "github.com/SscSPs/tt99_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/tt99_ledger/internal/middleware"
	"github.com/redis/go-redis/v9"
)

const chartKeyPrefix = "tt99_ledger:chart:"

// ErrCacheMiss is returned by a Store when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// Store is the key/value subset of Redis the chart cache needs.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// redisStore adapts a go-redis client to Store.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	return v, err
}

func (s *redisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

// ChartCache answers Exists from the cache and falls back to the repository.
// Only hits are cached, so accounts seeded later become visible immediately.
// Cache failures degrade to a repository read.
type ChartCache struct {
	store Store
	next  portsrepo.ChartOfAccounts
	ttl   time.Duration
}

var _ portsrepo.LayeredChart = (*ChartCache)(nil)

// NewChartCache creates a read-through cache over next.
func NewChartCache(store Store, next portsrepo.ChartOfAccounts, ttl time.Duration) *ChartCache {
	return &ChartCache{store: store, next: next, ttl: ttl}
}

// Over returns a cache sharing this one's store and TTL that reads through to next.
func (c *ChartCache) Over(next portsrepo.ChartOfAccounts) portsrepo.ChartOfAccounts {
	return &ChartCache{store: c.store, next: next, ttl: c.ttl}
}

func (c *ChartCache) Exists(ctx context.Context, accountNumber string) (bool, error) {
	key := chartKeyPrefix + accountNumber
	logger := middleware.LoggerOrDefault(ctx)

	if _, err := c.store.Get(ctx, key); err == nil {
		return true, nil
	} else if !errors.Is(err, ErrCacheMiss) {
		logger.Warn("Chart cache read failed", slog.String("account_number", accountNumber), slog.String("error", err.Error()))
	}

	exists, err := c.next.Exists(ctx, accountNumber)
	if err != nil || !exists {
		return exists, err
	}
	if err := c.store.Set(ctx, key, "1", c.ttl); err != nil {
		logger.Warn("Chart cache write failed", slog.String("account_number", accountNumber), slog.String("error", err.Error()))
	}
	return true, nil
}

// NewRedisClient parses a redis:// URL and pings the server.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
