// Package rediscache implements the word cache, the negative
// failed-lookup cache, and the per-word in-flight enrichment lock on
// Redis. Methods return redis errors as-is; callers decide whether to
// degrade to a miss or fail the request.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/grimoire-app/grimoire-backend/internal/config"
	"github.com/grimoire-app/grimoire-backend/internal/domain"
)

const (
	wordKeyPrefix   = "grimoire:word:"
	failedKeyPrefix = "grimoire:failed:"
	lockKeyPrefix   = "grimoire:lock:"
)

// NewClient creates a Redis client configured from RedisConfig and pings
// it for fail-fast validation.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

// cachedWord is the JSON payload stored under a word key. Completeness
// rides along so cache hits skip recomputation.
type cachedWord struct {
	Record       *domain.WordRecord      `json:"record"`
	Completeness domain.DataCompleteness `json:"completeness"`
}

// Cache stores enriched word records with a frequency-aware TTL policy:
// words ranked at or above the common cutoff never expire, the rest
// expire after rareTTL. Failed lookups are negative-cached for failedTTL.
type Cache struct {
	client *redis.Client

	commonRankCutoff int
	rareTTL          time.Duration
	failedTTL        time.Duration
}

// New creates a Cache with the given TTL policy.
func New(client *redis.Client, commonRankCutoff int, rareTTL, failedTTL time.Duration) *Cache {
	return &Cache{
		client:           client,
		commonRankCutoff: commonRankCutoff,
		rareTTL:          rareTTL,
		failedTTL:        failedTTL,
	}
}

// GetWord returns the cached record for a word, or domain.ErrNotFound on
// a cache miss. A payload that no longer decodes is treated as a miss.
func (c *Cache) GetWord(ctx context.Context, word string) (*domain.WordRecord, domain.DataCompleteness, error) {
	raw, err := c.client.Get(ctx, wordKeyPrefix+word).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.DataCompleteness{}, fmt.Errorf("cached word %s: %w", word, domain.ErrNotFound)
	}
	if err != nil {
		return nil, domain.DataCompleteness{}, fmt.Errorf("get cached word %s: %w", word, err)
	}

	var payload cachedWord
	if err := json.Unmarshal(raw, &payload); err != nil || payload.Record == nil {
		return nil, domain.DataCompleteness{}, fmt.Errorf("cached word %s: %w", word, domain.ErrNotFound)
	}

	return payload.Record, payload.Completeness, nil
}

// SetWord caches a record under its text with the frequency-aware TTL.
func (c *Cache) SetWord(ctx context.Context, record *domain.WordRecord, completeness domain.DataCompleteness) error {
	raw, err := json.Marshal(cachedWord{Record: record, Completeness: completeness})
	if err != nil {
		return fmt.Errorf("encode cached word %s: %w", record.Text, err)
	}

	if err := c.client.Set(ctx, wordKeyPrefix+record.Text, raw, c.ttlFor(record)).Err(); err != nil {
		return fmt.Errorf("set cached word %s: %w", record.Text, err)
	}
	return nil
}

// ttlFor picks the expiry for a record. Zero means no expiry.
func (c *Cache) ttlFor(record *domain.WordRecord) time.Duration {
	if record.Learning != nil && record.Learning.FrequencyRank != nil && *record.Learning.FrequencyRank <= c.commonRankCutoff {
		return 0
	}
	return c.rareTTL
}

// SetFailed records a failed lookup so repeated requests for a
// non-existent word skip the sources for a while.
func (c *Cache) SetFailed(ctx context.Context, word string) error {
	if err := c.client.Set(ctx, failedKeyPrefix+word, "1", c.failedTTL).Err(); err != nil {
		return fmt.Errorf("set failed lookup %s: %w", word, err)
	}
	return nil
}

// IsFailed reports whether a failed lookup for the word is still cached.
func (c *Cache) IsFailed(ctx context.Context, word string) (bool, error) {
	n, err := c.client.Exists(ctx, failedKeyPrefix+word).Result()
	if err != nil {
		return false, fmt.Errorf("check failed lookup %s: %w", word, err)
	}
	return n > 0, nil
}

// TryLock attempts to take the per-word enrichment lock. Returns false
// when another process already holds it.
func (c *Cache) TryLock(ctx context.Context, word string, ttl time.Duration) (bool, error) {
	ok, err := c.client.SetNX(ctx, lockKeyPrefix+word, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquire lock %s: %w", word, err)
	}
	return ok, nil
}

// Unlock releases the per-word enrichment lock.
func (c *Cache) Unlock(ctx context.Context, word string) error {
	if err := c.client.Del(ctx, lockKeyPrefix+word).Err(); err != nil {
		return fmt.Errorf("release lock %s: %w", word, err)
	}
	return nil
}
