// Package statcache keeps batch summaries and service-wide counters in
// Redis so summary and stats endpoints do not rescan Postgres on every
// call.
package statcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"meridianbank.com/fraudshield/internal/core/domain"
)

const (
	summaryTTL = 24 * time.Hour

	keyNormalCount     = "stats:normal"
	keySuspiciousCount = "stats:suspicious"
	keyLastDetection   = "stats:last_detection"
)

type Cache struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

func summaryKey(batchID uuid.UUID) string {
	return fmt.Sprintf("batch:%s:summary", batchID)
}

// GetSummary returns the cached summary for the batch, or (nil, nil) on
// a miss.
func (c *Cache) GetSummary(ctx context.Context, batchID uuid.UUID) (*domain.Summary, error) {
	data, err := c.rdb.Get(ctx, summaryKey(batchID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get summary: %w", err)
	}

	var summary domain.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("decode cached summary: %w", err)
	}
	return &summary, nil
}

func (c *Cache) SetSummary(ctx context.Context, summary *domain.Summary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	if err := c.rdb.Set(ctx, summaryKey(summary.BatchID), data, summaryTTL).Err(); err != nil {
		return fmt.Errorf("redis set summary: %w", err)
	}
	return nil
}

// AddCounts moves the service-wide label counters by the given deltas
// and refreshes the last detection timestamp.
func (c *Cache) AddCounts(ctx context.Context, normalDelta, suspiciousDelta int64) error {
	pipe := c.rdb.Pipeline()
	pipe.IncrBy(ctx, keyNormalCount, normalDelta)
	pipe.IncrBy(ctx, keySuspiciousCount, suspiciousDelta)
	pipe.Set(ctx, keyLastDetection, time.Now().UTC().Format(time.RFC3339Nano), 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis update counters: %w", err)
	}
	return nil
}

// GetStats reads the counters back. A completely cold cache yields
// zero-valued stats; the caller decides whether to fall back to
// storage.
func (c *Cache) GetStats(ctx context.Context) (*domain.Stats, error) {
	pipe := c.rdb.Pipeline()
	normalCmd := pipe.Get(ctx, keyNormalCount)
	suspiciousCmd := pipe.Get(ctx, keySuspiciousCount)
	lastCmd := pipe.Get(ctx, keyLastDetection)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("redis read counters: %w", err)
	}

	stats := &domain.Stats{}
	stats.NormalTransactions, _ = normalCmd.Int64()
	stats.SuspiciousTransactions, _ = suspiciousCmd.Int64()
	stats.TotalTransactions = stats.NormalTransactions + stats.SuspiciousTransactions
	if stats.TotalTransactions > 0 {
		stats.FraudRate = float64(stats.SuspiciousTransactions) / float64(stats.TotalTransactions)
	}

	if raw, err := lastCmd.Result(); err == nil {
		if ts, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			stats.LastDetectionAt = &ts
		}
	}

	return stats, nil
}
