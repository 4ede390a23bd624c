package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-payment-intake/internal/logger"
	"github.com/sbilibin2017/gw-payment-intake/internal/models"
)

// ErrCacheMiss is returned when no summary is cached for a filter.
var ErrCacheMiss = errors.New("summary not found in cache")

// SummaryCacheRepository caches report summaries in Redis
type SummaryCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached summaries
}

// NewSummaryCacheRepository creates a new repository instance with the given TTL
func NewSummaryCacheRepository(client *redis.Client, expiration time.Duration) *SummaryCacheRepository {
	return &SummaryCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached summary for filter.
func (r *SummaryCacheRepository) Get(ctx context.Context, filter models.TransactionFilter) (*models.Summary, error) {
	key := summaryKey(filter)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var summary models.Summary
	if err := json.Unmarshal(val, &summary); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", string(val),
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", "hit",
		"error", nil,
	)

	return &summary, nil
}

// Set caches summary for filter with the repository TTL.
func (r *SummaryCacheRepository) Set(ctx context.Context, filter models.TransactionFilter, summary *models.Summary) error {
	key := summaryKey(filter)

	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// Invalidate drops every cached summary.
func (r *SummaryCacheRepository) Invalidate(ctx context.Context) error {
	var keys []string
	iter := r.client.Scan(ctx, 0, summaryKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}

	err := r.client.Del(ctx, keys...).Err()

	logger.Log.Infow(
		"keys", len(keys),
		"result", "invalidated",
		"error", err,
	)

	return err
}

const summaryKeyPrefix = "report_summary:"

func summaryKey(f models.TransactionFilter) string {
	return fmt.Sprintf(summaryKeyPrefix+"%s:%s:%s:%s:%s",
		f.UserLogin, f.Method, f.Status, formatBound(f.From), formatBound(f.To))
}

func formatBound(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
