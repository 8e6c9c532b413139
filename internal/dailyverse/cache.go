package dailyverse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// SelectionCache is the per-date idempotency store. Get reports
// ErrNotYetGenerated when no selection exists for the date.
type SelectionCache interface {
	Get(ctx context.Context, date string) (*DailySelection, error)
	Put(ctx context.Context, date string, sel *DailySelection) error
}

type redisCache struct {
	client *redis.Client
	prefix string
}

func NewSelectionCache(client *redis.Client, prefix string) SelectionCache {
	return &redisCache{client: client, prefix: prefix}
}

func (c *redisCache) key(date string) string {
	return c.prefix + ":" + date
}

func (c *redisCache) Get(ctx context.Context, date string) (*DailySelection, error) {
	val, err := c.client.Get(ctx, c.key(date)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotYetGenerated
		}
		return nil, fmt.Errorf("reading daily selection: %w", err)
	}
	return decodeSelection(val)
}

// Put writes unconditionally; if two generators race on the same date the
// last writer wins. SET NX on this key is the conditional-write upgrade if
// that race ever needs closing.
func (c *redisCache) Put(ctx context.Context, date string, sel *DailySelection) error {
	data, err := json.Marshal(sel)
	if err != nil {
		return fmt.Errorf("encoding daily selection: %w", err)
	}
	if err := c.client.Set(ctx, c.key(date), data, 0).Err(); err != nil {
		return fmt.Errorf("storing daily selection: %w", err)
	}
	return nil
}
