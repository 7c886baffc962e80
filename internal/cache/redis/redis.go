// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package redis

import (
	"context"
	"time"

	rdb "github.com/redis/go-redis/v9"

	"github.com/punchpoint/timeclock-service/internal/cache"
)

var _ cache.Cache = (*Cache)(nil)

type Cache struct {
	c *rdb.Client
}

func New(addr string, db int) *Cache {
	return &Cache{c: rdb.NewClient(&rdb.Options{Addr: addr, DB: db})}
}

func (r *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := r.c.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (r *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	_ = r.c.Set(ctx, key, value, ttl).Err()
}

// GetDel relies on redis GETDEL, atomic across all service instances.
func (r *Cache) GetDel(ctx context.Context, key string) ([]byte, bool) {
	b, err := r.c.GetDel(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (r *Cache) Delete(ctx context.Context, key string) {
	_ = r.c.Del(ctx, key).Err()
}
