// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"time"
)

// Cache is a small TTL key-value store. GetDel is the primitive single-use
// tokens depend on: it must return a value to at most one caller.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	GetDel(ctx context.Context, key string) ([]byte, bool)
	Delete(ctx context.Context, key string)
}
