// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package memory

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/punchpoint/timeclock-service/internal/cache"
)

var _ cache.Cache = (*Mem)(nil)

// Mem is an in-process cache. Suitable for single-instance deployments only;
// multi-instance deployments need the redis backend so single-use semantics
// hold across processes.
type Mem struct {
	mu sync.Mutex
	c  *gocache.Cache
}

func New(defaultTTL time.Duration) *Mem {
	return &Mem{c: gocache.New(defaultTTL, time.Minute)}
}

func (m *Mem) Get(_ context.Context, key string) ([]byte, bool) {
	v, ok := m.c.Get(key)
	if !ok {
		return nil, false
	}
	b, _ := v.([]byte)
	return b, true
}

func (m *Mem) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	m.c.Set(key, value, ttl)
}

// GetDel pops a key atomically. go-cache has no native get-and-delete, so the
// pair is guarded by a mutex.
func (m *Mem) GetDel(_ context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.c.Get(key)
	if !ok {
		return nil, false
	}
	m.c.Delete(key)

	b, _ := v.([]byte)
	return b, true
}

func (m *Mem) Delete(_ context.Context, key string) {
	m.c.Delete(key)
}
