// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/punchpoint/timeclock-service/internal/cache"
	"github.com/punchpoint/timeclock-service/pkg/clock"
)

var (
	// ErrTokenInvalid covers malformed, tampered and expired pending tokens.
	ErrTokenInvalid = errors.New("pending action token is invalid or expired")
	// ErrTokenUsed reports a token whose action already executed and whose
	// cached result has since expired.
	ErrTokenUsed = errors.New("pending action token was already used")
)

type pendingClaims struct {
	jwt.RegisteredClaims
	Action *clock.PendingAction `json:"action"`
}

// TokenCodec signs pending actions into compact tokens the kiosk carries
// between the decision step and the execute step. The token is the only thing
// the client holds; the server keeps no per-step session.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

// Issue signs the action and returns the token together with its jti, which
// keys the single-use bookkeeping.
func (c *TokenCodec) Issue(action *clock.PendingAction) (string, string, error) {
	now := time.Now()
	jti := uuid.NewString()

	claims := pendingClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		Action: action,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign pending action: %w", err)
	}

	return token, jti, nil
}

// Decode verifies the signature and expiry and returns the embedded action
// and jti.
func (c *TokenCodec) Decode(raw string) (*clock.PendingAction, string, error) {
	claims := new(pendingClaims)

	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid || claims.Action == nil || claims.ID == "" {
		return nil, "", ErrTokenInvalid
	}

	return claims.Action, claims.ID, nil
}

// TokenStore tracks which jtis are still live and remembers terminal results,
// so a retried execute answers with the original outcome instead of acting
// twice.
type TokenStore struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewTokenStore(c cache.Cache, ttl time.Duration) *TokenStore {
	return &TokenStore{
		cache: c,
		ttl:   ttl,
	}
}

func (s *TokenStore) Arm(ctx context.Context, jti string) {
	s.cache.Set(ctx, pendingKey(jti), []byte("1"), s.ttl)
}

// Consume pops the jti. At most one caller observes true.
func (s *TokenStore) Consume(ctx context.Context, jti string) bool {
	_, ok := s.cache.GetDel(ctx, pendingKey(jti))
	return ok
}

func (s *TokenStore) SaveResult(ctx context.Context, jti string, result *ExecuteResult) {
	b, err := json.Marshal(result)
	if err != nil {
		return
	}
	s.cache.Set(ctx, resultKey(jti), b, s.ttl)
}

func (s *TokenStore) CachedResult(ctx context.Context, jti string) (*ExecuteResult, bool) {
	b, ok := s.cache.Get(ctx, resultKey(jti))
	if !ok {
		return nil, false
	}

	result := new(ExecuteResult)
	if err := json.Unmarshal(b, result); err != nil {
		return nil, false
	}

	return result, true
}

func pendingKey(jti string) string {
	return "pending:" + jti
}

func resultKey(jti string) string {
	return "result:" + jti
}
