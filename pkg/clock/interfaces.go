// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package clock

import (
	"context"
	"time"

	"github.com/punchpoint/timeclock-service/internal/types"
)

// LedgerInterface is the append-only attendance store the state machine and
// executor operate on.
type LedgerInterface interface {
	FindOpenEntry(ctx context.Context, workerID, dateLabel string) (*types.LedgerEntry, error)
	FindLatestEntry(ctx context.Context, workerID, dateLabel string) (*types.LedgerEntry, error)
	AppendEntry(ctx context.Context, e *types.LedgerEntry) (*types.LedgerEntry, error)
	CloseEntry(ctx context.Context, entryID string, clockOut time.Time) (bool, error)
}
