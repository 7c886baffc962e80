// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package clock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/punchpoint/timeclock-service/internal/logging"
	"github.com/punchpoint/timeclock-service/internal/monitoring"
	"github.com/punchpoint/timeclock-service/internal/storage"
	"github.com/punchpoint/timeclock-service/internal/tracing"
	"github.com/punchpoint/timeclock-service/internal/types"
)

// Executor commits a pending action to the ledger. All ledger writes go
// through compare-and-swap shaped statements so a replayed or racing action
// cannot double-write; conflicts surface as ErrLedgerConflict for the caller
// to re-decide.
type Executor struct {
	ledger LedgerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewExecutor(
	ledger LedgerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Executor {
	return &Executor{
		ledger:  ledger,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (e *Executor) Execute(ctx context.Context, action *PendingAction, nowLocal time.Time) (*Result, error) {
	ctx, span := e.tracer.Start(ctx, "clock.Executor.Execute")
	defer span.End()

	switch action.Kind {
	case ActionClockIn:
		return e.clockIn(ctx, action, nowLocal)
	case ActionClockOut:
		return e.clockOut(ctx, action, nowLocal)
	case ActionAlreadyComplete:
		return &Result{Status: StatusAlreadyComplete}, nil
	default:
		return nil, fmt.Errorf("unknown action kind %q", action.Kind)
	}
}

func (e *Executor) clockIn(ctx context.Context, action *PendingAction, nowLocal time.Time) (*Result, error) {
	entry, err := e.ledger.AppendEntry(ctx, &types.LedgerEntry{
		TenantID:  action.TenantID,
		WorkerID:  action.WorkerID,
		DateLabel: action.DateLabel,
		ClockIn:   nowLocal,
	})
	if err != nil {
		// The partial unique index rejects a second open entry for the day;
		// a concurrent clock-in already landed.
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrLedgerConflict
		}
		return nil, fmt.Errorf("failed to append ledger entry: %w", err)
	}

	return &Result{Status: StatusClockedIn, Entry: entry}, nil
}

func (e *Executor) clockOut(ctx context.Context, action *PendingAction, nowLocal time.Time) (*Result, error) {
	if action.EntryID == "" {
		return nil, ErrLedgerConflict
	}

	closed, err := e.ledger.CloseEntry(ctx, action.EntryID, nowLocal)
	if err != nil {
		return nil, fmt.Errorf("failed to close ledger entry: %w", err)
	}
	if !closed {
		return nil, ErrLedgerConflict
	}

	return &Result{Status: StatusClockedOut}, nil
}
