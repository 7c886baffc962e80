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

// Decider computes the pending action for a worker from the ledger's current
// state for the tenant-local calendar date.
type Decider struct {
	ledger LedgerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewDecider(
	ledger LedgerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Decider {
	return &Decider{
		ledger:  ledger,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Decide evaluates, in order: a closed entry for today means the shift is
// already complete, an open entry means clock-out, no entry means clock-in.
// A worker cannot start a second shift on a day with a completed one.
func (d *Decider) Decide(ctx context.Context, worker *types.Worker, nowLocal time.Time) (*PendingAction, error) {
	ctx, span := d.tracer.Start(ctx, "clock.Decider.Decide")
	defer span.End()

	label := DateLabel(nowLocal)

	action := &PendingAction{
		TenantID:   worker.TenantID,
		WorkerID:   worker.ID,
		WorkerName: worker.Name,
		DateLabel:  label,
		DecidedAt:  nowLocal,
	}

	latest, err := d.ledger.FindLatestEntry(ctx, worker.ID, label)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			action.Kind = ActionClockIn
			return action, nil
		}
		return nil, fmt.Errorf("failed to read ledger for %s: %w", worker.ID, err)
	}

	if latest.ClockOut != nil {
		action.Kind = ActionAlreadyComplete
		return action, nil
	}

	action.Kind = ActionClockOut
	action.EntryID = latest.ID
	return action, nil
}
