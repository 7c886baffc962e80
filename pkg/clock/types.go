// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package clock

import (
	"errors"
	"time"

	"github.com/punchpoint/timeclock-service/internal/types"
)

// ActionKind is the closed set of decisions the state machine can produce.
type ActionKind string

const (
	ActionClockIn         ActionKind = "clock_in"
	ActionClockOut        ActionKind = "clock_out"
	ActionAlreadyComplete ActionKind = "already_complete"
)

// TerminalStatus is the closed set of outcomes an executed action can reach.
type TerminalStatus string

const (
	StatusClockedIn       TerminalStatus = "clocked_in"
	StatusClockedOut      TerminalStatus = "clocked_out"
	StatusAlreadyComplete TerminalStatus = "already_complete"
)

// PendingAction is a resolved-but-not-yet-committed decision. It is carried
// between workflow steps inside a single-use token and consumed exactly once
// by the executor.
type PendingAction struct {
	TenantID   string     `json:"tenant_id"`
	WorkerID   string     `json:"worker_id"`
	WorkerName string     `json:"worker_name"`
	Kind       ActionKind `json:"kind"`
	DateLabel  string     `json:"date_label"`
	// EntryID references the open ledger entry a clock-out will close.
	EntryID   string    `json:"entry_id,omitempty"`
	DecidedAt time.Time `json:"decided_at"`
}

// Result is the terminal outcome of executing a pending action.
type Result struct {
	Status TerminalStatus     `json:"status"`
	Entry  *types.LedgerEntry `json:"-"`
}

// ErrLedgerConflict reports that the ledger moved between decision and
// execution, e.g. the referenced open entry was closed by a racing request.
// Callers re-run the decision instead of surfacing this to the worker.
var ErrLedgerConflict = errors.New("ledger state changed since decision")
