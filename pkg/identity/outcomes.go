// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"errors"

	"github.com/punchpoint/timeclock-service/internal/types"
)

// OutcomeKind is the closed set of identity resolution results.
type OutcomeKind string

const (
	// KindReturningBoundWorker: the device token is bound to a worker whose
	// name matches the submission; proceed directly.
	KindReturningBoundWorker OutcomeKind = "returning_bound_worker"
	// KindNameMismatchConflict: the device token is bound to a worker whose
	// name differs from the submission. Requires explicit confirmation; never
	// auto-resolved.
	KindNameMismatchConflict OutcomeKind = "name_mismatch_conflict"
	// KindDeviceAlreadyClaimed: the submitted name belongs to a worker bound
	// to a different device. Only a manager clearing the binding recovers this.
	KindDeviceAlreadyClaimed OutcomeKind = "device_already_claimed"
	// KindNewWorkerRegistration: no worker by that name exists yet. Requires
	// explicit confirmation before creation.
	KindNewWorkerRegistration OutcomeKind = "new_worker_registration"
	// KindBindAndProceed: an existing unbound (or matching-token) worker was
	// found and the device token has been bound.
	KindBindAndProceed OutcomeKind = "bind_and_proceed"
)

// Outcome is the result of resolving an identity signal. Worker is set for
// every kind except NewWorkerRegistration and DeviceAlreadyClaimed.
type Outcome struct {
	Kind OutcomeKind
	// Worker is the resolved worker, or on NameMismatchConflict the worker
	// the device is actually bound to.
	Worker *types.Worker
	// AttemptedName is the name as submitted, for conflict and registration
	// prompts.
	AttemptedName string
}

var (
	// ErrDeviceClaimed reports a binding conflict that requires manager
	// intervention.
	ErrDeviceClaimed = errors.New("name is registered to a different device")
	// ErrSeatLimitExceeded reports that the tenant's plan does not allow
	// another worker.
	ErrSeatLimitExceeded = errors.New("tenant seat limit reached")
	// ErrEmptyName rejects blank submissions before any lookup.
	ErrEmptyName = errors.New("submitted name is empty")
)
