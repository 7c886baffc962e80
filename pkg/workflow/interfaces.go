// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workflow

import (
	"context"
	"time"

	"github.com/punchpoint/timeclock-service/internal/types"
	"github.com/punchpoint/timeclock-service/pkg/clock"
	"github.com/punchpoint/timeclock-service/pkg/identity"
)

type ServiceInterface interface {
	ResolveJoinToken(ctx context.Context, joinToken string) (*types.Tenant, error)
	Scan(ctx context.Context, req *ScanRequest) (*StepResponse, error)
	ConfirmIdentity(ctx context.Context, req *ConfirmIdentityRequest) (*StepResponse, error)
	ConfirmRegistration(ctx context.Context, req *ConfirmRegistrationRequest) (*StepResponse, error)
	Execute(ctx context.Context, token string) (*ExecuteResult, error)
	QuickClockOut(ctx context.Context, tenantID, deviceToken string) (*ExecuteResult, error)
}

type DeciderInterface interface {
	Decide(ctx context.Context, worker *types.Worker, nowLocal time.Time) (*clock.PendingAction, error)
}

type ExecutorInterface interface {
	Execute(ctx context.Context, action *clock.PendingAction, nowLocal time.Time) (*clock.Result, error)
}

type ResolverInterface interface {
	Resolve(ctx context.Context, tenantID, submittedName, deviceToken string) (*identity.Outcome, error)
	ConfirmWorker(ctx context.Context, tenantID, workerID string) (*types.Worker, error)
	Register(ctx context.Context, tenantID, name, deviceToken string) (*types.Worker, error)
}

type SettingsInterface interface {
	GetSettings(ctx context.Context, tenantID string) (map[string]string, error)
}

type StorageInterface interface {
	GetTenantByJoinToken(ctx context.Context, joinToken string) (*types.Tenant, error)
	GetWorkerByID(ctx context.Context, tenantID, id string) (*types.Worker, error)
	GetWorkerByDeviceToken(ctx context.Context, tenantID, deviceToken string) (*types.Worker, error)
	FindOpenEntry(ctx context.Context, workerID, dateLabel string) (*types.LedgerEntry, error)
}
