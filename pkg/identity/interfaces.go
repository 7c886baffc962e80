// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"

	"github.com/punchpoint/timeclock-service/internal/types"
)

type ResolverInterface interface {
	Resolve(ctx context.Context, tenantID, submittedName, deviceToken string) (*Outcome, error)
	ConfirmWorker(ctx context.Context, tenantID, workerID string) (*types.Worker, error)
	Register(ctx context.Context, tenantID, name, deviceToken string) (*types.Worker, error)
}

type StorageInterface interface {
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetWorkerByID(ctx context.Context, tenantID, id string) (*types.Worker, error)
	GetWorkerByDeviceToken(ctx context.Context, tenantID, deviceToken string) (*types.Worker, error)
	GetWorkerByName(ctx context.Context, tenantID, name string) (*types.Worker, error)
	CountWorkers(ctx context.Context, tenantID string) (int64, error)
	CreateWorker(ctx context.Context, w *types.Worker) (*types.Worker, error)
	BindDeviceToken(ctx context.Context, workerID, deviceToken string) (bool, error)
}
