// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/punchpoint/timeclock-service/internal/types"
)

// LedgerFilter narrows admin ledger listings. Zero values mean "no filter".
type LedgerFilter struct {
	WorkerID  string
	DateLabel string
	SortBy    string
	SortDesc  bool
	Page      int64
	PageSize  int64
}

// LedgerRow is a ledger entry joined with the owning worker's display name,
// for admin views.
type LedgerRow struct {
	types.LedgerEntry
	WorkerName string `db:"worker_name"`
}

type StorageInterface interface {
	CreateTenant(ctx context.Context, name string, plan types.Plan) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantByJoinToken(ctx context.Context, joinToken string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, id, name string, plan types.Plan) error
	RotateJoinToken(ctx context.Context, id string) (string, error)
	DeleteTenant(ctx context.Context, id string) error

	CreateWorker(ctx context.Context, w *types.Worker) (*types.Worker, error)
	GetWorkerByID(ctx context.Context, tenantID, id string) (*types.Worker, error)
	GetWorkerByDeviceToken(ctx context.Context, tenantID, deviceToken string) (*types.Worker, error)
	GetWorkerByName(ctx context.Context, tenantID, name string) (*types.Worker, error)
	ListWorkers(ctx context.Context, tenantID string) ([]*types.Worker, error)
	CountWorkers(ctx context.Context, tenantID string) (int64, error)
	CountManagers(ctx context.Context, tenantID string) (int64, error)
	BindDeviceToken(ctx context.Context, workerID, deviceToken string) (bool, error)
	ClearDeviceToken(ctx context.Context, tenantID, workerID string) error
	SetFloating(ctx context.Context, tenantID, workerID string, floating bool) error
	SetWorkerRole(ctx context.Context, tenantID, workerID string, role types.Role) error
	SetWorkerCredential(ctx context.Context, tenantID, workerID, email, passwordHash string) error
	DeleteWorker(ctx context.Context, tenantID, workerID string) error

	AppendEntry(ctx context.Context, e *types.LedgerEntry) (*types.LedgerEntry, error)
	FindOpenEntry(ctx context.Context, workerID, dateLabel string) (*types.LedgerEntry, error)
	FindLatestEntry(ctx context.Context, workerID, dateLabel string) (*types.LedgerEntry, error)
	GetEntryByID(ctx context.Context, tenantID, id string) (*types.LedgerEntry, error)
	CloseEntry(ctx context.Context, entryID string, clockOut time.Time) (bool, error)
	ListEntries(ctx context.Context, tenantID string, f LedgerFilter) ([]*LedgerRow, error)
	ListOpenEntries(ctx context.Context, tenantID, dateLabel string) ([]*LedgerRow, error)
	DeleteEntry(ctx context.Context, tenantID, entryID string) error

	ListSettings(ctx context.Context, tenantID string) ([]*types.Setting, error)
	UpsertSetting(ctx context.Context, tenantID, name, value string) error

	AddAuditEvent(ctx context.Context, e *types.AuditEvent) error
	ListAuditEvents(ctx context.Context, tenantID string) ([]*types.AuditEvent, error)
}
