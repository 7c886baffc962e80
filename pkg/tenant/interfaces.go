// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"time"

	"github.com/punchpoint/timeclock-service/internal/storage"
	"github.com/punchpoint/timeclock-service/internal/types"
)

type ServiceInterface interface {
	CreateTenant(ctx context.Context, name string, plan types.Plan) (*types.Tenant, error)
	GetTenant(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, id, name string, plan types.Plan) (*types.Tenant, error)
	RotateJoinToken(ctx context.Context, id string) (string, error)
	DeleteTenant(ctx context.Context, id string) error

	GetSettings(ctx context.Context, tenantID string) (map[string]string, error)
	UpdateSettings(ctx context.Context, tenantID string, values map[string]string) error

	ListWorkers(ctx context.Context, tenantID string) ([]*types.Worker, error)
	SetWorkerRole(ctx context.Context, tenantID, workerID string, role types.Role) error
	CreateWorkerAccount(ctx context.Context, tenantID, workerID, email, password string) error
	ClearDeviceToken(ctx context.Context, tenantID, workerID string) error
	SetFloating(ctx context.Context, tenantID, workerID string, floating bool) error
	DeleteWorker(ctx context.Context, tenantID, workerID string) error

	ListEntries(ctx context.Context, tenantID string, f storage.LedgerFilter) ([]*storage.LedgerRow, error)
	ListCurrentlyIn(ctx context.Context, tenantID string) ([]*storage.LedgerRow, error)
	ForceClockOut(ctx context.Context, tenantID, entryID string) error
	DeleteEntry(ctx context.Context, tenantID, entryID string) error

	ListAuditEvents(ctx context.Context, tenantID string) ([]*types.AuditEvent, error)
}

type StorageInterface interface {
	CreateTenant(ctx context.Context, name string, plan types.Plan) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, id, name string, plan types.Plan) error
	RotateJoinToken(ctx context.Context, id string) (string, error)
	DeleteTenant(ctx context.Context, id string) error

	GetWorkerByID(ctx context.Context, tenantID, id string) (*types.Worker, error)
	ListWorkers(ctx context.Context, tenantID string) ([]*types.Worker, error)
	CountManagers(ctx context.Context, tenantID string) (int64, error)
	ClearDeviceToken(ctx context.Context, tenantID, workerID string) error
	SetFloating(ctx context.Context, tenantID, workerID string, floating bool) error
	SetWorkerRole(ctx context.Context, tenantID, workerID string, role types.Role) error
	SetWorkerCredential(ctx context.Context, tenantID, workerID, email, passwordHash string) error
	DeleteWorker(ctx context.Context, tenantID, workerID string) error

	GetEntryByID(ctx context.Context, tenantID, id string) (*types.LedgerEntry, error)
	CloseEntry(ctx context.Context, entryID string, clockOut time.Time) (bool, error)
	ListEntries(ctx context.Context, tenantID string, f storage.LedgerFilter) ([]*storage.LedgerRow, error)
	ListOpenEntries(ctx context.Context, tenantID, dateLabel string) ([]*storage.LedgerRow, error)
	DeleteEntry(ctx context.Context, tenantID, entryID string) error

	AddAuditEvent(ctx context.Context, e *types.AuditEvent) error
	ListAuditEvents(ctx context.Context, tenantID string) ([]*types.AuditEvent, error)
}

type SettingsInterface interface {
	GetSettings(ctx context.Context, tenantID string) (map[string]string, error)
	UpdateSettings(ctx context.Context, tenantID string, values map[string]string) error
}
