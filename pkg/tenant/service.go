// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package tenant implements the admin surface: tenant lifecycle, roster
// management, ledger corrections and the audit trail behind them.
package tenant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/punchpoint/timeclock-service/internal/logging"
	"github.com/punchpoint/timeclock-service/internal/monitoring"
	"github.com/punchpoint/timeclock-service/internal/storage"
	"github.com/punchpoint/timeclock-service/internal/tracing"
	"github.com/punchpoint/timeclock-service/internal/types"
	"github.com/punchpoint/timeclock-service/pkg/clock"
)

var (
	// ErrManagerLimit reports that the Free plan allows a single manager.
	ErrManagerLimit = errors.New("plan allows only one manager")
	// ErrCredentialRequired reports a promotion attempt on a worker with no
	// login account. Managers must be able to sign in.
	ErrCredentialRequired = errors.New("worker needs a login account before becoming a manager")
	// ErrLastManager guards against demoting or deleting the only manager.
	ErrLastManager = errors.New("tenant must keep at least one manager")
	// ErrEntryClosed reports a force clock-out on an already closed entry.
	ErrEntryClosed = errors.New("ledger entry is already closed")
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage  StorageInterface
	settings SettingsInterface

	defaultTimezone string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	settings SettingsInterface,
	defaultTimezone string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:         storage,
		settings:        settings,
		defaultTimezone: defaultTimezone,
		tracer:          tracer,
		monitor:         monitor,
		logger:          logger,
	}
}

func (s *Service) CreateTenant(ctx context.Context, name string, plan types.Plan) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.CreateTenant")
	defer span.End()

	if plan == "" {
		plan = types.PlanFree
	}

	return s.storage.CreateTenant(ctx, name, plan)
}

func (s *Service) GetTenant(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetTenant")
	defer span.End()

	return s.storage.GetTenantByID(ctx, id)
}

func (s *Service) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTenants")
	defer span.End()

	return s.storage.ListTenants(ctx)
}

func (s *Service) UpdateTenant(ctx context.Context, id, name string, plan types.Plan) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UpdateTenant")
	defer span.End()

	if err := s.storage.UpdateTenant(ctx, id, name, plan); err != nil {
		return nil, err
	}

	return s.storage.GetTenantByID(ctx, id)
}

// RotateJoinToken invalidates every kiosk URL printed so far.
func (s *Service) RotateJoinToken(ctx context.Context, id string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.RotateJoinToken")
	defer span.End()

	token, err := s.storage.RotateJoinToken(ctx, id)
	if err != nil {
		return "", err
	}

	s.audit(ctx, id, nil, "tenant.join_token_rotated", "kiosk join token rotated")
	return token, nil
}

func (s *Service) DeleteTenant(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.DeleteTenant")
	defer span.End()

	return s.storage.DeleteTenant(ctx, id)
}

func (s *Service) GetSettings(ctx context.Context, tenantID string) (map[string]string, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetSettings")
	defer span.End()

	return s.settings.GetSettings(ctx, tenantID)
}

func (s *Service) UpdateSettings(ctx context.Context, tenantID string, values map[string]string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UpdateSettings")
	defer span.End()

	if err := s.settings.UpdateSettings(ctx, tenantID, values); err != nil {
		return err
	}

	s.audit(ctx, tenantID, nil, "settings.updated", fmt.Sprintf("%d setting(s) changed", len(values)))
	return nil
}

func (s *Service) ListWorkers(ctx context.Context, tenantID string) ([]*types.Worker, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListWorkers")
	defer span.End()

	return s.storage.ListWorkers(ctx, tenantID)
}

// SetWorkerRole promotes or demotes a worker. Promotion requires a login
// account; the Free plan caps managers at one; the last manager cannot be
// demoted.
func (s *Service) SetWorkerRole(ctx context.Context, tenantID, workerID string, role types.Role) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.SetWorkerRole")
	defer span.End()

	worker, err := s.storage.GetWorkerByID(ctx, tenantID, workerID)
	if err != nil {
		return err
	}
	if worker.Role == role {
		return nil
	}

	switch role {
	case types.RoleManager:
		if worker.PasswordHash == nil {
			return ErrCredentialRequired
		}
		tenant, err := s.storage.GetTenantByID(ctx, tenantID)
		if err != nil {
			return err
		}
		if tenant.Plan == types.PlanFree {
			managers, err := s.storage.CountManagers(ctx, tenantID)
			if err != nil {
				return err
			}
			if managers >= 1 {
				return ErrManagerLimit
			}
		}
	case types.RoleMember:
		managers, err := s.storage.CountManagers(ctx, tenantID)
		if err != nil {
			return err
		}
		if managers <= 1 {
			return ErrLastManager
		}
	default:
		return fmt.Errorf("unknown role %q", role)
	}

	if err := s.storage.SetWorkerRole(ctx, tenantID, workerID, role); err != nil {
		return err
	}

	s.audit(ctx, tenantID, &workerID, "worker.role_changed", fmt.Sprintf("%s is now %s", worker.Name, role))
	return nil
}

func (s *Service) CreateWorkerAccount(ctx context.Context, tenantID, workerID, email, password string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.CreateWorkerAccount")
	defer span.End()

	worker, err := s.storage.GetWorkerByID(ctx, tenantID, workerID)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.storage.SetWorkerCredential(ctx, tenantID, workerID, email, string(hash)); err != nil {
		return err
	}

	s.audit(ctx, tenantID, &workerID, "worker.account_created", fmt.Sprintf("login account created for %s", worker.Name))
	return nil
}

// ClearDeviceToken is the manager escape hatch for a lost or replaced phone.
func (s *Service) ClearDeviceToken(ctx context.Context, tenantID, workerID string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ClearDeviceToken")
	defer span.End()

	worker, err := s.storage.GetWorkerByID(ctx, tenantID, workerID)
	if err != nil {
		return err
	}

	if err := s.storage.ClearDeviceToken(ctx, tenantID, workerID); err != nil {
		return err
	}

	s.logger.Security().DeviceTokenCleared(tenantID, worker.Name)
	s.audit(ctx, tenantID, &workerID, "worker.device_cleared", fmt.Sprintf("device binding cleared for %s", worker.Name))
	return nil
}

func (s *Service) SetFloating(ctx context.Context, tenantID, workerID string, floating bool) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.SetFloating")
	defer span.End()

	worker, err := s.storage.GetWorkerByID(ctx, tenantID, workerID)
	if err != nil {
		return err
	}

	if err := s.storage.SetFloating(ctx, tenantID, workerID, floating); err != nil {
		return err
	}

	s.audit(ctx, tenantID, &workerID, "worker.floating_set", fmt.Sprintf("%s floating=%t", worker.Name, floating))
	return nil
}

func (s *Service) DeleteWorker(ctx context.Context, tenantID, workerID string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.DeleteWorker")
	defer span.End()

	worker, err := s.storage.GetWorkerByID(ctx, tenantID, workerID)
	if err != nil {
		return err
	}

	if worker.Role == types.RoleManager {
		managers, err := s.storage.CountManagers(ctx, tenantID)
		if err != nil {
			return err
		}
		if managers <= 1 {
			return ErrLastManager
		}
	}

	if err := s.storage.DeleteWorker(ctx, tenantID, workerID); err != nil {
		return err
	}

	s.audit(ctx, tenantID, nil, "worker.deleted", fmt.Sprintf("%s removed from roster", worker.Name))
	return nil
}

func (s *Service) ListEntries(ctx context.Context, tenantID string, f storage.LedgerFilter) ([]*storage.LedgerRow, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListEntries")
	defer span.End()

	return s.storage.ListEntries(ctx, tenantID, f)
}

// ListCurrentlyIn reports open shifts for the tenant-local current date.
func (s *Service) ListCurrentlyIn(ctx context.Context, tenantID string) ([]*storage.LedgerRow, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListCurrentlyIn")
	defer span.End()

	now, err := s.tenantNow(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	return s.storage.ListOpenEntries(ctx, tenantID, clock.DateLabel(now))
}

// ForceClockOut closes a shift a worker forgot to end.
func (s *Service) ForceClockOut(ctx context.Context, tenantID, entryID string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ForceClockOut")
	defer span.End()

	entry, err := s.storage.GetEntryByID(ctx, tenantID, entryID)
	if err != nil {
		return err
	}
	if entry.ClockOut != nil {
		return ErrEntryClosed
	}

	now, err := s.tenantNow(ctx, tenantID)
	if err != nil {
		return err
	}

	closed, err := s.storage.CloseEntry(ctx, entryID, now)
	if err != nil {
		return err
	}
	if !closed {
		return ErrEntryClosed
	}

	s.audit(ctx, tenantID, &entry.WorkerID, "ledger.force_clock_out", fmt.Sprintf("entry %s closed by manager", entryID))
	return nil
}

func (s *Service) DeleteEntry(ctx context.Context, tenantID, entryID string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.DeleteEntry")
	defer span.End()

	entry, err := s.storage.GetEntryByID(ctx, tenantID, entryID)
	if err != nil {
		return err
	}

	if err := s.storage.DeleteEntry(ctx, tenantID, entryID); err != nil {
		return err
	}

	s.audit(ctx, tenantID, &entry.WorkerID, "ledger.entry_deleted", fmt.Sprintf("entry for %s deleted", entry.DateLabel))
	return nil
}

func (s *Service) ListAuditEvents(ctx context.Context, tenantID string) ([]*types.AuditEvent, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListAuditEvents")
	defer span.End()

	return s.storage.ListAuditEvents(ctx, tenantID)
}

func (s *Service) tenantNow(ctx context.Context, tenantID string) (time.Time, error) {
	tenantSettings, err := s.settings.GetSettings(ctx, tenantID)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to load tenant settings: %w", err)
	}

	return time.Now().In(clock.TenantLocation(tenantSettings, s.defaultTimezone)), nil
}

// audit records the event best effort; a failed audit write never fails the
// operation it describes.
func (s *Service) audit(ctx context.Context, tenantID string, workerID *string, eventType, details string) {
	err := s.storage.AddAuditEvent(ctx, &types.AuditEvent{
		TenantID:  tenantID,
		WorkerID:  workerID,
		EventType: eventType,
		Details:   details,
	})
	if err != nil {
		s.logger.Warnf("failed to record audit event %s: %v", eventType, err)
	}
}
