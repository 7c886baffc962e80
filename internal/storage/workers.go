// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/punchpoint/timeclock-service/internal/types"
)

var workerColumns = []string{
	"id", "tenant_id", "name", "email", "password_hash", "role", "device_token", "floating", "created_at",
}

func scanWorker(row sq.RowScanner) (*types.Worker, error) {
	var w types.Worker
	err := row.Scan(&w.ID, &w.TenantID, &w.Name, &w.Email, &w.PasswordHash, &w.Role, &w.DeviceToken, &w.Floating, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan worker: %w", err)
	}
	return &w, nil
}

func (s *Storage) CreateWorker(ctx context.Context, w *types.Worker) (*types.Worker, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateWorker")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate worker ID: %w", err)
	}

	role := w.Role
	if role == "" {
		role = types.RoleMember
	}

	created, err := scanWorker(s.db.Statement(ctx).
		Insert("workers").
		Columns("id", "tenant_id", "name", "role", "device_token", "floating").
		Values(id.String(), w.TenantID, w.Name, role, w.DeviceToken, w.Floating).
		Suffix("RETURNING " + joinColumns(workerColumns)).
		QueryRowContext(ctx))

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, WrapForeignKeyError(err, "worker references a deleted tenant")
		}
		return nil, WrapDuplicateKeyError(err, "worker already exists")
	}

	return created, nil
}

func (s *Storage) GetWorkerByID(ctx context.Context, tenantID, id string) (*types.Worker, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetWorkerByID")
	defer span.End()

	return s.getWorker(ctx, sq.Eq{"tenant_id": tenantID, "id": id})
}

func (s *Storage) GetWorkerByDeviceToken(ctx context.Context, tenantID, deviceToken string) (*types.Worker, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetWorkerByDeviceToken")
	defer span.End()

	return s.getWorker(ctx, sq.Eq{"tenant_id": tenantID, "device_token": deviceToken})
}

func (s *Storage) GetWorkerByName(ctx context.Context, tenantID, name string) (*types.Worker, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetWorkerByName")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(workerColumns...).
		From("workers").
		Where(sq.Eq{"tenant_id": tenantID}).
		Where("lower(name) = lower(?)", name).
		QueryRowContext(ctx)

	return scanWorker(row)
}

func (s *Storage) getWorker(ctx context.Context, pred sq.Eq) (*types.Worker, error) {
	row := s.db.Statement(ctx).
		Select(workerColumns...).
		From("workers").
		Where(pred).
		QueryRowContext(ctx)

	return scanWorker(row)
}

func (s *Storage) ListWorkers(ctx context.Context, tenantID string) ([]*types.Worker, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListWorkers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(workerColumns...).
		From("workers").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("role DESC", "name").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []*types.Worker
	for rows.Next() {
		var w types.Worker
		if err := rows.Scan(&w.ID, &w.TenantID, &w.Name, &w.Email, &w.PasswordHash, &w.Role, &w.DeviceToken, &w.Floating, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, &w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating worker rows: %w", err)
	}

	return workers, nil
}

func (s *Storage) CountWorkers(ctx context.Context, tenantID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountWorkers")
	defer span.End()

	return s.countWorkers(ctx, sq.Eq{"tenant_id": tenantID})
}

func (s *Storage) CountManagers(ctx context.Context, tenantID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountManagers")
	defer span.End()

	return s.countWorkers(ctx, sq.Eq{"tenant_id": tenantID, "role": types.RoleManager})
}

func (s *Storage) countWorkers(ctx context.Context, pred sq.Eq) (int64, error) {
	var count int64
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("workers").
		Where(pred).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count workers: %w", err)
	}

	return count, nil
}

// BindDeviceToken attaches a device token to a worker with compare-and-swap
// semantics: the update only lands when the worker has no token yet or already
// holds this exact token. Returns false when the worker's binding points
// elsewhere, without mutating it.
func (s *Storage) BindDeviceToken(ctx context.Context, workerID, deviceToken string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.BindDeviceToken")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("workers").
		Set("device_token", deviceToken).
		Where(sq.Eq{"id": workerID}).
		Where(sq.Or{
			sq.Eq{"device_token": nil},
			sq.Eq{"device_token": deviceToken},
		}).
		ExecContext(ctx)
	if err != nil {
		return false, WrapDuplicateKeyError(err, "device token already bound in tenant")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows > 0, nil
}

func (s *Storage) ClearDeviceToken(ctx context.Context, tenantID, workerID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.ClearDeviceToken")
	defer span.End()

	return s.updateWorker(ctx, tenantID, workerID, sq.Eq{"device_token": nil})
}

func (s *Storage) SetFloating(ctx context.Context, tenantID, workerID string, floating bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetFloating")
	defer span.End()

	return s.updateWorker(ctx, tenantID, workerID, sq.Eq{"floating": floating})
}

func (s *Storage) SetWorkerRole(ctx context.Context, tenantID, workerID string, role types.Role) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetWorkerRole")
	defer span.End()

	return s.updateWorker(ctx, tenantID, workerID, sq.Eq{"role": role})
}

func (s *Storage) SetWorkerCredential(ctx context.Context, tenantID, workerID, email, passwordHash string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetWorkerCredential")
	defer span.End()

	err := s.updateWorker(ctx, tenantID, workerID, sq.Eq{"email": email, "password_hash": passwordHash})
	return WrapDuplicateKeyError(err, "email already in use")
}

func (s *Storage) updateWorker(ctx context.Context, tenantID, workerID string, values sq.Eq) error {
	builder := s.db.Statement(ctx).Update("workers")
	for col, val := range values {
		builder = builder.Set(col, val)
	}

	res, err := builder.
		Where(sq.Eq{"tenant_id": tenantID, "id": workerID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update worker: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) DeleteWorker(ctx context.Context, tenantID, workerID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteWorker")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("workers").
		Where(sq.Eq{"tenant_id": tenantID, "id": workerID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
