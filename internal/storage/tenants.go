// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/punchpoint/timeclock-service/internal/types"
)

func (s *Storage) CreateTenant(ctx context.Context, name string, plan types.Plan) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
	}

	var t types.Tenant
	err = s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "name", "join_token", "plan").
		Values(id.String(), name, uuid.NewString(), plan).
		Suffix("RETURNING id, name, join_token, plan, created_at").
		QueryRowContext(ctx).
		Scan(&t.ID, &t.Name, &t.JoinToken, &t.Plan, &t.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert tenant: %w", err)
	}

	return &t, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	return s.getTenant(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetTenantByJoinToken(ctx context.Context, joinToken string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByJoinToken")
	defer span.End()

	return s.getTenant(ctx, sq.Eq{"join_token": joinToken})
}

func (s *Storage) getTenant(ctx context.Context, pred sq.Eq) (*types.Tenant, error) {
	var t types.Tenant
	err := s.db.Statement(ctx).
		Select("id", "name", "join_token", "plan", "created_at").
		From("tenants").
		Where(pred).
		QueryRowContext(ctx).
		Scan(&t.ID, &t.Name, &t.JoinToken, &t.Plan, &t.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return &t, nil
}

func (s *Storage) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenants")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "name", "join_token", "plan", "created_at").
		From("tenants").
		OrderBy("name").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*types.Tenant
	for rows.Next() {
		var t types.Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.JoinToken, &t.Plan, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tenant rows: %w", err)
	}

	return tenants, nil
}

func (s *Storage) UpdateTenant(ctx context.Context, id, name string, plan types.Plan) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTenant")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenants").
		Set("name", name).
		Set("plan", plan).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update tenant: %w", err)
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

func (s *Storage) RotateJoinToken(ctx context.Context, id string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.RotateJoinToken")
	defer span.End()

	token := uuid.NewString()
	res, err := s.db.Statement(ctx).
		Update("tenants").
		Set("join_token", token).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to rotate join token: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return "", ErrNotFound
	}

	return token, nil
}

func (s *Storage) DeleteTenant(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteTenant")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("tenants").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete tenant: %w", err)
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
