// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/punchpoint/timeclock-service/internal/types"
)

func (s *Storage) AddAuditEvent(ctx context.Context, e *types.AuditEvent) error {
	ctx, span := s.tracer.Start(ctx, "storage.AddAuditEvent")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate audit event ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("audit_events").
		Columns("id", "tenant_id", "worker_id", "event_type", "details").
		Values(id.String(), e.TenantID, e.WorkerID, e.EventType, e.Details).
		ExecContext(ctx)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return WrapForeignKeyError(err, "audit event references a deleted worker or tenant")
		}
		return fmt.Errorf("failed to insert audit event: %w", err)
	}

	return nil
}

func (s *Storage) ListAuditEvents(ctx context.Context, tenantID string) ([]*types.AuditEvent, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAuditEvents")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "tenant_id", "worker_id", "event_type", "details", "created_at").
		From("audit_events").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit events: %w", err)
	}
	defer rows.Close()

	var events []*types.AuditEvent
	for rows.Next() {
		var e types.AuditEvent
		if err := rows.Scan(&e.ID, &e.TenantID, &e.WorkerID, &e.EventType, &e.Details, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit event: %w", err)
		}
		events = append(events, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit event rows: %w", err)
	}

	return events, nil
}
