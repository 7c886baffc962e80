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

func (s *Storage) ListSettings(ctx context.Context, tenantID string) ([]*types.Setting, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListSettings")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "tenant_id", "name", "value").
		From("tenant_settings").
		Where(sq.Eq{"tenant_id": tenantID}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	defer rows.Close()

	var settings []*types.Setting
	for rows.Next() {
		var st types.Setting
		if err := rows.Scan(&st.ID, &st.TenantID, &st.Name, &st.Value); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settings = append(settings, &st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating setting rows: %w", err)
	}

	return settings, nil
}

func (s *Storage) UpsertSetting(ctx context.Context, tenantID, name, value string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertSetting")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate setting ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("tenant_settings").
		Columns("id", "tenant_id", "name", "value").
		Values(id.String(), tenantID, name, value).
		Suffix("ON CONFLICT (tenant_id, name) DO UPDATE SET value = EXCLUDED.value").
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert setting: %w", err)
	}

	return nil
}
