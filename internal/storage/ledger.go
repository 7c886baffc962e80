// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/punchpoint/timeclock-service/internal/db"
	"github.com/punchpoint/timeclock-service/internal/types"
)

var ledgerColumns = []string{
	"id", "tenant_id", "worker_id", "date_label", "clock_in", "clock_out", "created_at",
}

func scanEntry(row sq.RowScanner) (*types.LedgerEntry, error) {
	var e types.LedgerEntry
	err := row.Scan(&e.ID, &e.TenantID, &e.WorkerID, &e.DateLabel, &e.ClockIn, &e.ClockOut, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
	}
	return &e, nil
}

// AppendEntry inserts a new open entry. The partial unique index on
// (worker_id, date_label) WHERE clock_out IS NULL turns a concurrent duplicate
// clock-in into ErrDuplicateKey instead of a second open shift.
func (s *Storage) AppendEntry(ctx context.Context, e *types.LedgerEntry) (*types.LedgerEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AppendEntry")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate entry ID: %w", err)
	}

	created, err := scanEntry(s.db.Statement(ctx).
		Insert("ledger_entries").
		Columns("id", "tenant_id", "worker_id", "date_label", "clock_in", "clock_out").
		Values(id.String(), e.TenantID, e.WorkerID, e.DateLabel, e.ClockIn, e.ClockOut).
		Suffix("RETURNING " + joinColumns(ledgerColumns)).
		QueryRowContext(ctx))

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, WrapForeignKeyError(err, "entry references a deleted worker or tenant")
		}
		return nil, WrapDuplicateKeyError(err, "open entry already exists for worker and date")
	}

	return created, nil
}

func (s *Storage) FindOpenEntry(ctx context.Context, workerID, dateLabel string) (*types.LedgerEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.FindOpenEntry")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(ledgerColumns...).
		From("ledger_entries").
		Where(sq.Eq{"worker_id": workerID, "date_label": dateLabel, "clock_out": nil}).
		QueryRowContext(ctx)

	return scanEntry(row)
}

func (s *Storage) FindLatestEntry(ctx context.Context, workerID, dateLabel string) (*types.LedgerEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.FindLatestEntry")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(ledgerColumns...).
		From("ledger_entries").
		Where(sq.Eq{"worker_id": workerID, "date_label": dateLabel}).
		OrderBy("created_at DESC").
		Limit(1).
		QueryRowContext(ctx)

	return scanEntry(row)
}

func (s *Storage) GetEntryByID(ctx context.Context, tenantID, id string) (*types.LedgerEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetEntryByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(ledgerColumns...).
		From("ledger_entries").
		Where(sq.Eq{"tenant_id": tenantID, "id": id}).
		QueryRowContext(ctx)

	return scanEntry(row)
}

// CloseEntry sets clock_out on a still-open entry with compare-and-swap
// semantics. Returns false when the entry is gone or was already closed by a
// racing request, so two near-simultaneous clock-outs produce exactly one write.
func (s *Storage) CloseEntry(ctx context.Context, entryID string, clockOut time.Time) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CloseEntry")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("ledger_entries").
		Set("clock_out", clockOut).
		Where(sq.Eq{"id": entryID, "clock_out": nil}).
		ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to close ledger entry: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows > 0, nil
}

func (s *Storage) ListEntries(ctx context.Context, tenantID string, f LedgerFilter) ([]*LedgerRow, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListEntries")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("e.id", "e.tenant_id", "e.worker_id", "e.date_label", "e.clock_in", "e.clock_out", "e.created_at", "w.name").
		From("ledger_entries e").
		Join("workers w ON e.worker_id = w.id").
		Where(sq.Eq{"e.tenant_id": tenantID})

	if f.WorkerID != "" {
		query = query.Where(sq.Eq{"e.worker_id": f.WorkerID})
	}
	if f.DateLabel != "" {
		query = query.Where(sq.Eq{"e.date_label": f.DateLabel})
	}

	sortColumn := "e.created_at"
	switch f.SortBy {
	case "date":
		sortColumn = "e.date_label"
	case "clock_in":
		sortColumn = "e.clock_in"
	case "worker":
		sortColumn = "w.name"
	}
	direction := "ASC"
	if f.SortDesc {
		direction = "DESC"
	}

	pageSize := db.PageSize(f.PageSize)
	query = query.
		OrderBy(sortColumn + " " + direction).
		Offset(db.Offset(f.Page, pageSize)).
		Limit(pageSize)

	return s.queryLedgerRows(ctx, query)
}

func (s *Storage) ListOpenEntries(ctx context.Context, tenantID, dateLabel string) ([]*LedgerRow, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOpenEntries")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("e.id", "e.tenant_id", "e.worker_id", "e.date_label", "e.clock_in", "e.clock_out", "e.created_at", "w.name").
		From("ledger_entries e").
		Join("workers w ON e.worker_id = w.id").
		Where(sq.Eq{"e.tenant_id": tenantID, "e.date_label": dateLabel, "e.clock_out": nil}).
		OrderBy("e.clock_in")

	return s.queryLedgerRows(ctx, query)
}

func (s *Storage) queryLedgerRows(ctx context.Context, query sq.SelectBuilder) ([]*LedgerRow, error) {
	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []*LedgerRow
	for rows.Next() {
		var r LedgerRow
		if err := rows.Scan(&r.ID, &r.TenantID, &r.WorkerID, &r.DateLabel, &r.ClockIn, &r.ClockOut, &r.CreatedAt, &r.WorkerName); err != nil {
			return nil, fmt.Errorf("failed to scan ledger row: %w", err)
		}
		entries = append(entries, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger rows: %w", err)
	}

	return entries, nil
}

func (s *Storage) DeleteEntry(ctx context.Context, tenantID, entryID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteEntry")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("ledger_entries").
		Where(sq.Eq{"tenant_id": tenantID, "id": entryID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete ledger entry: %w", err)
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
