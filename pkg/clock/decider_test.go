// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package clock

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/punchpoint/timeclock-service/internal/logging"
	"github.com/punchpoint/timeclock-service/internal/monitoring"
	"github.com/punchpoint/timeclock-service/internal/storage"
	"github.com/punchpoint/timeclock-service/internal/tracing"
	"github.com/punchpoint/timeclock-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package clock -destination ./mock_clock.go -source=./interfaces.go

func TestDecider_Decide(t *testing.T) {
	now := time.Date(2025, time.June, 3, 9, 0, 0, 0, time.UTC)
	label := "Jun. 3rd, 2025"
	worker := &types.Worker{ID: "worker-1", TenantID: "tenant-1", Name: "Ada"}
	clockOut := now.Add(-time.Hour)
	dbErr := errors.New("db error")

	testCases := []struct {
		name          string
		setupMocks    func(*MockLedgerInterface)
		expectedKind  ActionKind
		expectedEntry string
		expectedErr   error
	}{
		{
			name: "no entry today means clock in",
			setupMocks: func(ledger *MockLedgerInterface) {
				ledger.EXPECT().FindLatestEntry(gomock.Any(), worker.ID, label).Return(nil, storage.ErrNotFound)
			},
			expectedKind: ActionClockIn,
		},
		{
			name: "open entry means clock out of it",
			setupMocks: func(ledger *MockLedgerInterface) {
				ledger.EXPECT().FindLatestEntry(gomock.Any(), worker.ID, label).Return(&types.LedgerEntry{ID: "entry-1"}, nil)
			},
			expectedKind:  ActionClockOut,
			expectedEntry: "entry-1",
		},
		{
			name: "closed entry means the day is complete",
			setupMocks: func(ledger *MockLedgerInterface) {
				ledger.EXPECT().FindLatestEntry(gomock.Any(), worker.ID, label).Return(&types.LedgerEntry{ID: "entry-1", ClockOut: &clockOut}, nil)
			},
			expectedKind: ActionAlreadyComplete,
		},
		{
			name: "storage error",
			setupMocks: func(ledger *MockLedgerInterface) {
				ledger.EXPECT().FindLatestEntry(gomock.Any(), worker.ID, label).Return(nil, dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ledger := NewMockLedgerInterface(ctrl)
			tc.setupMocks(ledger)

			d := NewDecider(ledger, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

			action, err := d.Decide(context.Background(), worker, now)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if action.Kind != tc.expectedKind {
				t.Errorf("expected kind %q, got %q", tc.expectedKind, action.Kind)
			}
			if action.EntryID != tc.expectedEntry {
				t.Errorf("expected entry %q, got %q", tc.expectedEntry, action.EntryID)
			}
			if action.TenantID != worker.TenantID || action.WorkerID != worker.ID || action.WorkerName != worker.Name {
				t.Errorf("action does not carry worker identity: %+v", action)
			}
			if action.DateLabel != label {
				t.Errorf("expected date label %q, got %q", label, action.DateLabel)
			}
		})
	}
}
