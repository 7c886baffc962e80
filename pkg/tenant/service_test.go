// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/punchpoint/timeclock-service/internal/logging"
	"github.com/punchpoint/timeclock-service/internal/monitoring"
	"github.com/punchpoint/timeclock-service/internal/tracing"
	"github.com/punchpoint/timeclock-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_tenant.go -source=./interfaces.go

const tenantID = "tenant-1"

func newTenantService(t *testing.T) (*Service, *MockStorageInterface, *MockSettingsInterface) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)
	mockSettings := NewMockSettingsInterface(ctrl)

	s := NewService(
		mockStorage,
		mockSettings,
		"America/Chicago",
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
	return s, mockStorage, mockSettings
}

func strPtr(s string) *string {
	return &s
}

func TestService_CreateTenant_DefaultsToFreePlan(t *testing.T) {
	s, mockStorage, _ := newTenantService(t)

	mockStorage.EXPECT().CreateTenant(gomock.Any(), "Acme", types.PlanFree).
		Return(&types.Tenant{ID: tenantID, Name: "Acme", Plan: types.PlanFree}, nil)

	tenant, err := s.CreateTenant(context.Background(), "Acme", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tenant.Plan != types.PlanFree {
		t.Errorf("expected free plan, got %q", tenant.Plan)
	}
}

func TestService_SetWorkerRole(t *testing.T) {
	member := func() *types.Worker {
		return &types.Worker{ID: "worker-1", TenantID: tenantID, Name: "Ada", Role: types.RoleMember}
	}
	memberWithLogin := func() *types.Worker {
		w := member()
		w.PasswordHash = strPtr("$2a$10$hash")
		return w
	}
	manager := func() *types.Worker {
		w := memberWithLogin()
		w.Role = types.RoleManager
		return w
	}

	testCases := []struct {
		name        string
		role        types.Role
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "promotion without login account",
			role: types.RoleManager,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetWorkerByID(gomock.Any(), tenantID, "worker-1").Return(member(), nil)
			},
			expectedErr: ErrCredentialRequired,
		},
		{
			name: "free plan already has a manager",
			role: types.RoleManager,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetWorkerByID(gomock.Any(), tenantID, "worker-1").Return(memberWithLogin(), nil)
				m.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(&types.Tenant{ID: tenantID, Plan: types.PlanFree}, nil)
				m.EXPECT().CountManagers(gomock.Any(), tenantID).Return(int64(1), nil)
			},
			expectedErr: ErrManagerLimit,
		},
		{
			name: "pro plan promotion skips the manager count",
			role: types.RoleManager,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetWorkerByID(gomock.Any(), tenantID, "worker-1").Return(memberWithLogin(), nil)
				m.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(&types.Tenant{ID: tenantID, Plan: types.PlanPro}, nil)
				m.EXPECT().SetWorkerRole(gomock.Any(), tenantID, "worker-1", types.RoleManager).Return(nil)
				m.EXPECT().AddAuditEvent(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "demoting the last manager",
			role: types.RoleMember,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetWorkerByID(gomock.Any(), tenantID, "worker-1").Return(manager(), nil)
				m.EXPECT().CountManagers(gomock.Any(), tenantID).Return(int64(1), nil)
			},
			expectedErr: ErrLastManager,
		},
		{
			name: "demotion with another manager left",
			role: types.RoleMember,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetWorkerByID(gomock.Any(), tenantID, "worker-1").Return(manager(), nil)
				m.EXPECT().CountManagers(gomock.Any(), tenantID).Return(int64(2), nil)
				m.EXPECT().SetWorkerRole(gomock.Any(), tenantID, "worker-1", types.RoleMember).Return(nil)
				m.EXPECT().AddAuditEvent(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "same role is a no-op",
			role: types.RoleMember,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetWorkerByID(gomock.Any(), tenantID, "worker-1").Return(member(), nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, _ := newTenantService(t)
			tc.setupMocks(mockStorage)

			err := s.SetWorkerRole(context.Background(), tenantID, "worker-1", tc.role)
			if !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_CreateWorkerAccount_HashesPassword(t *testing.T) {
	s, mockStorage, _ := newTenantService(t)

	mockStorage.EXPECT().GetWorkerByID(gomock.Any(), tenantID, "worker-1").
		Return(&types.Worker{ID: "worker-1", Name: "Ada"}, nil)
	mockStorage.EXPECT().SetWorkerCredential(gomock.Any(), tenantID, "worker-1", "ada@example.com", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _, _ string, hash string) error {
			if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("hunter22")); err != nil {
				t.Errorf("stored hash does not verify: %v", err)
			}
			return nil
		})
	mockStorage.EXPECT().AddAuditEvent(gomock.Any(), gomock.Any()).Return(nil)

	if err := s.CreateWorkerAccount(context.Background(), tenantID, "worker-1", "ada@example.com", "hunter22"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_DeleteWorker_LastManagerGuard(t *testing.T) {
	s, mockStorage, _ := newTenantService(t)

	mockStorage.EXPECT().GetWorkerByID(gomock.Any(), tenantID, "worker-1").
		Return(&types.Worker{ID: "worker-1", Name: "Ada", Role: types.RoleManager}, nil)
	mockStorage.EXPECT().CountManagers(gomock.Any(), tenantID).Return(int64(1), nil)

	if err := s.DeleteWorker(context.Background(), tenantID, "worker-1"); !errors.Is(err, ErrLastManager) {
		t.Errorf("expected ErrLastManager, got %v", err)
	}
}

func TestService_ForceClockOut(t *testing.T) {
	openEntry := func() *types.LedgerEntry {
		return &types.LedgerEntry{ID: "entry-1", WorkerID: "worker-1", DateLabel: "Jun. 3rd, 2025"}
	}

	t.Run("closes an open entry", func(t *testing.T) {
		s, mockStorage, mockSettings := newTenantService(t)

		mockStorage.EXPECT().GetEntryByID(gomock.Any(), tenantID, "entry-1").Return(openEntry(), nil)
		mockSettings.EXPECT().GetSettings(gomock.Any(), tenantID).Return(map[string]string{}, nil)
		mockStorage.EXPECT().CloseEntry(gomock.Any(), "entry-1", gomock.Any()).Return(true, nil)
		mockStorage.EXPECT().AddAuditEvent(gomock.Any(), gomock.Any()).Return(nil)

		if err := s.ForceClockOut(context.Background(), tenantID, "entry-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("entry already closed", func(t *testing.T) {
		s, mockStorage, _ := newTenantService(t)

		closedAt := time.Now()
		entry := openEntry()
		entry.ClockOut = &closedAt
		mockStorage.EXPECT().GetEntryByID(gomock.Any(), tenantID, "entry-1").Return(entry, nil)

		if err := s.ForceClockOut(context.Background(), tenantID, "entry-1"); !errors.Is(err, ErrEntryClosed) {
			t.Errorf("expected ErrEntryClosed, got %v", err)
		}
	})

	t.Run("lost the close race", func(t *testing.T) {
		s, mockStorage, mockSettings := newTenantService(t)

		mockStorage.EXPECT().GetEntryByID(gomock.Any(), tenantID, "entry-1").Return(openEntry(), nil)
		mockSettings.EXPECT().GetSettings(gomock.Any(), tenantID).Return(map[string]string{}, nil)
		mockStorage.EXPECT().CloseEntry(gomock.Any(), "entry-1", gomock.Any()).Return(false, nil)

		if err := s.ForceClockOut(context.Background(), tenantID, "entry-1"); !errors.Is(err, ErrEntryClosed) {
			t.Errorf("expected ErrEntryClosed, got %v", err)
		}
	})
}

func TestService_RotateJoinToken_AuditFailureDoesNotFail(t *testing.T) {
	s, mockStorage, _ := newTenantService(t)

	mockStorage.EXPECT().RotateJoinToken(gomock.Any(), tenantID).Return("new-token", nil)
	mockStorage.EXPECT().AddAuditEvent(gomock.Any(), gomock.Any()).Return(errors.New("audit table down"))

	token, err := s.RotateJoinToken(context.Background(), tenantID)
	if err != nil {
		t.Fatalf("audit failure must not fail the rotation: %v", err)
	}
	if token != "new-token" {
		t.Errorf("unexpected token %q", token)
	}
}

func TestService_ClearDeviceToken(t *testing.T) {
	s, mockStorage, _ := newTenantService(t)

	mockStorage.EXPECT().GetWorkerByID(gomock.Any(), tenantID, "worker-1").
		Return(&types.Worker{ID: "worker-1", Name: "Ada", DeviceToken: strPtr("device-abc")}, nil)
	mockStorage.EXPECT().ClearDeviceToken(gomock.Any(), tenantID, "worker-1").Return(nil)
	mockStorage.EXPECT().AddAuditEvent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *types.AuditEvent) error {
			if e.EventType != "worker.device_cleared" {
				t.Errorf("unexpected event type %q", e.EventType)
			}
			return nil
		})

	if err := s.ClearDeviceToken(context.Background(), tenantID, "worker-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
