// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/punchpoint/timeclock-service/internal/cache/memory"
	"github.com/punchpoint/timeclock-service/internal/logging"
	"github.com/punchpoint/timeclock-service/internal/monitoring"
	"github.com/punchpoint/timeclock-service/internal/storage"
	"github.com/punchpoint/timeclock-service/internal/tracing"
	"github.com/punchpoint/timeclock-service/internal/types"
	"github.com/punchpoint/timeclock-service/pkg/clock"
	"github.com/punchpoint/timeclock-service/pkg/identity"
	"github.com/punchpoint/timeclock-service/pkg/settings"
)

//go:generate mockgen -build_flags=--mod=mod -package workflow -destination ./mock_workflow.go -source=./interfaces.go

type serviceFixture struct {
	service  *Service
	resolver *MockResolverInterface
	decider  *MockDeciderInterface
	executor *MockExecutorInterface
	settings *MockSettingsInterface
	storage  *MockStorageInterface
	codec    *TokenCodec
	store    *TokenStore
}

func newServiceFixture(t *testing.T) *serviceFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &serviceFixture{
		resolver: NewMockResolverInterface(ctrl),
		decider:  NewMockDeciderInterface(ctrl),
		executor: NewMockExecutorInterface(ctrl),
		settings: NewMockSettingsInterface(ctrl),
		storage:  NewMockStorageInterface(ctrl),
		codec:    NewTokenCodec("test-secret", time.Minute),
	}
	f.store = NewTokenStore(memory.New(time.Minute), time.Minute)

	f.service = NewService(
		f.resolver,
		f.decider,
		f.executor,
		f.settings,
		f.storage,
		f.codec,
		f.store,
		"America/Chicago",
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
	return f
}

func disabledGeofence() map[string]string {
	return map[string]string{settings.KeyLocationVerificationEnabled: settings.BoolFalse}
}

func TestService_Scan_LocationDenied(t *testing.T) {
	f := newServiceFixture(t)

	f.settings.EXPECT().GetSettings(gomock.Any(), "tenant-1").Return(map[string]string{
		settings.KeyLocationVerificationEnabled: settings.BoolTrue,
		settings.KeyBuildingLatitude:            "41.8781",
		settings.KeyBuildingLongitude:           "-87.6298",
	}, nil)

	step, err := f.service.Scan(context.Background(), &ScanRequest{
		TenantID: "tenant-1",
		Name:     "Ada",
		Latitude: "41.9781",
		// About 7 miles north of the building.
		Longitude: "-87.6298",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if step.Step != StepLocationDenied {
		t.Fatalf("expected %q, got %q", StepLocationDenied, step.Step)
	}
	if step.DistanceFeet <= step.AllowedFeet {
		t.Errorf("denied step should report the excess distance: %+v", step)
	}
}

func TestService_Scan_LocationConfigErrorFailsClosed(t *testing.T) {
	f := newServiceFixture(t)

	f.settings.EXPECT().GetSettings(gomock.Any(), "tenant-1").Return(map[string]string{
		settings.KeyLocationVerificationEnabled: settings.BoolTrue,
	}, nil)

	step, err := f.service.Scan(context.Background(), &ScanRequest{TenantID: "tenant-1", Name: "Ada"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if step.Step != StepLocationError {
		t.Fatalf("expected %q, got %q", StepLocationError, step.Step)
	}
	if step.Message == "" {
		t.Error("expected a reason for the config error")
	}
}

func TestService_Scan_ResolvedWorkerGetsToken(t *testing.T) {
	f := newServiceFixture(t)

	worker := &types.Worker{ID: "worker-1", TenantID: "tenant-1", Name: "Ada"}

	f.settings.EXPECT().GetSettings(gomock.Any(), "tenant-1").Return(disabledGeofence(), nil)
	f.resolver.EXPECT().Resolve(gomock.Any(), "tenant-1", "Ada", "device-abc").
		Return(&identity.Outcome{Kind: identity.KindReturningBoundWorker, Worker: worker}, nil)
	f.decider.EXPECT().Decide(gomock.Any(), worker, gomock.Any()).Return(&clock.PendingAction{
		TenantID:   "tenant-1",
		WorkerID:   "worker-1",
		WorkerName: "Ada",
		Kind:       clock.ActionClockIn,
		DateLabel:  "Jun. 3rd, 2025",
	}, nil)

	step, err := f.service.Scan(context.Background(), &ScanRequest{TenantID: "tenant-1", Name: "Ada", DeviceToken: "device-abc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if step.Step != StepConfirmAction {
		t.Fatalf("expected %q, got %q", StepConfirmAction, step.Step)
	}
	if step.Token == "" {
		t.Fatal("expected a pending token")
	}
	if step.Action != clock.ActionClockIn || step.WorkerName != "Ada" {
		t.Errorf("unexpected step: %+v", step)
	}

	// The issued token must decode and be armed for a single use.
	action, jti, err := f.codec.Decode(step.Token)
	if err != nil {
		t.Fatalf("issued token does not decode: %v", err)
	}
	if action.Kind != clock.ActionClockIn {
		t.Errorf("unexpected action in token: %+v", action)
	}
	if !f.store.Consume(context.Background(), jti) {
		t.Error("expected the jti to be armed")
	}
}

func TestService_Scan_ConflictAndRegistrationSteps(t *testing.T) {
	bound := &types.Worker{ID: "worker-1", TenantID: "tenant-1", Name: "Ada"}

	testCases := []struct {
		name         string
		outcome      *identity.Outcome
		expectedStep StepKind
	}{
		{
			name:         "identity conflict",
			outcome:      &identity.Outcome{Kind: identity.KindNameMismatchConflict, Worker: bound, AttemptedName: "Grace"},
			expectedStep: StepIdentityConflict,
		},
		{
			name:         "device already claimed",
			outcome:      &identity.Outcome{Kind: identity.KindDeviceAlreadyClaimed, AttemptedName: "Ada"},
			expectedStep: StepDeviceClaimed,
		},
		{
			name:         "unknown name prompts registration",
			outcome:      &identity.Outcome{Kind: identity.KindNewWorkerRegistration, AttemptedName: "Ada"},
			expectedStep: StepRegisterPrompt,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newServiceFixture(t)

			f.settings.EXPECT().GetSettings(gomock.Any(), "tenant-1").Return(disabledGeofence(), nil)
			f.resolver.EXPECT().Resolve(gomock.Any(), "tenant-1", gomock.Any(), gomock.Any()).Return(tc.outcome, nil)

			step, err := f.service.Scan(context.Background(), &ScanRequest{TenantID: "tenant-1", Name: "Ada"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if step.Step != tc.expectedStep {
				t.Errorf("expected %q, got %q", tc.expectedStep, step.Step)
			}
		})
	}
}

func TestService_ConfirmIdentity_IssuesToken(t *testing.T) {
	f := newServiceFixture(t)

	worker := &types.Worker{ID: "worker-1", TenantID: "tenant-1", Name: "Ada"}

	f.settings.EXPECT().GetSettings(gomock.Any(), "tenant-1").Return(disabledGeofence(), nil)
	f.resolver.EXPECT().ConfirmWorker(gomock.Any(), "tenant-1", "worker-1").Return(worker, nil)
	f.decider.EXPECT().Decide(gomock.Any(), worker, gomock.Any()).Return(&clock.PendingAction{
		TenantID:   "tenant-1",
		WorkerID:   "worker-1",
		WorkerName: "Ada",
		Kind:       clock.ActionClockIn,
		DateLabel:  "Jun. 3rd, 2025",
	}, nil)

	step, err := f.service.ConfirmIdentity(context.Background(), &ConfirmIdentityRequest{
		TenantID: "tenant-1",
		WorkerID: "worker-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if step.Step != StepConfirmAction || step.Token == "" {
		t.Errorf("unexpected step: %+v", step)
	}
}

func TestService_ConfirmIdentity_LocationDenied(t *testing.T) {
	f := newServiceFixture(t)

	// The conflict screen is a fresh request; coordinates submitted with the
	// confirmation must clear the fence before any token is issued.
	f.settings.EXPECT().GetSettings(gomock.Any(), "tenant-1").Return(map[string]string{
		settings.KeyLocationVerificationEnabled: settings.BoolTrue,
		settings.KeyBuildingLatitude:            "41.8781",
		settings.KeyBuildingLongitude:           "-87.6298",
	}, nil)

	step, err := f.service.ConfirmIdentity(context.Background(), &ConfirmIdentityRequest{
		TenantID:  "tenant-1",
		WorkerID:  "worker-1",
		Latitude:  "41.9781",
		Longitude: "-87.6298",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if step.Step != StepLocationDenied {
		t.Fatalf("expected %q, got %q", StepLocationDenied, step.Step)
	}
	if step.Token != "" {
		t.Error("no token may be issued from outside the fence")
	}
}

func TestService_ConfirmRegistration_LocationDenied(t *testing.T) {
	f := newServiceFixture(t)

	// Denied before Register runs, so no worker row is created.
	f.settings.EXPECT().GetSettings(gomock.Any(), "tenant-1").Return(map[string]string{
		settings.KeyLocationVerificationEnabled: settings.BoolTrue,
		settings.KeyBuildingLatitude:            "41.8781",
		settings.KeyBuildingLongitude:           "-87.6298",
	}, nil)

	step, err := f.service.ConfirmRegistration(context.Background(), &ConfirmRegistrationRequest{
		TenantID:    "tenant-1",
		Name:        "Ada",
		DeviceToken: "device-abc",
		Latitude:    "41.9781",
		Longitude:   "-87.6298",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if step.Step != StepLocationDenied {
		t.Fatalf("expected %q, got %q", StepLocationDenied, step.Step)
	}
	if step.Token != "" {
		t.Error("no token may be issued from outside the fence")
	}
}

func TestService_ConfirmRegistration_IssuesToken(t *testing.T) {
	f := newServiceFixture(t)

	worker := &types.Worker{ID: "worker-new", TenantID: "tenant-1", Name: "Ada"}

	f.settings.EXPECT().GetSettings(gomock.Any(), "tenant-1").Return(disabledGeofence(), nil)
	f.resolver.EXPECT().Register(gomock.Any(), "tenant-1", "Ada", "device-abc").Return(worker, nil)
	f.decider.EXPECT().Decide(gomock.Any(), worker, gomock.Any()).Return(&clock.PendingAction{
		TenantID:   "tenant-1",
		WorkerID:   "worker-new",
		WorkerName: "Ada",
		Kind:       clock.ActionClockIn,
		DateLabel:  "Jun. 3rd, 2025",
	}, nil)

	step, err := f.service.ConfirmRegistration(context.Background(), &ConfirmRegistrationRequest{
		TenantID:    "tenant-1",
		Name:        "Ada",
		DeviceToken: "device-abc",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if step.Step != StepConfirmAction || step.Token == "" {
		t.Errorf("unexpected step: %+v", step)
	}
}

func TestService_Execute_CommitsOnce(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	action := &clock.PendingAction{
		TenantID:   "tenant-1",
		WorkerID:   "worker-1",
		WorkerName: "Ada",
		Kind:       clock.ActionClockIn,
		DateLabel:  "Jun. 3rd, 2025",
	}
	token, jti, err := f.codec.Issue(action)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f.store.Arm(ctx, jti)

	f.settings.EXPECT().GetSettings(gomock.Any(), "tenant-1").Return(disabledGeofence(), nil)
	// The executor must run exactly once across both requests.
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&clock.Result{Status: clock.StatusClockedIn}, nil).Times(1)

	first, err := f.service.Execute(ctx, token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Status != clock.StatusClockedIn || first.WorkerName != "Ada" {
		t.Errorf("unexpected result: %+v", first)
	}

	// A retried POST answers from the result cache.
	second, err := f.service.Execute(ctx, token)
	if err != nil {
		t.Fatalf("unexpected error on replay: %v", err)
	}
	if *second != *first {
		t.Errorf("replay should return the original result: %+v vs %+v", second, first)
	}
}

func TestService_Execute_InvalidToken(t *testing.T) {
	f := newServiceFixture(t)

	if _, err := f.service.Execute(context.Background(), "garbage"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestService_Execute_UnarmedTokenIsUsed(t *testing.T) {
	f := newServiceFixture(t)

	token, _, err := f.codec.Issue(&clock.PendingAction{TenantID: "tenant-1", WorkerID: "worker-1", Kind: clock.ActionClockIn})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Never armed and no cached result: treated as already used.
	if _, err := f.service.Execute(context.Background(), token); !errors.Is(err, ErrTokenUsed) {
		t.Errorf("expected ErrTokenUsed, got %v", err)
	}
}

func TestService_Execute_ReDecidesOnLedgerConflict(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	worker := &types.Worker{ID: "worker-1", TenantID: "tenant-1", Name: "Ada"}
	stale := &clock.PendingAction{
		TenantID:   "tenant-1",
		WorkerID:   "worker-1",
		WorkerName: "Ada",
		Kind:       clock.ActionClockOut,
		DateLabel:  "Jun. 3rd, 2025",
		EntryID:    "entry-old",
	}
	fresh := &clock.PendingAction{
		TenantID:   "tenant-1",
		WorkerID:   "worker-1",
		WorkerName: "Ada",
		Kind:       clock.ActionAlreadyComplete,
		DateLabel:  "Jun. 3rd, 2025",
	}

	token, jti, err := f.codec.Issue(stale)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f.store.Arm(ctx, jti)

	f.settings.EXPECT().GetSettings(gomock.Any(), "tenant-1").Return(disabledGeofence(), nil)
	gomock.InOrder(
		f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, clock.ErrLedgerConflict),
		f.storage.EXPECT().GetWorkerByID(gomock.Any(), "tenant-1", "worker-1").Return(worker, nil),
		f.decider.EXPECT().Decide(gomock.Any(), worker, gomock.Any()).Return(fresh, nil),
		f.executor.EXPECT().Execute(gomock.Any(), fresh, gomock.Any()).Return(&clock.Result{Status: clock.StatusAlreadyComplete}, nil),
	)

	result, err := f.service.Execute(ctx, token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != clock.StatusAlreadyComplete {
		t.Errorf("expected re-decided status, got %+v", result)
	}
}

func TestService_Execute_FailureKeepsTokenRetryable(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	action := &clock.PendingAction{
		TenantID:   "tenant-1",
		WorkerID:   "worker-1",
		WorkerName: "Ada",
		Kind:       clock.ActionClockIn,
		DateLabel:  "Jun. 3rd, 2025",
	}
	token, jti, err := f.codec.Issue(action)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f.store.Arm(ctx, jti)

	f.settings.EXPECT().GetSettings(gomock.Any(), "tenant-1").Return(disabledGeofence(), nil).Times(2)
	gomock.InOrder(
		// Nothing reaches the ledger on the first attempt; the jti must be
		// re-armed so the same token works on retry.
		f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset")),
		f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(&clock.Result{Status: clock.StatusClockedIn}, nil),
	)

	if _, err := f.service.Execute(ctx, token); err == nil {
		t.Fatal("expected the first attempt to fail")
	}

	result, err := f.service.Execute(ctx, token)
	if err != nil {
		t.Fatalf("retry should land, got %v", err)
	}
	if result.Status != clock.StatusClockedIn {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestService_QuickClockOut(t *testing.T) {
	worker := &types.Worker{ID: "worker-1", TenantID: "tenant-1", Name: "Ada"}

	t.Run("closes the open shift", func(t *testing.T) {
		f := newServiceFixture(t)

		f.storage.EXPECT().GetWorkerByDeviceToken(gomock.Any(), "tenant-1", "device-abc").Return(worker, nil)
		f.settings.EXPECT().GetSettings(gomock.Any(), "tenant-1").Return(disabledGeofence(), nil)
		f.storage.EXPECT().FindOpenEntry(gomock.Any(), "worker-1", gomock.Any()).Return(&types.LedgerEntry{ID: "entry-1"}, nil)
		f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, action *clock.PendingAction, _ time.Time) (*clock.Result, error) {
				if action.Kind != clock.ActionClockOut || action.EntryID != "entry-1" {
					t.Errorf("unexpected action: %+v", action)
				}
				return &clock.Result{Status: clock.StatusClockedOut}, nil
			})

		result, err := f.service.QuickClockOut(context.Background(), "tenant-1", "device-abc")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Status != clock.StatusClockedOut {
			t.Errorf("unexpected result: %+v", result)
		}
	})

	t.Run("unknown device", func(t *testing.T) {
		f := newServiceFixture(t)

		f.storage.EXPECT().GetWorkerByDeviceToken(gomock.Any(), "tenant-1", "device-abc").Return(nil, storage.ErrNotFound)

		if _, err := f.service.QuickClockOut(context.Background(), "tenant-1", "device-abc"); !errors.Is(err, ErrNotClockedIn) {
			t.Errorf("expected ErrNotClockedIn, got %v", err)
		}
	})

	t.Run("no open shift", func(t *testing.T) {
		f := newServiceFixture(t)

		f.storage.EXPECT().GetWorkerByDeviceToken(gomock.Any(), "tenant-1", "device-abc").Return(worker, nil)
		f.settings.EXPECT().GetSettings(gomock.Any(), "tenant-1").Return(disabledGeofence(), nil)
		f.storage.EXPECT().FindOpenEntry(gomock.Any(), "worker-1", gomock.Any()).Return(nil, storage.ErrNotFound)

		if _, err := f.service.QuickClockOut(context.Background(), "tenant-1", "device-abc"); !errors.Is(err, ErrNotClockedIn) {
			t.Errorf("expected ErrNotClockedIn, got %v", err)
		}
	})
}

func TestService_ResolveJoinToken(t *testing.T) {
	f := newServiceFixture(t)

	expected := &types.Tenant{ID: "tenant-1", Name: "Acme"}
	f.storage.EXPECT().GetTenantByJoinToken(gomock.Any(), "join-token").Return(expected, nil)

	tenant, err := f.service.ResolveJoinToken(context.Background(), "join-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tenant.ID != expected.ID {
		t.Errorf("unexpected tenant: %+v", tenant)
	}
}
