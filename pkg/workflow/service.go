// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package workflow orchestrates a kiosk clock event end to end: geofence
// check, identity resolution, clock decision, and single-use execution of the
// decided action.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/punchpoint/timeclock-service/internal/logging"
	"github.com/punchpoint/timeclock-service/internal/monitoring"
	"github.com/punchpoint/timeclock-service/internal/storage"
	"github.com/punchpoint/timeclock-service/internal/tracing"
	"github.com/punchpoint/timeclock-service/internal/types"
	"github.com/punchpoint/timeclock-service/pkg/clock"
	"github.com/punchpoint/timeclock-service/pkg/geofence"
	"github.com/punchpoint/timeclock-service/pkg/identity"
)

// ErrNotClockedIn reports a quick clock-out with no open shift to close.
var ErrNotClockedIn = errors.New("no open shift to clock out of")

// StepKind tells the kiosk which screen to render next.
type StepKind string

const (
	// StepConfirmAction: identity resolved, action decided, token issued.
	StepConfirmAction StepKind = "confirm_action"
	// StepIdentityConflict: the device belongs to someone else; ask "are you
	// <bound name>?".
	StepIdentityConflict StepKind = "identity_conflict"
	// StepDeviceClaimed: the submitted name is bound to a different device.
	StepDeviceClaimed StepKind = "device_claimed"
	// StepRegisterPrompt: unknown name; ask before creating a worker.
	StepRegisterPrompt StepKind = "register_prompt"
	// StepLocationDenied: outside the geofence.
	StepLocationDenied StepKind = "location_denied"
	// StepLocationError: geofence required but misconfigured. Fails closed.
	StepLocationError StepKind = "location_error"
)

type ScanRequest struct {
	TenantID    string
	Name        string
	DeviceToken string
	Latitude    string
	Longitude   string
}

type ConfirmIdentityRequest struct {
	TenantID  string
	WorkerID  string
	Latitude  string
	Longitude string
}

type ConfirmRegistrationRequest struct {
	TenantID    string
	Name        string
	DeviceToken string
	Latitude    string
	Longitude   string
}

type StepResponse struct {
	Step StepKind `json:"step"`

	Token     string           `json:"token,omitempty"`
	Action    clock.ActionKind `json:"action,omitempty"`
	DateLabel string           `json:"date_label,omitempty"`

	WorkerID      string `json:"worker_id,omitempty"`
	WorkerName    string `json:"worker_name,omitempty"`
	AttemptedName string `json:"attempted_name,omitempty"`

	DistanceFeet float64 `json:"distance_feet,omitempty"`
	AllowedFeet  float64 `json:"allowed_feet,omitempty"`
	Message      string  `json:"message,omitempty"`
}

type ExecuteResult struct {
	Status     clock.TerminalStatus `json:"status"`
	WorkerName string               `json:"worker_name"`
	DateLabel  string               `json:"date_label"`
	TimeLabel  string               `json:"time_label"`
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	resolver identity.ResolverInterface
	decider  DeciderInterface
	executor ExecutorInterface
	settings SettingsInterface
	storage  StorageInterface

	codec *TokenCodec
	store *TokenStore

	defaultTimezone string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	resolver identity.ResolverInterface,
	decider DeciderInterface,
	executor ExecutorInterface,
	settings SettingsInterface,
	storage StorageInterface,
	codec *TokenCodec,
	store *TokenStore,
	defaultTimezone string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		resolver:        resolver,
		decider:         decider,
		executor:        executor,
		settings:        settings,
		storage:         storage,
		codec:           codec,
		store:           store,
		defaultTimezone: defaultTimezone,
		tracer:          tracer,
		monitor:         monitor,
		logger:          logger,
	}
}

// ResolveJoinToken maps a kiosk URL token to its tenant.
func (s *Service) ResolveJoinToken(ctx context.Context, joinToken string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "workflow.Service.ResolveJoinToken")
	defer span.End()

	return s.storage.GetTenantByJoinToken(ctx, joinToken)
}

// Scan is the entry point of a clock event. The geofence is checked before
// any identity work so a denied location never leaks roster information.
func (s *Service) Scan(ctx context.Context, req *ScanRequest) (*StepResponse, error) {
	ctx, span := s.tracer.Start(ctx, "workflow.Service.Scan")
	defer span.End()

	tenantSettings, err := s.settings.GetSettings(ctx, req.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant settings: %w", err)
	}

	if denied := s.geofenceGate(req.TenantID, tenantSettings, req.Latitude, req.Longitude); denied != nil {
		return denied, nil
	}

	outcome, err := s.resolver.Resolve(ctx, req.TenantID, req.Name, req.DeviceToken)
	if err != nil {
		return nil, err
	}

	switch outcome.Kind {
	case identity.KindReturningBoundWorker, identity.KindBindAndProceed:
		return s.decideAndIssue(ctx, tenantSettings, outcome.Worker)
	case identity.KindNameMismatchConflict:
		return &StepResponse{
			Step:          StepIdentityConflict,
			WorkerID:      outcome.Worker.ID,
			WorkerName:    outcome.Worker.Name,
			AttemptedName: outcome.AttemptedName,
		}, nil
	case identity.KindDeviceAlreadyClaimed:
		return &StepResponse{Step: StepDeviceClaimed, AttemptedName: outcome.AttemptedName}, nil
	case identity.KindNewWorkerRegistration:
		return &StepResponse{Step: StepRegisterPrompt, AttemptedName: outcome.AttemptedName}, nil
	}

	return nil, fmt.Errorf("unhandled identity outcome %q", outcome.Kind)
}

// ConfirmIdentity resumes after an identity conflict, proceeding as the
// worker the device is bound to. The geofence is re-evaluated here: the
// conflict screen is a fresh request and the kiosk may have moved since the
// scan.
func (s *Service) ConfirmIdentity(ctx context.Context, req *ConfirmIdentityRequest) (*StepResponse, error) {
	ctx, span := s.tracer.Start(ctx, "workflow.Service.ConfirmIdentity")
	defer span.End()

	tenantSettings, err := s.settings.GetSettings(ctx, req.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant settings: %w", err)
	}

	if denied := s.geofenceGate(req.TenantID, tenantSettings, req.Latitude, req.Longitude); denied != nil {
		return denied, nil
	}

	worker, err := s.resolver.ConfirmWorker(ctx, req.TenantID, req.WorkerID)
	if err != nil {
		return nil, err
	}

	return s.decideAndIssue(ctx, tenantSettings, worker)
}

// ConfirmRegistration resumes after a register prompt, creating the worker
// and deciding their first action. The geofence is checked before the worker
// row exists so a denied location never creates one.
func (s *Service) ConfirmRegistration(ctx context.Context, req *ConfirmRegistrationRequest) (*StepResponse, error) {
	ctx, span := s.tracer.Start(ctx, "workflow.Service.ConfirmRegistration")
	defer span.End()

	tenantSettings, err := s.settings.GetSettings(ctx, req.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant settings: %w", err)
	}

	if denied := s.geofenceGate(req.TenantID, tenantSettings, req.Latitude, req.Longitude); denied != nil {
		return denied, nil
	}

	worker, err := s.resolver.Register(ctx, req.TenantID, req.Name, req.DeviceToken)
	if err != nil {
		return nil, err
	}

	return s.decideAndIssue(ctx, tenantSettings, worker)
}

// geofenceGate returns the terminal step for a denied or misconfigured
// geofence, or nil when the request may proceed.
func (s *Service) geofenceGate(tenantID string, tenantSettings map[string]string, latitude, longitude string) *StepResponse {
	if !geofence.Required(tenantSettings) {
		return nil
	}

	verdict := geofence.Evaluate(tenantSettings, latitude, longitude)
	switch verdict.Kind {
	case geofence.Fail:
		return &StepResponse{
			Step:         StepLocationDenied,
			DistanceFeet: verdict.DistanceFeet,
			AllowedFeet:  verdict.AllowedFeet,
		}
	case geofence.ConfigError:
		s.logger.Warnf("geofence misconfigured for tenant %s: %s", tenantID, verdict.Reason)
		return &StepResponse{Step: StepLocationError, Message: verdict.Reason}
	}

	return nil
}

// Execute consumes a pending token and commits its action. The jti is popped
// before touching the ledger, and the terminal result is cached under it so a
// retried request answers with the original outcome. If the ledger moved
// between decision and execution the action is re-decided against current
// state rather than failed. A failure that commits nothing re-arms the jti so
// the same token stays retryable.
func (s *Service) Execute(ctx context.Context, token string) (*ExecuteResult, error) {
	ctx, span := s.tracer.Start(ctx, "workflow.Service.Execute")
	defer span.End()

	action, jti, err := s.codec.Decode(token)
	if err != nil {
		return nil, err
	}

	if !s.store.Consume(ctx, jti) {
		if result, ok := s.store.CachedResult(ctx, jti); ok {
			return result, nil
		}
		return nil, ErrTokenUsed
	}

	tenantSettings, err := s.settings.GetSettings(ctx, action.TenantID)
	if err != nil {
		s.store.Arm(ctx, jti)
		return nil, fmt.Errorf("failed to load tenant settings: %w", err)
	}
	now := time.Now().In(clock.TenantLocation(tenantSettings, s.defaultTimezone))

	result, err := s.executor.Execute(ctx, action, now)
	if errors.Is(err, clock.ErrLedgerConflict) {
		s.logger.Infof("ledger moved under pending action for worker %s, re-deciding", action.WorkerID)
		result, err = s.reExecute(ctx, action, now)
	}
	if err != nil {
		// Nothing reached the ledger; put the token back so a retry can land
		// instead of answering 409 for an action that never happened.
		s.store.Arm(ctx, jti)
		return nil, err
	}

	out := &ExecuteResult{
		Status:     result.Status,
		WorkerName: action.WorkerName,
		DateLabel:  action.DateLabel,
		TimeLabel:  clock.TimeLabel(now),
	}
	s.store.SaveResult(ctx, jti, out)

	return out, nil
}

func (s *Service) reExecute(ctx context.Context, stale *clock.PendingAction, now time.Time) (*clock.Result, error) {
	worker, err := s.storage.GetWorkerByID(ctx, stale.TenantID, stale.WorkerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load worker: %w", err)
	}

	fresh, err := s.decider.Decide(ctx, worker, now)
	if err != nil {
		return nil, err
	}

	return s.executor.Execute(ctx, fresh, now)
}

// QuickClockOut closes the open shift bound to the device, skipping the
// confirmation round trip. Used by the one-tap button on the kiosk.
func (s *Service) QuickClockOut(ctx context.Context, tenantID, deviceToken string) (*ExecuteResult, error) {
	ctx, span := s.tracer.Start(ctx, "workflow.Service.QuickClockOut")
	defer span.End()

	worker, err := s.storage.GetWorkerByDeviceToken(ctx, tenantID, deviceToken)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotClockedIn
		}
		return nil, fmt.Errorf("failed to look up device token: %w", err)
	}

	tenantSettings, err := s.settings.GetSettings(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant settings: %w", err)
	}
	now := time.Now().In(clock.TenantLocation(tenantSettings, s.defaultTimezone))
	label := clock.DateLabel(now)

	open, err := s.storage.FindOpenEntry(ctx, worker.ID, label)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotClockedIn
		}
		return nil, fmt.Errorf("failed to look up open shift: %w", err)
	}

	action := &clock.PendingAction{
		TenantID:   tenantID,
		WorkerID:   worker.ID,
		WorkerName: worker.Name,
		Kind:       clock.ActionClockOut,
		DateLabel:  label,
		EntryID:    open.ID,
		DecidedAt:  now,
	}

	result, err := s.executor.Execute(ctx, action, now)
	if errors.Is(err, clock.ErrLedgerConflict) {
		return nil, ErrNotClockedIn
	}
	if err != nil {
		return nil, err
	}

	return &ExecuteResult{
		Status:     result.Status,
		WorkerName: worker.Name,
		DateLabel:  label,
		TimeLabel:  clock.TimeLabel(now),
	}, nil
}

func (s *Service) decideAndIssue(ctx context.Context, tenantSettings map[string]string, worker *types.Worker) (*StepResponse, error) {
	now := time.Now().In(clock.TenantLocation(tenantSettings, s.defaultTimezone))

	action, err := s.decider.Decide(ctx, worker, now)
	if err != nil {
		return nil, err
	}

	token, jti, err := s.codec.Issue(action)
	if err != nil {
		return nil, err
	}
	s.store.Arm(ctx, jti)

	return &StepResponse{
		Step:       StepConfirmAction,
		Token:      token,
		Action:     action.Kind,
		DateLabel:  action.DateLabel,
		WorkerID:   worker.ID,
		WorkerName: worker.Name,
	}, nil
}
