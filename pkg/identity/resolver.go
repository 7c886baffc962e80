// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package identity maps a (submitted name, device token, tenant) triple to a
// canonical worker record. The device token acts as a capability: a bound
// token recognizes a returning worker without login, and conflicts between
// token and name are never resolved silently.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/punchpoint/timeclock-service/internal/db"
	"github.com/punchpoint/timeclock-service/internal/logging"
	"github.com/punchpoint/timeclock-service/internal/monitoring"
	"github.com/punchpoint/timeclock-service/internal/storage"
	"github.com/punchpoint/timeclock-service/internal/tracing"
	"github.com/punchpoint/timeclock-service/internal/types"
)

var _ ResolverInterface = (*Resolver)(nil)

type Resolver struct {
	storage  StorageInterface
	dbClient db.DBClientInterface

	freeSeatLimit int64

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewResolver(
	storage StorageInterface,
	dbClient db.DBClientInterface,
	freeSeatLimit int64,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Resolver {
	return &Resolver{
		storage:       storage,
		dbClient:      dbClient,
		freeSeatLimit: freeSeatLimit,
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}

// Resolve classifies the identity signal without committing anything beyond a
// compatible token binding. Names compare case-insensitively.
func (r *Resolver) Resolve(ctx context.Context, tenantID, submittedName, deviceToken string) (*Outcome, error) {
	ctx, span := r.tracer.Start(ctx, "identity.Resolver.Resolve")
	defer span.End()

	name := strings.TrimSpace(submittedName)
	if name == "" {
		return nil, ErrEmptyName
	}

	if deviceToken != "" {
		bound, err := r.storage.GetWorkerByDeviceToken(ctx, tenantID, deviceToken)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up device token: %w", err)
		}

		if bound != nil {
			if strings.EqualFold(bound.Name, name) {
				return &Outcome{Kind: KindReturningBoundWorker, Worker: bound}, nil
			}
			if !bound.Floating {
				r.logger.Security().DeviceConflict(tenantID, name)
				return &Outcome{Kind: KindNameMismatchConflict, Worker: bound, AttemptedName: name}, nil
			}
			// Floating workers trade identity strictness for resilience on
			// shared or unreliable devices; resolve by name instead. The
			// token stays with its floating holder.
			return r.resolveByName(ctx, tenantID, name, deviceToken, true)
		}
	}

	return r.resolveByName(ctx, tenantID, name, deviceToken, false)
}

// resolveByName settles identity by the submitted name. tokenHeld marks a
// token still bound to another (floating) worker: the name-matched worker
// proceeds without a binding, since the tenant-wide unique index admits one
// holder per token.
func (r *Resolver) resolveByName(ctx context.Context, tenantID, name, deviceToken string, tokenHeld bool) (*Outcome, error) {
	worker, err := r.storage.GetWorkerByName(ctx, tenantID, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &Outcome{Kind: KindNewWorkerRegistration, AttemptedName: name}, nil
		}
		return nil, fmt.Errorf("failed to look up worker by name: %w", err)
	}

	if worker.DeviceToken != nil && *worker.DeviceToken != deviceToken {
		if !worker.Floating {
			r.logger.Security().DeviceConflict(tenantID, name)
			return &Outcome{Kind: KindDeviceAlreadyClaimed, AttemptedName: name}, nil
		}
		// Floating: proceed as this worker but leave the existing binding alone.
		return &Outcome{Kind: KindBindAndProceed, Worker: worker}, nil
	}

	if deviceToken != "" && !tokenHeld {
		bound, err := r.storage.BindDeviceToken(ctx, worker.ID, deviceToken)
		if err != nil {
			if errors.Is(err, storage.ErrDuplicateKey) {
				// Another worker claimed the token since the lookup. The
				// name settled the identity; proceed without a binding.
				return &Outcome{Kind: KindBindAndProceed, Worker: worker}, nil
			}
			return nil, fmt.Errorf("failed to bind device token: %w", err)
		}
		if !bound {
			// Raced with another binding since the lookup above.
			return &Outcome{Kind: KindDeviceAlreadyClaimed, AttemptedName: name}, nil
		}
		worker.DeviceToken = &deviceToken
	}

	return &Outcome{Kind: KindBindAndProceed, Worker: worker}, nil
}

// ConfirmWorker is the "yes, that's me" path out of a name mismatch conflict:
// proceed as the worker the device is actually bound to.
func (r *Resolver) ConfirmWorker(ctx context.Context, tenantID, workerID string) (*types.Worker, error) {
	ctx, span := r.tracer.Start(ctx, "identity.Resolver.ConfirmWorker")
	defer span.End()

	worker, err := r.storage.GetWorkerByID(ctx, tenantID, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load worker: %w", err)
	}

	return worker, nil
}

// Register creates a worker after the explicit registration confirmation.
// The seat-limit check and the insert run in one transaction so a burst of
// confirmations cannot overshoot the plan limit.
func (r *Resolver) Register(ctx context.Context, tenantID, name, deviceToken string) (*types.Worker, error) {
	ctx, span := r.tracer.Start(ctx, "identity.Resolver.Register")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	var worker *types.Worker
	err := r.dbClient.WithTx(ctx, func(txCtx context.Context) error {
		existing, err := r.storage.GetWorkerByName(txCtx, tenantID, name)
		if err == nil {
			// The name was created between scan and confirmation; treat the
			// confirmation as a binding attempt on the existing worker.
			return r.bindExisting(txCtx, tenantID, existing, deviceToken, &worker)
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("failed to look up worker by name: %w", err)
		}

		if err := r.checkSeatLimit(txCtx, tenantID); err != nil {
			return err
		}

		w := &types.Worker{
			TenantID: tenantID,
			Name:     name,
			Role:     types.RoleMember,
		}
		if deviceToken != "" {
			held, err := r.tokenHeldElsewhere(txCtx, tenantID, deviceToken, "")
			if err != nil {
				return err
			}
			if !held {
				w.DeviceToken = &deviceToken
			}
		}

		worker, err = r.storage.CreateWorker(txCtx, w)
		if err != nil {
			return fmt.Errorf("failed to create worker: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return worker, nil
}

func (r *Resolver) bindExisting(ctx context.Context, tenantID string, existing *types.Worker, deviceToken string, out **types.Worker) error {
	if existing.DeviceToken != nil && *existing.DeviceToken != deviceToken && !existing.Floating {
		return ErrDeviceClaimed
	}

	if deviceToken != "" && (existing.DeviceToken == nil || *existing.DeviceToken == deviceToken) {
		held, err := r.tokenHeldElsewhere(ctx, tenantID, deviceToken, existing.ID)
		if err != nil {
			return err
		}
		if !held {
			bound, err := r.storage.BindDeviceToken(ctx, existing.ID, deviceToken)
			if err != nil {
				return fmt.Errorf("failed to bind device token: %w", err)
			}
			if !bound {
				return ErrDeviceClaimed
			}
			existing.DeviceToken = &deviceToken
		}
	}

	*out = existing
	return nil
}

// tokenHeldElsewhere reports whether deviceToken is bound to a worker other
// than selfID. A non-floating holder refuses the claim outright; a floating
// holder keeps its binding and the caller proceeds unbound. Runs inside the
// registration transaction so the answer holds through the insert.
func (r *Resolver) tokenHeldElsewhere(ctx context.Context, tenantID, deviceToken, selfID string) (bool, error) {
	holder, err := r.storage.GetWorkerByDeviceToken(ctx, tenantID, deviceToken)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up device token: %w", err)
	}

	if holder.ID == selfID {
		return false, nil
	}
	if !holder.Floating {
		return true, ErrDeviceClaimed
	}

	return true, nil
}

func (r *Resolver) checkSeatLimit(ctx context.Context, tenantID string) error {
	tenant, err := r.storage.GetTenantByID(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("failed to load tenant: %w", err)
	}

	if tenant.Plan != types.PlanFree {
		return nil
	}

	count, err := r.storage.CountWorkers(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("failed to count workers: %w", err)
	}
	if count >= r.freeSeatLimit {
		return ErrSeatLimitExceeded
	}

	return nil
}
