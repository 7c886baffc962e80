// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package settings

import (
	"context"
	"fmt"

	"github.com/punchpoint/timeclock-service/internal/logging"
	"github.com/punchpoint/timeclock-service/internal/monitoring"
	"github.com/punchpoint/timeclock-service/internal/tracing"
)

var _ ProviderInterface = (*Provider)(nil)

// editableKeys is the closed set of keys admins may write; anything else in an
// update payload is rejected rather than silently stored.
var editableKeys = map[string]bool{
	KeyLocationVerificationEnabled: true,
	KeyBuildingLatitude:            true,
	KeyBuildingLongitude:           true,
	KeyGeofenceRadiusFeet:          true,
	KeyTimezone:                    true,
}

type Provider struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewProvider(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Provider {
	return &Provider{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// GetSettings returns the tenant's setting rows as a map. The location
// verification flag defaults to enabled when the tenant never configured it.
func (p *Provider) GetSettings(ctx context.Context, tenantID string) (map[string]string, error) {
	ctx, span := p.tracer.Start(ctx, "settings.Provider.GetSettings")
	defer span.End()

	rows, err := p.storage.ListSettings(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant settings: %w", err)
	}

	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Name] = row.Value
	}

	if _, ok := out[KeyLocationVerificationEnabled]; !ok {
		out[KeyLocationVerificationEnabled] = BoolTrue
	}

	return out, nil
}

func (p *Provider) UpdateSettings(ctx context.Context, tenantID string, values map[string]string) error {
	ctx, span := p.tracer.Start(ctx, "settings.Provider.UpdateSettings")
	defer span.End()

	for name := range values {
		if !editableKeys[name] {
			return fmt.Errorf("unknown setting %q", name)
		}
	}

	for name, value := range values {
		if err := p.storage.UpsertSetting(ctx, tenantID, name, value); err != nil {
			return fmt.Errorf("failed to store setting %s: %w", name, err)
		}
	}

	return nil
}
