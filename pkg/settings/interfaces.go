// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package settings

import (
	"context"

	"github.com/punchpoint/timeclock-service/internal/types"
)

// ProviderInterface is the narrow settings contract the clock workflow
// depends on.
type ProviderInterface interface {
	GetSettings(ctx context.Context, tenantID string) (map[string]string, error)
	UpdateSettings(ctx context.Context, tenantID string, values map[string]string) error
}

type StorageInterface interface {
	ListSettings(ctx context.Context, tenantID string) ([]*types.Setting, error)
	UpsertSetting(ctx context.Context, tenantID, name, value string) error
}
