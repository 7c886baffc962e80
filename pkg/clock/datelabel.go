// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package clock

import (
	"fmt"
	"time"

	"github.com/punchpoint/timeclock-service/pkg/settings"
)

// DateLabel renders a tenant-local calendar date as the formatted label used
// as the ledger's natural key, e.g. "Jun. 3rd, 2025". The label format is
// load-bearing: existing ledger rows are keyed by it.
func DateLabel(t time.Time) string {
	return fmt.Sprintf("%s. %d%s, %d", t.Format("Jan"), t.Day(), daySuffix(t.Day()), t.Year())
}

// TimeLabel renders a clock time for display, e.g. "02:15:09 PM".
func TimeLabel(t time.Time) string {
	return t.Format("03:04:05 PM")
}

func daySuffix(d int) string {
	if d >= 11 && d <= 13 {
		return "th"
	}
	switch d % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// TenantLocation resolves the tenant's configured timezone, falling back to
// the system default zone when unset or invalid.
func TenantLocation(tenantSettings map[string]string, fallback string) *time.Location {
	name := tenantSettings[settings.KeyTimezone]
	if name == "" {
		name = fallback
	}
	if name == "" {
		name = settings.DefaultTimezone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		loc, err = time.LoadLocation(settings.DefaultTimezone)
		if err != nil {
			return time.UTC
		}
	}
	return loc
}
