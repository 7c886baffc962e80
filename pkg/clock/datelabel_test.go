// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/punchpoint/timeclock-service/pkg/settings"
)

func TestDateLabel(t *testing.T) {
	testCases := []struct {
		day      int
		expected string
	}{
		{1, "Jun. 1st, 2025"},
		{2, "Jun. 2nd, 2025"},
		{3, "Jun. 3rd, 2025"},
		{4, "Jun. 4th, 2025"},
		{11, "Jun. 11th, 2025"},
		{12, "Jun. 12th, 2025"},
		{13, "Jun. 13th, 2025"},
		{21, "Jun. 21st, 2025"},
		{22, "Jun. 22nd, 2025"},
		{23, "Jun. 23rd, 2025"},
		{30, "Jun. 30th, 2025"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			d := time.Date(2025, time.June, tc.day, 9, 30, 0, 0, time.UTC)
			assert.Equal(t, tc.expected, DateLabel(d))
		})
	}
}

func TestTimeLabel(t *testing.T) {
	d := time.Date(2025, time.June, 3, 14, 5, 9, 0, time.UTC)
	assert.Equal(t, "02:05:09 PM", TimeLabel(d))

	morning := time.Date(2025, time.June, 3, 0, 0, 1, 0, time.UTC)
	assert.Equal(t, "12:00:01 AM", TimeLabel(morning))
}

func TestTenantLocation(t *testing.T) {
	chicago, err := time.LoadLocation("America/Chicago")
	assert.NoError(t, err)
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	assert.NoError(t, err)

	testCases := []struct {
		name     string
		settings map[string]string
		fallback string
		expected *time.Location
	}{
		{
			name:     "configured zone wins",
			settings: map[string]string{settings.KeyTimezone: "Asia/Tokyo"},
			fallback: "America/Chicago",
			expected: tokyo,
		},
		{
			name:     "fallback when unset",
			settings: map[string]string{},
			fallback: "America/Chicago",
			expected: chicago,
		},
		{
			name:     "invalid zone falls back to default",
			settings: map[string]string{settings.KeyTimezone: "Mars/Olympus"},
			fallback: "America/Chicago",
			expected: chicago,
		},
		{
			name:     "empty everything uses default",
			settings: map[string]string{},
			fallback: "",
			expected: chicago,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			loc := TenantLocation(tc.settings, tc.fallback)
			assert.Equal(t, tc.expected.String(), loc.String())
		})
	}
}
