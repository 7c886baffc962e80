// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package geofence

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/punchpoint/timeclock-service/pkg/settings"
)

// Canonical Chicago office coordinates used as the building anchor.
const (
	buildingLat = "41.8781"
	buildingLon = "-87.6298"
)

func enabledSettings() map[string]string {
	return map[string]string{
		settings.KeyLocationVerificationEnabled: settings.BoolTrue,
		settings.KeyBuildingLatitude:            buildingLat,
		settings.KeyBuildingLongitude:           buildingLon,
	}
}

func TestRequired(t *testing.T) {
	testCases := []struct {
		name     string
		settings map[string]string
		expected bool
	}{
		{
			name:     "missing key defaults to enabled",
			settings: map[string]string{},
			expected: true,
		},
		{
			name:     "explicitly enabled",
			settings: map[string]string{settings.KeyLocationVerificationEnabled: settings.BoolTrue},
			expected: true,
		},
		{
			name:     "explicitly disabled",
			settings: map[string]string{settings.KeyLocationVerificationEnabled: settings.BoolFalse},
			expected: false,
		},
		{
			name:     "any other value disables",
			settings: map[string]string{settings.KeyLocationVerificationEnabled: "true"},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Required(tc.settings))
		})
	}
}

func TestEvaluate_DisabledSkipsParsing(t *testing.T) {
	s := map[string]string{settings.KeyLocationVerificationEnabled: settings.BoolFalse}

	// Garbage coordinates must not matter when verification is off.
	verdict := Evaluate(s, "not-a-number", "")

	assert.Equal(t, Pass, verdict.Kind)
}

func TestEvaluate_InsideFence(t *testing.T) {
	verdict := Evaluate(enabledSettings(), buildingLat, buildingLon)

	assert.Equal(t, Pass, verdict.Kind)
}

func TestEvaluate_OutsideFence(t *testing.T) {
	// Roughly 0.01 degrees of latitude is about 3600 feet, well past the
	// default 500 foot radius.
	verdict := Evaluate(enabledSettings(), "41.8881", buildingLon)

	assert.Equal(t, Fail, verdict.Kind)
	assert.Greater(t, verdict.DistanceFeet, DefaultRadiusFeet)
	assert.Equal(t, DefaultRadiusFeet, verdict.AllowedFeet)
}

func TestEvaluate_BoundaryIsInclusive(t *testing.T) {
	const candidateLat = "41.8800"

	anchorLat, err := strconv.ParseFloat(buildingLat, 64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	anchorLon, err := strconv.ParseFloat(buildingLon, 64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lat, err := strconv.ParseFloat(candidateLat, 64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	distFeet := haversineMeters(anchorLat, anchorLon, lat, anchorLon) * metersToFeet

	t.Run("exactly on the radius passes", func(t *testing.T) {
		s := enabledSettings()
		s[settings.KeyGeofenceRadiusFeet] = strconv.FormatFloat(distFeet, 'f', -1, 64)

		verdict := Evaluate(s, candidateLat, buildingLon)

		assert.Equal(t, Pass, verdict.Kind)
	})

	t.Run("one foot over fails", func(t *testing.T) {
		s := enabledSettings()
		s[settings.KeyGeofenceRadiusFeet] = strconv.FormatFloat(distFeet-1, 'f', -1, 64)

		verdict := Evaluate(s, candidateLat, buildingLon)

		assert.Equal(t, Fail, verdict.Kind)
		assert.InDelta(t, distFeet, verdict.DistanceFeet, 0.001)
		assert.InDelta(t, distFeet-1, verdict.AllowedFeet, 0.001)
	})
}

func TestEvaluate_CustomRadius(t *testing.T) {
	s := enabledSettings()
	s[settings.KeyGeofenceRadiusFeet] = "5000"

	verdict := Evaluate(s, "41.8881", buildingLon)

	assert.Equal(t, Pass, verdict.Kind)
}

func TestEvaluate_ConfigErrors(t *testing.T) {
	testCases := []struct {
		name     string
		mutate   func(map[string]string)
		lat, lon string
	}{
		{
			name:   "missing building latitude",
			mutate: func(s map[string]string) { delete(s, settings.KeyBuildingLatitude) },
			lat:    buildingLat, lon: buildingLon,
		},
		{
			name:   "malformed building longitude",
			mutate: func(s map[string]string) { s[settings.KeyBuildingLongitude] = "east" },
			lat:    buildingLat, lon: buildingLon,
		},
		{
			name:   "malformed radius",
			mutate: func(s map[string]string) { s[settings.KeyGeofenceRadiusFeet] = "wide" },
			lat:    buildingLat, lon: buildingLon,
		},
		{
			name:   "missing candidate coordinates",
			mutate: func(s map[string]string) {},
			lat:    "", lon: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := enabledSettings()
			tc.mutate(s)

			verdict := Evaluate(s, tc.lat, tc.lon)

			assert.Equal(t, ConfigError, verdict.Kind)
			assert.NotEmpty(t, verdict.Reason)
		})
	}
}

func TestHaversineMeters_KnownDistance(t *testing.T) {
	// Chicago to Milwaukee is about 131 km great-circle.
	d := haversineMeters(41.8781, -87.6298, 43.0389, -87.9065)

	assert.InDelta(t, 131000, d, 2000)
}
