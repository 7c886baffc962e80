// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package geofence decides whether a submitted coordinate pair falls within a
// tenant's configured circular policy region. Evaluation fails closed: a
// misconfigured policy blocks the clock action instead of skipping the check.
package geofence

import (
	"math"
	"strconv"

	"github.com/punchpoint/timeclock-service/pkg/settings"
)

const (
	// earthRadiusMeters is the mean Earth radius used by the haversine formula.
	earthRadiusMeters = 6371000.0
	metersToFeet      = 3.28084
	// DefaultRadiusFeet applies when a tenant has no radius configured.
	DefaultRadiusFeet = 500.0
)

type VerdictKind int

const (
	Pass VerdictKind = iota
	Fail
	ConfigError
)

func (k VerdictKind) String() string {
	switch k {
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	case ConfigError:
		return "config_error"
	default:
		return "unknown"
	}
}

// Verdict is the outcome of a geofence evaluation. DistanceFeet and
// AllowedFeet are populated on Fail; Reason on ConfigError.
type Verdict struct {
	Kind         VerdictKind
	DistanceFeet float64
	AllowedFeet  float64
	Reason       string
}

// Required reports whether the tenant requires location verification. Missing
// configuration counts as required.
func Required(tenantSettings map[string]string) bool {
	v, ok := tenantSettings[settings.KeyLocationVerificationEnabled]
	if !ok {
		return true
	}
	return v == settings.BoolTrue
}

// Evaluate checks candidate coordinates against the tenant's building location
// and radius. With verification disabled it passes without inspecting the
// coordinates at all. The boundary is inclusive: a distance exactly equal to
// the allowed radius passes.
func Evaluate(tenantSettings map[string]string, candidateLat, candidateLon string) Verdict {
	if !Required(tenantSettings) {
		return Verdict{Kind: Pass}
	}

	buildingLat, err := parseCoord(tenantSettings[settings.KeyBuildingLatitude])
	if err != nil {
		return configError("building latitude is not configured correctly")
	}
	buildingLon, err := parseCoord(tenantSettings[settings.KeyBuildingLongitude])
	if err != nil {
		return configError("building longitude is not configured correctly")
	}

	lat, err := parseCoord(candidateLat)
	if err != nil {
		return configError("could not read the submitted latitude")
	}
	lon, err := parseCoord(candidateLon)
	if err != nil {
		return configError("could not read the submitted longitude")
	}

	allowedFeet := DefaultRadiusFeet
	if raw, ok := tenantSettings[settings.KeyGeofenceRadiusFeet]; ok && raw != "" {
		allowedFeet, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return configError("geofence radius is not configured correctly")
		}
	}

	distanceFeet := haversineMeters(buildingLat, buildingLon, lat, lon) * metersToFeet
	if distanceFeet > allowedFeet {
		return Verdict{Kind: Fail, DistanceFeet: distanceFeet, AllowedFeet: allowedFeet}
	}

	return Verdict{Kind: Pass}
}

func parseCoord(raw string) (float64, error) {
	return strconv.ParseFloat(raw, 64)
}

func haversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

func configError(reason string) Verdict {
	return Verdict{Kind: ConfigError, Reason: reason}
}
