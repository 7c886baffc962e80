// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package settings

// Documented tenant setting keys. Values are stored as strings; booleans use
// "TRUE"/"FALSE".
const (
	KeyLocationVerificationEnabled = "LocationVerificationEnabled"
	KeyBuildingLatitude            = "BuildingLatitude"
	KeyBuildingLongitude           = "BuildingLongitude"
	KeyGeofenceRadiusFeet          = "GeofenceRadiusFeet"
	KeyTimezone                    = "Timezone"
)

const (
	BoolTrue  = "TRUE"
	BoolFalse = "FALSE"
)

// DefaultTimezone is the zone applied when a tenant has not configured one.
const DefaultTimezone = "America/Chicago"
