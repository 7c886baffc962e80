// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Plan names a tenant's subscription tier.
type Plan string

const (
	PlanFree Plan = "Free"
	PlanPro  Plan = "Pro"
)

// Role names a worker's role within a tenant.
type Role string

const (
	RoleMember  Role = "Member"
	RoleManager Role = "Manager"
)

type Tenant struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	JoinToken string    `db:"join_token"`
	Plan      Plan      `db:"plan"`
	CreatedAt time.Time `db:"created_at"`
}

// Worker is an identity within a tenant. A worker may clock in and out without
// ever holding a login credential; Email and PasswordHash stay nil until an
// account is explicitly created.
type Worker struct {
	ID           string    `db:"id"`
	TenantID     string    `db:"tenant_id"`
	Name         string    `db:"name"`
	Email        *string   `db:"email"`
	PasswordHash *string   `db:"password_hash"`
	Role         Role      `db:"role"`
	DeviceToken  *string   `db:"device_token"`
	Floating     bool      `db:"floating"`
	CreatedAt    time.Time `db:"created_at"`
}

// LedgerEntry is one clock-in/clock-out pair. DateLabel is the tenant-local
// formatted calendar date (e.g. "Jun. 3rd, 2025") used as the natural key for
// same-day lookups. A nil ClockOut means the shift is still open.
type LedgerEntry struct {
	ID        string     `db:"id"`
	TenantID  string     `db:"tenant_id"`
	WorkerID  string     `db:"worker_id"`
	DateLabel string     `db:"date_label"`
	ClockIn   time.Time  `db:"clock_in"`
	ClockOut  *time.Time `db:"clock_out"`
	CreatedAt time.Time  `db:"created_at"`
}

type Setting struct {
	ID       string `db:"id"`
	TenantID string `db:"tenant_id"`
	Name     string `db:"name"`
	Value    string `db:"value"`
}

type AuditEvent struct {
	ID        string    `db:"id"`
	TenantID  string    `db:"tenant_id"`
	WorkerID  *string   `db:"worker_id"`
	EventType string    `db:"event_type"`
	Details   string    `db:"details"`
	CreatedAt time.Time `db:"created_at"`
}
