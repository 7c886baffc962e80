// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	l := NewLogger("DEBUG")
	if l == nil {
		t.Fatal("expected logger")
	}
	l.Debugf("debug %s", "message")
}

func TestInvalidLevelFallsBack(t *testing.T) {
	l := NewLogger("invalid")
	if l == nil {
		t.Fatal("expected logger despite invalid level")
	}
}

func TestSecurityLogger(t *testing.T) {
	l := NewNoopLogger()
	l.Security().SystemStartup()
	l.Security().DeviceConflict("tenant-1", "Jane Doe")
	l.Security().SystemShutdown()
}
