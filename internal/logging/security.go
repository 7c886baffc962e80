// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

// SecurityLogger writes security events at Info level with a fixed event field
// so they can be filtered out of the regular application stream.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("security event", zap.String("event", "system_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("security event", zap.String("event", "system_shutdown"))
}

func (s *SecurityLogger) DeviceConflict(tenantID, workerName string) {
	s.l.Info("security event",
		zap.String("event", "device_conflict"),
		zap.String("tenant_id", tenantID),
		zap.String("worker_name", workerName),
	)
}

func (s *SecurityLogger) DeviceTokenCleared(tenantID, workerID string) {
	s.l.Info("security event",
		zap.String("event", "device_token_cleared"),
		zap.String("tenant_id", tenantID),
		zap.String("worker_id", workerID),
	)
}
