// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
	Fatalf(template string, args ...interface{})
	Security() SecurityLoggerInterface
	Sync() error
}

// SecurityLoggerInterface emits the audit-relevant events the service is
// expected to log regardless of the configured level.
type SecurityLoggerInterface interface {
	SystemStartup()
	SystemShutdown()
	DeviceConflict(tenantID, workerName string)
	DeviceTokenCleared(tenantID, workerID string)
}
