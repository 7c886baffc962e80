// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/punchpoint/timeclock-service/internal/cache"
	"github.com/punchpoint/timeclock-service/internal/db"
	"github.com/punchpoint/timeclock-service/internal/logging"
	"github.com/punchpoint/timeclock-service/internal/monitoring"
	"github.com/punchpoint/timeclock-service/internal/storage"
	"github.com/punchpoint/timeclock-service/internal/tracing"
	"github.com/punchpoint/timeclock-service/pkg/clock"
	"github.com/punchpoint/timeclock-service/pkg/identity"
	"github.com/punchpoint/timeclock-service/pkg/metrics"
	"github.com/punchpoint/timeclock-service/pkg/settings"
	"github.com/punchpoint/timeclock-service/pkg/status"
	"github.com/punchpoint/timeclock-service/pkg/tenant"
	"github.com/punchpoint/timeclock-service/pkg/workflow"
)

// Config carries the handful of runtime knobs the HTTP surface needs beyond
// its injected dependencies.
type Config struct {
	PendingTokenSecret string
	PendingTokenTTL    time.Duration
	DefaultTimezone    string
	FreePlanSeatLimit  int64
}

func NewRouter(
	cfg Config,
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	cacheClient cache.Cache,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	settingsProvider := settings.NewProvider(s, tracer, monitor, logger)
	resolver := identity.NewResolver(s, dbClient, cfg.FreePlanSeatLimit, tracer, monitor, logger)
	decider := clock.NewDecider(s, tracer, monitor, logger)
	executor := clock.NewExecutor(s, tracer, monitor, logger)

	codec := workflow.NewTokenCodec(cfg.PendingTokenSecret, cfg.PendingTokenTTL)
	store := workflow.NewTokenStore(cacheClient, cfg.PendingTokenTTL)

	workflowService := workflow.NewService(
		resolver,
		decider,
		executor,
		settingsProvider,
		s,
		codec,
		store,
		cfg.DefaultTimezone,
		tracer,
		monitor,
		logger,
	)
	tenantService := tenant.NewService(s, settingsProvider, cfg.DefaultTimezone, tracer, monitor, logger)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)
	workflow.NewAPI(workflowService, tracer, monitor, logger).RegisterEndpoints(router)

	// Admin mutations run inside a request transaction so multi-statement
	// operations commit or roll back together.
	router.Group(func(r chi.Router) {
		r.Use(db.TransactionMiddleware(dbClient, logger))
		tenant.NewAPI(tenantService, tracer, monitor, logger).RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(
		cors.Options{
			AllowedOrigins:   origins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		},
	)
}
