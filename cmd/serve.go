// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/punchpoint/timeclock-service/internal/cache"
	cacheMemory "github.com/punchpoint/timeclock-service/internal/cache/memory"
	cacheRedis "github.com/punchpoint/timeclock-service/internal/cache/redis"
	"github.com/punchpoint/timeclock-service/internal/config"
	"github.com/punchpoint/timeclock-service/internal/db"
	"github.com/punchpoint/timeclock-service/internal/logging"
	"github.com/punchpoint/timeclock-service/internal/monitoring/prometheus"
	"github.com/punchpoint/timeclock-service/internal/storage"
	"github.com/punchpoint/timeclock-service/internal/tracing"
	"github.com/punchpoint/timeclock-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	// Local development convenience, ignored when no .env is present.
	_ = godotenv.Load()

	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("timeclock-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	var cacheClient cache.Cache
	switch specs.CacheBackend {
	case "redis":
		cacheClient = cacheRedis.New(specs.RedisAddr, specs.RedisDB)
		logger.Infof("Using redis cache at %s", specs.RedisAddr)
	default:
		cacheClient = cacheMemory.New(specs.PendingTokenTTL)
		logger.Info("Using in-memory cache")
	}

	router := web.NewRouter(
		web.Config{
			PendingTokenSecret: specs.PendingTokenSecret,
			PendingTokenTTL:    specs.PendingTokenTTL,
			DefaultTimezone:    specs.DefaultTimezone,
			FreePlanSeatLimit:  specs.FreePlanSeatLimit,
		},
		s,
		dbClient,
		cacheClient,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
