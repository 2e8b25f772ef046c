// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/mimapa/docs" // Import generated swagger docs
	"github.com/tomtom215/mimapa/internal/api"
	"github.com/tomtom215/mimapa/internal/config"
	"github.com/tomtom215/mimapa/internal/logging"
	"github.com/tomtom215/mimapa/internal/models"
	"github.com/tomtom215/mimapa/internal/store"
	"github.com/tomtom215/mimapa/internal/supervisor"
	"github.com/tomtom215/mimapa/internal/supervisor/services"
)

const (
	mongoMonitorInterval = 30 * time.Second
	mongoCloseTimeout    = 5 * time.Second
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("database", cfg.Mongo.Database).
		Str("base_path", cfg.API.BasePath).
		Bool("breaker", cfg.Mongo.Breaker.Enabled).
		Msg("Starting Mi Mapa with supervisor tree")

	loc, err := cfg.API.Location()
	if err != nil {
		logging.Fatal().Err(err).Str("timezone", cfg.API.VisitTimezone).Msg("Failed to load visit timezone")
	}

	// The gateway connects lazily; the monitor service below keeps it connected.
	gw := store.New(cfg.Mongo, store.WithLocation(loc))
	markers := store.NewRepository[models.Marker](gw, models.CollectionMarkers, false)
	visits := store.NewRepository[models.Visit](gw, models.CollectionVisits, true)

	handler, err := api.NewHandler(markers, visits, gw, cfg.API)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create API handler")
	}
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg.Security), cfg.API.BasePath)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout + mongoCloseTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddDataService(services.NewMongoMonitorService(gw, mongoMonitorInterval, mongoCloseTimeout))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal, waiting for supervisor to finish...")
		err = <-errCh
	case err = <-errCh:
		stop()
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
