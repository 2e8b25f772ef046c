// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/mimapa/internal/logging"
	"github.com/tomtom215/mimapa/internal/metrics"
)

// DBConnection is the lifecycle of the store gateway, satisfied by
// *store.Gateway.
type DBConnection interface {
	Connect(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// MongoMonitorService keeps the MongoDB connection alive for the lifetime of
// the process. It connects at start, retrying every interval while the
// database is down, pings every interval afterwards and closes the
// connection on shutdown.
//
// The API keeps serving while the database is unreachable: requests fail with
// 500, /health/ready reports 503, and mimapa_db_connected drops to 0.
type MongoMonitorService struct {
	db           DBConnection
	interval     time.Duration
	closeTimeout time.Duration
	name         string
	logger       zerolog.Logger
}

// NewMongoMonitorService wraps db. A non-positive interval means 30s.
func NewMongoMonitorService(db DBConnection, interval, closeTimeout time.Duration) *MongoMonitorService {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if closeTimeout <= 0 {
		closeTimeout = 5 * time.Second
	}
	return &MongoMonitorService{
		db:           db,
		interval:     interval,
		closeTimeout: closeTimeout,
		name:         "mongo-monitor",
		logger:       logging.WithComponent("mongo-monitor"),
	}
}

// Serve implements suture.Service. It only returns when ctx is done.
func (m *MongoMonitorService) Serve(ctx context.Context) error {
	connected := m.connect(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.closeTimeout)
			defer cancel()
			if err := m.db.Close(closeCtx); err != nil {
				m.logger.Warn().Err(err).Msg("Failed to close MongoDB connection")
			}
			return ctx.Err()

		case <-ticker.C:
			if !connected {
				connected = m.connect(ctx)
				continue
			}
			if err := m.db.Ping(ctx); err != nil {
				m.logger.Warn().Err(err).Msg("MongoDB ping failed")
				metrics.SetDBConnected(false)
				continue
			}
			metrics.SetDBConnected(true)
		}
	}
}

func (m *MongoMonitorService) connect(ctx context.Context) bool {
	if err := m.db.Connect(ctx); err != nil {
		m.logger.Warn().Err(err).Dur("retry_in", m.interval).Msg("MongoDB unavailable, will retry")
		metrics.SetDBConnected(false)
		return false
	}
	metrics.SetDBConnected(true)
	return true
}

func (m *MongoMonitorService) String() string {
	return m.name
}
