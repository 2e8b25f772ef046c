// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/tomtom215/mimapa/internal/config"
	"github.com/tomtom215/mimapa/internal/logging"
	"github.com/tomtom215/mimapa/internal/metrics"
)

// Document is the loosely typed form a record takes inside the gateway.
type Document = bson.M

// Field names every collection shares.
const (
	FieldID        = "_id"
	FieldTimestamp = "timestamp"
)

// Gateway is the only component that talks to MongoDB. Build one with New at
// startup and share the pointer; the underlying client is safe for
// concurrent use.
//
// The gateway starts Unconnected. Connect (or the first operation) moves it to
// Connected; Close moves it back, and a later operation reconnects.
type Gateway struct {
	cfg     config.MongoConfig
	loc     *time.Location
	breaker *breaker
	logger  zerolog.Logger

	mu     sync.RWMutex
	client *mongo.Client
	db     *mongo.Database
}

// Option customizes a Gateway.
type Option func(*Gateway)

// WithLocation sets the zone timestamps are rendered in. Default UTC.
func WithLocation(loc *time.Location) Option {
	return func(g *Gateway) {
		if loc != nil {
			g.loc = loc
		}
	}
}

// New returns an unconnected gateway. It never dials.
func New(cfg config.MongoConfig, opts ...Option) *Gateway {
	g := &Gateway{
		cfg:     cfg,
		loc:     time.UTC,
		breaker: newBreaker(cfg.Breaker),
		logger:  logging.WithComponent("store"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Connect dials MongoDB and pings the primary. Calling it while connected is
// a no-op. Concurrent callers are serialized, so only one client is built.
func (g *Gateway) Connect(ctx context.Context) error {
	_, err := g.connect(ctx)
	return err
}

func (g *Gateway) connect(ctx context.Context) (*mongo.Database, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.db != nil {
		return g.db, nil
	}

	opts := options.Client().
		ApplyURI(g.cfg.URI).
		SetAppName(g.cfg.AppName).
		SetConnectTimeout(g.cfg.ConnectTimeout).
		SetServerSelectionTimeout(g.cfg.ConnectTimeout)
	if g.cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(g.cfg.MaxPoolSize)
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, wrap("connect", "", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, g.cfg.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		g.logger.Error().Err(err).Msg("Failed to reach MongoDB")
		return nil, wrap("connect", "", err)
	}

	g.client = client
	g.db = client.Database(g.cfg.Database)
	metrics.SetDBConnected(true)
	g.logger.Info().Str("database", g.cfg.Database).Msg("Connected to MongoDB")
	return g.db, nil
}

// database returns the live handle, connecting on first use.
func (g *Gateway) database(ctx context.Context) (*mongo.Database, error) {
	g.mu.RLock()
	db := g.db
	g.mu.RUnlock()
	if db != nil {
		return db, nil
	}
	return g.connect(ctx)
}

func (g *Gateway) collection(ctx context.Context, name string) (*mongo.Collection, error) {
	db, err := g.database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(name), nil
}

// Connected reports whether a client is currently held.
func (g *Gateway) Connected() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.client != nil
}

// Ping checks the connection, connecting first if needed.
func (g *Gateway) Ping(ctx context.Context) error {
	return g.run(ctx, "ping", "", func(ctx context.Context) error {
		db, err := g.database(ctx)
		if err != nil {
			return err
		}
		return db.Client().Ping(ctx, nil)
	})
}

// Close disconnects and resets the gateway. Safe to call repeatedly.
func (g *Gateway) Close(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client == nil {
		return nil
	}

	err := g.client.Disconnect(ctx)
	g.client = nil
	g.db = nil
	metrics.SetDBConnected(false)

	if err != nil {
		return wrap("close", "", err)
	}
	g.logger.Info().Msg("MongoDB connection closed")
	return nil
}

// run executes one round trip under the operation timeout, the circuit
// breaker and the query metrics.
func (g *Gateway) run(ctx context.Context, op, collection string, fn func(ctx context.Context) error) error {
	if g.cfg.OperationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.OperationTimeout)
		defer cancel()
	}

	start := time.Now()
	err := g.breaker.execute(func() error { return fn(ctx) })

	class := ""
	if countsAsFailure(err) {
		class = errorClass(err)
	}
	metrics.RecordDBQuery(op, collection, time.Since(start), class)

	if err != nil && countsAsFailure(err) {
		logging.Ctx(ctx).Error().
			Err(err).
			Str("component", "store").
			Str("operation", op).
			Str("collection", collection).
			Msg("Store operation failed")
	}
	return err
}

// String is used in startup logs; it never includes credentials.
func (g *Gateway) String() string {
	return fmt.Sprintf("mongodb database=%s breaker=%s", g.cfg.Database, stateToString(g.breaker.state()))
}
