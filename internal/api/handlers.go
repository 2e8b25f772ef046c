// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

package api

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tomtom215/mimapa/internal/config"
	"github.com/tomtom215/mimapa/internal/logging"
	"github.com/tomtom215/mimapa/internal/models"
	"github.com/tomtom215/mimapa/internal/store/query"
)

// ResourceStore is the persistence a resource handler needs. It is satisfied
// by *store.Repository[T].
//
// Get and Update return found == false, with a nil error, when no document
// has the id. An id that is not a valid ObjectID fails with
// store.ErrInvalidID.
type ResourceStore[T any] interface {
	Count(ctx context.Context, filter bson.D) (int64, error)
	List(ctx context.Context, spec query.Spec) ([]T, error)
	Get(ctx context.Context, id string) (T, bool, error)
	Create(ctx context.Context, doc any) (T, error)
	Update(ctx context.Context, id string, fields any) (T, bool, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// MarkerStore persists markers.
type MarkerStore = ResourceStore[models.Marker]

// VisitStore persists visits.
type VisitStore = ResourceStore[models.Visit]

// HealthChecker reports whether the database answers. A nil pointer stored
// in the interface is not detected; pass a usable value.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Handler serves the marker, visit and health endpoints.
type Handler struct {
	markers *resource[models.Marker, models.MarkerCreate, models.MarkerUpdate]
	visits  *resource[models.Visit, models.VisitCreate, models.VisitUpdate]
	db      HealthChecker

	loc *time.Location
	now func() time.Time
}

// NewHandler wires the handler to its stores. cfg supplies page sizes, the
// request body limit and the zone visit timestamps are taken in. db is
// required.
func NewHandler(markers MarkerStore, visits VisitStore, db HealthChecker, cfg config.APIConfig) (*Handler, error) {
	if db == nil {
		return nil, errors.New("health checker is required")
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("visit timezone: %w", err)
	}

	h := &Handler{
		db:  db,
		loc: loc,
		now: time.Now,
	}

	h.markers = &resource[models.Marker, models.MarkerCreate, models.MarkerUpdate]{
		name:  models.CollectionMarkers,
		store: markers,
		msgs:  markerMessages,
		filters: []listFilter{
			{param: "creador"},
			{param: "lugar", substring: true},
		},
		defaultLimit: int64(cfg.MarkerPageSize),
		maxBodyBytes: cfg.MaxBodyBytes,
	}

	h.visits = &resource[models.Visit, models.VisitCreate, models.VisitUpdate]{
		name:  models.CollectionVisits,
		store: visits,
		msgs:  visitMessages,
		filters: []listFilter{
			{param: "usuarioVisitado"},
			{param: "usuarioVisitante"},
		},
		defaultLimit: int64(cfg.VisitPageSize),
		maxBodyBytes: cfg.MaxBodyBytes,
		beforeCreate: h.stampVisit,
	}

	return h, nil
}

// stampVisit sets the server-side timestamp, replacing whatever the client
// sent.
func (h *Handler) stampVisit(ctx context.Context, v *models.VisitCreate) {
	v.Timestamp = h.now().In(h.loc)

	logging.Ctx(ctx).Debug().
		Str("usuario_visitado", logging.MaskEmail(deref(v.UsuarioVisitado))).
		Str("usuario_visitante", logging.MaskEmail(deref(v.UsuarioVisitante))).
		Str("oauth_token", logging.MaskSecret(deref(v.OauthToken))).
		Time("timestamp", v.Timestamp).
		Msg("Visit stamped")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
