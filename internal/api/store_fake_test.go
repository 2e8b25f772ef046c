// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

package api

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tomtom215/mimapa/internal/models"
	"github.com/tomtom215/mimapa/internal/store"
	"github.com/tomtom215/mimapa/internal/store/objectid"
	"github.com/tomtom215/mimapa/internal/store/query"
)

// memStore is an in-memory ResourceStore. It keeps insertion order and
// ignores filters; tests inspect lastSpec for those.
type memStore[T any] struct {
	mu    sync.Mutex
	items map[string]T
	order []string

	build func(id string, in any) T
	apply func(cur T, fields any) T

	err      error // returned by every call when set
	lastSpec query.Spec
	creates  int
	updates  int
}

func newMemStore[T any](build func(string, any) T, apply func(T, any) T) *memStore[T] {
	return &memStore[T]{items: make(map[string]T), build: build, apply: apply}
}

func (m *memStore[T]) Count(_ context.Context, _ bson.D) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.items)), nil
}

func (m *memStore[T]) List(_ context.Context, spec query.Spec) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastSpec = spec
	if m.err != nil {
		return nil, m.err
	}

	out := make([]T, 0, len(m.order))
	for i, id := range m.order {
		if int64(i) < spec.Skip {
			continue
		}
		if spec.Limit > 0 && int64(len(out)) >= spec.Limit {
			break
		}
		out = append(out, m.items[id])
	}
	return out, nil
}

func (m *memStore[T]) Get(_ context.Context, id string) (v T, found bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return v, false, m.err
	}
	if !objectid.IsValid(id) {
		return v, false, store.ErrInvalidID
	}
	v, found = m.items[id]
	return v, found, nil
}

func (m *memStore[T]) Create(_ context.Context, in any) (v T, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return v, m.err
	}
	id := bson.NewObjectID().Hex()
	v = m.build(id, in)
	m.items[id] = v
	m.order = append(m.order, id)
	m.creates++
	return v, nil
}

func (m *memStore[T]) Update(_ context.Context, id string, fields any) (v T, found bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return v, false, m.err
	}
	if !objectid.IsValid(id) {
		return v, false, store.ErrInvalidID
	}
	cur, ok := m.items[id]
	if !ok {
		return v, false, nil
	}
	cur = m.apply(cur, fields)
	m.items[id] = cur
	m.updates++
	return cur, true, nil
}

func (m *memStore[T]) Delete(_ context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	if !objectid.IsValid(id) {
		return 0, store.ErrInvalidID
	}
	if _, ok := m.items[id]; !ok {
		return 0, nil
	}
	delete(m.items, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return 1, nil
}

func newMarkerStore() *memStore[models.Marker] {
	return newMemStore(
		func(id string, in any) models.Marker {
			c := in.(*models.MarkerCreate)
			return models.Marker{ID: id, Lugar: c.Lugar, Lat: c.Lat, Lon: c.Lon, Creador: c.Creador, Imagen: c.Imagen}
		},
		func(cur models.Marker, fields any) models.Marker {
			u := fields.(*models.MarkerUpdate)
			if u.Lugar != nil {
				cur.Lugar = u.Lugar
			}
			if u.Lat != nil {
				cur.Lat = u.Lat
			}
			if u.Lon != nil {
				cur.Lon = u.Lon
			}
			if u.Creador != nil {
				cur.Creador = u.Creador
			}
			if u.Imagen != nil {
				cur.Imagen = u.Imagen
			}
			return cur
		},
	)
}

func newVisitStore() *memStore[models.Visit] {
	return newMemStore(
		func(id string, in any) models.Visit {
			c := in.(*models.VisitCreate)
			return models.Visit{
				ID:               id,
				UsuarioVisitado:  c.UsuarioVisitado,
				UsuarioVisitante: c.UsuarioVisitante,
				OauthToken:       c.OauthToken,
				Timestamp:        c.Timestamp.Format(store.TimestampLayout),
			}
		},
		func(cur models.Visit, fields any) models.Visit {
			u := fields.(*models.VisitUpdate)
			if u.UsuarioVisitado != nil {
				cur.UsuarioVisitado = u.UsuarioVisitado
			}
			if u.UsuarioVisitante != nil {
				cur.UsuarioVisitante = u.UsuarioVisitante
			}
			if u.OauthToken != nil {
				cur.OauthToken = u.OauthToken
			}
			return cur
		},
	)
}

// fakePinger answers the readiness probe.
type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }
