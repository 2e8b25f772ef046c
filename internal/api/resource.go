// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/mimapa/internal/logging"
	"github.com/tomtom215/mimapa/internal/models"
	"github.com/tomtom215/mimapa/internal/store"
	"github.com/tomtom215/mimapa/internal/store/query"
	"github.com/tomtom215/mimapa/internal/validation"
)

// emptiable is implemented by update bodies.
type emptiable interface {
	IsEmpty() bool
}

// listFilter maps a query parameter onto a filter on the field of the same
// name: exact match, or case-insensitive substring when substring is set.
type listFilter struct {
	param     string
	substring bool
}

// resource implements the five CRUD endpoints for the schema T, the create
// body C and the update body U.
type resource[T any, C any, U emptiable] struct {
	name         string
	store        ResourceStore[T]
	msgs         resourceMessages
	filters      []listFilter
	defaultLimit int64
	maxBodyBytes int64

	// beforeCreate fills server-side fields after validation.
	beforeCreate func(context.Context, *C)
}

func (res *resource[T, C, U]) list(w http.ResponseWriter, r *http.Request) {
	if !acceptsJSON(r) {
		respondDetail(w, http.StatusNotAcceptable, detailNotAcceptable)
		return
	}

	offset, err := getIntParam(r, "offset", 0)
	if err != nil {
		respondDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	limit, err := getIntParam(r, "limit", res.defaultLimit)
	if err != nil {
		respondDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	q := r.URL.Query()
	b := query.NewBuilder()
	for _, f := range res.filters {
		if f.substring {
			b.AddPattern(f.param, q.Get(f.param))
		} else {
			b.AddEquals(f.param, q.Get(f.param))
		}
	}
	spec := query.NewSpec(b.Filter(), q.Get("fields"), q.Get("sort"), offset, limit)

	items, err := res.store.List(r.Context(), spec)
	if err != nil {
		respondServerError(w, r, res.msgs.listFailed, err)
		return
	}
	total, err := res.store.Count(r.Context(), spec.Filter)
	if err != nil {
		respondServerError(w, r, res.msgs.listFailed, err)
		return
	}

	w.Header().Set(HeaderTotalCount, strconv.FormatInt(total, 10))
	w.Header().Set(HeaderAcceptEncoding, "gzip")
	respondJSON(w, http.StatusOK, items)
}

func (res *resource[T, C, U]) get(w http.ResponseWriter, r *http.Request) {
	if !acceptsJSON(r) {
		respondDetail(w, http.StatusNotAcceptable, detailNotAcceptable)
		return
	}

	id := chi.URLParam(r, "id")
	item, found, err := res.store.Get(r.Context(), id)
	switch {
	case errors.Is(err, store.ErrInvalidID), err == nil && !found:
		logging.Ctx(r.Context()).Debug().
			Str("collection", res.name).
			Str("id", logging.Truncate(sanitizeLogValue(id), 64)).
			Msg("Resource not found")
		respondDetail(w, http.StatusNotFound, fmt.Sprintf(res.msgs.notFound, id))
		return
	case err != nil:
		respondServerError(w, r, res.msgs.getFailed, err)
		return
	}

	w.Header().Set(HeaderTotalCount, "1")
	respondJSON(w, http.StatusOK, item)
}

func (res *resource[T, C, U]) create(w http.ResponseWriter, r *http.Request) {
	if !hasJSONBody(r) {
		respondDetail(w, http.StatusUnsupportedMediaType, detailUnsupportedMedia)
		return
	}

	var body C
	if !res.decode(w, r, &body) {
		return
	}
	if verr := validation.ValidateStruct(&body); verr != nil {
		respondDetail(w, http.StatusBadRequest, verr.Error())
		return
	}
	if res.beforeCreate != nil {
		res.beforeCreate(r.Context(), &body)
	}

	created, err := res.store.Create(r.Context(), &body)
	if err != nil {
		respondServerError(w, r, res.msgs.createFailed, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (res *resource[T, C, U]) update(w http.ResponseWriter, r *http.Request) {
	if !hasJSONBody(r) {
		respondDetail(w, http.StatusUnsupportedMediaType, detailUnsupportedMedia)
		return
	}

	var body U
	if !res.decode(w, r, &body) {
		return
	}
	if body.IsEmpty() {
		respondDetail(w, http.StatusUnprocessableEntity, res.msgs.noFields)
		return
	}
	if verr := validation.ValidateStruct(&body); verr != nil {
		respondDetail(w, http.StatusBadRequest, verr.Error())
		return
	}

	id := chi.URLParam(r, "id")
	updated, found, err := res.store.Update(r.Context(), id, &body)
	switch {
	case errors.Is(err, store.ErrInvalidID):
		respondDetail(w, http.StatusBadRequest, fmt.Sprintf(detailFormatError, err))
		return
	case errors.Is(err, store.ErrNoFields):
		respondDetail(w, http.StatusUnprocessableEntity, res.msgs.noFields)
		return
	case err != nil:
		respondServerError(w, r, res.msgs.updateFailed, err)
		return
	case !found:
		respondDetail(w, http.StatusNotFound, res.msgs.updateNotFound)
		return
	}

	respondJSON(w, http.StatusOK, models.UpdateResponse[T]{
		Detail: res.msgs.updated,
		Result: updated,
	})
}

func (res *resource[T, C, U]) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	deleted, err := res.store.Delete(r.Context(), id)
	switch {
	case errors.Is(err, store.ErrInvalidID), err == nil && deleted == 0:
		respondDetail(w, http.StatusNotFound, res.msgs.deleteNotFound)
		return
	case err != nil:
		respondServerError(w, r, res.msgs.deleteFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, models.DeleteResponse{Details: res.msgs.deleted})
}

// decode reads the body into dst and answers the request itself on failure.
func (res *resource[T, C, U]) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := decodeJSONBody(w, r, dst, res.maxBodyBytes)
	switch {
	case err == nil:
		return true
	case errors.Is(err, ErrBodyTooLarge):
		respondDetail(w, http.StatusRequestEntityTooLarge, err.Error())
	default:
		respondDetail(w, http.StatusBadRequest, fmt.Sprintf(detailFormatError, err))
	}
	return false
}
