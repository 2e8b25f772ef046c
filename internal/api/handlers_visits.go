// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

package api

import "net/http"

// ListVisits returns visits matching the optional filters.
//
// @Summary List visits
// @Description Returns the visits matching the filters. X-Total-Count carries the number of matches ignoring offset and limit.
// @Tags Visitas
// @Produce json
// @Param usuarioVisitado query string false "Visited user identifier, exact match"
// @Param usuarioVisitante query string false "Visiting user identifier, exact match"
// @Param fields query string false "Comma-separated fields to return"
// @Param sort query string false "Comma-separated sort fields, prefix - for descending"
// @Param offset query int false "Results to skip" default(0)
// @Param limit query int false "Maximum results, 0 for all" default(30)
// @Success 200 {array} models.Visit
// @Header 200 {integer} X-Total-Count "Total matching visits"
// @Failure 406 {object} models.DetailResponse
// @Failure 422 {object} models.DetailResponse
// @Failure 500 {object} models.DetailResponse
// @Router /visitas [get]
func (h *Handler) ListVisits(w http.ResponseWriter, r *http.Request) {
	h.visits.list(w, r)
}

// GetVisit returns one visit.
//
// @Summary Get a visit
// @Tags Visitas
// @Produce json
// @Param id path string true "Visit ID"
// @Success 200 {object} models.Visit
// @Failure 404 {object} models.DetailResponse
// @Failure 406 {object} models.DetailResponse
// @Failure 500 {object} models.DetailResponse
// @Router /visitas/{id} [get]
func (h *Handler) GetVisit(w http.ResponseWriter, r *http.Request) {
	h.visits.get(w, r)
}

// CreateVisit records a visit stamped with the current time.
//
// @Summary Create a visit
// @Description The timestamp is assigned by the server; a client-supplied one is ignored.
// @Tags Visitas
// @Accept json
// @Produce json
// @Param visit body models.VisitCreate true "Visit"
// @Success 201 {object} models.Visit
// @Failure 400 {object} models.DetailResponse
// @Failure 415 {object} models.DetailResponse
// @Failure 500 {object} models.DetailResponse
// @Router /visitas [post]
func (h *Handler) CreateVisit(w http.ResponseWriter, r *http.Request) {
	h.visits.create(w, r)
}

// UpdateVisit sets the given fields of a visit. The timestamp is immutable.
//
// @Summary Update a visit
// @Tags Visitas
// @Accept json
// @Produce json
// @Param id path string true "Visit ID"
// @Param visit body models.VisitUpdate true "Fields to change"
// @Success 200 {object} models.UpdateResponse[models.Visit]
// @Failure 400 {object} models.DetailResponse
// @Failure 404 {object} models.DetailResponse
// @Failure 415 {object} models.DetailResponse
// @Failure 422 {object} models.DetailResponse
// @Failure 500 {object} models.DetailResponse
// @Router /visitas/{id} [put]
func (h *Handler) UpdateVisit(w http.ResponseWriter, r *http.Request) {
	h.visits.update(w, r)
}

// DeleteVisit removes a visit.
//
// @Summary Delete a visit
// @Tags Visitas
// @Produce json
// @Param id path string true "Visit ID"
// @Success 200 {object} models.DeleteResponse
// @Failure 404 {object} models.DetailResponse
// @Failure 500 {object} models.DetailResponse
// @Router /visitas/{id} [delete]
func (h *Handler) DeleteVisit(w http.ResponseWriter, r *http.Request) {
	h.visits.delete(w, r)
}
