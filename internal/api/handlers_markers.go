// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

package api

import "net/http"

// ListMarkers returns markers matching the optional filters.
//
// @Summary List markers
// @Description Returns the markers matching the filters. X-Total-Count carries the number of matches ignoring offset and limit.
// @Tags Marcadores
// @Produce json
// @Param creador query string false "Creator identifier, exact match"
// @Param lugar query string false "Place name, case-insensitive substring"
// @Param fields query string false "Comma-separated fields to return"
// @Param sort query string false "Comma-separated sort fields, prefix - for descending"
// @Param offset query int false "Results to skip" default(0)
// @Param limit query int false "Maximum results, 0 for all" default(10)
// @Success 200 {array} models.Marker
// @Header 200 {integer} X-Total-Count "Total matching markers"
// @Failure 406 {object} models.DetailResponse
// @Failure 422 {object} models.DetailResponse
// @Failure 500 {object} models.DetailResponse
// @Router /marcadores [get]
func (h *Handler) ListMarkers(w http.ResponseWriter, r *http.Request) {
	h.markers.list(w, r)
}

// GetMarker returns one marker.
//
// @Summary Get a marker
// @Tags Marcadores
// @Produce json
// @Param id path string true "Marker ID"
// @Success 200 {object} models.Marker
// @Failure 404 {object} models.DetailResponse
// @Failure 406 {object} models.DetailResponse
// @Failure 500 {object} models.DetailResponse
// @Router /marcadores/{id} [get]
func (h *Handler) GetMarker(w http.ResponseWriter, r *http.Request) {
	h.markers.get(w, r)
}

// CreateMarker stores a new marker.
//
// @Summary Create a marker
// @Tags Marcadores
// @Accept json
// @Produce json
// @Param marker body models.MarkerCreate true "Marker"
// @Success 201 {object} models.Marker
// @Failure 400 {object} models.DetailResponse
// @Failure 415 {object} models.DetailResponse
// @Failure 500 {object} models.DetailResponse
// @Router /marcadores [post]
func (h *Handler) CreateMarker(w http.ResponseWriter, r *http.Request) {
	h.markers.create(w, r)
}

// UpdateMarker sets the given fields of a marker.
//
// @Summary Update a marker
// @Description Only non-null fields are changed. A body without any field is rejected with 422.
// @Tags Marcadores
// @Accept json
// @Produce json
// @Param id path string true "Marker ID"
// @Param marker body models.MarkerUpdate true "Fields to change"
// @Success 200 {object} models.UpdateResponse[models.Marker]
// @Failure 400 {object} models.DetailResponse
// @Failure 404 {object} models.DetailResponse
// @Failure 415 {object} models.DetailResponse
// @Failure 422 {object} models.DetailResponse
// @Failure 500 {object} models.DetailResponse
// @Router /marcadores/{id} [put]
func (h *Handler) UpdateMarker(w http.ResponseWriter, r *http.Request) {
	h.markers.update(w, r)
}

// DeleteMarker removes a marker.
//
// @Summary Delete a marker
// @Tags Marcadores
// @Produce json
// @Param id path string true "Marker ID"
// @Success 200 {object} models.DeleteResponse
// @Failure 404 {object} models.DetailResponse
// @Failure 500 {object} models.DetailResponse
// @Router /marcadores/{id} [delete]
func (h *Handler) DeleteMarker(w http.ResponseWriter, r *http.Request) {
	h.markers.delete(w, r)
}
