// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/mimapa/internal/logging"
	"github.com/tomtom215/mimapa/internal/models"
)

// Response headers of list and get endpoints.
const (
	HeaderTotalCount     = "X-Total-Count"
	HeaderAcceptEncoding = "Accept-Encoding"
)

// respondJSON writes v as the JSON body with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"Error al serializar la respuesta"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondDetail writes {"detail": detail}.
func respondDetail(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, models.DetailResponse{Detail: detail})
}

// respondServerError logs err and answers 500 with "prefix: err".
func respondServerError(w http.ResponseWriter, r *http.Request, prefix string, err error) {
	logging.Ctx(r.Context()).Error().
		Err(err).
		Str("method", r.Method).
		Str("path", sanitizeLogValue(r.URL.Path)).
		Msg(prefix)
	respondDetail(w, http.StatusInternalServerError, prefix+": "+err.Error())
}
