// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/mimapa/internal/logging"
	"github.com/tomtom215/mimapa/internal/models"
)

// readyTimeout bounds the database ping of the readiness probe.
const readyTimeout = 2 * time.Second

// Health handles liveness probes. It never touches the database.
//
// @Summary Liveness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.HealthResponse{Status: "ok"})
}

// HealthReady handles readiness probes: 200 only if MongoDB answers a ping.
//
// @Summary Readiness probe
// @Description Returns 503 while MongoDB is unreachable.
// @Tags Core
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 503 {object} models.HealthResponse
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Readiness check failed")
		respondJSON(w, http.StatusServiceUnavailable, models.HealthResponse{
			Status: "unavailable",
			Detail: detailServiceUnavailable,
		})
		return
	}

	respondJSON(w, http.StatusOK, models.HealthResponse{Status: "ok"})
}
