// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/mimapa/internal/middleware"
)

// slowRequestThreshold is where the access log switches to warn.
const slowRequestThreshold = time.Second

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(slowRequestThreshold))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered everywhere
	r.Use(middleware.PrometheusMetrics)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondDetail(w, http.StatusNotFound, detailNotFoundRoute)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondDetail(w, http.StatusMethodNotAllowed, detailMethodNotAllowed)
	})

	// ========================
	// Operational Endpoints
	// ========================
	r.Get("/health", router.handler.Health)
	r.Get("/health/ready", router.handler.HealthReady)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// ========================
	// Resource Endpoints
	// ========================
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.Compression)

		r.Route(router.basePath+"/marcadores", func(r chi.Router) {
			r.Get("/", router.handler.ListMarkers)
			r.Post("/", router.handler.CreateMarker)
			r.Get("/{id}", router.handler.GetMarker)
			r.Put("/{id}", router.handler.UpdateMarker)
			r.Delete("/{id}", router.handler.DeleteMarker)
		})

		r.Route(router.basePath+"/visitas", func(r chi.Router) {
			r.Get("/", router.handler.ListVisits)
			r.Post("/", router.handler.CreateVisit)
			r.Get("/{id}", router.handler.GetVisit)
			r.Put("/{id}", router.handler.UpdateVisit)
			r.Delete("/{id}", router.handler.DeleteVisit)
		})
	})

	return r
}
