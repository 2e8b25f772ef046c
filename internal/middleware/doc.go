// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

/*
Package middleware provides the chi-compatible HTTP middleware shared by all
routes.

Key Components:

  - RequestID: propagates or generates X-Request-ID and puts it in the context
  - AccessLog: one zerolog line per request, warn for slow or failed requests
  - PrometheusMetrics: request count, latency and in-flight gauge, labeled
    by route pattern
  - Compression: gzip for clients that accept it

Middleware Stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(time.Second))
	r.Use(middleware.PrometheusMetrics)
	r.Group(func(r chi.Router) {
	    r.Use(middleware.Compression)
	    r.Get("/marcadores", h.ListMarkers)
	})

RequestID must come before AccessLog so log lines carry the id.
PrometheusMetrics reads the route pattern after the handler returns, so it
works anywhere inside a chi router.
*/
package middleware
