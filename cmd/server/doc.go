// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

// Package main is the entry point for the Mi Mapa server.
//
// Mi Mapa serves two MongoDB collections, marcador and visita, as JSON
// resources under /marcadores and /visitas.
//
// # Startup
//
//  1. Configuration: defaults, optional config.yaml, then environment (Koanf v2)
//  2. Logging: zerolog configured from LOG_LEVEL and LOG_FORMAT
//  3. Store: a lazily connecting MongoDB gateway with a circuit breaker
//  4. HTTP: chi router with CORS, rate limiting and Swagger UI
//  5. Supervisor: suture tree running the MongoDB monitor and the HTTP server
//
// The server starts even when MongoDB is unreachable. Resource requests fail
// with 500 and /health/ready answers 503 until the monitor connects.
//
// # Configuration
//
// Common environment variables:
//
//	MONGO_URI        connection string (URI is read as a fallback)
//	HTTP_PORT        listen port, default 8000
//	API_BASE_PATH    prefix for the resource routes, default empty
//	VISIT_TIMEZONE   zone for visit timestamps, default Europe/Madrid
//	CORS_ORIGINS     comma separated allowed origins, default *
//	LOG_LEVEL        trace, debug, info, warn or error
//
// # Signal Handling
//
// SIGINT and SIGTERM stop the supervisor tree. The HTTP server drains
// in-flight requests for SHUTDOWN_TIMEOUT, then the MongoDB client is closed.
//
// # Example Usage
//
//	export MONGO_URI=mongodb://localhost:27017
//	export LOG_FORMAT=console
//	./mimapa
package main
