// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

// Package config loads the service configuration with koanf.
//
// Precedence, highest first: environment variables, the YAML file named by
// CONFIG_PATH (or config.yaml in the working directory), built-in defaults.
//
// Environment variables:
//
//	MONGO_URI / URI            connection string (URI is the historical name)
//	MONGO_DATABASE             database name, default mi-mapa
//	MONGO_OPERATION_TIMEOUT    per round trip, default 5s
//	HTTP_HOST / HTTP_PORT      listener, default 0.0.0.0:8000
//	API_BASE_PATH              route prefix, default none
//	MARKER_PAGE_SIZE           default limit for GET /marcadores (10)
//	VISIT_PAGE_SIZE            default limit for GET /visitas (30)
//	VISIT_TIMEZONE             default Europe/Madrid
//	CORS_ORIGINS               comma separated
//	RATE_LIMIT_REQUESTS / RATE_LIMIT_WINDOW / DISABLE_RATE_LIMIT
//	LOG_LEVEL / LOG_FORMAT / LOG_CALLER
//
// The same keys in YAML:
//
//	mongo:
//	  uri: mongodb://mongo:27017
//	  breaker:
//	    enabled: true
//	api:
//	  visit_timezone: Europe/Madrid
package config
