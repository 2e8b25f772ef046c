// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

// Package main provides the Mi Mapa HTTP server
//
// @title Mi Mapa API
// @version 1.0
// @description CRUD API for map markers (marcadores) and profile visits (visitas).
// @description
// @description ## Listing
// @description
// @description List endpoints accept `offset`, `limit`, `sort` (comma separated, `-` prefix for descending)
// @description and `fields` (comma separated projection). The total number of matches is returned in the
// @description `X-Total-Count` header.
// @description
// @description ## Error Responses
// @description
// @description All error responses carry a single detail message:
// @description ```json
// @description { "detail": "Marcador con ID 665f1c2e9b1d4c3a2f0e8b7a no encontrado" }
// @description ```
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address on resource endpoints.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/mimapa/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /
// @schemes http https
//
// @tag.name Marcadores
// @tag.description Map markers placed by users
//
// @tag.name Visitas
// @tag.description Records of one user visiting another user's profile
//
// @tag.name Core
// @tag.description Health checks
package main
