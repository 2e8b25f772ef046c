// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

/*
Package api provides the HTTP layer of Mi Mapa using the Chi router.

# Endpoints

Resources, mounted under the configured base path:

	GET    /marcadores          list, filters creador (exact) and lugar (substring)
	POST   /marcadores          create
	GET    /marcadores/{id}     get
	PUT    /marcadores/{id}     partial update
	DELETE /marcadores/{id}     delete
	GET    /visitas             list, filters usuarioVisitado and usuarioVisitante
	POST   /visitas             create, timestamp set by the server
	GET    /visitas/{id}        get
	PUT    /visitas/{id}        partial update, timestamp is immutable
	DELETE /visitas/{id}        delete

Operational, always at the root:

	GET /health         liveness
	GET /health/ready   readiness, pings MongoDB
	GET /metrics        Prometheus
	GET /swagger/*      OpenAPI UI

# Lists

Every list accepts fields, sort, offset and limit. X-Total-Count carries the
number of matching documents ignoring offset and limit. A non-integer offset
or limit gets 422.

# Errors

Error bodies are {"detail": "..."} with Spanish messages:

  - 400 malformed JSON, failed validation, or an invalid id on PUT
  - 404 unknown id, or an id that is not an ObjectID on GET and DELETE
  - 406 Accept header that excludes application/json
  - 413 body over the configured limit
  - 415 body that is not application/json
  - 422 update without any field, or bad paging parameters
  - 429 rate limit
  - 500 store failure, detail "<context>: <error>"

Both resources share one generic implementation (resource.go); the named
Handler methods carry the OpenAPI annotations.
*/
package api
