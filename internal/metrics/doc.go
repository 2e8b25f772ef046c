// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

/*
Package metrics defines the Prometheus collectors exported at /metrics.

All collectors are registered on the default registry through promauto and
share the mimapa_ prefix.

Document store:
  - mimapa_db_query_duration_seconds{operation, collection}
  - mimapa_db_query_errors_total{operation, collection, error_type}
  - mimapa_db_connected

HTTP API:
  - mimapa_api_requests_total{method, endpoint, status_code}
  - mimapa_api_request_duration_seconds{method, endpoint}
  - mimapa_api_active_requests

Circuit breaker (the store breaker is named "mongodb"):
  - mimapa_circuit_breaker_state{name}: 0=closed, 1=half-open, 2=open
  - mimapa_circuit_breaker_requests_total{name, result}
  - mimapa_circuit_breaker_transitions_total{name, from_state, to_state}

The endpoint label is the chi route pattern (/marcadores/{id}), never the raw
path, so marker IDs do not explode cardinality.
*/
package metrics
