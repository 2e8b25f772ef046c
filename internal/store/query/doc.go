// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

// Package query translates list request parameters into MongoDB filter,
// projection and sort documents.
//
// Everything here is a pure transformation. Malformed input (blank CSV
// entries, a lone "-" in a sort list, an empty filter value) is dropped and
// treated as "no constraint" instead of producing an error.
package query
