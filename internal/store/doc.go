// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

/*
Package store is the MongoDB gateway.

A single Gateway is built at startup and shared. It connects on Connect or on
first use, runs every round trip through a circuit breaker with a per
operation timeout, and records query metrics.

Documents returned by the gateway are normalized: the _id is a 24 character
hex string and, for timestamped collections, the timestamp is an RFC 3339
string in the configured zone.

Failures:

  - ErrInvalidID: the id is not a hex ObjectID. No round trip happens.
  - ErrNotFound, ErrElementNotFound: an array mutation matched nothing.
    Reads, updates and deletes report absence through their return values.
  - ErrNoFields: an update would set nothing. No round trip happens.
  - *StoreError: the driver, the network or the breaker failed.

Repository[T] decodes normalized documents into resource structs.
*/
package store
