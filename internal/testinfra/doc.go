// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

// Package testinfra starts the containers integration tests run against.
//
// Everything except this file is behind the integration build tag:
//
//	go test -tags integration ./...
//
// # MongoDB
//
//	func TestRoundTrip(t *testing.T) {
//	    mongo := testinfra.StartMongo(t) // skips without Docker
//	    gw := store.New(mongo.MongoConfig("mimapa_it"))
//	    defer gw.Close(context.Background())
//	    // ...
//	}
//
// Each test should use its own database name so tests do not see each
// other's documents. The first run pulls mongo:7; later runs use the cache.
package testinfra
