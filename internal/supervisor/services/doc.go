// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

/*
Package services provides suture.Service wrappers for the long-running parts
of Mi Mapa.

Each wrapper implements suture's Service interface and fmt.Stringer:

	type Service interface {
	    Serve(ctx context.Context) error
	}

HTTPServerService runs an *http.Server and shuts it down gracefully when the
context ends.

MongoMonitorService owns the MongoDB connection: it connects, retries while
the database is down, pings periodically to keep the mimapa_db_connected
gauge honest, and closes the client on shutdown.

Example:

	tree.AddDataService(services.NewMongoMonitorService(gw, 30*time.Second, 5*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout))
*/
package services
