// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

/*
Package supervisor provides process supervision for Mi Mapa using suture v4.

The tree has two layers so a database outage never takes the listener down:

	RootSupervisor ("mimapa")
	├── DataSupervisor ("data-layer")
	│   └── MongoMonitorService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A service that returns an error is restarted by its layer. After
FailureThreshold failures, decaying at FailureDecay per second, the layer
waits FailureBackoff before trying again.

Supervisor events go to slog through sutureslog; logging.NewSlogLogger
bridges them into zerolog.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewMongoMonitorService(gw, 30*time.Second, 5*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

See the services subpackage for the wrappers.
*/
package supervisor
