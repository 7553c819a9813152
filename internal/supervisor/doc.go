// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

/*
Package supervisor provides process supervision using suture v4.

The supervisor tree owns every long-running service of the server and
restarts any that crash, with exponential backoff between restarts.

# Overview

Services are organized into two layers:

	RootSupervisor ("teste-outsera")
	├── DataSupervisor ("data-layer")
	│   └── cache.Cache (expired entry cleanup)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Each layer counts failures independently, so a restart loop in the cache
cleanup never takes the HTTP server down.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(responseCache)
	tree.AddAPIService(services.NewHTTPServerService(server, services.DefaultShutdownTimeout))

	errCh := tree.ServeBackground(ctx)

Cancelling ctx stops every service. Services that do not return within
ShutdownTimeout are listed by UnstoppedServiceReport.

# Logging

Supervisor events (service panics, restarts, backoff) are emitted through
sutureslog into the zerolog logger, tagged with component=supervisor.
*/
package supervisor
