// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

/*
Package services provides suture.Service wrappers for server components.

HTTPServerService converts the ListenAndServe/Shutdown lifecycle of an
*http.Server into suture's context-aware Serve pattern:

	svc := services.NewHTTPServerService(server, services.DefaultShutdownTimeout)
	tree.AddAPIService(svc)

When the supervisor context is cancelled the server stops accepting
connections and in-flight requests get the shutdown timeout to finish.
A listener failure is returned to the supervisor, which restarts the
service.
*/
package services
