// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

/*
Package middleware provides HTTP middleware shared by every route.

Key Components:

  - RequestID: assigns/propagates X-Request-ID and stores it for logging
  - PrometheusMetrics: request count, latency and in-flight gauge per route

Both use the http.HandlerFunc shape and are mounted on the chi router
through the api package's chiMiddleware adapter:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
*/
package middleware
