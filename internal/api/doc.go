// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

/*
Package api provides the HTTP surface of the Golden Raspberry Awards API.

# Routes

	GET /movies                    movies filtered by ?year= and ?winner=
	GET /producers/win-intervals   producers with min and max gaps between wins
	GET /health/live               liveness probe
	GET /health/ready              readiness probe (store reachable, dataset loaded)
	GET /metrics                   Prometheus exposition
	GET /swagger/*                 OpenAPI UI

Every other method on these paths answers 405 and unknown paths answer 404,
both with an {"error": "..."} body.

# Middleware

Global, in order: request ID, real IP, request logging, panic recovery,
CORS (go-chi/cors) and response compression. The API routes add an
httprate limiter keyed by client IP, security headers and Prometheus
request metrics. Health routes get a permissive limiter of their own.

# Validation

Query parameters are validated with the validation package before the
store is touched:

	year    base-10 integer in [1000, 3000]; an empty value is ignored
	winner  "true" or "false" in any letter case; an empty value is rejected

# Caching

/movies bodies are cached per normalized filter for the configured TTL and
marked with an X-Cache header. Win intervals are recomputed on every call.
*/
package api
