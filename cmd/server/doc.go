// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

/*
Package main is the entry point for the Golden Raspberry Awards API server.

The server loads the "Worst Picture" nominee list from a CSV file into an
embedded movie store and serves it over a small read-only REST API.

# Application Architecture

The server runs its long-lived components under Suture v4 supervision:

	RootSupervisor ("teste-outsera")
	├── DataSupervisor ("data-layer")
	│   └── Response cache cleanup (when API_CACHE_TTL > 0)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config.yaml and environment variables
 2. Logging: zerolog with JSON/console output modes
 3. Movie store: DuckDB (default) or SQLite, in memory unless DB_PATH is a file
 4. Dataset: the CSV at DATASET_PATH is parsed and inserted in one transaction
 5. Producer service and response cache
 6. Supervisor tree with the HTTP server (Chi router)

A missing dataset file or a failed insert aborts startup. Rows with an
invalid year or no title are skipped and logged.

# Endpoints

	GET /movies                   All movies, optional ?year= and ?winner= filters
	GET /producers/win-intervals  Shortest and longest producer win intervals
	GET /health/live              Liveness probe
	GET /health/ready             Readiness probe (store reachable and loaded)
	GET /metrics                  Prometheus metrics
	GET /swagger/*                Swagger UI

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest priority wins):

	Priority: Environment variables > Config file > Defaults

Environment variables:

	DATASET_PATH=data/movielist.csv   # Awards CSV, semicolon separated
	DB_DRIVER=duckdb                  # duckdb or sqlite
	DB_PATH=:memory:                  # Store location
	DUCKDB_MAX_MEMORY=512MB
	DUCKDB_THREADS=0                  # 0 uses all CPUs
	HTTP_HOST=0.0.0.0
	HTTP_PORT=3000
	HTTP_TIMEOUT=30s
	API_CACHE_TTL=5m                  # 0 disables the /movies cache
	RATE_LIMIT_REQUESTS=100
	RATE_LIMIT_WINDOW=1m
	DISABLE_RATE_LIMIT=false
	CORS_ORIGINS=*
	LOG_LEVEL=info                    # trace, debug, info, warn, error
	LOG_FORMAT=json                   # json or console
	LOG_CALLER=false

# Signal Handling

The server shuts down gracefully on SIGINT and SIGTERM. In-flight requests
get up to 10 seconds to complete before the store is closed.

# Example Usage

	export DATASET_PATH=./data/movielist.csv
	export LOG_FORMAT=console
	./server

	curl http://localhost:3000/producers/win-intervals
*/
package main
