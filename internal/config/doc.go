// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

/*
Package config loads and validates application configuration.

Configuration is layered with Koanf v2, later sources overriding earlier ones:

 1. Built-in defaults
 2. Optional YAML file ($CONFIG_PATH, then ./config.yaml, ./config.yml)
 3. Environment variables

Environment Variables:

	DATASET_PATH          awards CSV loaded at startup (default: data/movielist.csv)
	DB_DRIVER             duckdb or sqlite (default: duckdb)
	DB_PATH               store location (default: :memory:)
	DUCKDB_MAX_MEMORY     DuckDB memory limit (default: 512MB)
	DUCKDB_THREADS        DuckDB worker threads, 0 = all CPUs
	HTTP_PORT             listen port (default: 3000)
	HTTP_HOST             listen host (default: 0.0.0.0)
	HTTP_TIMEOUT          read/write timeout (default: 30s)
	ENVIRONMENT           development, staging, production
	API_CACHE_TTL         /movies cache lifetime, 0 disables (default: 5m)
	RATE_LIMIT_REQUESTS   requests per window per IP (default: 100)
	RATE_LIMIT_WINDOW     rate limit window (default: 1m)
	DISABLE_RATE_LIMIT    true to disable rate limiting
	CORS_ORIGINS          comma-separated allowed origins (default: *)
	LOG_LEVEL             trace, debug, info, warn, error (default: info)
	LOG_FORMAT            json or console (default: json)
	LOG_CALLER            include caller file:line

Example config.yaml:

	dataset:
	  path: /data/movielist.csv
	server:
	  port: 8080
	logging:
	  format: console

Validation errors name the environment variable to fix.
*/
package config
