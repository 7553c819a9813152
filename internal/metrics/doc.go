// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

/*
Package metrics defines the Prometheus metrics exposed on /metrics.

Metric Families:

	store_query_duration_seconds{operation,driver}         store query latency
	store_query_errors_total{operation,driver,error_type}  failed store queries
	dataset_rows_total{status}                             rows loaded/skipped at startup
	dataset_movies                                         movies held by the store
	win_interval_computation_duration_seconds              engine latency
	win_interval_input_movies                              winners consumed by the last run
	api_requests_total{method,endpoint,status_code}        HTTP requests
	api_request_duration_seconds{method,endpoint}          HTTP latency
	api_active_requests                                    in-flight requests
	api_validation_errors_total{field}                     rejected query parameters
	movies_cache_hits_total / movies_cache_misses_total    /movies cache efficiency
	movies_cache_entries                                   cached /movies responses
	app_info{version,go_version}                           build information

All metrics are registered on the default registry via promauto; the
Record* helpers are safe for concurrent use.
*/
package metrics
