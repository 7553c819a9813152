// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Store Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_query_duration_seconds",
			Help:    "Duration of movie store queries in seconds",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"operation", "driver"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_query_errors_total",
			Help: "Total number of movie store query errors",
		},
		[]string{"operation", "driver", "error_type"},
	)

	// Dataset Metrics
	DatasetRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_rows_total",
			Help: "Dataset rows read at startup by outcome",
		},
		[]string{"status"}, // "loaded", "skipped"
	)

	DatasetMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_movies",
			Help: "Number of movies held by the store",
		},
	)

	// Win-Interval Metrics
	WinIntervalDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "win_interval_computation_duration_seconds",
			Help:    "Duration of the producer win-interval computation in seconds",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05},
		},
	)

	WinIntervalInputMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "win_interval_input_movies",
			Help: "Number of winning movies consumed by the last win-interval computation",
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIValidationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_validation_errors_total",
			Help: "Total number of rejected query parameters",
		},
		[]string{"field"},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "movies_cache_hits_total",
			Help: "Total number of /movies cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "movies_cache_misses_total",
			Help: "Total number of /movies cache misses",
		},
	)

	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "movies_cache_entries",
			Help: "Current number of cached /movies responses",
		},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordDBQuery records a store query metric.
func RecordDBQuery(operation, driver string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, driver).Observe(duration.Seconds())
	if err != nil {
		errorType := err.Error()
		if len(errorType) > 50 {
			errorType = errorType[:50]
		}
		DBQueryErrors.WithLabelValues(operation, driver, errorType).Inc()
	}
}

// RecordDatasetLoad records the outcome of the startup dataset load.
func RecordDatasetLoad(loaded, skipped int) {
	DatasetRows.WithLabelValues("loaded").Add(float64(loaded))
	DatasetRows.WithLabelValues("skipped").Add(float64(skipped))
	DatasetMovies.Set(float64(loaded))
}

// RecordWinIntervalComputation records one run of the interval engine.
func RecordWinIntervalComputation(duration time.Duration, winners int) {
	WinIntervalDuration.Observe(duration.Seconds())
	WinIntervalInputMovies.Set(float64(winners))
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordValidationError counts a rejected query parameter.
func RecordValidationError(field string) {
	APIValidationErrors.WithLabelValues(field).Inc()
}

// TrackActiveRequest tracks active API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordCacheLookup counts a cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		CacheHits.Inc()
	} else {
		CacheMisses.Inc()
	}
}
