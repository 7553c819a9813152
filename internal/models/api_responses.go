// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

package models

// ErrorResponse is the body of every non-2xx API response.
//
// Example:
//
//	{"error": "year must be a valid number between 1000 and 3000"}
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthStatus is returned by the health endpoints.
//
// Status values:
//   - "ok": liveness probe, process is running
//   - "ready": store reachable and dataset loaded
//   - "not_ready": store unreachable or empty
type HealthStatus struct {
	Status        string  `json:"status"`
	Movies        int     `json:"movies,omitempty"`
	UptimeSeconds float64 `json:"uptime_seconds,omitempty"`
	Error         string  `json:"error,omitempty"`
}
