// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/raphaelratuczne/teste-outsera/internal/models"
)

// readyCheckTimeout bounds the store checks behind /health/ready.
const readyCheckTimeout = 2 * time.Second

// HealthLive handles liveness probe requests.
// Returns 200 while the process is running, regardless of the store.
//
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthStatus "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, models.HealthStatus{Status: "ok"})
}

// HealthReady handles readiness probe requests.
// Returns 200 only when the store answers and holds the loaded dataset.
//
// @Summary Readiness probe
// @Description Returns 200 when the store is reachable and holds every movie loaded at startup, 503 otherwise.
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthStatus "Service is ready"
// @Failure 503 {object} models.HealthStatus "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyCheckTimeout)
	defer cancel()

	status := models.HealthStatus{
		Status:        "ready",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}

	count, err := h.checkStore(ctx)
	status.Movies = count
	if err != nil {
		status.Status = "not_ready"
		status.Error = err.Error()
		respondJSON(w, r, http.StatusServiceUnavailable, status)
		return
	}

	respondJSON(w, r, http.StatusOK, status)
}

func (h *Handler) checkStore(ctx context.Context) (int, error) {
	if h.store == nil {
		return 0, errors.New("store not configured")
	}
	if err := h.store.Ping(ctx); err != nil {
		return 0, errors.New("store unreachable")
	}
	count, err := h.store.CountMovies(ctx)
	if err != nil {
		return 0, errors.New("store query failed")
	}
	if want := h.datasetSize.Load(); int64(count) < want {
		return count, fmt.Errorf("dataset not loaded: %d of %d movies", count, want)
	}
	return count, nil
}
