// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

package api

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/raphaelratuczne/teste-outsera/internal/cache"
	"github.com/raphaelratuczne/teste-outsera/internal/models"
)

// MovieStore is the read side of the movie store used by the handlers.
// *database.DB satisfies it.
type MovieStore interface {
	GetMovies(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error)
	CountMovies(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
}

// WinIntervalService computes producer win intervals.
// *producers.Service satisfies it.
type WinIntervalService interface {
	WinIntervals(ctx context.Context) (models.IntervalResultSet, error)
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_movies.go: GET /movies
//   - handlers_producers.go: GET /producers/win-intervals
//   - handlers_health.go: liveness and readiness probes
//   - handlers_helpers.go: JSON and error responses
type Handler struct {
	store       MovieStore
	intervals   WinIntervalService
	cache       *cache.Cache
	startTime   time.Time
	datasetSize atomic.Int64
}

// NewHandler creates the API handler. A nil cache disables response caching.
func NewHandler(store MovieStore, intervals WinIntervalService, c *cache.Cache) *Handler {
	if c == nil {
		c = cache.New(0)
	}
	return &Handler{
		store:     store,
		intervals: intervals,
		cache:     c,
		startTime: time.Now(),
	}
}

// SetDatasetSize records how many movies were loaded at startup. Readiness
// requires the store to hold at least that many.
func (h *Handler) SetDatasetSize(n int) {
	h.datasetSize.Store(int64(n))
}
