// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

package producers

import (
	"context"
	"fmt"
	"time"

	"github.com/raphaelratuczne/teste-outsera/internal/logging"
	"github.com/raphaelratuczne/teste-outsera/internal/metrics"
	"github.com/raphaelratuczne/teste-outsera/internal/models"
)

// MovieQuerier is the subset of the store the service depends on.
// Results must be ordered by year, then title.
type MovieQuerier interface {
	GetMovies(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error)
}

// Service computes producer win intervals from the store.
type Service struct {
	store MovieQuerier
}

// NewService creates a Service backed by the given store.
func NewService(store MovieQuerier) *Service {
	return &Service{store: store}
}

// WinIntervals queries every winning movie and returns the extremal
// interval sets. The computation is rebuilt on every call.
func (s *Service) WinIntervals(ctx context.Context) (models.IntervalResultSet, error) {
	winners, err := s.store.GetMovies(ctx, models.WinnersOnly())
	if err != nil {
		return models.IntervalResultSet{}, fmt.Errorf("failed to query winning movies: %w", err)
	}

	start := time.Now()
	result := ComputeWinIntervals(winners)
	metrics.RecordWinIntervalComputation(time.Since(start), len(winners))

	logging.Ctx(ctx).Debug().
		Int("winners", len(winners)).
		Int("min_records", len(result.Min)).
		Int("max_records", len(result.Max)).
		Msg("Computed producer win intervals")

	return result, nil
}
