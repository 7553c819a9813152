// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/raphaelratuczne/teste-outsera/internal/models"
)

// MoviesRequest holds the raw /movies query parameters.
//
// Year is nil when the parameter is missing or empty. Winner is nil only
// when the parameter is missing, so "?winner=" is rejected.
type MoviesRequest struct {
	Year   *string `query:"year" validate:"omitnil,awardyear"`
	Winner *string `query:"winner" validate:"omitnil,boolstring"`
}

func parseMoviesRequest(r *http.Request) MoviesRequest {
	q := r.URL.Query()

	var req MoviesRequest
	if year := q.Get("year"); year != "" {
		req.Year = &year
	}
	if q.Has("winner") {
		winner := q.Get("winner")
		req.Winner = &winner
	}
	return req
}

// Filter converts a validated request into a store filter.
func (req MoviesRequest) Filter() models.MovieFilter {
	var filter models.MovieFilter
	if req.Year != nil {
		if year, err := strconv.Atoi(strings.TrimSpace(*req.Year)); err == nil {
			filter.Year = &year
		}
	}
	if req.Winner != nil {
		winner := strings.EqualFold(*req.Winner, "true")
		filter.Winner = &winner
	}
	return filter
}
