// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/raphaelratuczne/teste-outsera/internal/metrics"
	"github.com/raphaelratuczne/teste-outsera/internal/validation"
)

// Movies lists movies, optionally filtered by year and winner flag.
//
// @Summary List movies
// @Description Returns every movie ordered by year and title. Both filters are optional and combine with AND.
// @Tags Movies
// @Produce json
// @Param year query int false "Award year between 1000 and 3000"
// @Param winner query string false "true or false, case-insensitive" Enums(true, false)
// @Success 200 {array} models.Movie "Matching movies"
// @Failure 400 {object} models.ErrorResponse "Invalid year or winner parameter"
// @Failure 500 {object} models.ErrorResponse "Store failure"
// @Router /movies [get]
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	req := parseMoviesRequest(r)
	if verr := validation.ValidateStruct(&req); verr != nil {
		first := verr.First()
		metrics.RecordValidationError(first.Field())
		respondError(w, r, http.StatusBadRequest, first.Error(), nil)
		return
	}

	filter := req.Filter()
	key := filter.CacheKey()

	if data, ok := h.cache.Get(key); ok {
		w.Header().Set("X-Cache", "HIT")
		writeJSON(w, r, http.StatusOK, data)
		return
	}

	movies, err := h.store.GetMovies(r.Context(), filter)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "internal server error while fetching movies", err)
		return
	}

	data, err := json.Marshal(movies)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "internal server error while fetching movies", err)
		return
	}
	h.cache.Set(key, data)

	if h.cache.Enabled() {
		w.Header().Set("X-Cache", "MISS")
	}
	writeJSON(w, r, http.StatusOK, data)
}
