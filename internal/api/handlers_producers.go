// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

package api

import (
	"net/http"
)

// ProducerWinIntervals returns the producers with the shortest and longest
// gaps between consecutive wins.
//
// @Summary Producer win intervals
// @Description Computes, over all winning movies, the minimum and maximum gap in years between consecutive wins of the same producer. Every producer and pair reaching either extreme is listed.
// @Tags Producers
// @Produce json
// @Success 200 {object} models.IntervalResultSet "Minimum and maximum interval records"
// @Failure 500 {object} models.ErrorResponse "Store failure"
// @Router /producers/win-intervals [get]
func (h *Handler) ProducerWinIntervals(w http.ResponseWriter, r *http.Request) {
	result, err := h.intervals.WinIntervals(r.Context())
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "internal server error while computing producer win intervals", err)
		return
	}

	respondJSON(w, r, http.StatusOK, result)
}
