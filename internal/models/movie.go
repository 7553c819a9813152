// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

package models

import (
	"strconv"
	"strings"
)

// Movie is a single awards dataset entry.
//
// Producers holds the raw credits text ("A, B and C"); it is split into
// individual names only when win intervals are computed.
type Movie struct {
	ID        int64  `json:"id"`
	Year      int    `json:"year"`
	Title     string `json:"title"`
	Studios   string `json:"studios"`
	Producers string `json:"producers"`
	Winner    bool   `json:"winner"`
}

// MovieFilter narrows a movie query. Nil fields are not applied.
type MovieFilter struct {
	Year   *int
	Winner *bool
}

// WinnersOnly returns the filter used by the win-interval computation.
func WinnersOnly() MovieFilter {
	winner := true
	return MovieFilter{Winner: &winner}
}

// CacheKey returns a stable key for the filter, e.g. "movies:year=1980:winner=true".
func (f MovieFilter) CacheKey() string {
	var b strings.Builder
	b.WriteString("movies")
	if f.Year != nil {
		b.WriteString(":year=")
		b.WriteString(strconv.Itoa(*f.Year))
	}
	if f.Winner != nil {
		b.WriteString(":winner=")
		b.WriteString(strconv.FormatBool(*f.Winner))
	}
	return b.String()
}
