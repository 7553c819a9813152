// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared by all requests. Besides the
// built-in tags it registers:
//
//   - awardyear: a base-10 integer between MinAwardYear and MaxAwardYear
//   - boolstring: "true" or "false" in any letter case
//
// Fields carrying a `query:"name"` tag are reported under that name so
// error messages match the parameter the client sent.
//
// Example usage:
//
//	type MoviesRequest struct {
//	    Year   *string `query:"year" validate:"omitnil,awardyear"`
//	    Winner *string `query:"winner" validate:"omitnil,boolstring"`
//	}
//
//	if err := validation.ValidateStruct(&req); err != nil {
//	    respondError(w, http.StatusBadRequest, err.First().Error())
//	    return
//	}
package validation
