// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

/*
Package models defines the data structures shared by the store, the
win-interval engine and the HTTP layer.

Key Components:

  - Movie: one row of the awards dataset, immutable once loaded
  - MovieFilter: optional year/winner conditions for movie queries
  - IntervalRecord: a gap between two consecutive wins of one producer
  - IntervalResultSet: the records sharing the global minimum and maximum gap
  - ErrorResponse: the {"error": "..."} body returned on 4xx/5xx

JSON field names match the public API exactly:

	GET /movies                   -> [{"id","year","title","studios","producers","winner"}]
	GET /producers/win-intervals  -> {"min":[...],"max":[...]}

IntervalRecord serializes as {"producer","interval","previousWin","followingWin"}.
*/
package models
