// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

// Package database is the movie store behind the API.
//
// The store holds a single movies table that is filled once at startup
// from the dataset and queried read-only afterwards. Two embedded engines
// are supported through database/sql:
//
//   - duckdb (default): github.com/duckdb/duckdb-go/v2
//   - sqlite: modernc.org/sqlite, a pure-Go build with no cgo
//
// Both default to the ":memory:" path so every process start reloads the
// dataset from scratch. A file path persists the data between runs, in
// which case InsertMovies continues numbering after the highest stored id.
//
// Query results are ordered by year, then title, then id, and every
// operation records its latency and failures through the metrics package.
package database
