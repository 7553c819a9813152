// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

package database

import (
	"context"
	"fmt"
)

// schemaStatements is accepted unchanged by both DuckDB and SQLite.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS movies (
		id INTEGER PRIMARY KEY,
		year INTEGER NOT NULL,
		title TEXT NOT NULL,
		studios TEXT NOT NULL DEFAULT '',
		producers TEXT NOT NULL DEFAULT '',
		winner BOOLEAN NOT NULL DEFAULT false
	)`,
	`CREATE INDEX IF NOT EXISTS idx_movies_year ON movies(year)`,
	`CREATE INDEX IF NOT EXISTS idx_movies_winner ON movies(winner)`,
}

func (db *DB) createSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
