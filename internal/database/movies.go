// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/raphaelratuczne/teste-outsera/internal/metrics"
	"github.com/raphaelratuczne/teste-outsera/internal/models"
)

const movieColumns = "id, year, title, studios, producers, winner"

// InsertMovies stores movies in a single transaction and returns how many
// were inserted. Identifiers are assigned sequentially after the highest
// existing id, so a fresh store numbers its rows 1..n in slice order.
// Any failure rolls the whole batch back.
func (db *DB) InsertMovies(ctx context.Context, movies []models.Movie) (inserted int, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordDBQuery("insert_movies", db.driver, time.Since(start), err)
	}()

	if len(movies) == 0 {
		return 0, nil
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollbackQuietly(tx)

	var nextID int64
	if err := tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(id), 0) FROM movies").Scan(&nextID); err != nil {
		return 0, fmt.Errorf("failed to read max movie id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO movies ("+movieColumns+") VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer closeWithLog(stmt, "statement")

	for i := range movies {
		m := &movies[i]
		nextID++
		if _, err := stmt.ExecContext(ctx, nextID, m.Year, m.Title, m.Studios, m.Producers, m.Winner); err != nil {
			return 0, fmt.Errorf("failed to insert movie %q (%d): %w", m.Title, m.Year, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit movies: %w", err)
	}
	return len(movies), nil
}

// GetMovies returns the movies matching filter ordered by year, then
// title, then id. The result is never nil.
func (db *DB) GetMovies(ctx context.Context, filter models.MovieFilter) (movies []models.Movie, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordDBQuery("get_movies", db.driver, time.Since(start), err)
	}()

	query, args := buildMoviesQuery(filter)

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	defer closeWithLog(rows, "rows")

	movies = []models.Movie{}
	for rows.Next() {
		var m models.Movie
		if err := rows.Scan(&m.ID, &m.Year, &m.Title, &m.Studios, &m.Producers, &m.Winner); err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate movies: %w", err)
	}
	return movies, nil
}

func buildMoviesQuery(filter models.MovieFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	if filter.Year != nil {
		where = append(where, "year = ?")
		args = append(args, *filter.Year)
	}
	if filter.Winner != nil {
		where = append(where, "winner = ?")
		args = append(args, *filter.Winner)
	}

	var sb strings.Builder
	sb.WriteString("SELECT " + movieColumns + " FROM movies")
	if len(where) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(where, " AND "))
	}
	sb.WriteString(" ORDER BY year, title, id")
	return sb.String(), args
}

// CountMovies returns the number of stored movies.
func (db *DB) CountMovies(ctx context.Context) (count int, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordDBQuery("count_movies", db.driver, time.Since(start), err)
	}()

	if err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM movies").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}
	return count, nil
}
