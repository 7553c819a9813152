// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	_ "modernc.org/sqlite"

	"github.com/raphaelratuczne/teste-outsera/internal/config"
	"github.com/raphaelratuczne/teste-outsera/internal/logging"
)

const memoryPath = ":memory:"

// initTimeout bounds schema creation at startup.
const initTimeout = 30 * time.Second

// DB is the movie store. It is created once at startup with New, loaded
// with InsertMovies and then only read until Close.
type DB struct {
	conn   *sql.DB
	cfg    *config.DatabaseConfig
	driver string
}

// New opens the configured store and creates the schema.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	if cfg.Path != memoryPath {
		if dir := filepath.Dir(cfg.Path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
			}
		}
	}

	var (
		conn *sql.DB
		err  error
	)
	switch cfg.Driver {
	case config.DriverDuckDB, "":
		conn, err = openDuckDB(cfg)
	case config.DriverSQLite:
		conn, err = openSQLite(cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	db := &DB{conn: conn, cfg: cfg, driver: driverName(cfg.Driver)}

	ctx, cancel := context.WithTimeout(context.Background(), initTimeout)
	defer cancel()

	if err := db.createSchema(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	logging.Info().
		Str("driver", db.driver).
		Str("path", cfg.Path).
		Msg("Movie store opened")

	return db, nil
}

func driverName(driver string) string {
	if driver == "" {
		return config.DriverDuckDB
	}
	return driver
}

// openDuckDB opens DuckDB. All pooled connections share one database
// instance, so an in-memory store is visible to every connection.
func openDuckDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	connStr := fmt.Sprintf("%s?access_mode=read_write&threads=%d&autoinstall_known_extensions=false&autoload_known_extensions=false",
		cfg.Path, threads)
	if cfg.MaxMemory != "" {
		connStr += "&max_memory=" + cfg.MaxMemory
	}

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}

	conn.SetMaxOpenConns(runtime.NumCPU())
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxIdleTime(5 * time.Minute)
	return conn, nil
}

// openSQLite opens SQLite through the pure-Go modernc driver. Every SQLite
// connection to ":memory:" is a separate database, so the pool is pinned to
// a single connection that never expires.
func openSQLite(cfg *config.DatabaseConfig) (*sql.DB, error) {
	conn, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)
	conn.SetConnMaxIdleTime(0)

	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	if cfg.Path != memoryPath {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			closeQuietly(conn)
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}
	return conn, nil
}

// Driver returns the active store driver name.
func (db *DB) Driver() string {
	return db.driver
}

// Close closes the store.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	return db.conn.Close()
}

// Ping checks if the store connection is alive.
func (db *DB) Ping(ctx context.Context) error {
	if db.conn == nil {
		return fmt.Errorf("database connection is nil")
	}
	return db.conn.PingContext(ctx)
}
