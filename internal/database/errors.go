// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

package database

import (
	"database/sql"
	"errors"
	"io"

	"github.com/raphaelratuczne/teste-outsera/internal/logging"
)

// ErrUnsupportedDriver is returned by New for a driver other than
// duckdb or sqlite.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// closeWithLog closes the resource and logs any error.
// Use in defer statements where the close error cannot be returned.
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Err(err).Str("resource", resourceType).Msg("Failed to close resource")
	}
}

// closeQuietly closes the resource and ignores any error.
// Only for error paths where a primary error is already being returned.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close() //nolint:errcheck // error path cleanup
	}
}

// rollbackQuietly rolls back a transaction that has not been committed.
func rollbackQuietly(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logging.Warn().Err(err).Msg("Failed to roll back transaction")
	}
}
