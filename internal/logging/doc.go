// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

// Package logging provides centralized zerolog-based structured logging.
//
// A single global logger is configured at startup and shared by every
// package. JSON output is the default; console output is available for
// local development.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("path", cfg.Dataset.Path).Msg("Loading dataset")
//	logging.Error().Err(err).Msg("Failed to open store")
//
//	// Request-scoped logging (request_id attached)
//	logging.Ctx(r.Context()).Warn().Msg("Invalid query parameter")
//
// # Configuration
//
// Environment Variables (read by internal/config):
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// # slog Integration
//
// The supervisor tree reports through log/slog. NewSlogLogger returns a
// *slog.Logger that writes through the global zerolog logger:
//
//	hook := (&sutureslog.Handler{Logger: logging.NewSlogLogger("supervisor")}).MustHook()
//
// Always terminate log chains with .Msg() or .Send(); an unterminated
// event is never written.
package logging
