// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

// Package main provides the Golden Raspberry Awards HTTP server
//
// @title Golden Raspberry Awards API
// @version 1.0
// @description Read-only API over the Golden Raspberry Awards "Worst Picture" nominees and winners.
// @description
// @description ## Features
// @description
// @description - **Movie listing**: all nominees, filterable by award year and winner flag
// @description - **Producer win intervals**: producers with the shortest and longest gap between two consecutive wins
// @description
// @description ## Dataset
// @description
// @description The dataset is a semicolon separated file loaded once at startup (`DATASET_PATH`).
// @description The movie store is rebuilt on every start; the API never writes to it.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description Requests over the limit receive `429 Too Many Requests`.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "error": "year must be a valid number between 1000 and 3000"
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/raphaelratuczne/teste-outsera/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /
// @schemes http https
//
// @tag.name Movies
// @tag.description Nominated movies, optionally filtered by year and winner flag
//
// @tag.name Producers
// @tag.description Producer win interval statistics computed over the winning movies
//
// @tag.name Health
// @tag.description Liveness and readiness probes
package main
