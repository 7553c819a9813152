// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

// Package dataset reads the Golden Raspberry Awards movie list.
//
// The file is semicolon separated with a header row:
//
//	year;title;studios;producers;winner
//	1980;Can't Stop the Music;Associated Film Distribution;Allan Carr;yes
//
// winner is "yes" for the award winner and empty otherwise. Rows that
// cannot produce a movie are logged and skipped, while a missing file is
// reported as ErrDatasetNotFound so startup can abort.
package dataset
