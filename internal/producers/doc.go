// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

// Package producers computes producer award win intervals.
//
// ParseNames splits a free-text credit ("A, B, and C") into names.
// ComputeWinIntervals groups winning movies by producer, derives the gap
// between every pair of consecutive distinct win years and keeps the
// records matching the global minimum and maximum gap. Service wires the
// computation to the movie store.
//
// The computation is pure: it only reads its argument and allocates fresh
// state per call, so concurrent callers need no coordination.
package producers
