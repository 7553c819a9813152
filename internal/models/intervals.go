// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

package models

// IntervalRecord is the gap between two consecutive distinct win years of
// one producer. Interval always equals FollowingWin - PreviousWin.
type IntervalRecord struct {
	Producer     string `json:"producer"`
	Interval     int    `json:"interval"`
	PreviousWin  int    `json:"previousWin"`
	FollowingWin int    `json:"followingWin"`
}

// IntervalResultSet holds every IntervalRecord matching the global minimum
// interval (Min) and the global maximum interval (Max).
//
// Both slices are empty together when no producer has won twice. They are
// never nil so that they always serialize as JSON arrays.
type IntervalResultSet struct {
	Min []IntervalRecord `json:"min"`
	Max []IntervalRecord `json:"max"`
}

// EmptyIntervalResultSet returns a result set with empty, non-nil slices.
func EmptyIntervalResultSet() IntervalResultSet {
	return IntervalResultSet{
		Min: []IntervalRecord{},
		Max: []IntervalRecord{},
	}
}
