// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

package producers

import (
	"strings"

	"github.com/raphaelratuczne/teste-outsera/internal/models"
)

// winRecord is the ascending list of distinct win years of one producer.
type winRecord struct {
	producer string
	years    []int
	seen     map[int]struct{}
}

func (w *winRecord) add(year int) {
	if _, ok := w.seen[year]; ok {
		return
	}
	w.seen[year] = struct{}{}
	w.years = append(w.years, year)
}

// ComputeWinIntervals reduces winning movies to the producers with the
// shortest and longest gaps between consecutive wins.
//
// The input must contain winners only, ordered by year ascending (the order
// the store returns them in). Producers are grouped by exact name. A
// producer credited twice in the same year counts one win for that year.
//
// Records inside Min and Max follow producer discovery order, then pair
// order. When no producer has won twice both slices are empty.
func ComputeWinIntervals(winners []models.Movie) models.IntervalResultSet {
	records := groupWins(winners)

	var intervals []models.IntervalRecord
	for _, rec := range records {
		for i := 0; i+1 < len(rec.years); i++ {
			intervals = append(intervals, models.IntervalRecord{
				Producer:     rec.producer,
				Interval:     rec.years[i+1] - rec.years[i],
				PreviousWin:  rec.years[i],
				FollowingWin: rec.years[i+1],
			})
		}
	}

	result := models.EmptyIntervalResultSet()
	if len(intervals) == 0 {
		return result
	}

	minInterval, maxInterval := intervals[0].Interval, intervals[0].Interval
	for _, iv := range intervals[1:] {
		minInterval = min(minInterval, iv.Interval)
		maxInterval = max(maxInterval, iv.Interval)
	}

	for _, iv := range intervals {
		if iv.Interval == minInterval {
			result.Min = append(result.Min, iv)
		}
		if iv.Interval == maxInterval {
			result.Max = append(result.Max, iv)
		}
	}
	return result
}

// groupWins builds one winRecord per producer, in order of first appearance.
func groupWins(winners []models.Movie) []*winRecord {
	var ordered []*winRecord
	byName := make(map[string]*winRecord)

	for i := range winners {
		movie := &winners[i]
		if strings.TrimSpace(movie.Producers) == "" {
			continue
		}
		for _, name := range ParseNames(movie.Producers) {
			rec, ok := byName[name]
			if !ok {
				rec = &winRecord{producer: name, seen: make(map[int]struct{})}
				byName[name] = rec
				ordered = append(ordered, rec)
			}
			rec.add(movie.Year)
		}
	}
	return ordered
}
