// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

package producers

import (
	"fmt"
	"reflect"
	"sort"
	"testing"

	"github.com/raphaelratuczne/teste-outsera/internal/models"
)

func winner(year int, title, producers string) models.Movie {
	return models.Movie{Year: year, Title: title, Producers: producers, Winner: true}
}

func TestComputeWinIntervals_SingleProducer(t *testing.T) {
	movies := []models.Movie{
		winner(1980, "First", "Prod X"),
		winner(1990, "Second", "Prod X"),
		winner(1995, "Third", "Prod X"),
	}

	got := ComputeWinIntervals(movies)

	wantMin := []models.IntervalRecord{{Producer: "Prod X", Interval: 5, PreviousWin: 1990, FollowingWin: 1995}}
	wantMax := []models.IntervalRecord{{Producer: "Prod X", Interval: 10, PreviousWin: 1980, FollowingWin: 1990}}

	if !reflect.DeepEqual(got.Min, wantMin) {
		t.Errorf("Min = %+v, want %+v", got.Min, wantMin)
	}
	if !reflect.DeepEqual(got.Max, wantMax) {
		t.Errorf("Max = %+v, want %+v", got.Max, wantMax)
	}
}

func TestComputeWinIntervals_NoRepeatWinners(t *testing.T) {
	tests := []struct {
		name   string
		movies []models.Movie
	}{
		{"nil input", nil},
		{"empty input", []models.Movie{}},
		{"distinct producers", []models.Movie{
			winner(1980, "A", "Allan Carr"),
			winner(1981, "B", "Frank Yablans"),
			winner(1982, "C", "Mitsuharu Ishii"),
		}},
		{"blank producers", []models.Movie{
			winner(1980, "A", ""),
			winner(1990, "B", "   "),
		}},
		{"same producer same year only", []models.Movie{
			winner(1986, "Howard the Duck", "Gloria Katz"),
			winner(1986, "Under the Cherry Moon", "Gloria Katz"),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeWinIntervals(tt.movies)
			if got.Min == nil || got.Max == nil {
				t.Fatal("expected non-nil Min and Max")
			}
			if len(got.Min) != 0 || len(got.Max) != 0 {
				t.Errorf("expected empty result, got %+v", got)
			}
		})
	}
}

func TestComputeWinIntervals_TiesIncluded(t *testing.T) {
	movies := []models.Movie{
		winner(1990, "A", "Joel Silver"),
		winner(1991, "B", "Joel Silver"),
		winner(2000, "C", "Bo Derek and Matthew Vaughn"),
		winner(2001, "D", "Bo Derek"),
		winner(2015, "E", "Matthew Vaughn"),
	}

	got := ComputeWinIntervals(movies)

	wantMin := []models.IntervalRecord{
		{Producer: "Joel Silver", Interval: 1, PreviousWin: 1990, FollowingWin: 1991},
		{Producer: "Bo Derek", Interval: 1, PreviousWin: 2000, FollowingWin: 2001},
	}
	wantMax := []models.IntervalRecord{
		{Producer: "Matthew Vaughn", Interval: 15, PreviousWin: 2000, FollowingWin: 2015},
	}

	if !reflect.DeepEqual(got.Min, wantMin) {
		t.Errorf("Min = %+v, want %+v", got.Min, wantMin)
	}
	if !reflect.DeepEqual(got.Max, wantMax) {
		t.Errorf("Max = %+v, want %+v", got.Max, wantMax)
	}
}

func TestComputeWinIntervals_EqualMinAndMax(t *testing.T) {
	movies := []models.Movie{
		winner(1980, "A", "P1, P2"),
		winner(1984, "B", "P1, and P2"),
	}

	got := ComputeWinIntervals(movies)

	if len(got.Min) != 2 || len(got.Max) != 2 {
		t.Fatalf("expected both records in min and max, got %+v", got)
	}
	if !reflect.DeepEqual(got.Min, got.Max) {
		t.Errorf("expected Min == Max when every gap is equal, got %+v vs %+v", got.Min, got.Max)
	}
}

func TestComputeWinIntervals_DuplicateYearCollapsed(t *testing.T) {
	movies := []models.Movie{
		winner(1984, "Bolero", "Bo Derek"),
		winner(1990, "Ghosts Can't Do It", "Bo Derek"),
		winner(1990, "Another Title", "Bo Derek"),
		winner(1993, "Later", "Bo Derek"),
	}

	got := ComputeWinIntervals(movies)

	wantMin := []models.IntervalRecord{{Producer: "Bo Derek", Interval: 3, PreviousWin: 1990, FollowingWin: 1993}}
	wantMax := []models.IntervalRecord{{Producer: "Bo Derek", Interval: 6, PreviousWin: 1984, FollowingWin: 1990}}

	if !reflect.DeepEqual(got.Min, wantMin) {
		t.Errorf("Min = %+v, want %+v", got.Min, wantMin)
	}
	if !reflect.DeepEqual(got.Max, wantMax) {
		t.Errorf("Max = %+v, want %+v", got.Max, wantMax)
	}
}

func TestComputeWinIntervals_ExactNameGrouping(t *testing.T) {
	movies := []models.Movie{
		winner(1980, "A", "Joel Silver"),
		winner(1985, "B", "joel silver"),
	}

	got := ComputeWinIntervals(movies)
	if len(got.Min) != 0 || len(got.Max) != 0 {
		t.Errorf("names differing in case must not be grouped, got %+v", got)
	}
}

func TestComputeWinIntervals_Properties(t *testing.T) {
	movies := []models.Movie{
		winner(1980, "A", "Allan Carr"),
		winner(1982, "B", "Allan Carr and Jerry Weintraub"),
		winner(1985, "C", "Jerry Weintraub, Buzz Feitshans"),
		winner(1987, "D", "Bill Cosby"),
		winner(1991, "E", "Joel Silver"),
		winner(1992, "F", "Joel Silver, and Buzz Feitshans"),
		winner(1999, "G", "Jerry Weintraub"),
		winner(2005, "H", "Allan Carr"),
	}

	first := ComputeWinIntervals(movies)
	second := ComputeWinIntervals(movies)

	if (len(first.Min) == 0) != (len(first.Max) == 0) {
		t.Fatalf("Min and Max must be empty together, got %+v", first)
	}
	if len(first.Min) == 0 {
		t.Fatal("expected intervals for repeat winners")
	}

	for _, set := range [][]models.IntervalRecord{first.Min, first.Max} {
		for _, r := range set {
			if r.FollowingWin-r.PreviousWin != r.Interval {
				t.Errorf("record %+v: interval mismatch", r)
			}
			if r.Interval < 0 {
				t.Errorf("record %+v: negative interval", r)
			}
			if r.Interval != set[0].Interval {
				t.Errorf("record %+v: interval differs from %d", r, set[0].Interval)
			}
		}
	}

	if first.Max[0].Interval < first.Min[0].Interval {
		t.Errorf("max interval %d < min interval %d", first.Max[0].Interval, first.Min[0].Interval)
	}

	if !sameRecords(first.Min, second.Min) || !sameRecords(first.Max, second.Max) {
		t.Errorf("repeated computation differs: %+v vs %+v", first, second)
	}
}

func sameRecords(a, b []models.IntervalRecord) bool {
	if len(a) != len(b) {
		return false
	}
	key := func(r models.IntervalRecord) string {
		return fmt.Sprintf("%s|%d|%d", r.Producer, r.PreviousWin, r.FollowingWin)
	}
	ka := make([]string, len(a))
	kb := make([]string, len(b))
	for i := range a {
		ka[i] = key(a[i])
		kb[i] = key(b[i])
	}
	sort.Strings(ka)
	sort.Strings(kb)
	return reflect.DeepEqual(ka, kb)
}
