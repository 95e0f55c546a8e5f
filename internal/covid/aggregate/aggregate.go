// Package aggregate computes the dashboard's derived views of a dataset.
//
// Every function is pure: given the same dataset and filter it returns the
// same result, and it never mutates the dataset. An empty filter selects all
// rows; a filter naming a state with no rows (known or not) selects nothing.
package aggregate

import (
	"sort"
	"time"

	"github.com/louisbranch/covidau/internal/covid/dataset"
)

// StateRow is one (date, state) group with its summed metrics.
type StateRow struct {
	Date   time.Time
	State  dataset.StateCode
	Totals dataset.Totals
}

// DateRow is one date group with metrics summed across states.
type DateRow struct {
	Date   time.Time
	Totals dataset.Totals
}

// ByState is the per-state time series plus the distinct states it covers.
type ByState struct {
	Rows []StateRow
	// States lists distinct state codes in order of first appearance.
	States []dataset.StateCode
}

// Series returns the rows for one state in date order.
func (b ByState) Series(state dataset.StateCode) []StateRow {
	var out []StateRow
	for _, row := range b.Rows {
		if row.State == state {
			out = append(out, row)
		}
	}
	return out
}

// Sums totals each metric over rows matching filter.
func Sums(ds *dataset.Dataset, filter dataset.StateCode) dataset.Totals {
	var totals dataset.Totals
	for record := range ds.Filter(filter) {
		totals = totals.Add(record.Values)
	}
	return totals
}

type stateKey struct {
	date  int64
	state dataset.StateCode
}

// TimeSeriesByState groups rows matching filter by (date, state).
//
// Rows are ordered by date ascending, then state code ascending.
func TimeSeriesByState(ds *dataset.Dataset, filter dataset.StateCode) ByState {
	groups := make(map[stateKey]int)
	seen := make(map[dataset.StateCode]bool)
	var out ByState
	for record := range ds.Filter(filter) {
		if !seen[record.State] {
			seen[record.State] = true
			out.States = append(out.States, record.State)
		}
		key := stateKey{date: record.Date.Unix(), state: record.State}
		idx, ok := groups[key]
		if !ok {
			idx = len(out.Rows)
			groups[key] = idx
			out.Rows = append(out.Rows, StateRow{Date: record.Date, State: record.State})
		}
		out.Rows[idx].Totals = out.Rows[idx].Totals.Add(record.Values)
	}
	sort.SliceStable(out.Rows, func(i, j int) bool {
		a, b := out.Rows[i], out.Rows[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.State < b.State
	})
	return out
}

// TimeSeriesOverall groups rows matching filter by date, merging states.
func TimeSeriesOverall(ds *dataset.Dataset, filter dataset.StateCode) []DateRow {
	groups := make(map[int64]int)
	var out []DateRow
	for record := range ds.Filter(filter) {
		key := record.Date.Unix()
		idx, ok := groups[key]
		if !ok {
			idx = len(out)
			groups[key] = idx
			out = append(out, DateRow{Date: record.Date})
		}
		out[idx].Totals = out[idx].Totals.Add(record.Values)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// CollapseStates re-sums a per-state series by date. Applied to the
// unfiltered per-state series it equals TimeSeriesOverall.
func CollapseStates(rows []StateRow) []DateRow {
	var out []DateRow
	for _, row := range rows {
		if n := len(out); n > 0 && out[n-1].Date.Equal(row.Date) {
			out[n-1].Totals = out[n-1].Totals.Add(row.Totals)
			continue
		}
		out = append(out, DateRow{Date: row.Date, Totals: row.Totals})
	}
	return out
}
