// Package dataset defines the immutable in-memory COVID-19 state dataset.
//
// A Dataset is decoded once at startup and shared read-only by every
// aggregation for the remainder of the process lifetime.
package dataset

import (
	"iter"
	"time"
)

// DateLayout is the calendar date format used by the source CSV and charts.
const DateLayout = "2006-01-02"

// Record is one dataset row: a date, a state, and the seven metric values.
type Record struct {
	Date   time.Time
	State  StateCode
	Values Totals
}

// Dataset is an ordered, read-only collection of records.
type Dataset struct {
	records []Record
}

// New builds a dataset from records, copying the slice so later caller
// mutation cannot leak in.
func New(records []Record) *Dataset {
	owned := make([]Record, len(records))
	copy(owned, records)
	return &Dataset{records: owned}
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// All yields records in source order.
func (d *Dataset) All() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		if d == nil {
			return
		}
		for _, record := range d.records {
			if !yield(record) {
				return
			}
		}
	}
}

// Filter yields records matching state, or every record when state is empty.
func (d *Dataset) Filter(state StateCode) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for record := range d.All() {
			if state != "" && record.State != state {
				continue
			}
			if !yield(record) {
				return
			}
		}
	}
}

// DateBounds returns the earliest and latest record dates. ok is false for an
// empty dataset.
func (d *Dataset) DateBounds() (first, last time.Time, ok bool) {
	for record := range d.All() {
		if !ok {
			first, last, ok = record.Date, record.Date, true
			continue
		}
		if record.Date.Before(first) {
			first = record.Date
		}
		if record.Date.After(last) {
			last = record.Date
		}
	}
	return first, last, ok
}
