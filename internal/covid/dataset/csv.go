package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

// Source CSV column names outside the metric set.
const (
	ColumnDate  = "date"
	ColumnState = "state_abbrev"
)

// ErrMissingColumn reports a required header absent from the CSV.
var ErrMissingColumn = errors.New("missing column")

type columnIndex struct {
	date    int
	state   int
	metrics [metricCount]int
}

// Decode reads a CSV dataset with a header row.
//
// Required columns are date, state_abbrev, and every metric column; extra
// columns are ignored. Empty metric cells decode as zero because the
// upstream feed leaves gaps for days a state did not report.
func Decode(r io.Reader) (*Dataset, error) {
	if r == nil {
		return nil, errors.New("reader is required")
	}
	reader := csv.NewReader(r)
	reader.ReuseRecord = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("decode dataset: empty input")
		}
		return nil, fmt.Errorf("decode dataset header: %w", err)
	}
	index, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	var records []Record
	line := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("decode dataset line %d: %w", line, err)
		}
		record, err := decodeRow(row, index)
		if err != nil {
			return nil, fmt.Errorf("decode dataset line %d: %w", line, err)
		}
		records = append(records, record)
	}
	return &Dataset{records: records}, nil
}

func indexColumns(header []string) (columnIndex, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, seen := positions[name]; !seen {
			positions[name] = i
		}
	}
	lookup := func(name string) (int, error) {
		pos, ok := positions[name]
		if !ok {
			return 0, fmt.Errorf("decode dataset header: %w %q", ErrMissingColumn, name)
		}
		return pos, nil
	}

	var index columnIndex
	var err error
	if index.date, err = lookup(ColumnDate); err != nil {
		return columnIndex{}, err
	}
	if index.state, err = lookup(ColumnState); err != nil {
		return columnIndex{}, err
	}
	for m := Metric(0); m < metricCount; m++ {
		if index.metrics[m], err = lookup(m.Column()); err != nil {
			return columnIndex{}, err
		}
	}
	return index, nil
}

func decodeRow(row []string, index columnIndex) (Record, error) {
	cell := func(pos int) string {
		if pos >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[pos])
	}

	date, err := time.Parse(DateLayout, cell(index.date))
	if err != nil {
		return Record{}, fmt.Errorf("column %q: %w", ColumnDate, err)
	}
	record := Record{
		Date:  date,
		State: StateCode(cell(index.state)),
	}
	for m := Metric(0); m < metricCount; m++ {
		value, err := parseCount(cell(index.metrics[m]))
		if err != nil {
			return Record{}, fmt.Errorf("column %q: %w", m.Column(), err)
		}
		record.Values[m] = value
	}
	return record, nil
}

func parseCount(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) {
		return 0, nil
	}
	return value, nil
}
