package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/louisbranch/covidau/internal/covid/dataset"
	"github.com/louisbranch/covidau/internal/services/dashboard/binding"
)

var fixedNow = func() time.Time {
	return time.Date(2021, time.March, 1, 15, 30, 0, 0, time.UTC)
}

func day(d int) time.Time {
	return time.Date(2021, 1, d, 0, 0, 0, 0, time.UTC)
}

func values(confirmed, deaths, tests, positives, recovered, hosp, vaccines float64) dataset.Totals {
	var t dataset.Totals
	t[dataset.Confirmed] = confirmed
	t[dataset.Deaths] = deaths
	t[dataset.Tests] = tests
	t[dataset.Positives] = positives
	t[dataset.Recovered] = recovered
	t[dataset.Hospitalizations] = hosp
	t[dataset.Vaccinations] = vaccines
	return t
}

// fixtureDataset totals 1,234 confirmed cases across NSW and VIC.
func fixtureDataset() *dataset.Dataset {
	return dataset.New([]dataset.Record{
		{Date: day(1), State: dataset.StateNSW, Values: values(1200, 10, 50000, 1200, 900, 20, 0)},
		{Date: day(1), State: dataset.StateVIC, Values: values(34, 1, 2000, 34, 30, 2, 0)},
		{Date: day(2), State: dataset.StateNSW, Values: values(0, 0, 1500, 0, 100, 18, 5000)},
	})
}

var errComputeFailed = errors.New("compute failed")

func failingTable() (*binding.Table, error) {
	return binding.NewTable([]binding.Binding{{
		Name:    "broken",
		Outputs: []binding.Slot{SlotCases},
		Inputs:  []binding.Slot{SlotState},
		Compute: func(context.Context, binding.Inputs) ([]binding.Value, error) {
			return nil, errComputeFailed
		},
	}})
}
