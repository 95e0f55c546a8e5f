package dashboard

import (
	"context"
	"fmt"

	"github.com/louisbranch/covidau/internal/covid/aggregate"
	"github.com/louisbranch/covidau/internal/covid/dataset"
	"github.com/louisbranch/covidau/internal/services/dashboard/binding"
	"github.com/louisbranch/covidau/internal/services/dashboard/chart"
	"github.com/louisbranch/covidau/internal/services/dashboard/i18n"
)

// overviewInputs drive every overview binding. No binding lists the date
// slots, so the date range control never changes an output.
var overviewInputs = []binding.Slot{SlotPath, SlotState}

// statMetrics pairs each stat slot with the metric it sums, in tile order.
var statMetrics = []struct {
	slot   binding.Slot
	metric dataset.Metric
}{
	{SlotCases, dataset.Confirmed},
	{SlotDeaths, dataset.Deaths},
	{SlotTests, dataset.Tests},
	{SlotPositives, dataset.Positives},
	{SlotRecovered, dataset.Recovered},
}

// overviewBindings formats text with the printer carried by the dispatch
// context, so counts and trace names follow the request language.
func overviewBindings(ds *dataset.Dataset) []binding.Binding {
	statSlots := make([]binding.Slot, 0, len(statMetrics))
	for _, s := range statMetrics {
		statSlots = append(statSlots, s.slot)
	}

	return []binding.Binding{
		{
			Name:    "stats",
			Outputs: statSlots,
			Inputs:  overviewInputs,
			Compute: func(ctx context.Context, in binding.Inputs) ([]binding.Value, error) {
				loc := i18n.PrinterFrom(ctx)
				totals := aggregate.Sums(ds, dataset.ParseStateCode(in.Get(SlotState)))
				values := make([]binding.Value, 0, len(statMetrics))
				for _, s := range statMetrics {
					values = append(values, i18n.FormatCount(loc, totals.Get(s.metric)))
				}
				return values, nil
			},
		},
		{
			Name:    "time-series",
			Outputs: []binding.Slot{SlotTimeSeries},
			Inputs:  overviewInputs,
			Compute: func(_ context.Context, in binding.Inputs) ([]binding.Value, error) {
				series := aggregate.TimeSeriesByState(ds, dataset.ParseStateCode(in.Get(SlotState)))
				return []binding.Value{chart.LinesByState(series)}, nil
			},
		},
		{
			Name:    "vaccs-vs-hosps",
			Outputs: []binding.Slot{SlotVaccsVsHosps},
			Inputs:  overviewInputs,
			Compute: func(ctx context.Context, in binding.Inputs) ([]binding.Value, error) {
				loc := i18n.PrinterFrom(ctx)
				rows := aggregate.TimeSeriesOverall(ds, dataset.ParseStateCode(in.Get(SlotState)))
				fig := chart.VaccinationsVsHospitalisations(rows,
					loc.Sprintf("chart.trace.vaccinations"),
					loc.Sprintf("chart.trace.hospitalisations"),
				)
				return []binding.Value{fig}, nil
			},
		},
	}
}

func newBindingTable(ds *dataset.Dataset, observer binding.Observer) (*binding.Table, error) {
	var opts []binding.Option
	if observer != nil {
		opts = append(opts, binding.WithObserver(observer))
	}
	table, err := binding.NewTable(overviewBindings(ds), opts...)
	if err != nil {
		return nil, err
	}
	if err := checkRenderedSlots(table); err != nil {
		return nil, err
	}
	return table, nil
}

// checkRenderedSlots requires every stat tile and chart panel on the page
// to be filled by some binding.
func checkRenderedSlots(table *binding.Table) error {
	bound := make(map[binding.Slot]bool)
	for _, slot := range table.Outputs() {
		bound[slot] = true
	}
	for _, tile := range statTiles {
		if !bound[tile.slot] {
			return fmt.Errorf("stat tile %s has no binding", tile.slot)
		}
	}
	for _, panel := range chartPanels {
		if !bound[panel.slot] {
			return fmt.Errorf("chart panel %s has no binding", panel.slot)
		}
	}
	return nil
}
