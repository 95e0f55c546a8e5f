package report

import (
	"github.com/louisbranch/covidau/internal/covid/aggregate"
	"github.com/louisbranch/covidau/internal/covid/dataset"
	"github.com/spf13/cobra"
)

// SeriesOptions holds flags for the series command.
type SeriesOptions struct {
	*RootOptions
	State   string
	Overall bool
}

// SeriesRow is one printed time series point.
type SeriesRow struct {
	Date   string             `json:"date"            yaml:"date"`
	State  string             `json:"state,omitempty" yaml:"state,omitempty"`
	Totals map[string]float64 `json:"totals"          yaml:"totals"`
}

// SeriesReport is the printed result of the series command.
type SeriesReport struct {
	States []string    `json:"states,omitempty" yaml:"states,omitempty"`
	Rows   []SeriesRow `json:"rows"             yaml:"rows"`
}

// NewSeriesCommand creates the series command.
func NewSeriesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SeriesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "series",
		Short: "Print the daily time series",
		Long: `Group dataset rows by date and state, or by date alone with --overall.

Rows are ordered by date, then state code.

Examples:
  covidau-report series --state VIC
  covidau-report series --overall --format yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDataset(cmd, opts.RootOptions, func(ds *dataset.Dataset) error {
				filter := dataset.ParseStateCode(opts.State)
				var report SeriesReport
				if opts.Overall {
					report = buildOverallSeries(ds, filter)
				} else {
					report = buildStateSeries(ds, filter)
				}
				return writeReport(cmd.OutOrStdout(), opts.Format, report)
			})
		},
	}

	cmd.Flags().StringVar(&opts.State, "state", "", "state code filter (empty for all states)")
	cmd.Flags().BoolVar(&opts.Overall, "overall", false, "merge states into one row per date")

	return cmd
}

func buildStateSeries(ds *dataset.Dataset, filter dataset.StateCode) SeriesReport {
	series := aggregate.TimeSeriesByState(ds, filter)
	report := SeriesReport{Rows: make([]SeriesRow, 0, len(series.Rows))}
	for _, code := range series.States {
		report.States = append(report.States, string(code))
	}
	for _, row := range series.Rows {
		report.Rows = append(report.Rows, SeriesRow{
			Date:   row.Date.Format(dataset.DateLayout),
			State:  string(row.State),
			Totals: row.Totals.Map(),
		})
	}
	return report
}

func buildOverallSeries(ds *dataset.Dataset, filter dataset.StateCode) SeriesReport {
	rows := aggregate.TimeSeriesOverall(ds, filter)
	report := SeriesReport{Rows: make([]SeriesRow, 0, len(rows))}
	for _, row := range rows {
		report.Rows = append(report.Rows, SeriesRow{
			Date:   row.Date.Format(dataset.DateLayout),
			Totals: row.Totals.Map(),
		})
	}
	return report
}
