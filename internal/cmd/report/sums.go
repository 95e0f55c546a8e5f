package report

import (
	"github.com/louisbranch/covidau/internal/covid/aggregate"
	"github.com/louisbranch/covidau/internal/covid/dataset"
	"github.com/spf13/cobra"
)

// SumsOptions holds flags for the sums command.
type SumsOptions struct {
	*RootOptions
	State string
}

// SumsReport is the printed result of the sums command.
type SumsReport struct {
	State   string             `json:"state,omitempty" yaml:"state,omitempty"`
	Records int                `json:"records"         yaml:"records"`
	Totals  map[string]float64 `json:"totals"          yaml:"totals"`
}

// NewSumsCommand creates the sums command.
func NewSumsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SumsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sums",
		Short: "Print metric totals",
		Long: `Sum every metric over the dataset, optionally restricted to one state.

An unknown state code matches no rows and prints all zeros.

Examples:
  covidau-report sums
  covidau-report sums --state NSW --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDataset(cmd, opts.RootOptions, func(ds *dataset.Dataset) error {
				return writeReport(cmd.OutOrStdout(), opts.Format, buildSums(ds, dataset.ParseStateCode(opts.State)))
			})
		},
	}

	cmd.Flags().StringVar(&opts.State, "state", "", "state code filter (empty for all states)")

	return cmd
}

func buildSums(ds *dataset.Dataset, filter dataset.StateCode) SumsReport {
	records := 0
	for range ds.Filter(filter) {
		records++
	}
	return SumsReport{
		State:   string(filter),
		Records: records,
		Totals:  aggregate.Sums(ds, filter).Map(),
	}
}
