// Package report implements the covidau-report command line tool, which prints
// dataset aggregates without starting the dashboard server.
package report

import (
	"context"
	"fmt"
	"slices"

	"github.com/louisbranch/covidau/internal/covid/dataset"
	"github.com/louisbranch/covidau/internal/covid/source"
	entrypoint "github.com/louisbranch/covidau/internal/platform/cmd"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all report commands.
type RootOptions struct {
	Format      string `env:"COVIDAU_REPORT_FORMAT" envDefault:"text"`
	DatasetURL  string `env:"COVIDAU_DATASET_URL"`
	DatasetPath string `env:"COVIDAU_DATASET_PATH"`
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// NewRootCommand creates the root command. Flag defaults come from the
// environment so the CLI and the dashboard share dataset settings.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	envErr := entrypoint.ParseConfig(opts)

	cmd := &cobra.Command{
		Use:   "covidau-report",
		Short: "Print COVID-19 Australia dataset aggregates",
		Long:  "Loads the per-state COVID-19 dataset and prints metric sums or time series as text, JSON, or YAML.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return fmt.Errorf("parse env: %w", envErr)
			}
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", opts.Format, "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.DatasetURL, "dataset-url", opts.DatasetURL, "URL of the per-state CSV dataset (default "+source.DefaultURL+")")
	cmd.PersistentFlags().StringVar(&opts.DatasetPath, "dataset-path", opts.DatasetPath, "local CSV file used instead of the dataset URL")

	cmd.AddCommand(NewSumsCommand(opts))
	cmd.AddCommand(NewSeriesCommand(opts))

	return cmd
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context, args []string) error {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// withDataset loads the dataset inside a telemetry-wrapped run and hands it
// to fn.
func withDataset(cmd *cobra.Command, opts *RootOptions, fn func(*dataset.Dataset) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceReport, func(ctx context.Context) error {
		ds, err := source.Loader{URL: opts.DatasetURL, Path: opts.DatasetPath}.Load(ctx)
		if err != nil {
			return fmt.Errorf("load dataset: %w", err)
		}
		return fn(ds)
	})
}
