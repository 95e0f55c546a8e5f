// Package dashboard parses dashboard command flags, loads the dataset, and
// runs the HTTP server.
package dashboard

import (
	"context"
	"flag"
	"fmt"

	"github.com/louisbranch/covidau/internal/covid/source"
	entrypoint "github.com/louisbranch/covidau/internal/platform/cmd"
	"github.com/louisbranch/covidau/internal/platform/telemetry/metrics"
	server "github.com/louisbranch/covidau/internal/services/dashboard"
)

// Config holds dashboard command configuration.
type Config struct {
	HTTPAddr       string `env:"COVIDAU_DASHBOARD_HTTP_ADDR" envDefault:"0.0.0.0:8050"`
	DatasetURL     string `env:"COVIDAU_DATASET_URL"`
	DatasetPath    string `env:"COVIDAU_DATASET_PATH"`
	MetricsEnabled bool   `env:"COVIDAU_METRICS_ENABLED"     envDefault:"true"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "dashboard HTTP listen address")
	fs.StringVar(&cfg.DatasetURL, "dataset-url", cfg.DatasetURL, "URL of the per-state CSV dataset (default "+source.DefaultURL+")")
	fs.StringVar(&cfg.DatasetPath, "dataset-path", cfg.DatasetPath, "local CSV file used instead of the dataset URL")
	fs.BoolVar(&cfg.MetricsEnabled, "metrics", cfg.MetricsEnabled, "expose Prometheus metrics at /metrics")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run loads the dataset once and serves the dashboard until ctx ends.
// A dataset load failure aborts startup.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceDashboard, func(ctx context.Context) error {
		ds, err := source.Loader{URL: cfg.DatasetURL, Path: cfg.DatasetPath}.Load(ctx)
		if err != nil {
			return fmt.Errorf("load dataset: %w", err)
		}

		var collector *metrics.Collector
		if cfg.MetricsEnabled {
			collector = metrics.NewCollector()
		}
		srv, err := server.NewServer(server.Config{
			HTTPAddr: cfg.HTTPAddr,
			Dataset:  ds,
			Settings: server.DefaultSettings(),
			Metrics:  collector,
		})
		if err != nil {
			return fmt.Errorf("init dashboard server: %w", err)
		}
		defer srv.Close()

		if err := srv.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve dashboard: %w", err)
		}
		return nil
	})
}
