package dashboard

import (
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "0.0.0.0:8050" {
		t.Fatalf("expected default http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.DatasetURL != "" {
		t.Fatalf("expected empty dataset url so the loader default applies, got %q", cfg.DatasetURL)
	}
	if cfg.DatasetPath != "" {
		t.Fatalf("expected empty dataset path, got %q", cfg.DatasetPath)
	}
	if !cfg.MetricsEnabled {
		t.Fatal("expected metrics enabled by default")
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("COVIDAU_DASHBOARD_HTTP_ADDR", "env-addr")
	t.Setenv("COVIDAU_DATASET_PATH", "/env/states.csv")
	t.Setenv("COVIDAU_METRICS_ENABLED", "false")

	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "flag-addr", "-dataset-url", "http://example.test/data.csv"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "flag-addr" {
		t.Fatalf("expected flag http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.DatasetPath != "/env/states.csv" {
		t.Fatalf("expected env dataset path, got %q", cfg.DatasetPath)
	}
	if cfg.DatasetURL != "http://example.test/data.csv" {
		t.Fatalf("expected flag dataset url, got %q", cfg.DatasetURL)
	}
	if cfg.MetricsEnabled {
		t.Fatal("expected metrics disabled by env")
	}
}

func TestParseConfigRejectsUnknownFlag(t *testing.T) {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if _, err := ParseConfig(fs, []string{"-nope"}); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestRunFailsWhenDatasetMissing(t *testing.T) {
	err := Run(context.Background(), Config{
		HTTPAddr:    "127.0.0.1:0",
		DatasetPath: filepath.Join(t.TempDir(), "missing.csv"),
	})
	if err == nil || !strings.Contains(err.Error(), "load dataset") {
		t.Fatalf("Run() error = %v, want load dataset failure", err)
	}
}

func TestRunStopsWhenContextEnds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "states.csv")
	csv := "date,state_abbrev,confirmed,deaths,tests,positives,recovered,hosp,vaccines\n" +
		"2021-01-01,NSW,10,1,100,10,5,2,0\n"
	if err := os.WriteFile(path, []byte(csv), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Run(ctx, Config{HTTPAddr: "127.0.0.1:0", DatasetPath: path}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}
