// Package source loads the dashboard dataset from a remote URL or a local file.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/louisbranch/covidau/internal/covid/dataset"
	"github.com/louisbranch/covidau/internal/platform/timeouts"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// DefaultURL is the upstream CSV of daily per-state COVID-19 figures.
const DefaultURL = "https://raw.githubusercontent.com/M3IT/COVID-19_Data/master/Data/COVID_AU_state.csv"

const tracerName = "github.com/louisbranch/covidau/internal/covid/source"

// Loader fetches and decodes the dataset once.
type Loader struct {
	// URL is fetched when Path is empty.
	URL string
	// Path names a local CSV file that takes precedence over URL.
	Path string
	// Client defaults to an http.Client bounded by timeouts.DatasetFetch.
	Client *http.Client
}

// Load reads the configured source and decodes it into a Dataset.
func (l Loader) Load(ctx context.Context) (*dataset.Dataset, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	ctx, span := otel.Tracer(tracerName).Start(ctx, "source.Load")
	defer span.End()

	ds, origin, err := l.load(ctx)
	span.SetAttributes(attribute.String("dataset.origin", origin))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("dataset.records", ds.Len()))
	log.Printf("loaded %s from %s", describe(ds), origin)
	return ds, nil
}

// describe summarises the record count and covered date span.
func describe(ds *dataset.Dataset) string {
	first, last, ok := ds.DateBounds()
	if !ok {
		return fmt.Sprintf("%d dataset records", ds.Len())
	}
	return fmt.Sprintf("%d dataset records covering %s..%s",
		ds.Len(), first.Format(dataset.DateLayout), last.Format(dataset.DateLayout))
}

func (l Loader) load(ctx context.Context) (*dataset.Dataset, string, error) {
	if path := strings.TrimSpace(l.Path); path != "" {
		ds, err := loadFile(path)
		return ds, path, err
	}
	url := strings.TrimSpace(l.URL)
	if url == "" {
		url = DefaultURL
	}
	ds, err := l.fetch(ctx, url)
	return ds, url, err
}

func loadFile(path string) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset file: %w", err)
	}
	defer f.Close()

	ds, err := dataset.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load dataset file %s: %w", path, err)
	}
	return ds, nil
}

func (l Loader) fetch(ctx context.Context, url string) (*dataset.Dataset, error) {
	client := l.Client
	if client == nil {
		client = &http.Client{Timeout: timeouts.DatasetFetch}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build dataset request: %w", err)
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("fetch dataset: unexpected status %s", resp.Status)
	}
	ds, err := dataset.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	return ds, nil
}
