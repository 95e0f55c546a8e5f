package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/louisbranch/covidau/internal/covid/dataset"
)

const csvBody = "date,state_abbrev,confirmed,deaths,tests,positives,recovered,hosp,vaccines\n" +
	"2021-01-01,NSW,10,1,100,10,5,2,0\n" +
	"2021-01-01,VIC,5,0,50,5,5,1,0\n"

func TestLoadFetchesURL(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(csvBody))
	}))
	t.Cleanup(srv.Close)

	ds, err := Loader{URL: srv.URL, Client: srv.Client()}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ds.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", ds.Len())
	}
}

func TestLoadRejectsNonSuccessStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	_, err := Loader{URL: srv.URL, Client: srv.Client()}.Load(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "unexpected status") {
		t.Fatalf("error = %v, want unexpected status", err)
	}
}

func TestLoadPropagatesDecodeErrors(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("date,state_abbrev\n2021-01-01,NSW\n"))
	}))
	t.Cleanup(srv.Close)

	if _, err := (Loader{URL: srv.URL, Client: srv.Client()}).Load(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestLoadPrefersLocalPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "states.csv")
	if err := os.WriteFile(path, []byte(csvBody), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	ds, err := Loader{URL: "http://127.0.0.1:0/unreachable", Path: path}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ds.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", ds.Len())
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Loader{Path: filepath.Join(t.TempDir(), "missing.csv")}.Load(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "open dataset file") {
		t.Fatalf("error = %v, want open dataset file", err)
	}
}

func TestLoadRequiresContext(t *testing.T) {
	t.Parallel()

	if _, err := (Loader{}).Load(nil); err == nil {
		t.Fatal("expected error for nil context")
	}
}

func TestDescribeReportsDateSpan(t *testing.T) {
	t.Parallel()

	ds, err := dataset.Decode(strings.NewReader(csvBody + "2021-01-03,NSW,1,0,10,1,0,0,0\n"))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got, want := describe(ds), "3 dataset records covering 2021-01-01..2021-01-03"; got != want {
		t.Fatalf("describe() = %q, want %q", got, want)
	}
	if got, want := describe(dataset.New(nil)), "0 dataset records"; got != want {
		t.Fatalf("describe(empty) = %q, want %q", got, want)
	}
}
