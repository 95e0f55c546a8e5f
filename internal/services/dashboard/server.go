package dashboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/covidau/internal/covid/dataset"
	"github.com/louisbranch/covidau/internal/platform/telemetry/metrics"
	"github.com/louisbranch/covidau/internal/platform/timeouts"
	"github.com/louisbranch/covidau/internal/services/dashboard/binding"
	"github.com/louisbranch/covidau/internal/services/dashboard/platform/httpx"
	"github.com/louisbranch/covidau/internal/services/dashboard/routepath"
	"github.com/louisbranch/covidau/internal/services/dashboard/static"
)

const staticCacheControl = "public, max-age=3600"

// Config defines the inputs for the dashboard HTTP server.
type Config struct {
	HTTPAddr string
	// Dataset is loaded once at startup and never mutated.
	Dataset  *dataset.Dataset
	Settings Settings
	// Metrics is optional; nil disables binding and request metrics.
	Metrics *metrics.Collector
	// AccessLog receives one line per request; nil uses the log writer.
	AccessLog io.Writer
	// Now is the clock bounding the date range control.
	Now func() time.Time
}

// Server hosts the dashboard HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler assembles the dashboard routes and middleware.
func NewHandler(config Config) (http.Handler, error) {
	if config.Dataset == nil {
		return nil, errors.New("dataset is required")
	}
	table, err := newBindingTable(config.Dataset, observerOrNil(config.Metrics))
	if err != nil {
		return nil, fmt.Errorf("build binding table: %w", err)
	}

	mux := http.NewServeMux()
	cached := httpx.CacheControl(staticCacheControl)
	mux.Handle(http.MethodGet+" "+routepath.StaticPrefix, cached(http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(static.FS)))))
	mux.Handle(http.MethodGet+" "+routepath.AssetsPrefix, cached(http.StripPrefix(routepath.AssetsPrefix, http.FileServer(http.FS(static.Assets())))))

	var instrument instrumentFunc
	if config.Metrics != nil {
		instrument = config.Metrics.Instrument
		mux.Handle(http.MethodGet+" "+routepath.Metrics, config.Metrics.Handler())
	}
	for _, b := range table.Bindings() {
		log.Printf("binding %s: inputs=%v outputs=%v", b.Name, b.Inputs, b.Outputs)
	}
	registerRoutes(mux, newHandlers(newService(table, config.Settings, config.Now)), instrument)

	return httpx.Chain(mux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		httpx.AccessLog(config.AccessLog),
		httpx.Compress(),
	), nil
}

// observerOrNil keeps a nil collector from becoming a non-nil interface.
func observerOrNil(c *metrics.Collector) binding.Observer {
	if c == nil {
		return nil
	}
	return c
}

// NewServer builds a configured dashboard server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(config)
	if err != nil {
		return nil, err
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP until ctx is canceled, then drains in-flight
// requests within timeouts.Shutdown.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("dashboard server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("dashboard listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close stops the server immediately.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	if err := s.httpServer.Close(); err != nil {
		log.Printf("close http server: %v", err)
	}
}
