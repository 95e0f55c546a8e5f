// Package cmd holds the startup plumbing shared by covidau commands: config
// loading in env-then-flags order and a telemetry-wrapped run loop.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/louisbranch/covidau/internal/platform/config"
	"github.com/louisbranch/covidau/internal/platform/otel"
)

const defaultOTelShutdownTimeout = 5 * time.Second

// Service identifiers used as the OpenTelemetry service name.
const (
	ServiceDashboard = "dashboard"
	ServiceReport    = "report"
)

type runSettings struct {
	shutdownTimeout time.Duration
	setup           func(context.Context, string) (otel.ShutdownFunc, error)
}

// RunOption adjusts RunWithTelemetry.
type RunOption func(*runSettings)

// WithShutdownTimeout bounds the telemetry flush after run returns.
func WithShutdownTimeout(d time.Duration) RunOption {
	return func(s *runSettings) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// ParseConfig loads environment defaults into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags. Flag defaults should already hold
// the environment values so flags win.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry sets up tracing for service, executes run, and flushes
// spans once run returns.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error, opts ...RunOption) error {
	service = strings.TrimSpace(service)
	switch {
	case service == "":
		return errors.New("service name is required")
	case run == nil:
		return errors.New("run function is required")
	case ctx == nil:
		return errors.New("context is required")
	}

	settings := runSettings{shutdownTimeout: defaultOTelShutdownTimeout, setup: otel.Setup}
	for _, opt := range opts {
		if opt != nil {
			opt(&settings)
		}
	}

	shutdown, err := settings.setup(ctx, service)
	if err != nil {
		return fmt.Errorf("%s telemetry: %w", service, err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), settings.shutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("%s otel shutdown: %v", service, err)
		}
	}()
	return run(ctx)
}
