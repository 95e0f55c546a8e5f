package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "covidau"

// Outcome labels for binding evaluations.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Collector records dashboard metrics on a private registry.
type Collector struct {
	registry           *prometheus.Registry
	bindingEvaluations *prometheus.CounterVec
	bindingDuration    *prometheus.HistogramVec
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
}

// NewCollector registers dashboard metrics plus Go runtime and process
// collectors on a fresh registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		bindingEvaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "binding_evaluations_total",
			Help:      "Total reactive binding evaluations by binding and outcome.",
		}, []string{"binding", "outcome"}),
		bindingDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "binding_evaluation_duration_seconds",
			Help:      "Histogram of reactive binding evaluation durations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"binding"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total count of HTTP requests processed by route, method, and status.",
		}, []string{"route", "method", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Histogram of HTTP request durations by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "code"}),
	}
	c.registry.MustRegister(
		c.bindingEvaluations,
		c.bindingDuration,
		c.httpRequests,
		c.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// ObserveBinding records one binding evaluation.
func (c *Collector) ObserveBinding(binding string, elapsed time.Duration, err error) {
	if c == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	c.bindingEvaluations.WithLabelValues(binding, outcome).Inc()
	c.bindingDuration.WithLabelValues(binding).Observe(elapsed.Seconds())
}

// Instrument wraps next with request count and latency metrics for route.
func (c *Collector) Instrument(route string, next http.Handler) http.Handler {
	if c == nil || next == nil {
		return next
	}
	labels := prometheus.Labels{"route": route}
	counted := promhttp.InstrumentHandlerCounter(c.httpRequests.MustCurryWith(labels), next)
	return promhttp.InstrumentHandlerDuration(c.httpDuration.MustCurryWith(labels), counted)
}

// Handler exposes the registry in Prometheus text format.
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
