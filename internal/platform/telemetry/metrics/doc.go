// Package metrics provides operational metrics collection for the dashboard.
//
// # Metric Categories
//
//   - Bindings: evaluation counts and latency per reactive binding, split by
//     outcome
//   - HTTP: request counts and latency per route, split by method and code
//
// # Integration
//
// A Collector owns its own Prometheus registry so tests and multiple servers
// never collide on global registration. The registry is exposed in Prometheus
// text format by Handler and mounted at /metrics.
package metrics
