// Package timeouts defines shared timeout constants used by the dashboard
// processes. Keeping them together makes the durations discoverable.
package timeouts

import "time"

// DatasetFetch caps the one-time startup download of the source CSV.
const DatasetFetch = 60 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
