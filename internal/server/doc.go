// Package server exposes the optional diagnostics HTTP surface: Prometheus
// metrics, a health endpoint with system readings, and a sanitized view of
// the effective configuration. The server is enabled only when METRICS_ADDR
// is set and shuts down with the application context.
package server
