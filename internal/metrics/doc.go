// Package metrics provides Prometheus instrumentation for the demonstration
// stages and lightweight runtime memory readings for diagnostics output.
package metrics
