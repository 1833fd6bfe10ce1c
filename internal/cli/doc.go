// Package cli renders the terminal surface of the finance agent: the startup
// banner, stage progress spinners, the run summary table, and shutdown
// statistics. All output helpers take an io.Writer so they stay testable.
package cli
