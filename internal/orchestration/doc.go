// Package orchestration coordinates the lifecycle of the finance agent
// system: configuration validation, collaborator initialization, and the
// staged demonstration workflow. It decouples business logic from
// presentation via the ProgressReporter interface and from concrete data
// providers via the DataCollector and NewsCollector interfaces.
package orchestration
