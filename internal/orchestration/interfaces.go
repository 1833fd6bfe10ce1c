package orchestration

import (
	"context"

	"github.com/agbru/finagent/internal/config"
	"github.com/agbru/finagent/internal/dataset"
)

// DataCollector defines the interface for market data retrieval and task
// execution. This interface decouples the orchestration layer from concrete
// provider implementations, allowing alternative backends (or mocks in tests)
// without modifying the workflow logic.
type DataCollector interface {
	// FetchData retrieves historical market data for a symbol over the
	// inclusive date range [startDate, endDate]. Dates use YYYY-MM-DD.
	//
	// Parameters:
	//   - ctx: The context for managing cancellation and deadlines.
	//   - symbol: The ticker symbol (e.g., "AAPL").
	//   - source: The provider hint (e.g., "yfinance").
	//   - startDate: The first day of the range.
	//   - endDate: The last day of the range.
	//
	// Returns:
	//   - *dataset.Frame: The retrieved rows. May be empty, never nil on success.
	//   - error: Any transport or provider failure.
	FetchData(ctx context.Context, symbol, source, startDate, endDate string) (*dataset.Frame, error)

	// ExecuteTask runs a free-form analysis task against the provider,
	// scoped to the given symbol and date range.
	ExecuteTask(ctx context.Context, query, symbol, source, startDate, endDate string) (dataset.Result, error)
}

// NewsCollector defines the interface for news headline retrieval.
type NewsCollector interface {
	// CollectNews gathers headlines matching keyword over a bounded number
	// of rounds and, when savePath is non-empty, persists them as CSV.
	CollectNews(ctx context.Context, keyword string, rounds int, savePath string) (*dataset.Frame, error)
}

// DataCollectorFactory constructs a DataCollector from a provider API key and
// the application configuration. It is invoked during agent initialization
// only when the key is present in the environment.
type DataCollectorFactory func(apiKey string, cfg *config.Config) (DataCollector, error)

// NewsCollectorFactory constructs a NewsCollector. News retrieval requires no
// credential, so the factory receives only the configuration.
type NewsCollectorFactory func(cfg *config.Config) (NewsCollector, error)

// ProgressReporter defines the interface for surfacing stage progress.
// This keeps the orchestration layer free of UI concerns: implementations
// handle spinners and status lines while the orchestrator focuses on the
// workflow itself.
type ProgressReporter interface {
	// StageStarted is called immediately before a stage begins executing.
	StageStarted(name, detail string)
	// StageCompleted is called with the outcome of a finished stage.
	StageCompleted(result StageResult)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// StageStarted does nothing.
func (NullProgressReporter) StageStarted(string, string) {}

// StageCompleted does nothing.
func (NullProgressReporter) StageCompleted(StageResult) {}

var _ ProgressReporter = NullProgressReporter{}
