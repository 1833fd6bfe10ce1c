package orchestration

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/finagent/internal/config"
	apperrors "github.com/agbru/finagent/internal/errors"
	"github.com/agbru/finagent/internal/logging"
	"github.com/agbru/finagent/internal/metrics"
)

// tracerName identifies this package's spans to the OpenTelemetry provider.
const tracerName = "github.com/agbru/finagent/internal/orchestration"

// DemoConfig parameterizes the demonstration workflow. The zero value is not
// usable; obtain a baseline from DefaultDemoConfig and override fields as
// needed.
type DemoConfig struct {
	// Symbol is the ticker the demonstration operates on.
	Symbol string
	// Source is the market data provider hint.
	Source string
	// StartDate and EndDate bound the data range, inclusive, as YYYY-MM-DD.
	StartDate string
	EndDate   string
	// Query is the analysis task submitted during the sentiment stage.
	Query string
	// NewsRounds bounds how many retrieval rounds the news sub-step runs.
	NewsRounds int
	// NewsFile is the CSV file name for collected headlines, created under
	// the configured data directory.
	NewsFile string
}

// DefaultDemoConfig returns the canonical demonstration parameters.
func DefaultDemoConfig() DemoConfig {
	return DemoConfig{
		Symbol:     "AAPL",
		Source:     "yfinance",
		StartDate:  "2024-01-01",
		EndDate:    "2024-01-31",
		Query:      "What is the sentiment of recent stock performance?",
		NewsRounds: 1,
		NewsFile:   "aapl_news_demo.csv",
	}
}

// Orchestrator drives the finance agent system through its lifecycle:
// validation, collaborator initialization, and the two-stage demonstration.
// It is single-use: after Run returns, the orchestrator is in a terminal
// state and must not be reused.
type Orchestrator struct {
	cfg      *config.Config
	log      logging.Logger
	reporter ProgressReporter
	stages   *metrics.StageMetrics
	tracer   trace.Tracer
	demo     DemoConfig

	dataFactory DataCollectorFactory
	newsFactory NewsCollectorFactory

	dataCollector DataCollector
	newsCollector NewsCollector

	state State
}

// Option configures an Orchestrator during construction.
type Option func(*Orchestrator)

// WithDataCollectorFactory overrides how the data collection agent is built.
func WithDataCollectorFactory(f DataCollectorFactory) Option {
	return func(o *Orchestrator) { o.dataFactory = f }
}

// WithNewsCollectorFactory overrides how the news utility is built.
func WithNewsCollectorFactory(f NewsCollectorFactory) Option {
	return func(o *Orchestrator) { o.newsFactory = f }
}

// WithProgressReporter sets the progress reporter. Defaults to
// NullProgressReporter.
func WithProgressReporter(r ProgressReporter) Option {
	return func(o *Orchestrator) { o.reporter = r }
}

// WithStageMetrics attaches Prometheus stage instrumentation.
func WithStageMetrics(m *metrics.StageMetrics) Option {
	return func(o *Orchestrator) { o.stages = m }
}

// WithDemoConfig overrides the demonstration parameters.
func WithDemoConfig(d DemoConfig) Option {
	return func(o *Orchestrator) { o.demo = d }
}

// New constructs an Orchestrator and validates the configuration.
//
// Validation is advisory: missing keys are logged as warnings and recorded so
// that dependent collaborators are skipped later, but construction always
// succeeds. This mirrors the degraded-but-running posture of the system as a
// whole.
//
// Parameters:
//   - cfg: The environment-backed configuration provider.
//   - log: The structured logger for lifecycle events.
//   - opts: Optional overrides for factories, reporting, and demo parameters.
//
// Returns:
//   - *Orchestrator: The orchestrator in StateValidated.
func New(cfg *config.Config, log logging.Logger, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		cfg:      cfg,
		log:      log,
		reporter: NullProgressReporter{},
		tracer:   otel.Tracer(tracerName),
		demo:     DefaultDemoConfig(),
		state:    StateConstructed,
	}
	for _, opt := range opts {
		opt(o)
	}

	present := cfg.ValidateRequired([]string{config.EnvFinnhubAPIKey})
	for key, ok := range present {
		if !ok {
			o.log.Warn("required configuration key not set",
				logging.String("key", key))
		}
	}
	o.log.Info("configuration validated",
		logging.String("environment", cfg.Environment()),
		logging.String("data_dir", cfg.DataDir()))
	o.state = StateValidated
	return o
}

// State reports the current lifecycle state.
func (o *Orchestrator) State() State {
	return o.state
}

// InitializeAgents constructs the system's collaborators.
//
// The policy is asymmetric: a collaborator whose credential is absent is
// skipped with a warning, leaving the system degraded but functional, while a
// factory that returns an error is treated as fatal and aborts the lifecycle.
//
// Returns:
//   - error: An InitializationError when a factory fails; nil otherwise.
func (o *Orchestrator) InitializeAgents() error {
	if key := o.cfg.FinnhubAPIKey(); key == "" {
		o.log.Warn("data collection agent not initialized",
			logging.String("missing", config.EnvFinnhubAPIKey))
	} else if o.dataFactory != nil {
		dc, err := o.dataFactory(key, o.cfg)
		if err != nil {
			o.state = StateFailed
			return apperrors.NewInitializationError("data collection agent", err)
		}
		o.dataCollector = dc
		o.log.Info("data collection agent initialized")
	}

	// The news utility needs no credential and is always attempted.
	if o.newsFactory != nil {
		nc, err := o.newsFactory(o.cfg)
		if err != nil {
			o.state = StateFailed
			return apperrors.NewInitializationError("news utility", err)
		}
		o.newsCollector = nc
		o.log.Info("news utility initialized")
	}

	o.state = StateAgentsInitialized
	return nil
}

// Run executes the demonstration workflow: data collection followed by
// sentiment analysis, strictly in that order. Stage errors are contained and
// reported per stage; only initialization and data directory failures are
// fatal. Context cancellation between or during stages stops the workflow
// cleanly without an error.
//
// Parameters:
//   - ctx: The context for managing cancellation.
//
// Returns:
//   - []StageResult: The outcome of each stage that was attempted.
//   - error: A fatal lifecycle error, or nil.
func (o *Orchestrator) Run(ctx context.Context) ([]StageResult, error) {
	o.log.Info("starting finance agent system")

	if o.state == StateValidated {
		if err := o.InitializeAgents(); err != nil {
			return nil, err
		}
	}

	dataDir := o.cfg.DataDir()
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		o.state = StateFailed
		return nil, apperrors.NewConfigError("cannot create data directory %s: %v", dataDir, err)
	}

	o.state = StateDemoRunning
	results := make([]StageResult, 0, 2)

	results = append(results, o.runDataCollection(ctx))
	if ctx.Err() != nil {
		o.log.Info("system interrupted by user")
		o.state = StateCompleted
		return results, nil
	}

	results = append(results, o.runSentimentAnalysis(ctx))
	if ctx.Err() != nil {
		o.log.Info("system interrupted by user")
		o.state = StateCompleted
		return results, nil
	}

	o.state = StateCompleted
	o.log.Info("finance agent system completed")
	return results, nil
}

// runDataCollection executes the first stage: fetch historical market data,
// then gather news headlines. The news sub-step is isolated so that a scrape
// failure never discards already-fetched market data.
func (o *Orchestrator) runDataCollection(ctx context.Context) StageResult {
	if o.dataCollector == nil {
		res := StageResult{
			Stage:  StageDataCollection,
			Status: StatusSkipped,
			Reason: "data collection agent not initialized",
		}
		o.log.Warn("skipping data collection demo", logging.String("reason", res.Reason))
		// The news utility needs no credential, so a degraded run still
		// collects headlines.
		o.collectNews(ctx)
		o.reporter.StageCompleted(res)
		o.observe(res)
		return res
	}

	o.reporter.StageStarted(StageDataCollection, o.demo.Symbol)
	ctx, span := o.tracer.Start(ctx, "demo.data_collection",
		trace.WithAttributes(
			attribute.String("symbol", o.demo.Symbol),
			attribute.String("source", o.demo.Source),
		))
	defer span.End()

	start := time.Now()
	res := StageResult{Stage: StageDataCollection, Status: StatusOK}

	frame, err := o.dataCollector.FetchData(ctx, o.demo.Symbol, o.demo.Source, o.demo.StartDate, o.demo.EndDate)
	if err != nil {
		res.Status = StatusFailed
		res.Err = err
		span.RecordError(err)
		o.log.Error("error in data collection demo", err,
			logging.String("symbol", o.demo.Symbol))
	} else if frame.Empty() {
		o.log.Warn("no stock data retrieved", logging.String("symbol", o.demo.Symbol))
	} else {
		res.Rows = frame.NumRows()
		if min, max, ok := frame.TimeRange(); ok {
			o.log.Info("stock data retrieved",
				logging.String("symbol", o.demo.Symbol),
				logging.Int("rows", frame.NumRows()),
				logging.Int("columns", frame.NumCols()),
				logging.String("from", min.Format("2006-01-02")),
				logging.String("to", max.Format("2006-01-02")))
		} else {
			o.log.Info("stock data retrieved",
				logging.String("symbol", o.demo.Symbol),
				logging.Int("rows", frame.NumRows()),
				logging.Int("columns", frame.NumCols()))
		}
	}

	o.collectNews(ctx)

	res.Duration = time.Since(start)
	o.reporter.StageCompleted(res)
	o.observe(res)
	return res
}

// collectNews runs the news sub-step of the data collection stage. Failures
// are logged and absorbed here so the stage outcome reflects the market data
// fetch alone.
func (o *Orchestrator) collectNews(ctx context.Context) {
	if o.newsCollector == nil || ctx.Err() != nil {
		return
	}
	savePath := filepath.Join(o.cfg.DataDir(), o.demo.NewsFile)
	frame, err := o.newsCollector.CollectNews(ctx, o.demo.Symbol, o.demo.NewsRounds, savePath)
	if err != nil {
		o.log.Error("error collecting news", err, logging.String("keyword", o.demo.Symbol))
		return
	}
	o.log.Info("news headlines collected",
		logging.Int("rows", frame.NumRows()),
		logging.String("path", savePath))
}

// runSentimentAnalysis executes the second stage: submit the analysis query
// to the data collection agent and classify the shape of its answer.
func (o *Orchestrator) runSentimentAnalysis(ctx context.Context) StageResult {
	if o.dataCollector == nil {
		res := StageResult{
			Stage:  StageSentiment,
			Status: StatusSkipped,
			Reason: "data collection agent not initialized",
		}
		o.log.Warn("skipping sentiment analysis demo", logging.String("reason", res.Reason))
		o.reporter.StageCompleted(res)
		o.observe(res)
		return res
	}

	o.reporter.StageStarted(StageSentiment, o.demo.Query)
	ctx, span := o.tracer.Start(ctx, "demo.sentiment_analysis",
		trace.WithAttributes(attribute.String("symbol", o.demo.Symbol)))
	defer span.End()

	start := time.Now()
	res := StageResult{Stage: StageSentiment, Status: StatusOK}

	result, err := o.dataCollector.ExecuteTask(ctx, o.demo.Query, o.demo.Symbol, o.demo.Source, o.demo.StartDate, o.demo.EndDate)
	if err != nil {
		res.Status = StatusFailed
		res.Err = err
		span.RecordError(err)
		o.log.Error("error in sentiment analysis demo", err,
			logging.String("query", o.demo.Query))
	} else if rows, cols, ok := result.Dimensions(); ok {
		res.Rows = rows
		o.log.Info("task executed",
			logging.String("result_kind", result.Kind.String()),
			logging.Int("rows", rows),
			logging.Int("columns", cols))
	} else {
		o.log.Info("task executed",
			logging.String("result_kind", result.Kind.String()))
	}

	res.Duration = time.Since(start)
	o.reporter.StageCompleted(res)
	o.observe(res)
	return res
}

// observe records the stage outcome in the Prometheus collectors, when
// instrumentation is attached.
func (o *Orchestrator) observe(res StageResult) {
	if o.stages == nil {
		return
	}
	o.stages.ObserveStage(res.Stage, res.Status.String(), res.Duration)
	if res.Rows > 0 {
		o.stages.AddRows(res.Stage, res.Rows)
	}
}
