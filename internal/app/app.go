package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/finagent/internal/agent"
	"github.com/agbru/finagent/internal/cli"
	"github.com/agbru/finagent/internal/config"
	apperrors "github.com/agbru/finagent/internal/errors"
	"github.com/agbru/finagent/internal/logging"
	"github.com/agbru/finagent/internal/metrics"
	"github.com/agbru/finagent/internal/news"
	"github.com/agbru/finagent/internal/orchestration"
	"github.com/agbru/finagent/internal/server"
	"github.com/agbru/finagent/internal/sysmon"
	"github.com/agbru/finagent/internal/ui"
)

// Flags holds the parsed command-line options. Everything else comes from the
// environment through the config package.
type Flags struct {
	// Quiet suppresses the banner, spinners, and the summary table.
	Quiet bool
	// NoColor disables ANSI colors regardless of terminal support.
	NoColor bool
	// Symbol overrides the demonstration ticker.
	Symbol string
	// StartDate and EndDate override the data range (YYYY-MM-DD).
	StartDate string
	EndDate   string
}

// Application represents the finagent application instance.
type Application struct {
	Flags     Flags
	Config    *config.Config
	ErrWriter io.Writer

	dataFactory orchestration.DataCollectorFactory
	newsFactory orchestration.NewsCollectorFactory
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithDataCollectorFactory sets a custom data collector factory.
func WithDataCollectorFactory(f orchestration.DataCollectorFactory) AppOption {
	return func(a *Application) { a.dataFactory = f }
}

// WithNewsCollectorFactory sets a custom news collector factory.
func WithNewsCollectorFactory(f orchestration.NewsCollectorFactory) AppOption {
	return func(a *Application) { a.newsFactory = f }
}

// New creates a new Application instance by parsing command-line arguments.
// The default collaborator factories build the HTTP-backed agent and scraper.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{
		Config:    config.New(),
		ErrWriter: errWriter,
	}
	for _, opt := range opts {
		opt(app)
	}

	programName := "finagent"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	flags, err := parseFlags(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Flags = flags

	if app.dataFactory == nil {
		app.dataFactory = func(apiKey string, cfg *config.Config) (orchestration.DataCollector, error) {
			return agent.New(apiKey, cfg, logging.NewDefaultLogger().WithComponent("agent")), nil
		}
	}
	if app.newsFactory == nil {
		app.newsFactory = func(cfg *config.Config) (orchestration.NewsCollector, error) {
			return news.NewScraper(cfg, logging.NewDefaultLogger().WithComponent("news")), nil
		}
	}
	return app, nil
}

// parseFlags parses the command-line options.
func parseFlags(programName string, args []string, errWriter io.Writer) (Flags, error) {
	var f Flags
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.BoolVar(&f.Quiet, "quiet", false, "suppress banner and progress output")
	fs.BoolVar(&f.NoColor, "no-color", false, "disable colored output")
	fs.StringVar(&f.Symbol, "symbol", "", "override the demonstration ticker symbol")
	fs.StringVar(&f.StartDate, "start", "", "override the range start date (YYYY-MM-DD)")
	fs.StringVar(&f.EndDate, "end", "", "override the range end date (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return Flags{}, err
	}
	return f, nil
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// Run executes the finance agent workflow and returns the process exit code.
// SIGINT and SIGTERM cancel the context, which stops the workflow cleanly.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Flags.NoColor)
	cfg := a.Config

	log, logCloser := logging.NewProcessLogger(a.ErrWriter, cfg.DataDir(),
		logging.ParseLevel(cfg.LogLevel(), cfg.Debug()))
	if logCloser != nil {
		defer logCloser.Close()
	}

	if !a.Flags.Quiet {
		cli.DisplayBanner(out, Version)
	}

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	memBefore := metrics.NewMemoryCollector().Snapshot()
	sys := sysmon.Sample()
	log.Info("starting",
		logging.String("version", Version),
		logging.String("environment", cfg.Environment()),
		logging.Int("cpus", sys.CPUCount),
		logging.Uint64("mem_total_mb", sys.MemTotalMB))

	demo := a.demoConfig()
	if !a.Flags.Quiet {
		cli.PrintRunConfig(cfg, demo.Symbol, demo.StartDate, demo.EndDate, out)
	}

	registry := prometheus.NewRegistry()
	stageMetrics := metrics.NewStageMetrics(registry)

	var reporter orchestration.ProgressReporter = orchestration.NullProgressReporter{}
	if !a.Flags.Quiet {
		reporter = cli.NewStageProgressReporter(out)
	}

	orch := orchestration.New(cfg, log.WithComponent("orchestrator"),
		orchestration.WithDataCollectorFactory(a.dataFactory),
		orchestration.WithNewsCollectorFactory(a.newsFactory),
		orchestration.WithProgressReporter(reporter),
		orchestration.WithStageMetrics(stageMetrics),
		orchestration.WithDemoConfig(demo))

	g, gctx := errgroup.WithContext(ctx)

	if addr := cfg.MetricsAddr(); addr != "" {
		diag := server.New(addr, cfg, log.WithComponent("server"), registry)
		g.Go(func() error { return diag.Run(gctx) })
	}

	var results []orchestration.StageResult
	var runErr error
	g.Go(func() error {
		results, runErr = orch.Run(gctx)
		// The workflow owns the error; stop companions without failing the group.
		if gctx.Err() == nil {
			// Returning a sentinel cancels the group once the demo is done.
			return errDemoFinished
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errDemoFinished) {
		log.Error("diagnostics server failed", err)
	}

	if runErr != nil {
		log.Error("finance agent system failed", runErr)
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", runErr)
		return apperrors.ExitCodeFor(runErr)
	}

	if !a.Flags.Quiet {
		cli.PresentStageSummary(results, out)
		memAfter := metrics.NewMemoryCollector().Snapshot()
		cli.DisplayShutdownStats(memAfter.Delta(memBefore), sysmon.Sample(), out)
	}

	log.Info("done", logging.Int("stages", len(results)))
	return apperrors.ExitSuccess
}

// errDemoFinished signals normal completion of the workflow goroutine so the
// errgroup cancels the diagnostics server.
var errDemoFinished = errors.New("demo finished")

// demoConfig builds the demonstration parameters, applying flag overrides.
func (a *Application) demoConfig() orchestration.DemoConfig {
	demo := orchestration.DefaultDemoConfig()
	if a.Flags.Symbol != "" {
		demo.Symbol = a.Flags.Symbol
	}
	if a.Flags.StartDate != "" {
		demo.StartDate = a.Flags.StartDate
	}
	if a.Flags.EndDate != "" {
		demo.EndDate = a.Flags.EndDate
	}
	return demo
}
