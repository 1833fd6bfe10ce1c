package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/finagent/internal/format"
	"github.com/agbru/finagent/internal/orchestration"
	"github.com/agbru/finagent/internal/ui"
)

// SpinnerRefreshRate defines the refresh frequency of the stage spinner.
const SpinnerRefreshRate = 150 * time.Millisecond

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This decouples the progress reporter from a specific spinner implementation,
// facilitating easier testing.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner wraps `spinner.Spinner` to implement the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, options...)
	return &realSpinner{s}
}

// StageProgressReporter shows a spinner while a stage runs and a status line
// when it completes. It implements orchestration.ProgressReporter.
type StageProgressReporter struct {
	out     io.Writer
	current Spinner
}

// Compile-time interface compliance check.
var _ orchestration.ProgressReporter = (*StageProgressReporter)(nil)

// NewStageProgressReporter creates a reporter writing status lines to out.
func NewStageProgressReporter(out io.Writer) *StageProgressReporter {
	return &StageProgressReporter{out: out}
}

// StageStarted starts a spinner labeled with the stage name.
func (r *StageProgressReporter) StageStarted(name, detail string) {
	r.current = newSpinner(spinner.WithWriter(r.out))
	suffix := fmt.Sprintf(" %s", name)
	if detail != "" {
		suffix = fmt.Sprintf(" %s (%s)", name, detail)
	}
	r.current.UpdateSuffix(suffix)
	r.current.Start()
}

// StageCompleted stops the spinner and prints the stage outcome.
func (r *StageProgressReporter) StageCompleted(res orchestration.StageResult) {
	if r.current != nil {
		r.current.Stop()
		r.current = nil
	}
	switch res.Status {
	case orchestration.StatusOK:
		fmt.Fprintf(r.out, "%s✔%s %s (%s)\n",
			ui.ColorGreen(), ui.ColorReset(), res.Stage,
			format.FormatExecutionDuration(res.Duration))
	case orchestration.StatusSkipped:
		fmt.Fprintf(r.out, "%s●%s %s skipped: %s\n",
			ui.ColorYellow(), ui.ColorReset(), res.Stage, res.Reason)
	case orchestration.StatusFailed:
		fmt.Fprintf(r.out, "%s✘%s %s failed: %v\n",
			ui.ColorRed(), ui.ColorReset(), res.Stage, res.Err)
	}
}
