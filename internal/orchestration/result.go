package orchestration

import "time"

// Stage identifiers for the demonstration workflow. They appear in logs,
// metrics labels, and the final summary table.
const (
	StageDataCollection = "data-collection"
	StageSentiment      = "sentiment-analysis"
)

// StageStatus classifies the outcome of a single demonstration stage.
type StageStatus int

const (
	// StatusOK indicates the stage ran to completion, even if it produced
	// no rows.
	StatusOK StageStatus = iota
	// StatusSkipped indicates the stage did not run because its
	// collaborator was never initialized.
	StatusSkipped
	// StatusFailed indicates the stage ran and returned an error. A failed
	// stage never aborts the workflow; subsequent stages still execute.
	StatusFailed
)

// String returns a human-readable label for the status.
func (s StageStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// StageResult encapsulates the outcome of a single demonstration stage.
// It serves as the shared domain type between orchestration and presentation
// layers.
type StageResult struct {
	// Stage is the stage identifier (StageDataCollection or StageSentiment).
	Stage string
	// Status classifies the outcome.
	Status StageStatus
	// Reason explains a skip (e.g., the missing environment variable).
	Reason string
	// Err contains the stage error when Status is StatusFailed.
	Err error
	// Duration is the wall-clock time the stage took.
	Duration time.Duration
	// Rows is the number of data rows the stage produced, when applicable.
	Rows int
}

// State models the orchestrator lifecycle. Transitions are strictly forward:
// a failed initialization moves to StateFailed and the orchestrator cannot be
// reused.
type State int

const (
	// StateConstructed is the initial state after New.
	StateConstructed State = iota
	// StateValidated indicates configuration validation has run.
	StateValidated
	// StateAgentsInitialized indicates collaborator construction finished.
	StateAgentsInitialized
	// StateDemoRunning indicates stages are executing.
	StateDemoRunning
	// StateCompleted indicates the workflow finished, regardless of
	// individual stage outcomes.
	StateCompleted
	// StateFailed indicates a fatal error before or during the workflow.
	StateFailed
)

// String returns a human-readable label for the state.
func (s State) String() string {
	switch s {
	case StateConstructed:
		return "constructed"
	case StateValidated:
		return "validated"
	case StateAgentsInitialized:
		return "agents-initialized"
	case StateDemoRunning:
		return "demo-running"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
