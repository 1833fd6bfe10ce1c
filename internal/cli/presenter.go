package cli

import (
	"fmt"
	"io"

	"github.com/agbru/finagent/internal/format"
	"github.com/agbru/finagent/internal/metrics"
	"github.com/agbru/finagent/internal/orchestration"
	"github.com/agbru/finagent/internal/sysmon"
	"github.com/agbru/finagent/internal/ui"
)

// PresentStageSummary displays the run summary table with stage names,
// durations, row counts, and status. Uses manual padding to correctly handle
// ANSI color codes.
func PresentStageSummary(results []orchestration.StageResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Run Summary ---\n")

	maxNameLen := len("Stage")
	maxDurationLen := len("Duration")
	maxRowsLen := len("Rows")
	for _, res := range results {
		if len(res.Stage) > maxNameLen {
			maxNameLen = len(res.Stage)
		}
		duration := format.FormatExecutionDuration(res.Duration)
		if len(duration) > maxDurationLen {
			maxDurationLen = len(duration)
		}
		rows := format.FormatRowCount(res.Rows)
		if len(rows) > maxRowsLen {
			maxRowsLen = len(rows)
		}
	}

	fmt.Fprintf(out, "%sStage%s%s   %sDuration%s%s   %sRows%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight(maxNameLen-len("Stage")),
		ui.ColorUnderline(), ui.ColorReset(), padRight(maxDurationLen-len("Duration")),
		ui.ColorUnderline(), ui.ColorReset(), padRight(maxRowsLen-len("Rows")),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		var status string
		switch res.Status {
		case orchestration.StatusOK:
			status = fmt.Sprintf("%s✅ Success%s", ui.ColorGreen(), ui.ColorReset())
		case orchestration.StatusSkipped:
			status = fmt.Sprintf("%s⏭  Skipped (%s)%s", ui.ColorYellow(), res.Reason, ui.ColorReset())
		case orchestration.StatusFailed:
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		}
		duration := format.FormatExecutionDuration(res.Duration)
		rows := format.FormatRowCount(res.Rows)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s%s   %s\n",
			ui.ColorBlue(), res.Stage, ui.ColorReset(), padRight(maxNameLen-len(res.Stage)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight(maxDurationLen-len(duration)),
			rows, padRight(maxRowsLen-len(rows)),
			status)
	}
}

// padRight returns a string of spaces with the given length.
func padRight(length int) string {
	if length <= 0 {
		return ""
	}
	return fmt.Sprintf("%*s", length, "")
}

// DisplayShutdownStats shows process and system statistics after the run.
func DisplayShutdownStats(mem metrics.MemorySnapshot, sys sysmon.Stats, out io.Writer) {
	fmt.Fprintf(out, "\nResource Usage:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(mem.HeapAlloc))
	fmt.Fprintf(out, "  GC cycles:       %d\n", mem.NumGC)
	if mem.PauseTotalNs > 0 {
		fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(mem.PauseTotalNs)/1e6)
	}
	if sys.MemTotalMB > 0 {
		fmt.Fprintf(out, "  System memory:   %d/%d MB (%.1f%%)\n",
			sys.MemUsedMB, sys.MemTotalMB, sys.MemPercent)
	}
}
