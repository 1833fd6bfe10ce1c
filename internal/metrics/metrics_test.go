package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestStageMetricsRecordsOutcomes(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	m := NewStageMetrics(reg)

	m.ObserveStage("data-collection", "ok", 250*time.Millisecond)
	m.ObserveStage("data-collection", "ok", 100*time.Millisecond)
	m.ObserveStage("sentiment-analysis", "failed", time.Second)
	m.AddRows("data-collection", 21)

	if got := testutil.ToFloat64(m.outcomes.WithLabelValues("data-collection", "ok")); got != 2 {
		t.Errorf("outcomes{data-collection,ok} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.outcomes.WithLabelValues("sentiment-analysis", "failed")); got != 1 {
		t.Errorf("outcomes{sentiment-analysis,failed} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.rows.WithLabelValues("data-collection")); got != 21 {
		t.Errorf("rows{data-collection} = %v, want 21", got)
	}
}

func TestStageMetricsNilReceiver(t *testing.T) {
	t.Parallel()
	var m *StageMetrics
	// Must not panic.
	m.ObserveStage("data-collection", "ok", time.Second)
	m.AddRows("data-collection", 3)
}

func TestStageMetricsIgnoresNonPositiveRows(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	m := NewStageMetrics(reg)
	m.AddRows("data-collection", 0)
	m.AddRows("data-collection", -4)
	if got := testutil.ToFloat64(m.rows.WithLabelValues("data-collection")); got != 0 {
		t.Errorf("rows = %v, want 0", got)
	}
}

func TestMemoryCollectorSnapshot(t *testing.T) {
	t.Parallel()
	mc := NewMemoryCollector()
	snap := mc.Snapshot()
	if snap.Sys == 0 {
		t.Error("Sys = 0, want non-zero")
	}
	if snap.HeapAlloc == 0 {
		t.Error("HeapAlloc = 0, want non-zero")
	}
}

func TestMemorySnapshotDelta(t *testing.T) {
	t.Parallel()
	earlier := MemorySnapshot{HeapAlloc: 100, Sys: 1000, NumGC: 2, HeapObjects: 50}
	later := MemorySnapshot{HeapAlloc: 150, Sys: 1000, NumGC: 5, HeapObjects: 30}

	d := later.Delta(earlier)
	if d.HeapAlloc != 50 {
		t.Errorf("HeapAlloc delta = %d, want 50", d.HeapAlloc)
	}
	if d.NumGC != 3 {
		t.Errorf("NumGC delta = %d, want 3", d.NumGC)
	}
	if d.HeapObjects != 0 {
		t.Errorf("HeapObjects delta = %d, want 0 (clamped)", d.HeapObjects)
	}
}
