package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading. It feeds the shutdown
// summary log and the diagnostics health endpoint.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	HeapSys      uint64 // bytes obtained from OS for heap
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	HeapObjects  uint64 // number of allocated heap objects
}

// Delta returns the growth between an earlier snapshot and s. Counters that
// shrank (after a GC cycle) report zero rather than wrapping.
func (s MemorySnapshot) Delta(earlier MemorySnapshot) MemorySnapshot {
	sub := func(a, b uint64) uint64 {
		if a < b {
			return 0
		}
		return a - b
	}
	return MemorySnapshot{
		HeapAlloc:    sub(s.HeapAlloc, earlier.HeapAlloc),
		HeapSys:      sub(s.HeapSys, earlier.HeapSys),
		Sys:          sub(s.Sys, earlier.Sys),
		NumGC:        s.NumGC - earlier.NumGC,
		PauseTotalNs: sub(s.PauseTotalNs, earlier.PauseTotalNs),
		HeapObjects:  sub(s.HeapObjects, earlier.HeapObjects),
	}
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		HeapObjects:  m.HeapObjects,
	}
}
