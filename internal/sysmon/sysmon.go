// Package sysmon provides system-wide CPU and memory sampling for startup
// diagnostics and the health endpoint.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	CPUCount   int     // logical cores
	MemPercent float64 // 0.0 .. 100.0
	MemUsedMB  uint64
	MemTotalMB uint64
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Fields that cannot be read
// stay at their zero value; sampling never fails.
func Sample() Stats {
	var s Stats
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if n, err := cpu.Counts(true); err == nil {
		s.CPUCount = n
	}
	if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
		s.MemUsedMB = vmem.Used / (1 << 20)
		s.MemTotalMB = vmem.Total / (1 << 20)
	}
	return s
}
