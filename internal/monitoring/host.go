package monitoring

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// HostStats is a point-in-time view of the machine running the service.
type HostStats struct {
	CPUPercent    float64 `json:"cpuPercent"`
	MemoryPercent float64 `json:"memoryPercent"`
	UptimeSeconds uint64  `json:"uptimeSeconds"`
}

// CollectHostStats samples CPU, memory and uptime.
// CPU usage is measured since the previous call, so the first sample may read 0.
func CollectHostStats(ctx context.Context) (HostStats, error) {
	var stats HostStats

	cpus, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return stats, fmt.Errorf("cpu usage: %w", err)
	}
	if len(cpus) > 0 {
		stats.CPUPercent = cpus[0]
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return stats, fmt.Errorf("memory usage: %w", err)
	}
	stats.MemoryPercent = vm.UsedPercent

	uptime, err := host.UptimeWithContext(ctx)
	if err != nil {
		return stats, fmt.Errorf("uptime: %w", err)
	}
	stats.UptimeSeconds = uptime

	return stats, nil
}
