package diag

import (
	"fmt"
	"math"
	"os"

	"github.com/shirou/gopsutil/v4/process"
)

// Stats contains process resource statistics
type Stats struct {
	CPU float64
	MEM float64 // in MB
}

// Collector provides resource statistics for the running process
type Collector interface {
	Self() (Stats, error)
}

type collector struct {
	pid int
}

// NewCollector creates a Collector bound to the current process
func NewCollector() Collector {
	return &collector{pid: os.Getpid()}
}

// Self returns CPU and memory statistics for the current process
func (c *collector) Self() (Stats, error) {
	if c.pid <= 0 || c.pid > math.MaxInt32 {
		return Stats{}, nil
	}

	proc, err := process.NewProcess(int32(c.pid)) // #nosec G115 -- PID range checked above
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{}

	cpuPercent, err := proc.CPUPercent()
	if err == nil {
		stats.CPU = cpuPercent
	}

	memInfo, err := proc.MemoryInfo()
	if err == nil {
		stats.MEM = float64(memInfo.RSS) / 1024 / 1024
	}

	return stats, nil
}

// FormatCPU renders a CPU percentage for the footer overlay
func FormatCPU(cpu float64) string {
	return fmt.Sprintf("%.1f%%", cpu)
}

// FormatMEM renders a memory value in MB for the footer overlay
func FormatMEM(mem float64) string {
	if mem >= 1024 {
		return fmt.Sprintf("%.1fG", mem/1024)
	}

	return fmt.Sprintf("%.0fM", mem)
}
