package renderer

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// RenderStats contains statistics about one render pass
type RenderStats struct {
	Width, Height   int
	SamplesPerPixel int
	Workers         int
	Duration        time.Duration
}

// TotalPixels returns the number of pixels rendered
func (s RenderStats) TotalPixels() int {
	return s.Width * s.Height
}

// TotalSamples returns the number of camera rays traced
func (s RenderStats) TotalSamples() int {
	return s.TotalPixels() * s.SamplesPerPixel
}

// SamplesPerSecond returns the camera-ray throughput of the pass
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples()) / s.Duration.Seconds()
}

// HostInfo describes the machine a render ran on
type HostInfo struct {
	CPUModel     string
	LogicalCores int
	TotalMemory  uint64 // Bytes
}

var (
	hostOnce sync.Once
	hostInfo HostInfo
)

// GetHostInfo queries the CPU and memory of the host once and caches the result.
// Fields that cannot be determined are left empty.
func GetHostInfo() HostInfo {
	hostOnce.Do(func() {
		if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
			hostInfo.CPUModel = infos[0].ModelName
		} else if err != nil {
			logger.Debugf("cpu info unavailable: %v", err)
		}
		if cores, err := cpu.Counts(true); err == nil {
			hostInfo.LogicalCores = cores
		}
		if vm, err := mem.VirtualMemory(); err == nil {
			hostInfo.TotalMemory = vm.Total
		} else {
			logger.Debugf("memory info unavailable: %v", err)
		}
	})
	return hostInfo
}

// StatsTable formats one row per pass together with the host description
func StatsTable(passes []RenderStats, host HostInfo) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Pass", "Resolution", "SPP", "Workers", "Render time", "Samples/s"})

	var total time.Duration
	for i, stats := range passes {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%dx%d", stats.Width, stats.Height),
			fmt.Sprintf("%d", stats.SamplesPerPixel),
			fmt.Sprintf("%d", stats.Workers),
			stats.Duration.Round(time.Millisecond).String(),
			fmt.Sprintf("%.0f", stats.SamplesPerSecond()),
		})
		total += stats.Duration
	}

	cpuModel := host.CPUModel
	if cpuModel == "" {
		cpuModel = "unknown cpu"
	}
	hostDesc := fmt.Sprintf("%s, %d cores, %.1f GiB", cpuModel, host.LogicalCores, float64(host.TotalMemory)/(1<<30))
	table.SetFooter([]string{"", hostDesc, "", "TOTAL", total.Round(time.Millisecond).String(), ""})

	table.Render()
	return buf.String()
}
