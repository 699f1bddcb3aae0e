package agent

import (
	"context"
	"fmt"
	"math"
	"time"

	proto "github.com/Nayrode/sealci/api/proto"
	"github.com/Nayrode/sealci/pkg/log"
	"github.com/Nayrode/sealci/pkg/metrics"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

const (
	// healthSampleInterval is how often the host is sampled.
	healthSampleInterval = time.Second

	// significantChangeThreshold is the delta (CPU percentage points, or
	// percent of previous free memory) below which a sample is not worth
	// forwarding.
	significantChangeThreshold = 5.0
)

// Sampler reads the host's free capacity. The default implementation asks
// the OS via gopsutil; tests substitute a scripted one.
type Sampler func(ctx context.Context) (*proto.Health, error)

// SampleHostHealth reads free CPU and memory from the host OS.
func SampleHostHealth(ctx context.Context) (*proto.Health, error) {
	percents, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return nil, fmt.Errorf("failed to sample cpu usage: %w", err)
	}
	var used float64
	if len(percents) > 0 {
		used = percents[0]
	}
	if used > 100 {
		used = 100
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sample memory usage: %w", err)
	}

	return &proto.Health{
		CpuAvail:    100 - uint32(used),
		MemoryAvail: vm.Available,
	}, nil
}

// HealthMonitor turns periodic host samples into a change-triggered stream.
type HealthMonitor struct {
	sample Sampler
	logger zerolog.Logger
}

// NewHealthMonitor creates a monitor over the host sampler.
func NewHealthMonitor() *HealthMonitor {
	return NewHealthMonitorWithSampler(SampleHostHealth)
}

// NewHealthMonitorWithSampler creates a monitor over a custom sampler.
func NewHealthMonitorWithSampler(sample Sampler) *HealthMonitor {
	return &HealthMonitor{
		sample: sample,
		logger: log.WithComponent("health"),
	}
}

// Sample reads the current host health once.
func (m *HealthMonitor) Sample(ctx context.Context) (*proto.Health, error) {
	return m.sample(ctx)
}

// Stream samples every second and emits only samples whose CPU or memory
// moved at least 5% from the last emitted value. The baseline advances only
// on emit. The channel closes when ctx ends.
func (m *HealthMonitor) Stream(ctx context.Context) <-chan *proto.Health {
	out := make(chan *proto.Health, 1)

	go func() {
		defer close(out)
		var previous *proto.Health

		ticker := time.NewTicker(healthSampleInterval)
		defer ticker.Stop()

		for {
			current, err := m.sample(ctx)
			if err != nil {
				m.logger.Error().Err(err).Msg("Failed to sample host health")
			} else if significantChange(previous, current, significantChangeThreshold) {
				select {
				case out <- current:
					previous = current
					metrics.HealthReportsEmitted.Inc()
				case <-ctx.Done():
					return
				}
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// significantChange reports whether current moved at least threshold away
// from the last emitted sample. A missing or zero-memory baseline always
// counts as significant, which also keeps the relative-memory computation
// away from a zero divisor.
func significantChange(prev, current *proto.Health, threshold float64) bool {
	if prev == nil || prev.GetMemoryAvail() == 0 {
		return true
	}

	cpuChange := math.Abs(float64(current.GetCpuAvail()) - float64(prev.GetCpuAvail()))
	memChange := math.Abs((float64(current.GetMemoryAvail()) - float64(prev.GetMemoryAvail())) /
		float64(prev.GetMemoryAvail()) * 100)

	return cpuChange >= threshold || memChange >= threshold
}
