package agent

import (
	"context"
	"sync"
	"testing"
	"time"

	proto "github.com/Nayrode/sealci/api/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignificantChange(t *testing.T) {
	tests := []struct {
		name    string
		prev    *proto.Health
		current *proto.Health
		want    bool
	}{
		{
			name:    "no baseline always emits",
			prev:    nil,
			current: &proto.Health{CpuAvail: 50, MemoryAvail: 1000},
			want:    true,
		},
		{
			name:    "zero memory baseline always emits",
			prev:    &proto.Health{CpuAvail: 50, MemoryAvail: 0},
			current: &proto.Health{CpuAvail: 50, MemoryAvail: 0},
			want:    true,
		},
		{
			name:    "cpu moved five points",
			prev:    &proto.Health{CpuAvail: 50, MemoryAvail: 1000},
			current: &proto.Health{CpuAvail: 45, MemoryAvail: 1000},
			want:    true,
		},
		{
			name:    "cpu moved under threshold",
			prev:    &proto.Health{CpuAvail: 50, MemoryAvail: 1000},
			current: &proto.Health{CpuAvail: 46, MemoryAvail: 1000},
			want:    false,
		},
		{
			name:    "memory moved five percent",
			prev:    &proto.Health{CpuAvail: 50, MemoryAvail: 1000},
			current: &proto.Health{CpuAvail: 50, MemoryAvail: 950},
			want:    true,
		},
		{
			name:    "memory moved under threshold",
			prev:    &proto.Health{CpuAvail: 50, MemoryAvail: 1000},
			current: &proto.Health{CpuAvail: 50, MemoryAvail: 960},
			want:    false,
		},
		{
			name:    "memory growth also counts",
			prev:    &proto.Health{CpuAvail: 50, MemoryAvail: 1000},
			current: &proto.Health{CpuAvail: 50, MemoryAvail: 1100},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, significantChange(tt.prev, tt.current, 5.0))
		})
	}
}

// scriptedSampler returns samples from a fixed sequence, repeating the last
// one once the script is exhausted.
func scriptedSampler(samples []*proto.Health) Sampler {
	var mu sync.Mutex
	i := 0
	return func(ctx context.Context) (*proto.Health, error) {
		mu.Lock()
		defer mu.Unlock()
		sample := samples[i]
		if i < len(samples)-1 {
			i++
		}
		return sample, nil
	}
}

func TestStreamEmitsOnlySignificantChanges(t *testing.T) {
	monitor := NewHealthMonitorWithSampler(scriptedSampler([]*proto.Health{
		{CpuAvail: 80, MemoryAvail: 1000}, // first sample: no baseline, emitted
		{CpuAvail: 79, MemoryAvail: 990},  // within threshold, suppressed
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream := monitor.Stream(ctx)

	first := <-stream
	require.NotNil(t, first)
	assert.Equal(t, uint32(80), first.GetCpuAvail())

	// The follow-up sample moved less than 5%, so nothing else arrives.
	select {
	case second := <-stream:
		t.Fatalf("unexpected emission: %v", second)
	case <-time.After(1500 * time.Millisecond):
	}
}

func TestStreamBaselineAdvancesOnlyOnEmit(t *testing.T) {
	// Each step is ~3% below the previous sample but compounds to >5%
	// against the last emitted baseline, so the third sample fires.
	monitor := NewHealthMonitorWithSampler(scriptedSampler([]*proto.Health{
		{CpuAvail: 100, MemoryAvail: 1000},
		{CpuAvail: 97, MemoryAvail: 1000},
		{CpuAvail: 94, MemoryAvail: 1000},
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream := monitor.Stream(ctx)

	first := <-stream
	assert.Equal(t, uint32(100), first.GetCpuAvail())

	select {
	case second := <-stream:
		assert.Equal(t, uint32(94), second.GetCpuAvail())
	case <-time.After(3 * time.Second):
		t.Fatal("expected compounded drift to cross the threshold")
	}
}

func TestStreamClosesWithContext(t *testing.T) {
	monitor := NewHealthMonitorWithSampler(scriptedSampler([]*proto.Health{
		{CpuAvail: 50, MemoryAvail: 1000},
	}))

	ctx, cancel := context.WithCancel(context.Background())
	stream := monitor.Stream(ctx)
	<-stream

	cancel()
	_, open := <-stream
	assert.False(t, open)
}
