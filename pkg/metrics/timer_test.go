package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimerDuration(t *testing.T) {
	timer := NewTimer()
	time.Sleep(10 * time.Millisecond)

	elapsed := timer.Duration()
	assert.GreaterOrEqual(t, elapsed, 10*time.Millisecond)
	assert.Less(t, elapsed, time.Second)
}

func TestTimerObserveDuration(t *testing.T) {
	timer := NewTimer()
	time.Sleep(time.Millisecond)

	// Observing into the shared histogram must not panic.
	timer.ObserveDuration(DispatchLatency)
}
