package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Scheduler metrics
	AgentsRegistered = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "sealci_agents_registered_total",
			Help: "Number of agents currently registered in the pool",
		},
	)

	HealthSamplesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sealci_health_samples_total",
			Help: "Health samples processed by the scheduler, by outcome",
		},
		[]string{"outcome"}, // applied, skipped
	)

	DispatchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sealci_dispatches_total",
			Help: "Actions dispatched to agents, by outcome",
		},
		[]string{"outcome"}, // relayed, no_agents, agent_unreachable, stream_error
	)

	DispatchLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sealci_dispatch_duration_seconds",
			Help:    "Time from agent selection to end of the relayed stream",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 300, 1800}, // 100ms to 30min
		},
	)

	// Agent metrics
	ActionsExecuted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sealci_actions_executed_total",
			Help: "Actions executed by this agent, by result",
		},
		[]string{"result"}, // completed, failed
	)

	HealthReportsEmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sealci_health_reports_emitted_total",
			Help: "Health samples that crossed the significant-change threshold and were sent",
		},
	)

	// Controller metrics
	PipelinesScheduled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sealci_pipelines_scheduled_total",
			Help: "Pipelines handed to the scheduling bridge",
		},
	)

	ActionStatusUpdates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sealci_action_status_updates_total",
			Help: "Action status transitions recorded in the store",
		},
		[]string{"status"},
	)
)

func init() {
	// Register all metrics
	prometheus.MustRegister(AgentsRegistered)
	prometheus.MustRegister(HealthSamplesTotal)
	prometheus.MustRegister(DispatchesTotal)
	prometheus.MustRegister(DispatchLatency)
	prometheus.MustRegister(ActionsExecuted)
	prometheus.MustRegister(HealthReportsEmitted)
	prometheus.MustRegister(PipelinesScheduled)
	prometheus.MustRegister(ActionStatusUpdates)
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// Timer is a helper for timing operations
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ObserveDuration records the duration to a histogram
func (t *Timer) ObserveDuration(histogram prometheus.Histogram) {
	duration := time.Since(t.start).Seconds()
	histogram.Observe(duration)
}

// Duration returns the elapsed time since timer started
func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}
