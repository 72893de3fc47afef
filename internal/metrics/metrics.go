package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Event recording metrics
	EventsRecordedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "statistics_events_recorded_total",
			Help: "Total number of activity events recorded",
		},
		[]string{"kind"},
	)

	EventWriteErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "statistics_event_write_errors_total",
			Help: "Total number of failed event inserts",
		},
	)

	// Remote metric source metrics
	RemoteCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "statistics_remote_calls_total",
			Help: "Total number of calls to downstream metric sources",
		},
		[]string{"target", "endpoint"},
	)

	RemoteCallFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "statistics_remote_call_failures_total",
			Help: "Total number of downstream calls resolved to default values",
		},
		[]string{"target", "endpoint"},
	)

	// Report assembly metrics
	ReportDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "statistics_report_duration_seconds",
			Help:    "Duration of composite report assembly in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"report"},
	)
)
