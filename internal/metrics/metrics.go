// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contribution results.
const (
	ResultAccepted = "accepted"
	ResultRejected = "rejected"
	ResultFailed   = "failed"
)

// Completion paths.
const (
	PathContribution = "contribution"
	PathManual       = "manual"
)

var (
	MilestoneContributions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "milestone_contributions_total",
			Help: "Contributions applied to milestones, by result",
		},
		[]string{"result"}, // accepted, rejected, failed
	)

	MilestoneCompletions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "milestone_completions_total",
			Help: "Milestones moved to completed, by path",
		},
		[]string{"path"}, // contribution, manual
	)

	SavingsEntriesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "savings_entries_created_total",
			Help: "Savings ledger entries recorded",
		},
	)

	// gRPC request latency in seconds
	GRPCRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "grpc_request_duration_seconds",
			Help:    "gRPC request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "code"},
	)
)

// IncrementContribution counts one contribution attempt.
func IncrementContribution(result string) {
	MilestoneContributions.WithLabelValues(result).Inc()
}

// IncrementCompletion counts one active to completed transition.
func IncrementCompletion(path string) {
	MilestoneCompletions.WithLabelValues(path).Inc()
}

func IncrementSavingsCreated() {
	SavingsEntriesCreated.Inc()
}

// RecordGRPCRequestDuration observes one finished gRPC call
func RecordGRPCRequestDuration(method, code string, duration time.Duration) {
	GRPCRequestDuration.WithLabelValues(method, code).Observe(duration.Seconds())
}
