// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GraphQLOperationsTotal counts executed operations by name and outcome.
	GraphQLOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphql_operations_total",
			Help: "Total number of GraphQL operations",
		},
		[]string{"operation", "status"},
	)

	GraphQLOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graphql_operation_duration_seconds",
			Help:    "Duration of GraphQL operations in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"operation"},
	)

	CommentEventsPublished = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "comment_events_published_total",
			Help: "Total number of comment events published to subscribers",
		},
	)

	ActiveSubscriptions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "graphql_active_subscriptions",
			Help: "Number of open GraphQL subscription streams",
		},
	)

	OTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "otp_requests_total",
			Help: "Total number of OTP send and verify attempts",
		},
		[]string{"action", "result"},
	)
)

func RecordOperation(operation string, failed bool, duration time.Duration) {
	if operation == "" {
		operation = "anonymous"
	}
	status := "ok"
	if failed {
		status = "error"
	}
	GraphQLOperationsTotal.WithLabelValues(operation, status).Inc()
	GraphQLOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func RecordCommentPublished() {
	CommentEventsPublished.Inc()
}

func RecordOTP(action, result string) {
	OTPRequestsTotal.WithLabelValues(action, result).Inc()
}
