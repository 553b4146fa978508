package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vas_request_transitions_total",
		Help: "Service request status transitions, labeled by target status",
	}, []string{"to"})

	DispatchSweeps = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vas_dispatch_sweeps_total",
		Help: "Completed dispatcher sweeps",
	})

	DispatchAssignments = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vas_dispatch_assignments_total",
		Help: "Requests handed to a fulfiller, labeled by category and kind (agent or inventory)",
	}, []string{"category", "kind"})

	DispatchBackpressure = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vas_dispatch_backpressure_total",
		Help: "Sweeps that left requests queued, labeled by category and reason",
	}, []string{"category", "reason"})

	DispatchStale = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vas_dispatch_stale_total",
		Help: "Dispatcher transitions that lost the expected-status race",
	})

	DispatchSweepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "vas_dispatch_sweep_duration_seconds",
		Help:    "Latency distribution of dispatcher sweeps",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	})

	RefundFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vas_refund_failures_total",
		Help: "Refunds that could not be applied and halted their request",
	})

	OutboxPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vas_outbox_published_total",
		Help: "Lifecycle events relayed to the event bus, labeled by topic",
	}, []string{"topic"})

	TxRetries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vas_tx_retries_total",
		Help: "Transactions rerun after a serialization failure or deadlock, labeled by SQLSTATE",
	}, []string{"code"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vas_http_requests_total",
		Help: "Total HTTP requests processed, labeled by status code",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vas_http_request_duration_seconds",
		Help:    "Latency distribution of HTTP requests",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"method", "route"})
)
