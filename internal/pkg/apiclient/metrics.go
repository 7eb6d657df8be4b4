package apiclient

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess      = "success"
	outcomeFailure      = "failure"
	outcomeUnauthorized = "unauthorized"
	outcomeTransport    = "transport"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stall_api_requests_total",
		Help: "Backend API calls by method and outcome",
	}, []string{"method", "outcome"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "stall_api_request_duration_seconds",
		Help:    "Latency of backend API calls",
		Buckets: prometheus.ExponentialBuckets(0.005, 2.0, 12),
	}, []string{"method"})

	SessionInvalidations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stall_session_invalidations_total",
		Help: "Sessions cleared after an authentication failure",
	})
)
