// Package metrics provides Prometheus metrics for observability.
// Metrics are organized by domain: HTTP requests, contact submissions,
// and content loading.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "portfolio"
)

var (
	// HTTP metrics - track request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	// Contact metrics - track submission outcomes
	ContactSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "contact",
			Name:      "submissions_total",
			Help:      "Total number of contact submissions by result (accepted, invalid, relay_failed)",
		},
		[]string{"result"},
	)

	RelayRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "contact",
			Name:      "relay_duration_seconds",
			Help:      "Outbound relay call duration in seconds",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)

	// Content metrics - track loader behavior
	ContentLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "content",
			Name:      "loads_total",
			Help:      "Total number of content file loads by collection and result (ok, skipped)",
		},
		[]string{"collection", "result"},
	)
)

// Submission result labels for ContactSubmissionsTotal.
const (
	ResultAccepted    = "accepted"
	ResultInvalid     = "invalid"
	ResultRelayFailed = "relay_failed"
)
