// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestsRateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_requests_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
	)
)

// Business metrics
var (
	CheeseListingsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cheese_listings_created_total",
			Help: "Cheese listings persisted through the API",
		},
	)

	CheeseListingsUpdatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cheese_listings_updated_total",
			Help: "Cheese listings updated through the API",
		},
	)
)
