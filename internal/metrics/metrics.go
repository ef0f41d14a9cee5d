package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal tracks HTTP requests per route and status code
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bfhl_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPLatency tracks HTTP request latency
	HTTPLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bfhl_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// HTTPRateLimitedTotal counts requests rejected by the rate limiter
	HTTPRateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bfhl_http_rate_limited_total",
			Help: "Total number of HTTP requests rejected by the rate limiter",
		},
	)

	// GRPCRequestsTotal tracks gRPC calls per method and status code
	GRPCRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bfhl_grpc_requests_total",
			Help: "Total number of gRPC requests",
		},
		[]string{"method", "code"},
	)

	// GRPCLatency tracks gRPC call latency
	GRPCLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bfhl_grpc_request_duration_seconds",
			Help:    "gRPC request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// TokensClassified tracks classified tokens per category
	TokensClassified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bfhl_tokens_classified_total",
			Help: "Total number of tokens classified",
		},
		[]string{"category"},
	)

	// TokensGenerated tracks generated test tokens per data type
	TokensGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bfhl_tokens_generated_total",
			Help: "Total number of test tokens generated",
		},
		[]string{"type"},
	)

	// HealthStatus reports the aggregated health (0 healthy, 1 degraded, 2 critical)
	HealthStatus = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bfhl_health_status",
			Help: "Aggregated health status (0 healthy, 1 degraded, 2 critical)",
		},
	)
)
