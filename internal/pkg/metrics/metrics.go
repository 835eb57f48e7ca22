// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/middleware"
	"github.com/go-kratos/kratos/v2/transport"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinetalk_requests_total",
			Help: "Total number of handled API operations",
		},
		[]string{"operation", "code"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinetalk_request_duration_seconds",
			Help:    "Duration of API operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// Catalog
	LikeToggles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinetalk_movie_like_toggles_total",
			Help: "Total number of like toggles by resulting state",
		},
		[]string{"state"}, // "liked", "unliked"
	)

	// Completion provider
	CompletionRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinetalk_completion_requests_total",
			Help: "Total number of completion provider calls by result",
		},
		[]string{"result"}, // "success", "failure", "rejected", "throttled"
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cinetalk_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)
)

// Server records count and latency of every operation passing through it.
func Server() middleware.Middleware {
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			operation := "unknown"
			if tr, ok := transport.FromServerContext(ctx); ok {
				operation = tr.Operation()
			}

			start := time.Now()
			reply, err := handler(ctx, req)

			code := 200
			if err != nil {
				code = int(errors.FromError(err).Code)
			}
			RequestsTotal.WithLabelValues(operation, strconv.Itoa(code)).Inc()
			RequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
			return reply, err
		}
	}
}
