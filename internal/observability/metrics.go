// Package observability provides metrics and tracing for the application.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "warbler_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "warbler_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// Signups counts completed account creations.
	Signups = promauto.NewCounter(prometheus.CounterOpts{
		Name: "warbler_signups_total",
		Help: "Total number of successfully created accounts",
	})

	// Logins counts authentication attempts by outcome.
	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "warbler_logins_total",
		Help: "Total number of login attempts by outcome",
	}, []string{"outcome"})

	// MessagesWritten counts created and deleted warbles.
	MessagesWritten = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "warbler_messages_total",
		Help: "Total number of message writes by action",
	}, []string{"action"})

	// FollowEdges counts follow and unfollow operations.
	FollowEdges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "warbler_follow_edges_total",
		Help: "Total number of follow edge writes by action",
	}, []string{"action"})

	// LikeEdges counts like and unlike operations.
	LikeEdges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "warbler_like_edges_total",
		Help: "Total number of like edge writes by action",
	}, []string{"action"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
