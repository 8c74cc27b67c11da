package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roster_http_requests_total",
		Help: "The total number of HTTP requests by route, method and status",
	}, []string{"route", "method", "status"})
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "roster_http_request_duration_seconds",
		Help:    "Latency of HTTP requests by route and method",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	// Player Metrics
	PlayersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roster_players_created_total",
		Help: "The total number of players created",
	})
	PlayersUpdatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roster_players_updated_total",
		Help: "The total number of players updated",
	})
	PlayersDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roster_players_deleted_total",
		Help: "The total number of players deleted",
	})
	ValidationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roster_validation_failures_total",
		Help: "The total number of rejected player inputs by operation",
	}, []string{"operation"})
)
