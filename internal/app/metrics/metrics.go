// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zaiboost",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route pattern, method and status code.",
	}, []string{"route", "method", "code"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "zaiboost",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	OrdersCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zaiboost",
		Name:      "orders_created_total",
		Help:      "Orders placed, by game and service category.",
	}, []string{"game", "category"})

	OrderStatusChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zaiboost",
		Name:      "order_status_changes_total",
		Help:      "Admin status updates, by target status.",
	}, []string{"status"})

	LoginFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "zaiboost",
		Name:      "login_failures_total",
		Help:      "Rejected login attempts, including locked-out ones.",
	})

	Registrations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "zaiboost",
		Name:      "registrations_total",
		Help:      "Accounts created through registration.",
	})
)
