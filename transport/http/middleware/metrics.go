package middleware

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "impressions_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status code.",
		},
		[]string{"method", "route", "code"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "impressions_http_request_duration_seconds",
			Help:    "Latency of HTTP request handling in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	authGateTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "impressions_auth_gate_total",
			Help: "Admin gate decisions by outcome.",
		},
		[]string{"outcome"},
	)
)

// Collectors returns the HTTP metric collectors for registration.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		httpRequestsTotal,
		httpRequestDuration,
		authGateTotal,
	}
}

// RegisterMetrics registers the HTTP collectors with registerer.
func RegisterMetrics(registerer prometheus.Registerer) error {
	for _, collector := range Collectors() {
		if err := registerer.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok { //nolint:errorlint
				continue
			}

			return err //nolint:wrapcheck
		}
	}

	return nil
}

// ObserveRequest records one handled request.
func ObserveRequest(method, route string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func observeGate(state GateState) {
	authGateTotal.WithLabelValues(state.String()).Inc()
}
