// Package metrics provides the prometheus instrumentation system for the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// System holds the metric collectors and their registry.
type System struct {
	registry *prometheus.Registry

	RequestDuration  *prometheus.HistogramVec
	UpstreamRequests *prometheus.CounterVec
}

// New creates a System with request and upstream collectors registered under
// the configured namespace, alongside standard Go and process collectors.
func New(cfg *Config) *System {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration by method, path, and status.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	upstreamRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "upstream_requests_total",
			Help:      "Model provider round trips by mode and outcome.",
		},
		[]string{"mode", "outcome"},
	)

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		requestDuration,
		upstreamRequests,
	)

	return &System{
		registry:         registry,
		RequestDuration:  requestDuration,
		UpstreamRequests: upstreamRequests,
	}
}

// Handler returns the prometheus exposition handler for the system registry.
func (s *System) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one completed HTTP request.
func (s *System) ObserveRequest(method, path string, status int, duration time.Duration) {
	s.RequestDuration.
		WithLabelValues(method, path, strconv.Itoa(status)).
		Observe(duration.Seconds())
}

// RecordUpstream records one model provider round trip.
func (s *System) RecordUpstream(mode, outcome string) {
	s.UpstreamRequests.WithLabelValues(mode, outcome).Inc()
}
