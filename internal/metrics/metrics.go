// Package metrics holds the Prometheus collectors of the vault server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vault"

// Metrics is the set of collectors updated by the service layer and the
// HTTP transport.
type Metrics struct {
	registry *prometheus.Registry

	// OperationsTotal counts vault operations by name and outcome kind
	// ("ok" or an error kind).
	OperationsTotal *prometheus.CounterVec
	// OperationDuration observes operation latency in seconds.
	OperationDuration *prometheus.HistogramVec
	// EventsPublishFailures counts audit events that could not be published
	// after commit.
	EventsPublishFailures prometheus.Counter
	// RateLimited counts requests rejected by the per-caller limiter.
	RateLimited prometheus.Counter
}

// New creates the collectors and registers them, together with the Go and
// process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		OperationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Vault operations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		OperationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Vault operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		EventsPublishFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_publish_failures_total",
			Help:      "Committed audit events that failed to publish.",
		}),
		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_requests_total",
			Help:      "Requests rejected by the per-caller rate limiter.",
		}),
	}

	m.registry.MustRegister(
		m.OperationsTotal,
		m.OperationDuration,
		m.EventsPublishFailures,
		m.RateLimited,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
