package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the application collectors.
type Metrics struct {
	registry *prometheus.Registry

	AuditWritten    prometheus.Counter
	AuditFailed     prometheus.Counter
	HTTPRequests    *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		AuditWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "audit_entries_written_total",
			Help: "Audit log entries persisted.",
		}),
		AuditFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "audit_entries_failed_total",
			Help: "Audit log entries that could not be persisted.",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.AuditWritten,
		m.AuditFailed,
		m.HTTPRequests,
		m.RequestDuration,
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
