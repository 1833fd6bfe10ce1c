package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics tracks HTTP-level request statistics for the diagnostics server
// and serves the Prometheus exposition endpoint.
type Metrics struct {
	handler http.Handler

	activeRequests  prometheus.Gauge
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics registers the request collectors and the Go runtime collector
// with reg. The same registry carries the application's stage collectors so
// a single /metrics endpoint exposes everything.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	reg.MustRegister(collectors.NewGoCollector())
	factory := promauto.With(reg)
	return &Metrics{
		handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		activeRequests: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "finagent",
			Name:      "active_requests",
			Help:      "Number of in-flight diagnostics requests.",
		}),
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "finagent",
			Name:      "requests_total",
			Help:      "Total diagnostics requests by path.",
		}, []string{"path"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "finagent",
			Name:      "request_duration_seconds",
			Help:      "Diagnostics request latency by path.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path"}),
	}
}

// IncrementActiveRequests marks a request as in flight.
func (m *Metrics) IncrementActiveRequests() { m.activeRequests.Inc() }

// DecrementActiveRequests marks a request as finished.
func (m *Metrics) DecrementActiveRequests() { m.activeRequests.Dec() }

// ObserveRequest records a completed request.
func (m *Metrics) ObserveRequest(path string, d time.Duration) {
	m.requestsTotal.WithLabelValues(path).Inc()
	m.requestDuration.WithLabelValues(path).Observe(d.Seconds())
}

// WritePrometheus serves the exposition format for the registry.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
