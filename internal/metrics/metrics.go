// Package metrics exposes Prometheus counters for entity operations and
// request latencies on a private registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"blogly/internal/apperror"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the application's collectors.
type Metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	requests   *prometheus.HistogramVec
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "blogly_entity_operations_total",
			Help: "Entity operations by entity, operation and outcome.",
		}, []string{"entity", "operation", "outcome"}),
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "blogly_request_duration_seconds",
			Help:    "HTTP request latency by method, route and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	m.registry.MustRegister(
		m.operations,
		m.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Outcome classifies err for the outcome label.
func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	if appErr, ok := apperror.As(err); ok {
		return appErr.Type
	}
	return apperror.TypeInternal
}

// ObserveOperation counts one entity operation.
func (m *Metrics) ObserveOperation(entity, operation string, err error) {
	m.operations.WithLabelValues(entity, operation, Outcome(err)).Inc()
}

// ObserveRequest records the latency of one HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
