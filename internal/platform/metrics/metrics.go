// Package metrics exposes ledger counters and latencies to Prometheus.
package metrics

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operation outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Collector records ledger operations on a private registry.
// A nil *Collector is valid and records nothing.
type Collector struct {
	registry          *prometheus.Registry
	operations        *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	ratesSet          *prometheus.CounterVec
	httpRequests      *prometheus.CounterVec
	logger            *slog.Logger
}

// NewCollector creates a Collector with its own registry.
func NewCollector(logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}

	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Collector{
		registry: registry,
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_operations_total",
			Help: "Total number of ledger operations by kind and outcome",
		}, []string{"operation", "outcome"}),
		operationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ledger_operation_duration_seconds",
			Help:    "Time taken to run a ledger operation, including its unit of work",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		ratesSet: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "exchange_rates_set_total",
			Help: "Total number of exchange rate records appended",
		}, []string{"currency"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route and status class",
		}, []string{"method", "route", "status"}),
		logger: logger,
	}
}

// ObserveOperation records one ledger operation.
func (m *Collector) ObserveOperation(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	m.operations.WithLabelValues(operation, outcome).Inc()
	m.operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RateSet records an appended exchange rate.
func (m *Collector) RateSet(currency string) {
	if m == nil {
		return
	}
	m.ratesSet.WithLabelValues(currency).Inc()
}

// ObserveHTTPRequest records a served HTTP request.
func (m *Collector) ObserveHTTPRequest(method, route, status string) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, status).Inc()
}

// Registry returns the registry the collector writes to.
func (m *Collector) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the collected metrics in the Prometheus exposition format.
func (m *Collector) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		ErrorLog: slog.NewLogLogger(m.logger.Handler(), slog.LevelError),
	})
}
