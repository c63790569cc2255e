package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the scrape-side collectors served on /metrics
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	LedgerOperations        *prometheus.CounterVec
	LedgerOperationDuration *prometheus.HistogramVec
	LedgerConflictRetries   *prometheus.CounterVec

	LowStockAlerts *prometheus.CounterVec
}

// MetricsConfig holds Prometheus naming
type MetricsConfig struct {
	Namespace string
}

// DefaultMetricsConfig returns the default naming
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{Namespace: "fieldstock"}
}

// NewMetrics creates a Metrics instance with its own registry
func NewMetrics(cfg MetricsConfig) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{registry: registry}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)
	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route"},
	)
	m.HTTPRequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: cfg.Namespace,
			Name:      "http_requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	m.LedgerOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "ledger_operations_total",
			Help:      "Total number of ledger operations by outcome",
		},
		[]string{"operation", "outcome"},
	)
	m.LedgerOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Name:      "ledger_operation_duration_seconds",
			Help:      "Ledger operation duration in seconds, retries included",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"operation"},
	)
	m.LedgerConflictRetries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "ledger_conflict_retries_total",
			Help:      "Total number of ledger retries after a concurrency conflict",
		},
		[]string{"operation"},
	)

	m.LowStockAlerts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "low_stock_alerts_total",
			Help:      "Total number of stock threshold alerts raised",
		},
		[]string{"alert_type"},
	)

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestsInFlight,
		m.LedgerOperations,
		m.LedgerOperationDuration,
		m.LedgerConflictRetries,
		m.LowStockAlerts,
	)

	return m
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in Prometheus or OpenMetrics format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// RecordHTTPRequest records a completed request
func (m *Metrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// IncInFlight marks a request as started
func (m *Metrics) IncInFlight() {
	m.HTTPRequestsInFlight.Inc()
}

// DecInFlight marks a request as finished
func (m *Metrics) DecInFlight() {
	m.HTTPRequestsInFlight.Dec()
}

// ObserveLedgerOperation implements inventory.LedgerMetrics
func (m *Metrics) ObserveLedgerOperation(op, outcome string, duration time.Duration) {
	m.LedgerOperations.WithLabelValues(op, outcome).Inc()
	m.LedgerOperationDuration.WithLabelValues(op).Observe(duration.Seconds())
}

// IncConflictRetry implements inventory.LedgerMetrics
func (m *Metrics) IncConflictRetry(op string) {
	m.LedgerConflictRetries.WithLabelValues(op).Inc()
}

// IncLowStockAlert implements inventory.AlertMetrics
func (m *Metrics) IncLowStockAlert(alertType string) {
	m.LowStockAlerts.WithLabelValues(alertType).Inc()
}
