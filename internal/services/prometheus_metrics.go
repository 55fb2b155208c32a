package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics. Counters and durations of the same
// operation share a name.
const (
	MetricSheetFetch          = "sheet_fetch"
	MetricSheetRows           = "sheet_rows"
	MetricCircuitBreakerState = "circuit_breaker_state"
	MetricClientList          = "client_list"
	MetricClientLookup        = "client_lookup"
	MetricViewSuperseded      = "view_superseded"
)

type PrometheusMetrics struct {
	sheetFetchTotal      *prometheus.CounterVec
	sheetFetchDuration   prometheus.Histogram
	sheetRows            *prometheus.GaugeVec
	circuitBreakerState  *prometheus.GaugeVec
	clientListRequests   *prometheus.CounterVec
	clientListDuration   prometheus.Histogram
	clientLookupTotal    *prometheus.CounterVec
	clientLookupDuration prometheus.Histogram
	viewSupersededTotal  prometheus.Counter
}

// NewPrometheusMetrics registers the directory metrics with reg
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		sheetFetchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sheet_fetch_total",
				Help: "Total number of sheet fetches by outcome",
			},
			[]string{"sheet", "status"},
		),
		sheetFetchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sheet_fetch_duration_seconds",
				Help:    "Duration of a sheet fetch including ingestion",
				Buckets: prometheus.DefBuckets,
			},
		),
		sheetRows: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "sheet_rows",
				Help: "Rows seen in the latest fetch of a sheet by outcome",
			},
			[]string{"sheet", "outcome"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		clientListRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "client_list_requests_total",
				Help: "Total number of client list requests",
			},
			[]string{"status"},
		),
		clientListDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "client_list_duration_seconds",
				Help:    "Client list duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		clientLookupTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "client_lookup_total",
				Help: "Total number of client detail lookups by result",
			},
			[]string{"result"},
		),
		clientLookupDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "client_lookup_duration_seconds",
				Help:    "Client detail lookup duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		viewSupersededTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "view_superseded_total",
				Help: "Responses discarded because a newer request for the same view arrived",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case MetricSheetFetch:
		if sheet := tags["sheet"]; sheet != "" && status != "" {
			m.sheetFetchTotal.WithLabelValues(sheet, status).Inc()
		}
	case MetricClientList:
		if status != "" {
			m.clientListRequests.WithLabelValues(status).Inc()
		}
	case MetricClientLookup:
		if result := tags["result"]; result != "" {
			m.clientLookupTotal.WithLabelValues(result).Inc()
		}
	case MetricViewSuperseded:
		m.viewSupersededTotal.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricSheetFetch:
		m.sheetFetchDuration.Observe(duration.Seconds())
	case MetricClientList:
		m.clientListDuration.Observe(duration.Seconds())
	case MetricClientLookup:
		m.clientLookupDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricSheetRows:
		if sheet, outcome := tags["sheet"], tags["outcome"]; sheet != "" && outcome != "" {
			m.sheetRows.WithLabelValues(sheet, outcome).Set(value)
		}
	case MetricCircuitBreakerState:
		if service := tags["service"]; service != "" {
			m.circuitBreakerState.WithLabelValues(service).Set(value)
		}
	}
}

// NoopMetrics discards everything
type NoopMetrics struct{}

func (NoopMetrics) IncrementCounter(string, map[string]string)     {}
func (NoopMetrics) RecordProcessingTime(string, time.Duration)     {}
func (NoopMetrics) RecordGauge(string, float64, map[string]string) {}
