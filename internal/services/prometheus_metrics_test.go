package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg)

	m.IncrementCounter(MetricSheetFetch, map[string]string{"sheet": "clients", "status": "success"})
	m.IncrementCounter(MetricSheetFetch, map[string]string{"sheet": "clients", "status": "success"})
	m.IncrementCounter(MetricSheetFetch, map[string]string{"sheet": "accounts", "status": "unavailable"})
	m.IncrementCounter(MetricSheetFetch, map[string]string{"sheet": "accounts"})
	m.IncrementCounter(MetricClientList, map[string]string{"status": "success"})
	m.IncrementCounter(MetricClientLookup, map[string]string{"result": "not_found"})
	m.IncrementCounter(MetricViewSuperseded, nil)
	m.RecordGauge(MetricSheetRows, 12, map[string]string{"sheet": "branches", "outcome": "accepted"})
	m.RecordGauge(MetricCircuitBreakerState, float64(StateOpen), map[string]string{"service": BreakerServiceName})
	m.RecordProcessingTime(MetricSheetFetch, 150*time.Millisecond)
	m.RecordProcessingTime("unknown", time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.sheetFetchTotal.WithLabelValues("clients", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sheetFetchTotal.WithLabelValues("accounts", "unavailable")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.clientListRequests.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.clientLookupTotal.WithLabelValues("not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.viewSupersededTotal))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.sheetRows.WithLabelValues("branches", "accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.circuitBreakerState.WithLabelValues(BreakerServiceName)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.sheetFetchDuration))
}

func TestNoopMetrics(t *testing.T) {
	var m MetricsRecorderInterface = NoopMetrics{}
	assert.NotPanics(t, func() {
		m.IncrementCounter(MetricSheetFetch, nil)
		m.RecordProcessingTime(MetricSheetFetch, time.Second)
		m.RecordGauge(MetricSheetRows, 1, nil)
	})
}
