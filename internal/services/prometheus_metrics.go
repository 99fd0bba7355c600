package services

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics
const (
	MetricQuery         = "transaction_query"
	MetricQueryDuration = "transaction_query_duration"
	MetricSweep         = "export_sweep"
	MetricSweepPage     = "export_sweep_page"
	MetricSweepDuration = "export_sweep_duration"
	MetricSweepRows     = "export_sweep_rows"
	MetricPageRows      = "transaction_page_rows"
)

type PrometheusMetrics struct {
	queriesTotal  *prometheus.CounterVec
	queryDuration *prometheus.HistogramVec
	pageRows      *prometheus.HistogramVec
	sweepsTotal   *prometheus.CounterVec
	sweepPages    prometheus.Counter
	sweepDuration prometheus.Histogram
	lastSweepRows prometheus.Gauge
}

// NewPrometheusMetrics registers the ledger metrics on reg (prometheus.DefaultRegisterer when nil)
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		queriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_queries_total",
				Help: "Total number of ledger read operations",
			},
			[]string{"operation", "status"},
		),
		queryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "transaction_query_duration_seconds",
				Help:    "Ledger read duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		pageRows: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "transaction_page_rows",
				Help:    "Rows returned per listing page",
				Buckets: []float64{0, 1, 10, 50, 100, 250, 500},
			},
			[]string{"mode"},
		),
		sweepsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "export_sweeps_total",
				Help: "Total number of export sweeps",
			},
			[]string{"status"},
		),
		sweepPages: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "export_sweep_pages_total",
				Help: "Total number of pages fetched by export sweeps",
			},
		),
		sweepDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "export_sweep_duration_milliseconds",
				Help:    "Export sweep duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 16),
			},
		),
		lastSweepRows: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "export_sweep_last_rows",
				Help: "Rows collected by the most recent successful export sweep",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricQuery:
		m.queriesTotal.WithLabelValues(tags["operation"], tags["status"]).Inc()
	case MetricSweep:
		if status := tags["status"]; status != "" {
			m.sweepsTotal.WithLabelValues(status).Inc()
		}
	case MetricSweepPage:
		m.sweepPages.Inc()
	}
}

// RecordProcessingTime accepts "<metric>" or "<metric>:<operation>" names
func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	metric, operation, _ := strings.Cut(name, ":")
	switch metric {
	case MetricQueryDuration:
		m.queryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	case MetricSweepDuration:
		m.sweepDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricSweepRows:
		m.lastSweepRows.Set(value)
	case MetricPageRows:
		if mode := tags["mode"]; mode != "" {
			m.pageRows.WithLabelValues(mode).Observe(value)
		}
	}
}
