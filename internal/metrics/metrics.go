package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP Metrics
	HTTPRequestsTotal     *prometheus.CounterVec
	HTTPRequestDuration   *prometheus.HistogramVec
	HTTPRequestsInFlight  prometheus.Gauge
	HTTPResponseSizeBytes *prometheus.HistogramVec

	// Dashboard Metrics
	DatasetRowsLoaded  prometheus.Gauge
	FilterQueriesTotal *prometheus.CounterVec
	EmptyFilterResults prometheus.Counter
	ChartRendersTotal  *prometheus.CounterVec
	ChartRenderErrors  *prometheus.CounterVec
	PDFExportsTotal    prometheus.Counter
	PDFExportErrors    prometheus.Counter

	// Validation Metrics
	ValidationErrors   *prometheus.CounterVec
	ValidationDuration *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "riskboard_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "riskboard_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "riskboard_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),
		HTTPResponseSizeBytes: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "riskboard_http_response_size_bytes",
				Help:    "Size of HTTP responses in bytes",
				Buckets: prometheus.ExponentialBuckets(256, 4, 8),
			},
			[]string{"method", "path"},
		),
		DatasetRowsLoaded: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "riskboard_dataset_rows_loaded",
				Help: "Number of user records loaded from the dataset at startup",
			},
		),
		FilterQueriesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "riskboard_filter_queries_total",
				Help: "Total number of filtered dashboard queries",
			},
			[]string{"bucket", "min_spend"},
		),
		EmptyFilterResults: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "riskboard_empty_filter_results_total",
				Help: "Total number of filter queries that matched no users",
			},
		),
		ChartRendersTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "riskboard_chart_renders_total",
				Help: "Total number of chart renders",
			},
			[]string{"chart"},
		),
		ChartRenderErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "riskboard_chart_render_errors_total",
				Help: "Total number of failed chart renders",
			},
			[]string{"chart"},
		),
		PDFExportsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "riskboard_pdf_exports_total",
				Help: "Total number of correlation chart PDF exports",
			},
		),
		PDFExportErrors: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "riskboard_pdf_export_errors_total",
				Help: "Total number of failed PDF exports",
			},
		),
		ValidationErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "riskboard_validation_errors_total",
				Help: "Total number of request validation errors",
			},
			[]string{"field", "tag"},
		),
		ValidationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "riskboard_validation_duration_seconds",
				Help:    "Duration of request validation in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration, responseSize int) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration.Seconds())
	m.HTTPResponseSizeBytes.WithLabelValues(method, path).Observe(float64(responseSize))
}

func (m *Metrics) RecordFilterQuery(bucket string, minSpend bool, matched int) {
	m.FilterQueriesTotal.WithLabelValues(bucket, strconv.FormatBool(minSpend)).Inc()
	if matched == 0 {
		m.EmptyFilterResults.Inc()
	}
}

func (m *Metrics) RecordChartRender(chart string, err error) {
	m.ChartRendersTotal.WithLabelValues(chart).Inc()
	if err != nil {
		m.ChartRenderErrors.WithLabelValues(chart).Inc()
	}
}

func (m *Metrics) RecordPDFExport(err error) {
	m.PDFExportsTotal.Inc()
	if err != nil {
		m.PDFExportErrors.Inc()
	}
}

func (m *Metrics) RecordValidationError(field, tag string) {
	m.ValidationErrors.WithLabelValues(field, tag).Inc()
}

func (m *Metrics) RecordValidationDuration(operation string, duration time.Duration) {
	m.ValidationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
