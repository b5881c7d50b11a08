// Package metrics provides Prometheus metrics for the IPL analytics dashboard.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the dashboard.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      prometheus.Labels
	registry         prometheus.Registerer

	// Dataset Metrics - one-time load of the two tables
	datasetRows             *prometheus.GaugeVec
	datasetOrphanDeliveries prometheus.Gauge
	datasetLoadDurationMs   prometheus.Gauge
	datasetLoadedUnix       prometheus.Gauge
	datasetLoadErrors       *prometheus.CounterVec

	// Aggregation Metrics
	aggregationLatency *prometheus.HistogramVec
	aggregationRows    *prometheus.HistogramVec

	// Presentation Metrics
	pageRenders  *prometheus.CounterVec
	chartRenders *prometheus.CounterVec

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error Metrics
	errorRateByType     *prometheus.CounterVec
	errorRateByEndpoint *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to keep the exposition limited to what we register.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	customRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "ipldash",
		subsystem:        "dashboard",
		histogramBuckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000},
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // long function required for comprehensive metrics initialization
	auto := promauto.With(m.registry)

	m.datasetRows = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "dataset_rows",
		Help:        "Rows loaded per table",
		ConstLabels: m.constLabels,
	}, []string{"table"})

	m.datasetOrphanDeliveries = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "dataset_orphan_deliveries",
		Help:        "Deliveries whose match id has no match record",
		ConstLabels: m.constLabels,
	})

	m.datasetLoadDurationMs = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "dataset_load_duration_milliseconds",
		Help:        "Duration of the dataset load in milliseconds",
		ConstLabels: m.constLabels,
	})

	m.datasetLoadedUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "dataset_loaded_unix",
		Help:        "Unix timestamp of the successful dataset load",
		ConstLabels: m.constLabels,
	})

	m.datasetLoadErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "dataset_load_errors_total",
		Help:        "Dataset load failures by reason",
		ConstLabels: m.constLabels,
	}, []string{"reason"})

	m.aggregationLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "aggregation_latency_milliseconds",
		Help:        "Aggregation latency in milliseconds by operation",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	}, []string{"op"})

	m.aggregationRows = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "aggregation_result_rows",
		Help:        "Number of rows returned by an aggregation",
		Buckets:     []float64{0, 1, 5, 10, 20, 50, 100, 500, 1000},
		ConstLabels: m.constLabels,
	}, []string{"op"})

	m.pageRenders = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "page_renders_total",
		Help:        "Dashboard page renders by view and outcome",
		ConstLabels: m.constLabels,
	}, []string{"view", "outcome"})

	m.chartRenders = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "chart_renders_total",
		Help:        "Chart renders by kind and outcome (rendered, empty, error)",
		ConstLabels: m.constLabels,
	}, []string{"kind", "outcome"})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests by endpoint and method",
			ConstLabels: m.constLabels,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "http_request_duration_milliseconds",
			Help:        "HTTP request duration in milliseconds",
			Buckets:     m.histogramBuckets,
			ConstLabels: m.constLabels,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorRateByType = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "errors_by_type_total",
			Help:        "Total number of errors by type",
			ConstLabels: m.constLabels,
		},
		[]string{"error_type", "severity"},
	)

	m.errorRateByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "errors_by_endpoint_total",
			Help:        "Total number of errors by endpoint",
			ConstLabels: m.constLabels,
		},
		[]string{"endpoint", "method", "error_type"},
	)
}

// Dataset Metrics Functions.

// UpdateDatasetRows sets the row count of a loaded table.
func UpdateDatasetRows(table string, rows int) {
	globalManager.datasetRows.WithLabelValues(table).Set(float64(rows))
}

// UpdateOrphanDeliveries sets the number of deliveries without a match record.
func UpdateOrphanDeliveries(count int) {
	globalManager.datasetOrphanDeliveries.Set(float64(count))
}

// RecordDatasetLoad records a successful load.
func RecordDatasetLoad(durationMs float64, loadedUnix int64) {
	globalManager.datasetLoadDurationMs.Set(durationMs)
	globalManager.datasetLoadedUnix.Set(float64(loadedUnix))
}

// RecordDatasetLoadError increments the load error counter for a reason.
func RecordDatasetLoadError(reason string) {
	globalManager.datasetLoadErrors.WithLabelValues(reason).Inc()
}

// Aggregation Metrics Functions.

// RecordAggregation records latency and result size of one aggregation.
func RecordAggregation(op string, latencyMs float64, rows int) {
	globalManager.aggregationLatency.WithLabelValues(op).Observe(latencyMs)
	globalManager.aggregationRows.WithLabelValues(op).Observe(float64(rows))
}

// Presentation Metrics Functions.

// RecordPageRender increments the page render counter.
func RecordPageRender(view, outcome string) {
	globalManager.pageRenders.WithLabelValues(view, outcome).Inc()
}

// RecordChartRender increments the chart render counter.
func RecordChartRender(kind, outcome string) {
	globalManager.chartRenders.WithLabelValues(kind, outcome).Inc()
}

// HTTP Metrics Functions.

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByType records an error with type and severity labels.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
