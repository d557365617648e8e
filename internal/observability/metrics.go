package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// advisory pipeline and the calculator API.
type Metrics struct {
	ObservationsConsumed prometheus.Counter
	AdvisoriesProduced   prometheus.Counter
	TransformErrors      prometheus.Counter
	PipelineRunning      prometheus.Gauge
	AdvisoriesByRisk     *prometheus.CounterVec // label: risk

	// Batch processing metrics.
	BatchSize               prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram

	// Calculator API metrics.
	Classifications     *prometheus.CounterVec   // labels: risk, source={api,pipeline}
	HTTPRequestDuration *prometheus.HistogramVec // labels: route, status
}

// NewMetrics creates and registers all service metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.ObservationsConsumed,
		m.AdvisoriesProduced,
		m.TransformErrors,
		m.PipelineRunning,
		m.AdvisoriesByRisk,
		m.BatchSize,
		m.BatchProcessingDuration,
		m.Classifications,
		m.HTTPRequestDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with unregistered collectors to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ObservationsConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "carbice",
			Name:      "observations_consumed_total",
			Help:      "Total observations read from the source topic.",
		}),
		AdvisoriesProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "carbice",
			Name:      "advisories_produced_total",
			Help:      "Total advisories written to the sink topic.",
		}),
		TransformErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "carbice",
			Name:      "transform_errors_total",
			Help:      "Total observations skipped: bad JSON or missing readings.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "carbice",
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		AdvisoriesByRisk: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "carbice",
			Name:      "advisories_by_risk_total",
			Help:      "Published advisories by risk category.",
		}, []string{"risk"}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "carbice",
			Name:      "batch_size",
			Help:      "Number of observations per batch extracted from Kafka.",
			Buckets:   []float64{1, 5, 10, 20, 30, 40, 50, 75, 100},
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "carbice",
			Name:      "batch_processing_duration_seconds",
			Help:      "Duration of a complete batch extract-classify-publish cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		Classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "carbice",
			Name:      "classifications_total",
			Help:      "Classification requests by risk category and source.",
		}, []string{"risk", "source"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "carbice",
			Name:      "http_request_duration_seconds",
			Help:      "Calculator API request duration in seconds.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route", "status"}),
	}
}
