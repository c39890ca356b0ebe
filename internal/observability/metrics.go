package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, gauges, and histograms for the
// training pipeline.
type Metrics struct {
	RecordsLoaded      *prometheus.CounterVec   // labels: split={train,test}
	TrainingIterations *prometheus.CounterVec   // labels: model={logistic,perceptron}
	TrainLoss          *prometheus.GaugeVec     // labels: model
	TestLoss           *prometheus.GaugeVec     // labels: model
	ModelAccuracy      *prometheus.GaugeVec     // labels: model
	TrainingDuration   *prometheus.HistogramVec // labels: model
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RecordsLoaded,
		m.TrainingIterations,
		m.TrainLoss,
		m.TestLoss,
		m.ModelAccuracy,
		m.TrainingDuration,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RecordsLoaded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "damage_classifier",
			Name:      "records_loaded_total",
			Help:      "Records loaded from the CSV splits.",
		}, []string{"split"}),
		TrainingIterations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "damage_classifier",
			Name:      "training_iterations_total",
			Help:      "Completed optimizer iterations per model.",
		}, []string{"model"}),
		TrainLoss: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "damage_classifier",
			Name:      "train_loss",
			Help:      "Most recent training-set binary cross-entropy per model.",
		}, []string{"model"}),
		TestLoss: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "damage_classifier",
			Name:      "test_loss",
			Help:      "Most recent test-set binary cross-entropy per model.",
		}, []string{"model"}),
		ModelAccuracy: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "damage_classifier",
			Name:      "model_accuracy",
			Help:      "Test-set accuracy per model after training.",
		}, []string{"model"}),
		TrainingDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "damage_classifier",
			Name:      "training_duration_seconds",
			Help:      "Wall-clock duration of a complete training run per model.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}, []string{"model"}),
	}
}
