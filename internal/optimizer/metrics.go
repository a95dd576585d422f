package optimizer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// optimizationDuration tracks the time spent per optimization call.
	optimizationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "optimizer_calculation_duration_seconds",
		Help:    "Time taken for optimization by strategy",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}, []string{"strategy"})

	// optimizationFailures tracks optimizations that ended without a solution.
	optimizationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "optimizer_calculation_failures_total",
		Help: "Total number of failed optimizations by strategy",
	}, []string{"strategy"})

	// cascadeSteps tracks which cascade steps are attempted.
	cascadeSteps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "optimizer_cascade_steps_total",
		Help: "Total number of cascade step attempts by step name",
	}, []string{"step"})

	// achievementRatio tracks the mean requirement achievement of solutions.
	achievementRatio = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "optimizer_achievement_ratio",
		Help:    "Mean requirement achievement ratio of successful solutions by strategy",
		Buckets: []float64{0.25, 0.5, 0.75, 0.9, 0.95, 1, 1.1, 1.5, 2},
	}, []string{"strategy"})

	// selectionSize tracks the distribution of selected food counts.
	selectionSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "optimizer_selected_foods_count",
		Help:    "Number of catalog foods matched per optimization request",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200},
	})
)

// MetricsRecorder provides methods to record optimizer metrics.
type MetricsRecorder struct{}

// NewMetricsRecorder creates a new metrics recorder.
func NewMetricsRecorder() *MetricsRecorder {
	return &MetricsRecorder{}
}

// RecordOptimization records one optimization call.
func (m *MetricsRecorder) RecordOptimization(strategy string, durationSeconds float64, success bool) {
	optimizationDuration.WithLabelValues(strategy).Observe(durationSeconds)
	if !success {
		optimizationFailures.WithLabelValues(strategy).Inc()
	}
}

// RecordAchievement records the mean achievement ratio of a solution.
func (m *MetricsRecorder) RecordAchievement(strategy string, meanRatio float64) {
	achievementRatio.WithLabelValues(strategy).Observe(meanRatio)
}

// RecordCascadeStep records one attempted cascade step.
func (m *MetricsRecorder) RecordCascadeStep(step string) {
	cascadeSteps.WithLabelValues(step).Inc()
}

// RecordSelectionSize records the number of foods matched by a request.
func (m *MetricsRecorder) RecordSelectionSize(count int) {
	selectionSize.Observe(float64(count))
}
