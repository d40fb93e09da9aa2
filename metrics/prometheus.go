package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tddschn/Easy-Graph/mst"
)

// Namespace prefixes every metric name.
const Namespace = "spanning_forest"

// Run status label values.
const (
	StatusOK              = "ok"
	StatusUndefinedWeight = "undefined_weight"
	StatusError           = "error"
)

// Prometheus is an mst.Recorder backed by Prometheus collectors.
type Prometheus struct {
	RunsTotal        *prometheus.CounterVec
	RunDuration      *prometheus.HistogramVec
	SelectedEdges    *prometheus.CounterVec
	SkippedUndefined *prometheus.CounterVec
	Components       *prometheus.GaugeVec
}

var _ mst.Recorder = (*Prometheus)(nil)

// NewPrometheus creates the collectors and registers them with reg.
// A nil reg uses prometheus.DefaultRegisterer. Registering twice on the same
// registry panics, as with any promauto collector.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Prometheus{
		RunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "runs_total",
			Help:      "Spanning-forest computations by method and outcome",
		}, []string{"method", "status"}),

		RunDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of one spanning-forest computation",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}, []string{"method"}),

		SelectedEdges: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "selected_edges_total",
			Help:      "Forest edges emitted",
		}, []string{"method"}),

		SkippedUndefined: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "skipped_undefined_total",
			Help:      "Edges dropped because their weight resolved to NaN",
		}, []string{"method"}),

		Components: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "components",
			Help:      "Trees in the most recent successful forest",
		}, []string{"method"}),
	}
}

// RecordRun implements mst.Recorder.
func (p *Prometheus) RecordRun(stats mst.Stats, err error) {
	p.RunsTotal.WithLabelValues(stats.Method, status(err)).Inc()
	p.RunDuration.WithLabelValues(stats.Method).Observe(stats.Duration.Seconds())
	p.SkippedUndefined.WithLabelValues(stats.Method).Add(float64(stats.SkippedUndefined))
	if err != nil {
		return
	}
	p.SelectedEdges.WithLabelValues(stats.Method).Add(float64(stats.Edges))
	p.Components.WithLabelValues(stats.Method).Set(float64(stats.Components))
}

func status(err error) string {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, mst.ErrUndefinedWeight):
		return StatusUndefinedWeight
	default:
		return StatusError
	}
}
